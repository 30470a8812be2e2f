// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blocks

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"

	"awarepress/internal/models"
)

//go:embed defaults.toml
var defaultsTOML []byte

// defaultContent holds the per-type default content shapes, decoded once
// from the embedded catalog at startup.
var defaultContent = mustLoadDefaults()

func mustLoadDefaults() map[string]map[string]any {
	var catalog map[string]map[string]any
	if err := toml.Unmarshal(defaultsTOML, &catalog); err != nil {
		panic(fmt.Sprintf("blocks: bad defaults catalog: %v", err))
	}
	for _, bt := range knownTypes {
		if _, ok := catalog[string(bt)]; !ok {
			panic(fmt.Sprintf("blocks: defaults catalog missing type %q", bt))
		}
	}
	return catalog
}

// knownTypes lists every block type the builder offers, in menu order.
var knownTypes = []models.BlockType{
	models.BlockHeading,
	models.BlockText,
	models.BlockButton,
	models.BlockImage,
	models.BlockDivider,
	models.BlockHero,
	models.BlockContactForm,
	models.BlockEventRegistration,
	models.BlockCards,
}

// Types returns the block types available to the builder UI.
func Types() []models.BlockType {
	out := make([]models.BlockType, len(knownTypes))
	copy(out, knownTypes)
	return out
}

// DefaultContent returns a fresh copy of the default content map for a
// block type, safe for the caller to mutate. Unknown types return nil.
func DefaultContent(t models.BlockType) map[string]any {
	src, ok := defaultContent[string(t)]
	if !ok {
		return nil
	}
	return copyContent(src)
}

// copyContent deep-copies a content map (maps and slices of maps only,
// which is all TOML produces for the catalog).
func copyContent(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyContent(val)
	case []map[string]any:
		items := make([]map[string]any, len(val))
		for i, m := range val {
			items[i] = copyContent(m)
		}
		return items
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = copyValue(item)
		}
		return items
	default:
		return v
	}
}
