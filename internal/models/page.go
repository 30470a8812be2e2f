// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// BlockType identifies the shape of a page block's content map.
type BlockType string

const (
	BlockHeading           BlockType = "heading"
	BlockText              BlockType = "text"
	BlockButton            BlockType = "button"
	BlockImage             BlockType = "image"
	BlockDivider           BlockType = "divider"
	BlockHero              BlockType = "hero"
	BlockContactForm       BlockType = "contact_form"
	BlockEventRegistration BlockType = "event_registration"
	BlockCards             BlockType = "cards"
)

// Valid reports whether the block type is a known value.
func (t BlockType) Valid() bool {
	switch t {
	case BlockHeading, BlockText, BlockButton, BlockImage, BlockDivider,
		BlockHero, BlockContactForm, BlockEventRegistration, BlockCards:
		return true
	}
	return false
}

// Block is one ordered content unit of a page or ad layout. Unlike a
// canvas Element it has no geometry — blocks stack in document flow,
// positioned only by their dense zero-based Order.
type Block struct {
	BlockID uuid.UUID      `json:"block_id"`
	Type    BlockType      `json:"type"`
	Content map[string]any `json:"content"`
	Order   int            `json:"order"`
}

// Page is an ordered collection of blocks plus page-level metadata.
type Page struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Published bool      `json:"published"`
	Blocks    []Block   `json:"blocks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
