// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blocks implements the ordered block list behind the custom-page
// and simulation builders. Blocks are typed content units without
// geometry; their only positional property is a dense zero-based order,
// which every mutation renumbers.
//
// All index-taking operations are total over valid indices. Passing an
// out-of-range index is a caller bug and panics — it is a contract
// violation, not a recoverable runtime condition.
package blocks

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"awarepress/internal/models"
)

// Direction is the move direction for Tree.Move.
type Direction int

const (
	Up Direction = iota
	Down
)

// Tree is the mutable working copy of a page's block list during an
// editing session. Single writer, no locks — mutations run on the
// caller's event loop.
type Tree struct {
	blocks []models.Block
}

// NewTree starts an editing session over a copy of the given blocks.
// The input order is preserved and renumbered to 0..n-1.
func NewTree(blocks []models.Block) *Tree {
	t := &Tree{blocks: make([]models.Block, len(blocks))}
	copy(t.blocks, blocks)
	t.renumber()
	return t
}

// Len returns the number of blocks.
func (t *Tree) Len() int {
	return len(t.blocks)
}

// Blocks returns the current block list. The slice is the tree's own
// working copy; callers render from it but mutate only through Tree
// methods.
func (t *Tree) Blocks() []models.Block {
	return t.blocks
}

// NewBlock creates a block of the given type with its default content
// and a fresh id. The block is not yet part of any tree.
func NewBlock(bt models.BlockType) models.Block {
	return models.Block{
		BlockID: uuid.New(),
		Type:    bt,
		Content: DefaultContent(bt),
	}
}

// Insert places the block at index, shifting later blocks down. An index
// equal to Len appends. Panics on out-of-range indices.
func (t *Tree) Insert(b models.Block, index int) {
	if index < 0 || index > len(t.blocks) {
		panic(fmt.Sprintf("blocks: insert index %d out of range [0,%d]", index, len(t.blocks)))
	}
	t.blocks = append(t.blocks, models.Block{})
	copy(t.blocks[index+1:], t.blocks[index:])
	t.blocks[index] = b
	t.renumber()
}

// Append adds the block at the end of the list.
func (t *Tree) Append(b models.Block) {
	t.Insert(b, len(t.blocks))
}

// Move swaps the block at index with its neighbor in the given
// direction. Moving the first block up or the last block down is a
// no-op. Panics on out-of-range indices.
func (t *Tree) Move(index int, dir Direction) {
	t.mustIndex(index, "move")

	j := index - 1
	if dir == Down {
		j = index + 1
	}
	if j < 0 || j >= len(t.blocks) {
		return // boundary, nothing to swap with
	}

	t.blocks[index], t.blocks[j] = t.blocks[j], t.blocks[index]
	t.renumber()
}

// Remove deletes the block at index and renumbers the rest. Panics on
// out-of-range indices.
func (t *Tree) Remove(index int) {
	t.mustIndex(index, "remove")
	t.blocks = append(t.blocks[:index], t.blocks[index+1:]...)
	t.renumber()
}

// SetType switches the block at index to a new type, resetting its
// content to that type's default shape. Prior content is discarded, not
// merged — the builder confirms this with the user before calling.
// Panics on out-of-range indices; unknown types are a no-op.
func (t *Tree) SetType(index int, bt models.BlockType) {
	t.mustIndex(index, "set type")
	if !bt.Valid() {
		return
	}
	t.blocks[index].Type = bt
	t.blocks[index].Content = DefaultContent(bt)
}

// renumber rewrites order values to the dense sequence 0..n-1.
func (t *Tree) renumber() {
	for i := range t.blocks {
		t.blocks[i].Order = i
	}
}

func (t *Tree) mustIndex(index int, op string) {
	if index < 0 || index >= len(t.blocks) {
		panic(fmt.Sprintf("blocks: %s index %d out of range [0,%d)", op, index, len(t.blocks)))
	}
}

// ErrInvalidBlocks is wrapped by every validation failure from Validate.
var ErrInvalidBlocks = errors.New("invalid block list")

// Validate checks a persisted block list at the deserialize boundary:
// known types, non-nil ids, and order values forming exactly 0..n-1.
// Content maps are opaque beyond their type being known; per-key shapes
// are the renderer's concern.
func Validate(list []models.Block) error {
	seen := make(map[uuid.UUID]bool, len(list))
	orders := make(map[int]bool, len(list))
	for i := range list {
		b := &list[i]
		if b.BlockID == uuid.Nil {
			return fmt.Errorf("%w: block at position %d has nil id", ErrInvalidBlocks, i)
		}
		if seen[b.BlockID] {
			return fmt.Errorf("%w: duplicate block id %s", ErrInvalidBlocks, b.BlockID)
		}
		seen[b.BlockID] = true
		if !b.Type.Valid() {
			return fmt.Errorf("%w: block %s: unknown type %q", ErrInvalidBlocks, b.BlockID, b.Type)
		}
		if b.Order < 0 || b.Order >= len(list) {
			return fmt.Errorf("%w: block %s: order %d outside 0..%d", ErrInvalidBlocks, b.BlockID, b.Order, len(list)-1)
		}
		if orders[b.Order] {
			return fmt.Errorf("%w: duplicate order %d", ErrInvalidBlocks, b.Order)
		}
		orders[b.Order] = true
	}
	return nil
}
