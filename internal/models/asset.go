// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// AssetKind distinguishes the two reusable asset catalogs the certificate
// designer can bind elements to.
type AssetKind string

const (
	AssetSignature      AssetKind = "signature"
	AssetCertifyingBody AssetKind = "certifying_body"
)

// Valid reports whether the asset kind is a known value.
func (k AssetKind) Valid() bool {
	return k == AssetSignature || k == AssetCertifyingBody
}

// Asset is a reusable saved signature or certifying-body logo. Content is
// the literal image payload (a data URI); Caption is the display label
// shown beneath the image. Binding an asset to an element copies both
// values into the element — deleting the asset afterwards does not touch
// elements that were bound to it.
type Asset struct {
	ID        uuid.UUID `json:"id"`
	Kind      AssetKind `json:"kind"`
	Caption   string    `json:"caption"`
	Content   string    `json:"content"`
	Thumbnail *string   `json:"thumbnail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
