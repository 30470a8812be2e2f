// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging generates thumbnails of designer assets (signatures,
// certifying-body logos, background images). Assets are stored as data
// URIs; the asset catalog shows thumbnails so browsing stays light.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
)

// ThumbnailMaxWidth is the default pixel width of catalog thumbnails.
const ThumbnailMaxWidth = 240

// ThumbnailDataURI decodes an image data URI, scales it down to at most
// maxWidth pixels wide (never upscaling), and returns the result as a
// PNG data URI. maxWidth <= 0 uses ThumbnailMaxWidth.
func ThumbnailDataURI(dataURI string, maxWidth int) (string, error) {
	if maxWidth <= 0 {
		maxWidth = ThumbnailMaxWidth
	}

	raw, err := decodeDataURI(dataURI)
	if err != nil {
		return "", err
	}

	src, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("imaging: decode: %w", err)
	}

	if src.Bounds().Dx() > maxWidth {
		src = imaging.Resize(src, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		return "", fmt.Errorf("imaging: encode: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// decodeDataURI extracts the raw bytes of a base64 data URI.
func decodeDataURI(uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return nil, fmt.Errorf("imaging: not a data URI")
	}
	idx := strings.Index(uri, ",")
	if idx < 0 {
		return nil, fmt.Errorf("imaging: malformed data URI")
	}
	meta, payload := uri[5:idx], uri[idx+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("imaging: only base64 data URIs are supported")
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("imaging: base64 decode: %w", err)
	}
	return raw, nil
}
