package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for template, page, and asset fields.
const (
	maxNameLen    = 200
	maxTitleLen   = 300
	maxSlugLen    = 300
	maxCaptionLen = 200
	maxAssetLen   = 2_000_000 // data URIs, ~1.5 MB of image
	maxBlockCount = 200
)

// validateTemplateName checks the template name and returns the first
// error found, or "".
func validateTemplateName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Template name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Template name is too long (max 200 characters)."
	}
	return ""
}

// validatePageFields checks page title and slug inputs.
func validatePageFields(title, slug string) string {
	if strings.TrimSpace(title) == "" {
		return "Page title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Page title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(slug) > maxSlugLen {
		return "Slug is too long (max 300 characters)."
	}
	return ""
}

// validateAsset checks asset upload inputs.
func validateAsset(caption, content string) string {
	if utf8.RuneCountInString(caption) > maxCaptionLen {
		return "Caption is too long (max 200 characters)."
	}
	if strings.TrimSpace(content) == "" {
		return "Asset content is required."
	}
	if !strings.HasPrefix(content, "data:image/") {
		return "Asset content must be an image data URI."
	}
	if len(content) > maxAssetLen {
		return "Asset is too large (max 2 MB encoded)."
	}
	return ""
}
