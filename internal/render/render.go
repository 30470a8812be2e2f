// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render turns certificate templates and landing pages into
// preview HTML. Rendered output is memoized in an in-process cache keyed
// by entity ID and update timestamp, so edits invalidate naturally.
package render

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"awarepress/internal/designer"
	"awarepress/internal/markdown"
	"awarepress/internal/models"
)

// Renderer produces preview HTML with an L1 memoization cache.
type Renderer struct {
	cache *gocache.Cache
}

// New creates a Renderer. Entries expire after 10 minutes; stale entries
// are swept every 15.
func New() *Renderer {
	return &Renderer{
		cache: gocache.New(10*time.Minute, 15*time.Minute),
	}
}

// certificateKey builds a cache key that changes whenever the template does.
func certificateKey(t *models.Template) string {
	return fmt.Sprintf("cert:%s:%d", t.ID, t.UpdatedAt.UnixNano())
}

func pageKey(p *models.Page) string {
	return fmt.Sprintf("page:%s:%d", p.ID, p.UpdatedAt.UnixNano())
}

// Certificate renders a certificate template as a positioned HTML
// fragment. Element geometry is percent-based so the fragment scales
// with its container.
func (r *Renderer) Certificate(t *models.Template) (string, error) {
	key := certificateKey(t)
	if cached, ok := r.cache.Get(key); ok {
		return cached.(string), nil
	}

	var b strings.Builder

	w, h := designer.CanvasSize(t.Orientation)
	fmt.Fprintf(&b,
		`<div class="certificate border-%s" style="position:relative;aspect-ratio:%g/%g;background-color:%s;`,
		html.EscapeString(string(t.BorderStyle)), w, h,
		html.EscapeString(t.BackgroundColor),
	)
	if t.BackgroundImage != nil && *t.BackgroundImage != "" {
		fmt.Fprintf(&b, `background-image:url('%s');background-size:cover;`,
			html.EscapeString(*t.BackgroundImage))
	}
	b.WriteString(`">`)

	for i := range t.Elements {
		el := &t.Elements[i]
		if err := renderElement(&b, el); err != nil {
			return "", err
		}
	}

	b.WriteString(`</div>`)

	out := b.String()
	r.cache.Set(key, out, gocache.DefaultExpiration)
	return out, nil
}

// renderElement writes one absolutely positioned element.
func renderElement(b *strings.Builder, el *models.Element) error {
	classes := "element element-" + string(el.Type)
	if designer.IsPlaceholder(el) {
		classes += " placeholder"
	}

	fmt.Fprintf(b,
		`<div class="%s" data-id="%s" style="position:absolute;left:%g%%;top:%g%%;width:%g%%;height:%g%%;%s">`,
		classes, el.ID, el.X, el.Y, el.Width, el.Height,
		inlineStyle(designer.EffectiveStyle(el)),
	)

	content := designer.EffectiveContent(el)
	switch el.Type {
	case models.ElementText:
		b.WriteString(html.EscapeString(content))
	case models.ElementImage, models.ElementSignature, models.ElementCertifyingBody:
		if designer.IsPlaceholder(el) {
			fmt.Fprintf(b, `<span>%s</span>`, html.EscapeString(content))
		} else {
			fmt.Fprintf(b, `<img src="%s" alt="%s">`,
				html.EscapeString(content),
				html.EscapeString(el.Style["title"]),
			)
		}
	default:
		return fmt.Errorf("render element: unknown type %q", el.Type)
	}

	b.WriteString(`</div>`)
	return nil
}

// inlineStyle converts a style map into a CSS declaration list. Keys use
// the designer's snake_case convention and are translated to CSS
// property names.
func inlineStyle(style models.Style) string {
	if len(style) == 0 {
		return ""
	}

	keys := make([]string, 0, len(style))
	for k := range style {
		if k == "title" { // caption metadata, not CSS
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(cssName(k))
		b.WriteByte(':')
		b.WriteString(html.EscapeString(style[k]))
		b.WriteByte(';')
	}
	return b.String()
}

// cssProperty maps the designer's style keys to the CSS properties they
// render as. Keys without an entry pass through with underscores turned
// into hyphens.
var cssProperty = map[string]string{
	"font_size": "font-size",
	"weight":    "font-weight",
	"align":     "text-align",
}

func cssName(key string) string {
	if prop, ok := cssProperty[key]; ok {
		return prop
	}
	return strings.ReplaceAll(key, "_", "-")
}

// Page renders a landing page's blocks, in order, as an HTML fragment.
func (r *Renderer) Page(p *models.Page) (string, error) {
	key := pageKey(p)
	if cached, ok := r.cache.Get(key); ok {
		return cached.(string), nil
	}

	ordered := make([]models.Block, len(p.Blocks))
	copy(ordered, p.Blocks)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	var b strings.Builder
	b.WriteString(`<div class="page">`)
	for i := range ordered {
		if err := renderBlock(&b, &ordered[i]); err != nil {
			return "", err
		}
	}
	b.WriteString(`</div>`)

	out := b.String()
	r.cache.Set(key, out, gocache.DefaultExpiration)
	return out, nil
}

// renderBlock dispatches on the block type.
func renderBlock(b *strings.Builder, blk *models.Block) error {
	str := func(key string) string {
		s, _ := blk.Content[key].(string)
		return s
	}

	switch blk.Type {
	case models.BlockHeading:
		level := 2
		switch v := blk.Content["level"].(type) {
		case float64:
			level = int(v)
		case int64:
			level = int(v)
		}
		if level < 1 || level > 6 {
			level = 2
		}
		fmt.Fprintf(b, `<h%d>%s</h%d>`, level, html.EscapeString(str("text")), level)

	case models.BlockText:
		rendered, err := markdown.ToHTML(str("markdown"))
		if err != nil {
			return fmt.Errorf("render text block: %w", err)
		}
		fmt.Fprintf(b, `<div class="block-text">%s</div>`, rendered)

	case models.BlockButton:
		fmt.Fprintf(b, `<a class="button button-%s" href="%s">%s</a>`,
			html.EscapeString(str("style")),
			html.EscapeString(str("url")),
			html.EscapeString(str("text")),
		)

	case models.BlockImage:
		fmt.Fprintf(b, `<figure><img src="%s" alt="%s">`,
			html.EscapeString(str("src")), html.EscapeString(str("alt")))
		if caption := str("caption"); caption != "" {
			fmt.Fprintf(b, `<figcaption>%s</figcaption>`, html.EscapeString(caption))
		}
		b.WriteString(`</figure>`)

	case models.BlockDivider:
		fmt.Fprintf(b, `<hr class="divider divider-%s">`, html.EscapeString(str("style")))

	case models.BlockHero:
		fmt.Fprintf(b, `<section class="hero"`)
		if img := str("image"); img != "" {
			fmt.Fprintf(b, ` style="background-image:url('%s')"`, html.EscapeString(img))
		}
		fmt.Fprintf(b, `><h1>%s</h1><p>%s</p>`,
			html.EscapeString(str("title")), html.EscapeString(str("subtitle")))
		if cta := str("cta_text"); cta != "" {
			fmt.Fprintf(b, `<a class="button button-primary" href="%s">%s</a>`,
				html.EscapeString(str("cta_url")), html.EscapeString(cta))
		}
		b.WriteString(`</section>`)

	case models.BlockContactForm:
		fmt.Fprintf(b,
			`<form class="contact-form" method="post" action="/contact"><h2>%s</h2>`+
				`<input type="text" name="name" placeholder="Name" required>`+
				`<input type="email" name="email" placeholder="Email" required>`+
				`<textarea name="message" placeholder="Message" required></textarea>`+
				`<button type="submit">%s</button></form>`,
			html.EscapeString(str("title")), html.EscapeString(str("submit_label")))

	case models.BlockEventRegistration:
		fmt.Fprintf(b,
			`<form class="event-registration" method="post" action="/events/register"><h2>%s</h2>`+
				`<input type="text" name="name" placeholder="Name" required>`+
				`<input type="email" name="email" placeholder="Email" required>`+
				`<button type="submit">%s</button></form>`,
			html.EscapeString(str("title")),
			html.EscapeString(str("submit_label")))

	case models.BlockCards:
		b.WriteString(`<div class="cards">`)
		for _, item := range cardItems(blk.Content["items"]) {
			title, _ := item["title"].(string)
			body, _ := item["body"].(string)
			fmt.Fprintf(b, `<div class="card"><h3>%s</h3><p>%s</p></div>`,
				html.EscapeString(title), html.EscapeString(body))
		}
		b.WriteString(`</div>`)

	default:
		return fmt.Errorf("render block: unknown type %q", blk.Type)
	}

	return nil
}

// cardItems normalizes the items list, which arrives as []map[string]any
// from the defaults catalog but as []any after a JSON round trip.
func cardItems(raw any) []map[string]any {
	switch v := raw.(type) {
	case []map[string]any:
		return v
	case []any:
		items := make([]map[string]any, 0, len(v))
		for _, e := range v {
			if m, ok := e.(map[string]any); ok {
				items = append(items, m)
			}
		}
		return items
	}
	return nil
}
