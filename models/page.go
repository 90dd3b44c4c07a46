package models

import "strings"

// DraftPage is the structured content of an article draft, reduced to the
// blocks an outline audit cares about.
type DraftPage struct {
	URL     string         `json:"url,omitempty" yaml:"url,omitempty"`
	Title   string         `json:"title" yaml:"title"`
	Content []ContentBlock `json:"content" yaml:"content"`
	Images  []Image        `json:"images,omitempty" yaml:"images,omitempty"`
}

type Image struct {
	Src string `json:"src" yaml:"src"`
	Alt string `json:"alt,omitempty" yaml:"alt,omitempty"`
}

// ContentBlock is a semantic block of text on a page.
type ContentBlock struct {
	Type string `json:"type" yaml:"type"` // e.g., "h1", "h2", "p", "li"
	Text string `json:"text" yaml:"text"`
}

// IsHeading reports whether the block is an h1-h6 element.
func (b ContentBlock) IsHeading() bool {
	return len(b.Type) == 2 && b.Type[0] == 'h' && b.Type[1] >= '1' && b.Type[1] <= '6'
}

// Level returns the heading level, or 0 for non-heading blocks.
func (b ContentBlock) Level() int {
	if !b.IsHeading() {
		return 0
	}
	return int(b.Type[1] - '0')
}

// Headings returns the heading blocks in document order.
func (p *DraftPage) Headings() []ContentBlock {
	var out []ContentBlock
	for _, block := range p.Content {
		if block.IsHeading() {
			out = append(out, block)
		}
	}
	return out
}

// ImagesWithAlt counts images that carry alternative text.
func (p *DraftPage) ImagesWithAlt() int {
	n := 0
	for _, img := range p.Images {
		if strings.TrimSpace(img.Alt) != "" {
			n++
		}
	}
	return n
}

// ToPlainText concatenates readable text from all content blocks.
func (p *DraftPage) ToPlainText() string {
	var sb strings.Builder
	for _, block := range p.Content {
		sb.WriteString(block.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}
