// Package parser turns article drafts (HTML or Markdown) into a DraftPage.
package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/contentgen/models"
	"github.com/go-shiori/go-readability"
	"github.com/yuin/goldmark"
)

const blockSelector = "h1,h2,h3,h4,h5,h6,p,li"

type Parser struct {
	// Readability extracts the main article before collecting blocks. Use it
	// for published pages with navigation and footers around the content.
	Readability bool
}

// ParseHTML reads an HTML document. When readability finds no usable blocks
// the whole document body is used instead.
func (p *Parser) ParseHTML(rawURL, html string) (*models.DraftPage, error) {
	if p.Readability {
		page, err := p.parseReadable(rawURL, html)
		if err != nil {
			return nil, err
		}
		if len(page.Content) > 0 {
			return page, nil
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	page := pageFromDocument(doc)
	page.URL = rawURL
	if t := normalizeText(doc.Find("title").First().Text()); t != "" {
		page.Title = t
	}
	return page, nil
}

func (p *Parser) parseReadable(rawURL, html string) (*models.DraftPage, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}

	rp := readability.NewParser()
	article, err := rp.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("readability failed: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse article content: %w", err)
	}

	page := pageFromDocument(doc)
	page.URL = rawURL
	if t := normalizeText(article.Title); t != "" {
		page.Title = t
	}
	return page, nil
}

// ParseMarkdown converts Markdown to HTML and collects its blocks. The title
// is the first H1.
func (p *Parser) ParseMarkdown(source []byte) (*models.DraftPage, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse converted markdown: %w", err)
	}
	return pageFromDocument(doc), nil
}

// ParseFile picks the parser from the file extension. Unknown extensions are
// treated as Markdown.
func (p *Parser) ParseFile(path string, data []byte) (*models.DraftPage, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return p.ParseHTML("", string(data))
	default:
		return p.ParseMarkdown(data)
	}
}

func pageFromDocument(doc *goquery.Document) *models.DraftPage {
	page := &models.DraftPage{}

	doc.Find(blockSelector).Each(func(i int, s *goquery.Selection) {
		tag := goquery.NodeName(s)
		// loose list items wrap their text in <p>, which is collected on its own
		if tag == "li" && s.Find("p").Length() > 0 {
			return
		}
		text := normalizeText(s.Text())
		if text == "" {
			return
		}
		page.Content = append(page.Content, models.ContentBlock{Type: tag, Text: text})
		if tag == "h1" && page.Title == "" {
			page.Title = text
		}
	})

	doc.Find("img").Each(func(i int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		alt, _ := s.Attr("alt")
		page.Images = append(page.Images, models.Image{Src: src, Alt: strings.TrimSpace(alt)})
	})

	return page
}

// normalizeText joins the non-empty lines of input with single spaces.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
