// Package exporter serializes a ContentStructure for download.
package exporter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dtnitsch/contentgen/models"
	"github.com/gosimple/slug"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a format name that is not registered.
var ErrUnknownFormat = errors.New("unknown export format")

// Format describes one export target.
type Format struct {
	Name      string
	Extension string
	MIMEType  string
	encode    func(models.ContentStructure) ([]byte, error)
}

var formats = []Format{
	{Name: "json", Extension: "json", MIMEType: "application/json", encode: ToJSON},
	{Name: "markdown", Extension: "md", MIMEType: "text/markdown", encode: func(s models.ContentStructure) ([]byte, error) {
		return []byte(ToMarkdown(s)), nil
	}},
	{Name: "yaml", Extension: "yaml", MIMEType: "application/yaml", encode: ToYAML},
}

// Formats lists the registered export formats.
func Formats() []Format {
	return formats
}

// FormatNames lists the accepted names, including aliases.
func FormatNames() []string {
	return []string{"json", "markdown", "md", "yaml", "yml"}
}

// LookupFormat resolves a format by name or alias ("md", "yml").
func LookupFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return formats[0], nil
	case "markdown", "md":
		return formats[1], nil
	case "yaml", "yml":
		return formats[2], nil
	}
	return Format{}, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownFormat, name, strings.Join(FormatNames(), ", "))
}

// File is an export ready to be written or downloaded.
type File struct {
	Name     string
	MIMEType string
	Content  []byte
}

// Export encodes s in format f.
func (f Format) Export(s models.ContentStructure) (File, error) {
	content, err := f.encode(s)
	if err != nil {
		return File{}, fmt.Errorf("encoding %s export: %w", f.Name, err)
	}
	return File{
		Name:     FileName(s.Keyword, f),
		MIMEType: f.MIMEType,
		Content:  content,
	}, nil
}

// FileName returns estrutura-<keyword>.<ext>, with the keyword reduced to a
// filesystem-safe slug.
func FileName(keyword string, f Format) string {
	base := "estrutura"
	if s := slug.Make(keyword); s != "" {
		base += "-" + s
	}
	return base + "." + f.Extension
}

// ToJSON is the lossless serialization of s.
func ToJSON(s models.ContentStructure) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// FromJSON parses the output of ToJSON.
func FromJSON(data []byte) (models.ContentStructure, error) {
	var s models.ContentStructure
	if err := json.Unmarshal(data, &s); err != nil {
		return models.ContentStructure{}, fmt.Errorf("decoding structure: %w", err)
	}
	return s, nil
}

func ToYAML(s models.ContentStructure) ([]byte, error) {
	return yaml.Marshal(s)
}

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatVolume renders a search volume with pt-BR thousands separators.
func FormatVolume(v int) string {
	return ptBR.Sprintf("%d", v)
}

// ToMarkdown renders s as a Markdown document: heading, keyword analysis,
// sections, FAQ, then media suggestions.
func ToMarkdown(s models.ContentStructure) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", s.Heading)

	fmt.Fprintf(&b, "## Análise da Palavra-chave: %s\n\n", s.Keyword)
	fmt.Fprintf(&b, "- **Dificuldade**: %d/100\n", s.Metrics.Difficulty)
	fmt.Fprintf(&b, "- **Volume de Busca**: %s\n", FormatVolume(s.Metrics.Volume))
	fmt.Fprintf(&b, "- **Competição**: %s\n", s.Metrics.Competition.Label())
	fmt.Fprintf(&b, "- **Intenção**: %s\n\n", s.Intent)

	b.WriteString("## Estrutura de Conteúdo\n\n")
	for _, section := range s.Sections {
		fmt.Fprintf(&b, "## %s\n", section.Title)
		fmt.Fprintf(&b, "*Aproximadamente %d palavras*\n\n", section.ApproxWordCount)
		for _, sub := range section.Subsections {
			fmt.Fprintf(&b, "### %s\n\n", sub)
		}
	}

	b.WriteString("## FAQ\n\n")
	for _, item := range s.FAQ {
		fmt.Fprintf(&b, "**%s**\n\n", item.Question)
		fmt.Fprintf(&b, "%s\n\n", item.Answer)
	}

	b.WriteString("## Sugestões de Mídia\n\n")
	for _, m := range s.Media {
		fmt.Fprintf(&b, "- **%s**: %s\n", strings.ToUpper(string(m.Kind)), m.Description)
		fmt.Fprintf(&b, "  - Posicionamento: %s\n\n", m.Placement)
	}

	return b.String()
}
