// Package models defines the data structures shared by the generator, the
// exporters and the CLI.
package models

import "strings"

// Intent is the likely purpose behind a search keyword.
type Intent string

const (
	IntentInformational Intent = "informational"
	IntentCommercial    Intent = "commercial"
	IntentTransactional Intent = "transactional"
)

// Intents returns the known intents in canonical order.
func Intents() []Intent {
	return []Intent{IntentInformational, IntentCommercial, IntentTransactional}
}

// ParseIntent maps user input to an Intent. The second return is false for
// values that are not one of the known intents.
func ParseIntent(s string) (Intent, bool) {
	in := Intent(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Intents() {
		if in == known {
			return known, true
		}
	}
	return IntentInformational, false
}

// Competition is the simulated SERP competition level.
type Competition string

const (
	CompetitionLow    Competition = "Low"
	CompetitionMedium Competition = "Medium"
	CompetitionHigh   Competition = "High"
)

// Label returns the pt-BR display label used in rendered output.
func (c Competition) Label() string {
	switch c {
	case CompetitionLow:
		return "Baixa"
	case CompetitionMedium:
		return "Média"
	case CompetitionHigh:
		return "Alta"
	default:
		return string(c)
	}
}

// KeywordMetrics is the simulated keyword analysis for one request.
type KeywordMetrics struct {
	Difficulty       int         `json:"difficulty" yaml:"difficulty"`
	Volume           int         `json:"volume" yaml:"volume"`
	Competition      Competition `json:"competition" yaml:"competition"`
	CompetitorTitles []string    `json:"competitor_titles" yaml:"competitor_titles"`
}

// HeadingSection is one H2 of the outline with its H3 subsections.
type HeadingSection struct {
	Title           string   `json:"title" yaml:"title"`
	Subsections     []string `json:"subsections" yaml:"subsections"`
	ApproxWordCount int      `json:"approx_word_count" yaml:"approx_word_count"`
}

type FAQEntry struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
	Priority int    `json:"priority" yaml:"priority"`
}

// MediaKind is the type of a media suggestion.
type MediaKind string

const (
	MediaImage       MediaKind = "image"
	MediaVideo       MediaKind = "video"
	MediaInfographic MediaKind = "infographic"
)

type MediaSuggestion struct {
	Kind        MediaKind `json:"kind" yaml:"kind"`
	Description string    `json:"description" yaml:"description"`
	Placement   string    `json:"placement" yaml:"placement"`
	AltText     string    `json:"alt_text" yaml:"alt_text"`
}

// ContentStructure is the complete generated outline plus its keyword
// metrics. It is the unit that gets rendered, persisted and exported.
type ContentStructure struct {
	Keyword  string            `json:"keyword" yaml:"keyword"`
	Intent   Intent            `json:"intent" yaml:"intent"`
	Heading  string            `json:"heading" yaml:"heading"`
	Sections []HeadingSection  `json:"sections" yaml:"sections"`
	FAQ      []FAQEntry        `json:"faq" yaml:"faq"`
	Media    []MediaSuggestion `json:"media" yaml:"media"`
	Metrics  KeywordMetrics    `json:"metrics" yaml:"metrics"`
}
