// Package templates expands intent-specific outline templates for a keyword.
package templates

import (
	"strings"

	"github.com/dtnitsch/contentgen/models"
	"github.com/dtnitsch/contentgen/pkg/random"
)

const (
	maxFAQ      = 5
	mediaCount  = 3
	minSubs     = 2
	maxSubs     = 4
	minWords    = 200
	wordsSpread = 300
)

// Substitute replaces every {name} placeholder in tmpl that has an entry in
// values. Unknown placeholders are left as they are.
func Substitute(tmpl string, values map[string]string) string {
	if len(values) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(values)*2)
	for name, v := range values {
		pairs = append(pairs, "{"+name+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Engine expands templates using an injected random source.
type Engine struct {
	rng random.Rand
}

func NewEngine(rng random.Rand) *Engine {
	if rng == nil {
		rng = random.Default()
	}
	return &Engine{rng: rng}
}

func keywordValues(keyword string) map[string]string {
	return map[string]string{KeywordPlaceholder: keyword}
}

// GenerateHeading picks one of the intent's H1 templates at random.
func (e *Engine) GenerateHeading(keyword string, intent models.Intent) string {
	headings := SetFor(intent).Headings
	return Substitute(headings[e.rng.IntN(len(headings))], keywordValues(keyword))
}

// GenerateSections expands every H2 template of the intent, in order, with
// 2-4 shuffled subsections and a word-count target in [200,500).
func (e *Engine) GenerateSections(keyword string, intent models.Intent) []models.HeadingSection {
	values := keywordValues(keyword)
	tmpls := SetFor(intent).Sections

	sections := make([]models.HeadingSection, 0, len(tmpls))
	for _, tmpl := range tmpls {
		sections = append(sections, models.HeadingSection{
			Title:           Substitute(tmpl, values),
			Subsections:     e.sampleSubsections(),
			ApproxWordCount: e.rng.IntN(wordsSpread) + minWords,
		})
	}
	return sections
}

func (e *Engine) sampleSubsections() []string {
	n := minSubs + e.rng.IntN(maxSubs-minSubs+1)
	pool := make([]string, len(SubsectionPool))
	copy(pool, SubsectionPool)
	e.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:n:n]
}

// GenerateFAQ expands up to five FAQ templates; priority follows position.
func (e *Engine) GenerateFAQ(keyword string, intent models.Intent) []models.FAQEntry {
	values := keywordValues(keyword)
	tmpls := SetFor(intent).FAQ
	if len(tmpls) > maxFAQ {
		tmpls = tmpls[:maxFAQ]
	}

	faq := make([]models.FAQEntry, 0, len(tmpls))
	for i, tmpl := range tmpls {
		faq = append(faq, models.FAQEntry{
			Question: Substitute(tmpl.Question, values),
			Answer:   Substitute(tmpl.Answer, values),
			Priority: i + 1,
		})
	}
	return faq
}

// GenerateMedia returns the first three catalog entries. The intent does
// not change the result.
func (e *Engine) GenerateMedia(keyword string, _ models.Intent) []models.MediaSuggestion {
	values := keywordValues(keyword)

	media := make([]models.MediaSuggestion, 0, mediaCount)
	for _, tmpl := range mediaCatalog[:mediaCount] {
		media = append(media, models.MediaSuggestion{
			Kind:        tmpl.Kind,
			Description: Substitute(tmpl.Description, values),
			Placement:   tmpl.Placement,
			AltText:     Substitute(tmpl.AltText, values),
		})
	}
	return media
}

// Outline builds the full structure for keyword except its metrics.
func (e *Engine) Outline(keyword string, intent models.Intent) models.ContentStructure {
	return models.ContentStructure{
		Keyword:  keyword,
		Intent:   intent,
		Heading:  e.GenerateHeading(keyword, intent),
		Sections: e.GenerateSections(keyword, intent),
		FAQ:      e.GenerateFAQ(keyword, intent),
		Media:    e.GenerateMedia(keyword, intent),
	}
}
