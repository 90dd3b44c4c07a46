// Package audit compares a written draft against a generated content
// structure and scores how much of the outline it covers.
package audit

import (
	"fmt"
	"math"
	"strings"

	"github.com/dtnitsch/contentgen/models"
	"github.com/dtnitsch/contentgen/pkg/analytics"
)

const (
	// ExpectedLanguage is the language the outlines are written in.
	ExpectedLanguage = "pt"

	// matchThreshold is the share of an expected title's terms a draft
	// heading must contain to count as covering it.
	matchThreshold = 0.75
	minDensity     = 0.5
	maxDensity     = 3.0
	topTermCount   = 10
)

type HeaderAnalysis struct {
	H1Count int      `json:"h1_count" yaml:"h1_count"`
	H2Count int      `json:"h2_count" yaml:"h2_count"`
	H3Count int      `json:"h3_count" yaml:"h3_count"`
	H1Text  []string `json:"h1_text" yaml:"h1_text"`
}

type KeywordAnalysis struct {
	Occurrences int     `json:"occurrences" yaml:"occurrences"`
	Density     float64 `json:"density" yaml:"density"`
	InTitle     bool    `json:"in_title" yaml:"in_title"`
	InH1        bool    `json:"in_h1" yaml:"in_h1"`
	InIntro     bool    `json:"in_intro" yaml:"in_intro"`
}

// Coverage records whether one expected section or question was found.
type Coverage struct {
	Expected string  `json:"expected" yaml:"expected"`
	Covered  bool    `json:"covered" yaml:"covered"`
	Match    string  `json:"match,omitempty" yaml:"match,omitempty"`
	Overlap  float64 `json:"overlap" yaml:"overlap"`
}

type MediaAnalysis struct {
	Suggested int `json:"suggested" yaml:"suggested"`
	Images    int `json:"images" yaml:"images"`
	WithAlt   int `json:"with_alt" yaml:"with_alt"`
}

type Report struct {
	Source          string                `json:"source" yaml:"source"`
	Keyword         string                `json:"keyword" yaml:"keyword"`
	Title           string                `json:"title" yaml:"title"`
	Language        *Language             `json:"language,omitempty" yaml:"language,omitempty"`
	WordCount       int                   `json:"word_count" yaml:"word_count"`
	TargetWordCount int                   `json:"target_word_count" yaml:"target_word_count"`
	KeywordUse      KeywordAnalysis       `json:"keyword_analysis" yaml:"keyword_analysis"`
	Headers         HeaderAnalysis        `json:"headers" yaml:"headers"`
	Outline         []models.ContentBlock `json:"outline" yaml:"outline"`
	TopTerms        []analytics.TermCount `json:"top_terms" yaml:"top_terms"`
	Sections        []Coverage            `json:"sections" yaml:"sections"`
	FAQ             []Coverage            `json:"faq" yaml:"faq"`
	Media           MediaAnalysis         `json:"media" yaml:"media"`
	Score           int                   `json:"score" yaml:"score"`
	Recommendations []string              `json:"recommendations" yaml:"recommendations"`
}

// SectionCoverage is the fraction of expected sections found.
func (r Report) SectionCoverage() float64 {
	return coveredRatio(r.Sections)
}

func (r Report) FAQCoverage() float64 {
	return coveredRatio(r.FAQ)
}

type Auditor struct {
	detector  LanguageDetector
	analytics *analytics.Analytics
}

// NewAuditor builds an Auditor. A nil detector skips language detection.
func NewAuditor(detector LanguageDetector) *Auditor {
	return &Auditor{detector: detector, analytics: &analytics.Analytics{}}
}

// Audit checks page against the outline s.
func (a *Auditor) Audit(page *models.DraftPage, s models.ContentStructure) Report {
	text := page.ToPlainText()
	headings := page.Headings()

	r := Report{
		Source:          page.URL,
		Keyword:         s.Keyword,
		Title:           page.Title,
		WordCount:       a.analytics.WordCount(text),
		TargetWordCount: targetWords(s),
		Headers:         analyzeHeaders(headings),
		Outline:         headings,
		TopTerms:        a.analytics.TopTerms(text, topTermCount),
		Media: MediaAnalysis{
			Suggested: len(s.Media),
			Images:    len(page.Images),
			WithAlt:   page.ImagesWithAlt(),
		},
	}

	if a.detector != nil {
		if lang, ok := a.detector.Detect(text); ok {
			r.Language = &lang
		}
	}

	r.KeywordUse = a.analyzeKeyword(page, s.Keyword, r.Headers)

	sectionCandidates := blocksOf(headings, func(b models.ContentBlock) bool { return b.Level() >= 2 })
	for _, sec := range s.Sections {
		r.Sections = append(r.Sections, bestMatch(sec.Title, sectionCandidates, matchThreshold))
	}

	questionCandidates := blocksOf(page.Content, func(b models.ContentBlock) bool {
		return b.IsHeading() || strings.HasSuffix(b.Text, "?")
	})
	for _, q := range s.FAQ {
		r.FAQ = append(r.FAQ, bestMatch(q.Question, questionCandidates, matchThreshold))
	}

	r.Score = score(r)
	r.Recommendations = recommend(r)
	return r
}

func (a *Auditor) analyzeKeyword(page *models.DraftPage, keyword string, headers HeaderAnalysis) KeywordAnalysis {
	k := KeywordAnalysis{
		Occurrences: a.analytics.KeywordOccurrences(page.ToPlainText(), keyword),
		Density:     a.analytics.KeywordDensity(page.ToPlainText(), keyword),
		InTitle:     a.analytics.KeywordOccurrences(page.Title, keyword) > 0,
	}
	for _, h1 := range headers.H1Text {
		if a.analytics.KeywordOccurrences(h1, keyword) > 0 {
			k.InH1 = true
			break
		}
	}
	for _, b := range page.Content {
		if b.Type == "p" {
			k.InIntro = a.analytics.KeywordOccurrences(b.Text, keyword) > 0
			break
		}
	}
	return k
}

func analyzeHeaders(headings []models.ContentBlock) HeaderAnalysis {
	var h HeaderAnalysis
	for _, b := range headings {
		switch b.Level() {
		case 1:
			h.H1Count++
			h.H1Text = append(h.H1Text, b.Text)
		case 2:
			h.H2Count++
		case 3:
			h.H3Count++
		}
	}
	return h
}

func targetWords(s models.ContentStructure) int {
	total := 0
	for _, sec := range s.Sections {
		total += sec.ApproxWordCount
	}
	return total
}

func blocksOf(blocks []models.ContentBlock, keep func(models.ContentBlock) bool) []string {
	var out []string
	for _, b := range blocks {
		if keep(b) {
			out = append(out, b.Text)
		}
	}
	return out
}

func bestMatch(expected string, candidates []string, threshold float64) Coverage {
	c := Coverage{Expected: expected}
	for _, cand := range candidates {
		if o := analytics.Overlap(expected, cand); o > c.Overlap {
			c.Overlap = o
			c.Match = cand
		}
	}
	c.Covered = c.Overlap >= threshold
	if !c.Covered {
		c.Match = ""
	}
	return c
}

func coveredRatio(cs []Coverage) float64 {
	if len(cs) == 0 {
		return 1
	}
	n := 0
	for _, c := range cs {
		if c.Covered {
			n++
		}
	}
	return float64(n) / float64(len(cs))
}

// score weighs outline coverage highest, then length, keyword use, header
// hygiene, language and media. The result is in [0,100].
func score(r Report) int {
	total := 35*r.SectionCoverage() + 15*r.FAQCoverage()

	if r.KeywordUse.InTitle || r.KeywordUse.InH1 {
		total += 10
	}
	if r.Headers.H1Count == 1 {
		total += 5
	}

	switch d := r.KeywordUse.Density; {
	case d >= minDensity && d <= maxDensity:
		total += 10
	case d > 0:
		total += 5
	}

	if r.TargetWordCount > 0 {
		total += 15 * math.Min(1, float64(r.WordCount)/float64(r.TargetWordCount))
	} else {
		total += 15
	}

	if r.Language == nil || r.Language.Code == ExpectedLanguage {
		total += 5
	}

	if r.Media.Suggested > 0 {
		total += 5 * math.Min(1, float64(r.Media.WithAlt)/float64(r.Media.Suggested))
	} else {
		total += 5
	}

	return int(math.Round(total))
}

func recommend(r Report) []string {
	var recs []string

	for _, c := range r.Sections {
		if !c.Covered {
			recs = append(recs, fmt.Sprintf("Adicione a seção: %s", c.Expected))
		}
	}
	for _, c := range r.FAQ {
		if !c.Covered {
			recs = append(recs, fmt.Sprintf("Responda à pergunta: %s", c.Expected))
		}
	}
	if !r.KeywordUse.InTitle && !r.KeywordUse.InH1 {
		recs = append(recs, "Inclua a palavra-chave no título H1")
	}
	if r.Headers.H1Count != 1 {
		recs = append(recs, fmt.Sprintf("Use exatamente um H1 (encontrados: %d)", r.Headers.H1Count))
	}
	if !r.KeywordUse.InIntro {
		recs = append(recs, "Mencione a palavra-chave no primeiro parágrafo")
	}
	switch d := r.KeywordUse.Density; {
	case d < minDensity:
		recs = append(recs, fmt.Sprintf("Densidade da palavra-chave baixa (%.1f%%)", d))
	case d > maxDensity:
		recs = append(recs, fmt.Sprintf("Densidade da palavra-chave alta (%.1f%%)", d))
	}
	if r.WordCount < r.TargetWordCount {
		recs = append(recs, fmt.Sprintf("Texto com %d palavras; meta aproximada de %d", r.WordCount, r.TargetWordCount))
	}
	if r.Language != nil && r.Language.Code != ExpectedLanguage {
		recs = append(recs, fmt.Sprintf("Idioma detectado: %s; a estrutura foi gerada em português", r.Language.Name))
	}
	if r.Media.WithAlt < r.Media.Suggested {
		recs = append(recs, fmt.Sprintf("Adicione imagens com texto alternativo (%d de %d sugeridas)", r.Media.WithAlt, r.Media.Suggested))
	}
	return recs
}
