package audit

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Language is the detected language of a draft.
type Language struct {
	Code       string  `json:"code" yaml:"code"`
	Name       string  `json:"name" yaml:"name"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// LanguageDetector identifies the language of a text.
type LanguageDetector interface {
	Detect(text string) (Language, bool)
}

type linguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLanguageDetector detects among the languages drafts are likely to be
// written in.
func NewLanguageDetector() LanguageDetector {
	d := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.Portuguese, lingua.Spanish, lingua.English, lingua.French, lingua.Italian).
		Build()
	return &linguaDetector{detector: d}
}

func (l *linguaDetector) Detect(text string) (Language, bool) {
	if strings.TrimSpace(text) == "" {
		return Language{}, false
	}
	lang, ok := l.detector.DetectLanguageOf(text)
	if !ok {
		return Language{}, false
	}
	return Language{
		Code:       strings.ToLower(lang.IsoCode639_1().String()),
		Name:       lang.String(),
		Confidence: l.detector.ComputeLanguageConfidence(text, lang),
	}, true
}
