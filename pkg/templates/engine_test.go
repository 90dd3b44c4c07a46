package templates

import (
	"slices"
	"strings"
	"testing"

	"github.com/dtnitsch/contentgen/models"
	"github.com/dtnitsch/contentgen/pkg/random"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name   string
		tmpl   string
		values map[string]string
		want   string
	}{
		{name: "single", tmpl: "O que é {keyword}?", values: map[string]string{"keyword": "seo"}, want: "O que é seo?"},
		{name: "repeated", tmpl: "{keyword} e {keyword}", values: map[string]string{"keyword": "x"}, want: "x e x"},
		{name: "unknown left alone", tmpl: "{keyword} {year}", values: map[string]string{"keyword": "x"}, want: "x {year}"},
		{name: "no values", tmpl: "{keyword}", values: nil, want: "{keyword}"},
		{name: "multiple names", tmpl: "{a}-{b}", values: map[string]string{"a": "1", "b": "2"}, want: "1-2"},
		{name: "value with braces", tmpl: "{keyword}!", values: map[string]string{"keyword": "{b}"}, want: "{b}!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Substitute(tt.tmpl, tt.values); got != tt.want {
				t.Errorf("Substitute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateHeading_OneOfThree(t *testing.T) {
	e := NewEngine(random.Seeded(1))
	keyword := "café especial"

	for _, intent := range models.Intents() {
		allowed := map[string]bool{}
		for _, tmpl := range SetFor(intent).Headings {
			allowed[Substitute(tmpl, map[string]string{"keyword": keyword})] = true
		}
		if len(allowed) != 3 {
			t.Fatalf("%s: %d heading templates, want 3", intent, len(allowed))
		}

		for i := 0; i < 50; i++ {
			h := e.GenerateHeading(keyword, intent)
			if !allowed[h] {
				t.Fatalf("%s: GenerateHeading() = %q, not a registered template", intent, h)
			}
		}
	}
}

func TestGenerateHeading_UnknownIntentFallsBack(t *testing.T) {
	e := NewEngine(random.NewSequence(0))

	got := e.GenerateHeading("seo", models.Intent("navigational"))
	if got != "Como seo: Guia Completo 2024" {
		t.Errorf("GenerateHeading() = %q, want informational fallback", got)
	}
}

func TestGenerateSections(t *testing.T) {
	e := NewEngine(random.Seeded(99))
	wantCounts := map[models.Intent]int{
		models.IntentInformational: 8,
		models.IntentCommercial:    7,
		models.IntentTransactional: 6,
	}

	for intent, wantCount := range wantCounts {
		t.Run(string(intent), func(t *testing.T) {
			for run := 0; run < 20; run++ {
				sections := e.GenerateSections("horta", intent)
				if len(sections) != wantCount {
					t.Fatalf("len(sections) = %d, want %d", len(sections), wantCount)
				}

				for i, s := range sections {
					wantTitle := Substitute(SetFor(intent).Sections[i], map[string]string{"keyword": "horta"})
					if s.Title != wantTitle {
						t.Errorf("section %d title = %q, want %q", i, s.Title, wantTitle)
					}
					if s.ApproxWordCount < 200 || s.ApproxWordCount >= 500 {
						t.Errorf("section %d word count = %d, want [200,500)", i, s.ApproxWordCount)
					}
					if n := len(s.Subsections); n < 2 || n > 4 {
						t.Errorf("section %d has %d subsections, want 2-4", i, n)
					}
					seen := map[string]bool{}
					for _, sub := range s.Subsections {
						if !slices.Contains(SubsectionPool, sub) {
							t.Errorf("subsection %q not in pool", sub)
						}
						if seen[sub] {
							t.Errorf("duplicate subsection %q", sub)
						}
						seen[sub] = true
					}
				}
			}
		})
	}
}

func TestGenerateSections_DoesNotMutatePool(t *testing.T) {
	before := slices.Clone(SubsectionPool)
	NewEngine(random.Seeded(3)).GenerateSections("x", models.IntentInformational)
	if !slices.Equal(before, SubsectionPool) {
		t.Error("GenerateSections() reordered SubsectionPool")
	}
}

func TestGenerateSections_FixedSequence(t *testing.T) {
	// All zeros: 2 subsections, shuffle swaps each i with 0, word count 200.
	e := NewEngine(random.NewSequence(0))
	s := e.GenerateSections("x", models.IntentTransactional)[0]

	if s.ApproxWordCount != 200 {
		t.Errorf("ApproxWordCount = %d, want 200", s.ApproxWordCount)
	}
	want := []string{"Principais características", "Vantagens e benefícios"}
	if !slices.Equal(s.Subsections, want) {
		t.Errorf("Subsections = %v, want %v", s.Subsections, want)
	}
}

func TestGenerateFAQ(t *testing.T) {
	e := NewEngine(nil)
	tests := []struct {
		intent models.Intent
		want   int
	}{
		{intent: models.IntentInformational, want: 5},
		{intent: models.IntentCommercial, want: 4},
		{intent: models.IntentTransactional, want: 4},
		{intent: models.Intent("bogus"), want: 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.intent), func(t *testing.T) {
			faq := e.GenerateFAQ("pão caseiro", tt.intent)
			if len(faq) != tt.want {
				t.Fatalf("len(faq) = %d, want %d", len(faq), tt.want)
			}
			for i, entry := range faq {
				if entry.Priority != i+1 {
					t.Errorf("faq[%d].Priority = %d, want %d", i, entry.Priority, i+1)
				}
				if !strings.Contains(entry.Question, "pão caseiro") || !strings.Contains(entry.Answer, "pão caseiro") {
					t.Errorf("faq[%d] missing keyword: %+v", i, entry)
				}
			}
		})
	}
}

func TestGenerateMedia_IgnoresIntent(t *testing.T) {
	e := NewEngine(nil)

	base := e.GenerateMedia("seo", models.IntentInformational)
	if len(base) != 3 {
		t.Fatalf("len(media) = %d, want 3", len(base))
	}
	wantKinds := []models.MediaKind{models.MediaImage, models.MediaVideo, models.MediaImage}
	for i, m := range base {
		if m.Kind != wantKinds[i] {
			t.Errorf("media[%d].Kind = %q, want %q", i, m.Kind, wantKinds[i])
		}
		if !strings.Contains(m.Description, "seo") || !strings.Contains(m.AltText, "seo") {
			t.Errorf("media[%d] missing keyword: %+v", i, m)
		}
	}

	for _, intent := range []models.Intent{models.IntentCommercial, models.IntentTransactional} {
		if got := e.GenerateMedia("seo", intent); !slices.Equal(got, base) {
			t.Errorf("GenerateMedia(%s) differs from informational", intent)
		}
	}
}

func TestOutline(t *testing.T) {
	s := NewEngine(random.Seeded(5)).Outline("yoga", models.IntentCommercial)

	if s.Keyword != "yoga" || s.Intent != models.IntentCommercial {
		t.Errorf("Outline() keyword/intent = %q/%q", s.Keyword, s.Intent)
	}
	if s.Heading == "" || len(s.Sections) != 7 || len(s.FAQ) != 4 || len(s.Media) != 3 {
		t.Errorf("Outline() = heading %q, %d sections, %d faq, %d media",
			s.Heading, len(s.Sections), len(s.FAQ), len(s.Media))
	}
}
