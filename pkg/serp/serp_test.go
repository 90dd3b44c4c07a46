package serp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dtnitsch/contentgen/models"
	"github.com/dtnitsch/contentgen/pkg/random"
)

func TestAnalyze_CuratedKeyword(t *testing.T) {
	s := New(WithLatency(0))

	tests := []struct {
		keyword     string
		difficulty  int
		volume      int
		competition models.Competition
	}{
		{keyword: "marketing digital", difficulty: 75, volume: 12000, competition: models.CompetitionHigh},
		{keyword: "Marketing Digital", difficulty: 75, volume: 12000, competition: models.CompetitionHigh},
		{keyword: "como fazer seo", difficulty: 65, volume: 8500, competition: models.CompetitionMedium},
		{keyword: "receitas saudáveis", difficulty: 45, volume: 15000, competition: models.CompetitionLow},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			m, err := s.Analyze(context.Background(), tt.keyword)
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if m.Difficulty != tt.difficulty || m.Volume != tt.volume || m.Competition != tt.competition {
				t.Errorf("Analyze() = %+v, want %d/%d/%s", m, tt.difficulty, tt.volume, tt.competition)
			}
			if len(m.CompetitorTitles) != 3 {
				t.Errorf("len(CompetitorTitles) = %d, want 3", len(m.CompetitorTitles))
			}
		})
	}
}

func TestAnalyze_CuratedLabel(t *testing.T) {
	m, _ := New(WithLatency(0)).Analyze(context.Background(), "marketing digital")
	if m.Competition.Label() != "Alta" {
		t.Errorf("Competition.Label() = %q, want %q", m.Competition.Label(), "Alta")
	}
}

func TestAnalyze_SynthesizedRanges(t *testing.T) {
	s := New(WithLatency(0), WithRand(random.Seeded(7)))

	for i := 0; i < 200; i++ {
		m, err := s.Analyze(context.Background(), "jardinagem urbana")
		if err != nil {
			t.Fatalf("Analyze() error = %v", err)
		}
		if m.Difficulty < 0 || m.Difficulty >= 100 {
			t.Fatalf("Difficulty = %d, want [0,100)", m.Difficulty)
		}
		if m.Volume < 1000 || m.Volume >= 21000 {
			t.Fatalf("Volume = %d, want [1000,21000)", m.Volume)
		}
		switch m.Competition {
		case models.CompetitionLow, models.CompetitionMedium, models.CompetitionHigh:
		default:
			t.Fatalf("Competition = %q, want Low/Medium/High", m.Competition)
		}
	}
}

func TestAnalyze_SynthesizedTitlesUseRawKeyword(t *testing.T) {
	s := New(WithLatency(0), WithRand(random.NewSequence(0)))

	m, _ := s.Analyze(context.Background(), "Jardinagem Urbana")
	want := []string{
		"Guia Completo sobre Jardinagem Urbana",
		"Como Jardinagem Urbana: Passo a Passo",
		"Jardinagem Urbana: Dicas e Estratégias",
	}
	for i, title := range want {
		if m.CompetitorTitles[i] != title {
			t.Errorf("CompetitorTitles[%d] = %q, want %q", i, m.CompetitorTitles[i], title)
		}
	}
}

func TestAnalyze_FixedSequence(t *testing.T) {
	s := New(WithLatency(0), WithRand(random.NewSequence(42, 5000, 2)))

	m, _ := s.Analyze(context.Background(), "x")
	if m.Difficulty != 42 || m.Volume != 6000 || m.Competition != models.CompetitionHigh {
		t.Errorf("Analyze() = %+v, want 42/6000/High", m)
	}
}

func TestAnalyze_RespectsContext(t *testing.T) {
	s := New(WithLatency(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Analyze(ctx, "marketing digital")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Analyze() error = %v, want context.Canceled", err)
	}
}

func TestAnalyze_Waits(t *testing.T) {
	s := New(WithLatency(20 * time.Millisecond))

	start := time.Now()
	if _, err := s.Analyze(context.Background(), "x"); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("Analyze() returned after %v, want >= 20ms", elapsed)
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	m, ok := Lookup("marketing digital")
	if !ok {
		t.Fatal("Lookup() ok = false")
	}
	m.CompetitorTitles[0] = "mutated"

	again, _ := Lookup("marketing digital")
	if again.CompetitorTitles[0] == "mutated" {
		t.Error("Lookup() shares the curated slice")
	}
}

func TestCuratedKeywords(t *testing.T) {
	got := CuratedKeywords()
	if len(got) != 3 || got[0] != "como fazer seo" {
		t.Errorf("CuratedKeywords() = %v", got)
	}
}
