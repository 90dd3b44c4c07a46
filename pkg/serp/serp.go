// Package serp simulates a search-results analysis for a keyword. Known
// keywords come from a curated table; everything else is synthesized.
package serp

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/dtnitsch/contentgen/models"
	"github.com/dtnitsch/contentgen/pkg/random"
)

const DefaultLatency = models.DefaultSerpLatency

var curated = map[string]models.KeywordMetrics{
	"marketing digital": {
		Difficulty:  75,
		Volume:      12000,
		Competition: models.CompetitionHigh,
		CompetitorTitles: []string{
			"O que é Marketing Digital: Guia Completo 2024",
			"Marketing Digital para Iniciantes: Passo a Passo",
			"Estratégias de Marketing Digital que Funcionam",
		},
	},
	"como fazer seo": {
		Difficulty:  65,
		Volume:      8500,
		Competition: models.CompetitionMedium,
		CompetitorTitles: []string{
			"SEO para Iniciantes: Guia Completo",
			"Como Fazer SEO: 10 Estratégias Essenciais",
			"Otimização para Mecanismos de Busca",
		},
	},
	"receitas saudáveis": {
		Difficulty:  45,
		Volume:      15000,
		Competition: models.CompetitionLow,
		CompetitorTitles: []string{
			"Receitas Saudáveis e Fáceis para o Dia a Dia",
			"50 Receitas Saudáveis para Emagrecer",
			"Alimentação Saudável: Receitas Práticas",
		},
	},
}

var competitionLevels = []models.Competition{
	models.CompetitionLow,
	models.CompetitionMedium,
	models.CompetitionHigh,
}

// Simulator produces KeywordMetrics after an artificial delay that stands in
// for a remote call.
type Simulator struct {
	latency time.Duration
	rng     random.Rand
}

type Option func(*Simulator)

func WithLatency(d time.Duration) Option {
	return func(s *Simulator) { s.latency = d }
}

func WithRand(r random.Rand) Option {
	return func(s *Simulator) { s.rng = r }
}

func New(opts ...Option) *Simulator {
	s := &Simulator{
		latency: DefaultLatency,
		rng:     random.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze waits for the configured latency and then returns the metrics for
// keyword. The only error is ctx being done before the wait ends.
func (s *Simulator) Analyze(ctx context.Context, keyword string) (models.KeywordMetrics, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.KeywordMetrics{}, ctx.Err()
		case <-timer.C:
		}
	}

	if m, ok := Lookup(keyword); ok {
		return m, nil
	}
	return s.synthesize(keyword), nil
}

// Lookup returns a copy of the curated entry for keyword, matched after
// lowercasing.
func Lookup(keyword string) (models.KeywordMetrics, bool) {
	m, ok := curated[strings.ToLower(keyword)]
	if !ok {
		return models.KeywordMetrics{}, false
	}
	m.CompetitorTitles = slices.Clone(m.CompetitorTitles)
	return m, true
}

// CuratedKeywords lists the keywords with hand-authored metrics.
func CuratedKeywords() []string {
	keys := make([]string, 0, len(curated))
	for k := range curated {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *Simulator) synthesize(keyword string) models.KeywordMetrics {
	return models.KeywordMetrics{
		Difficulty:  s.rng.IntN(100),
		Volume:      s.rng.IntN(20000) + 1000,
		Competition: competitionLevels[s.rng.IntN(len(competitionLevels))],
		CompetitorTitles: []string{
			"Guia Completo sobre " + keyword,
			"Como " + keyword + ": Passo a Passo",
			keyword + ": Dicas e Estratégias",
		},
	}
}
