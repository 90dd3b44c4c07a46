// Package generator runs one keyword request end to end: quota check, SERP
// analysis, outline expansion, persistence of the current structure and
// presentation through a View.
package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dtnitsch/contentgen/models"
	"github.com/dtnitsch/contentgen/pkg/db"
	"github.com/dtnitsch/contentgen/pkg/exporter"
	"github.com/dtnitsch/contentgen/pkg/intent"
	"github.com/dtnitsch/contentgen/pkg/limiter"
	"github.com/google/uuid"
)

// CurrentKey holds the last successful structure as JSON.
const CurrentKey = "contentgen_current"

// User-facing messages.
const (
	MsgEmptyKeyword     = "Por favor, insira uma palavra-chave"
	MsgGenerationFailed = "Erro ao gerar estrutura. Tente novamente."
	MsgNoStructure      = "Nenhuma estrutura para exportar"
)

var (
	ErrEmptyKeyword     = errors.New("keyword is empty")
	ErrQuotaExceeded    = errors.New("daily generation limit reached")
	ErrGenerationFailed = errors.New("generation failed")
	ErrNoStructure      = errors.New("no structure to export")
	ErrBusy             = errors.New("a generation is already in progress")
	ErrUnknownFormat    = exporter.ErrUnknownFormat
)

// Analyzer produces keyword metrics. *serp.Simulator satisfies it.
type Analyzer interface {
	Analyze(ctx context.Context, keyword string) (models.KeywordMetrics, error)
}

// Outliner expands the outline for a keyword. *templates.Engine satisfies it.
type Outliner interface {
	Outline(keyword string, in models.Intent) models.ContentStructure
}

// Generator allows a single request in flight at a time.
type Generator struct {
	limiter  *limiter.Limiter
	analyzer Analyzer
	outliner Outliner
	store    db.Store
	view     View
	logger   *slog.Logger

	busy atomic.Bool

	mu      sync.Mutex
	current *models.ContentStructure
}

type Option func(*Generator)

func WithView(v View) Option {
	return func(g *Generator) { g.view = v }
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

func New(l *limiter.Limiter, a Analyzer, o Outliner, store db.Store, opts ...Option) *Generator {
	g := &Generator{
		limiter:  l,
		analyzer: a,
		outliner: o,
		store:    store,
		view:     NopView{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Busy reports whether a generation is running.
func (g *Generator) Busy() bool {
	return g.busy.Load()
}

// Generate builds a new structure for keyword. An empty in classifies the
// keyword; an explicit intent is used as given. Quota is consumed only when
// the structure was produced and stored.
func (g *Generator) Generate(ctx context.Context, keyword string, in models.Intent) (models.ContentStructure, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		g.view.ShowError(MsgEmptyKeyword)
		return models.ContentStructure{}, ErrEmptyKeyword
	}

	if !g.busy.CompareAndSwap(false, true) {
		return models.ContentStructure{}, ErrBusy
	}
	defer g.busy.Store(false)

	if !g.limiter.CheckQuota() {
		status := g.limiter.Status()
		g.logger.Info("quota exceeded", "used", status.Used, "limit", status.Limit)
		g.view.ShowQuotaExceeded(status)
		return models.ContentStructure{}, ErrQuotaExceeded
	}

	g.view.SetBusy(true)
	defer g.view.SetBusy(false)

	in = intent.Resolve(keyword, in)
	logger := g.logger.With("request_id", uuid.NewString(), "keyword", keyword, "intent", in)
	start := time.Now()
	logger.Debug("generation started")

	s, err := g.build(ctx, keyword, in)
	if err != nil {
		logger.Error("generation failed", "error", err)
		g.view.ShowError(MsgGenerationFailed)
		return models.ContentStructure{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if err := g.saveCurrent(s); err != nil {
		logger.Error("generation failed", "error", err)
		g.view.ShowError(MsgGenerationFailed)
		return models.ContentStructure{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if err := g.limiter.Consume(); err != nil {
		logger.Error("failed to record usage", "error", err)
	}

	logger.Info("generation complete",
		"sections", len(s.Sections),
		"faq", len(s.FAQ),
		"difficulty", s.Metrics.Difficulty,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	g.view.Render(s)
	g.view.RefreshUsage(g.limiter.Status())
	return s, nil
}

func (g *Generator) build(ctx context.Context, keyword string, in models.Intent) (s models.ContentStructure, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during generation: %v", r)
		}
	}()

	metrics, err := g.analyzer.Analyze(ctx, keyword)
	if err != nil {
		return models.ContentStructure{}, fmt.Errorf("analyzing keyword: %w", err)
	}

	s = g.outliner.Outline(keyword, in)
	s.Metrics = metrics
	return s, nil
}

func (g *Generator) saveCurrent(s models.ContentStructure) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding structure: %w", err)
	}
	if err := g.store.Set(CurrentKey, string(data)); err != nil {
		return fmt.Errorf("storing structure: %w", err)
	}

	g.mu.Lock()
	g.current = &s
	g.mu.Unlock()
	return nil
}

// Current returns the last generated structure, loading it from the store
// when this process has not generated one yet.
func (g *Generator) Current() (models.ContentStructure, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.current != nil {
		return *g.current, true
	}

	raw, ok, err := g.store.Get(CurrentKey)
	if err != nil {
		g.logger.Warn("failed to read current structure", "error", err)
		return models.ContentStructure{}, false
	}
	if !ok || raw == "" {
		return models.ContentStructure{}, false
	}

	s, err := exporter.FromJSON([]byte(raw))
	if err != nil {
		g.logger.Warn("discarding corrupt current structure", "error", err)
		return models.ContentStructure{}, false
	}
	g.current = &s
	return s, true
}

// Export encodes the current structure. It fails with ErrNoStructure when
// nothing has been generated.
func (g *Generator) Export(format string) (exporter.File, error) {
	s, ok := g.Current()
	if !ok {
		g.view.ShowError(MsgNoStructure)
		return exporter.File{}, ErrNoStructure
	}

	f, err := exporter.LookupFormat(format)
	if err != nil {
		return exporter.File{}, err
	}

	file, err := f.Export(s)
	if err != nil {
		return exporter.File{}, err
	}
	g.logger.Debug("structure exported", "format", f.Name, "file", file.Name, "bytes", len(file.Content))
	return file, nil
}

// Usage returns the quota status and pushes it to the view.
func (g *Generator) Usage() models.UsageStatus {
	status := g.limiter.Status()
	g.view.RefreshUsage(status)
	return status
}

// ShowPremiumUpgrade presents the premium offer.
func (g *Generator) ShowPremiumUpgrade() {
	g.view.ShowPremiumUpsell()
}
