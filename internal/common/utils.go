package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/dtnitsch/contentgen/internal/termview"
	"github.com/dtnitsch/contentgen/models"
	"github.com/dtnitsch/contentgen/pkg/db"
	"github.com/dtnitsch/contentgen/pkg/generator"
	"github.com/dtnitsch/contentgen/pkg/limiter"
	"github.com/dtnitsch/contentgen/pkg/random"
	"github.com/dtnitsch/contentgen/pkg/serp"
	"github.com/dtnitsch/contentgen/pkg/templates"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// NewLogger builds the JSON stderr logger from --quiet/--verbose.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	switch {
	case c.Bool("quiet"):
		logLevel = slog.LevelError
	case c.Bool("verbose"):
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig reads --config and applies explicitly set flags on top.
func LoadConfig(c *cli.Context) (models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return cfg, err
	}

	if c.IsSet("daily-limit") {
		cfg.DailyLimit = c.Int("daily-limit")
	}
	if c.IsSet("serp-latency") {
		cfg.SerpLatency = c.Duration("serp-latency")
	}
	if c.IsSet("state") {
		cfg.StatePath = c.String("state")
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("word-wrap") {
		cfg.WordWrap = c.Int("word-wrap")
	}

	if cfg.DailyLimit < 0 {
		return cfg, fmt.Errorf("daily limit must be >= 0, got %d", cfg.DailyLimit)
	}
	return cfg, nil
}

// Runtime bundles the collaborators every command needs.
type Runtime struct {
	Config    models.Config
	Logger    *slog.Logger
	Store     db.Store
	View      *termview.View
	Limiter   *limiter.Limiter
	Generator *generator.Generator

	closeStore func() error
}

// Setup opens the state store and wires the generator. Text output goes to
// out; when out is nil the structure view is discarded.
func Setup(c *cli.Context, out io.Writer) (*Runtime, error) {
	logger := NewLogger(c)

	cfg, err := LoadConfig(c)
	if err != nil {
		return nil, UserError(err)
	}

	rt := &Runtime{Config: cfg, Logger: logger}

	if c.Bool("ephemeral") {
		rt.Store = db.NewMemoryStore()
		rt.closeStore = func() error { return nil }
	} else {
		database, err := db.Open(cfg.StatePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open state database: %w", err)
		}
		logger.Debug("state database opened", "path", database.Path())
		rt.Store = database
		rt.closeStore = database.Close
	}

	if out == nil {
		out = io.Discard
	}
	rt.View, err = termview.New(out, os.Stderr, termview.Options{
		Plain:    c.Bool("plain"),
		Style:    c.String("style"),
		WordWrap: cfg.WordWrap,
		Logger:   logger,
	})
	if err != nil {
		rt.Close()
		return nil, err
	}

	rt.Limiter = limiter.New(rt.Store,
		limiter.WithDailyLimit(cfg.DailyLimit),
		limiter.WithLogger(logger),
		limiter.OnChange(func(st models.UsageStatus) {
			logger.Debug("usage changed", "date", st.Date, "used", st.Used, "limit", st.Limit, "premium", st.Premium)
		}),
	)

	rng := random.Default()
	if c.IsSet("seed") {
		rng = random.Seeded(c.Uint64("seed"))
	}

	rt.Generator = generator.New(
		rt.Limiter,
		serp.New(serp.WithLatency(cfg.SerpLatency), serp.WithRand(rng)),
		templates.NewEngine(rng),
		rt.Store,
		generator.WithView(rt.View),
		generator.WithLogger(logger),
	)
	return rt, nil
}

func (rt *Runtime) Close() {
	if rt.closeStore == nil {
		return
	}
	if err := rt.closeStore(); err != nil {
		rt.Logger.Warn("failed to close state store", "error", err)
	}
}

// MarshalOutput encodes v as json or yaml.
func MarshalOutput(v any, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return yaml.Marshal(v)
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, UserError(fmt.Errorf("unknown output format %q (valid: text, json, yaml)", format))
	}
}

type userError struct{ err error }

func (e userError) Error() string { return e.err.Error() }
func (e userError) Unwrap() error { return e.err }

// UserError marks err as caused by input rather than an internal failure.
func UserError(err error) error {
	if err == nil {
		return nil
	}
	return userError{err}
}

var userErrors = []error{
	generator.ErrEmptyKeyword,
	generator.ErrQuotaExceeded,
	generator.ErrNoStructure,
	generator.ErrUnknownFormat,
	generator.ErrBusy,
}

// ExitCode is 1 for user/input errors and 2 for internal failures.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue userError
	if errors.As(err, &ue) {
		return 1
	}
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return 1
		}
	}
	return 2
}

// shownErrors are already reported to the user by the view.
var shownErrors = []error{
	generator.ErrEmptyKeyword,
	generator.ErrQuotaExceeded,
	generator.ErrGenerationFailed,
	generator.ErrNoStructure,
}

// Exit converts err into a cli exit error with the right code. Errors the
// view has already shown exit without printing again.
func Exit(err error) error {
	if err == nil {
		return nil
	}
	for _, target := range shownErrors {
		if errors.Is(err, target) {
			return cli.Exit("", ExitCode(err))
		}
	}
	return cli.Exit("Error: "+err.Error(), ExitCode(err))
}

// SanitizeURL performs basic cleanup on URLs to handle common copy-paste issues.
// Removes whitespace, trailing punctuation and markdown link syntax.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	// [text](url) -> url
	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	for _, char := range []string{",", ".", ")", "}", "]", "\"", "'", ">", ";"} {
		cleaned = strings.TrimSuffix(cleaned, char)
	}
	for _, char := range []string{"(", "[", "<", "\"", "'"} {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	return strings.TrimSpace(cleaned)
}

var (
	markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)
	urlPattern          = regexp.MustCompile(`^https?://[a-zA-Z0-9][-a-zA-Z0-9.:]*[a-zA-Z0-9](/[^\s]*)?$`)
)

// ValidateURL sanitizes rawURL and checks it is an absolute http(s) URL.
func ValidateURL(rawURL string) (string, error) {
	cleaned := SanitizeURL(rawURL)
	if cleaned == "" || strings.Contains(cleaned, " ") || !urlPattern.MatchString(cleaned) {
		return "", UserError(fmt.Errorf("invalid URL %q", rawURL))
	}

	parsed, err := url.Parse(cleaned)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", UserError(fmt.Errorf("invalid URL %q", rawURL))
	}
	if strings.ContainsAny(parsed.Host, "{}[]<>\"'") {
		return "", UserError(fmt.Errorf("invalid URL %q", rawURL))
	}
	return cleaned, nil
}
