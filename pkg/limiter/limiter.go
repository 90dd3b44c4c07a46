// Package limiter enforces the daily generation quota. State lives in a
// db.Store under two keys: a JSON usage record and a premium flag.
package limiter

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dtnitsch/contentgen/models"
	"github.com/dtnitsch/contentgen/pkg/clock"
	"github.com/dtnitsch/contentgen/pkg/db"
)

const (
	UsageKey   = "contentgen_usage"
	PremiumKey = "contentgen_premium"

	DefaultDailyLimit = models.DefaultDailyLimit

	dayLayout = "2006-01-02"
)

// Limiter tracks how many generations were consumed today.
type Limiter struct {
	store      db.Store
	dailyLimit int
	clock      clock.Clock
	logger     *slog.Logger
	onChange   func(models.UsageStatus)
}

type Option func(*Limiter)

func WithClock(c clock.Clock) Option {
	return func(l *Limiter) { l.clock = c }
}

func WithDailyLimit(n int) Option {
	return func(l *Limiter) { l.dailyLimit = n }
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Limiter) { l.logger = logger }
}

// OnChange registers a listener called with the new status whenever the
// persisted counter changes (consume or daily reset).
func OnChange(fn func(models.UsageStatus)) Option {
	return func(l *Limiter) { l.onChange = fn }
}

func New(store db.Store, opts ...Option) *Limiter {
	l := &Limiter{
		store:      store,
		dailyLimit: DefaultDailyLimit,
		clock:      clock.System{},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// DailyLimit returns the non-premium daily cap.
func (l *Limiter) DailyLimit() int {
	return l.dailyLimit
}

// CheckQuota reports whether another generation is allowed today. A record
// from a previous day is reset (and persisted) as a side effect.
func (l *Limiter) CheckQuota() bool {
	rec := l.load()
	today := l.today()

	if rec.Date != today {
		l.reset(today)
		return true
	}

	return rec.Count < l.dailyLimit || l.IsPremium()
}

// Consume records one generation for today.
func (l *Limiter) Consume() error {
	rec := l.load()
	today := l.today()

	if rec.Date != today {
		rec = models.UsageRecord{Date: today}
	}
	rec.Count++

	if err := l.save(rec); err != nil {
		return err
	}
	l.notify()
	return nil
}

// IsPremium reads the persisted premium flag. Only the exact string "true"
// enables it.
func (l *Limiter) IsPremium() bool {
	raw, ok, err := l.store.Get(PremiumKey)
	if err != nil {
		l.logger.Warn("failed to read premium flag, assuming free tier", "error", err)
		return false
	}
	return ok && raw == "true"
}

// SetPremium persists the premium flag.
func (l *Limiter) SetPremium(premium bool) error {
	value := "false"
	if premium {
		value = "true"
	}
	if err := l.store.Set(PremiumKey, value); err != nil {
		return fmt.Errorf("failed to save premium flag: %w", err)
	}
	l.notify()
	return nil
}

// Status returns the quota state for display. It never writes.
func (l *Limiter) Status() models.UsageStatus {
	now := l.clock.Now()
	rec := l.load()
	used := rec.Count
	if rec.Date != now.Format(dayLayout) {
		used = 0
	}

	status := models.UsageStatus{
		Date:    now.Format(dayLayout),
		Used:    used,
		Limit:   l.dailyLimit,
		Premium: l.IsPremium(),
		ResetAt: nextMidnight(now),
	}
	if status.Premium {
		status.Limit = -1
		status.Remaining = -1
	} else {
		status.Remaining = max(0, l.dailyLimit-used)
	}
	return status
}

func (l *Limiter) today() string {
	return l.clock.Now().Format(dayLayout)
}

// load returns the stored record. Missing, unreadable or malformed data all
// yield a fresh record for today.
func (l *Limiter) load() models.UsageRecord {
	fresh := models.UsageRecord{Date: l.today()}

	raw, ok, err := l.store.Get(UsageKey)
	if err != nil {
		l.logger.Warn("failed to read usage record, starting fresh", "error", err)
		return fresh
	}
	if !ok {
		return fresh
	}

	var rec models.UsageRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		l.logger.Warn("malformed usage record, starting fresh", "error", err)
		return fresh
	}
	if _, err := time.Parse(dayLayout, rec.Date); err != nil || rec.Count < 0 {
		l.logger.Warn("invalid usage record, starting fresh", "date", rec.Date, "count", rec.Count)
		return fresh
	}
	return rec
}

func (l *Limiter) save(rec models.UsageRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode usage record: %w", err)
	}
	if err := l.store.Set(UsageKey, string(data)); err != nil {
		return fmt.Errorf("failed to save usage record: %w", err)
	}
	return nil
}

func (l *Limiter) reset(today string) {
	if err := l.save(models.UsageRecord{Date: today}); err != nil {
		l.logger.Warn("failed to persist daily reset", "error", err)
		return
	}
	l.logger.Debug("usage counter reset for new day", "date", today)
	l.notify()
}

func (l *Limiter) notify() {
	if l.onChange != nil {
		l.onChange(l.Status())
	}
}

func nextMidnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}
