package limiter

import (
	"errors"
	"testing"
	"time"

	"github.com/dtnitsch/contentgen/models"
	"github.com/dtnitsch/contentgen/pkg/clock"
	"github.com/dtnitsch/contentgen/pkg/db"
)

var day1 = time.Date(2026, time.October, 17, 9, 30, 0, 0, time.Local)

func newTestLimiter(t *testing.T) (*Limiter, *db.MemoryStore, *clock.FakeClock) {
	t.Helper()
	store := db.NewMemoryStore()
	fc := clock.NewFakeClock(day1)
	return New(store, WithClock(fc)), store, fc
}

func TestCheckQuota_FreshDayAllowsWithoutConsume(t *testing.T) {
	l, _, _ := newTestLimiter(t)

	for i := 0; i < 3; i++ {
		if !l.CheckQuota() {
			t.Fatalf("CheckQuota() call %d = false, want true", i+1)
		}
	}
}

func TestCheckQuota_ExhaustedAfterDailyLimit(t *testing.T) {
	l, _, _ := newTestLimiter(t)

	for i := 0; i < 3; i++ {
		if !l.CheckQuota() {
			t.Fatalf("CheckQuota() before consume %d = false, want true", i+1)
		}
		if err := l.Consume(); err != nil {
			t.Fatalf("Consume() error = %v", err)
		}
	}

	if l.CheckQuota() {
		t.Error("CheckQuota() after 3 consumes = true, want false")
	}

	status := l.Status()
	if status.Used != 3 || status.Remaining != 0 || !status.Exhausted() {
		t.Errorf("Status() = %+v, want used 3, remaining 0, exhausted", status)
	}
}

func TestCheckQuota_PremiumBypassesLimit(t *testing.T) {
	l, _, _ := newTestLimiter(t)

	for i := 0; i < 5; i++ {
		if err := l.Consume(); err != nil {
			t.Fatalf("Consume() error = %v", err)
		}
	}
	if l.CheckQuota() {
		t.Fatal("CheckQuota() = true before premium, want false")
	}

	if err := l.SetPremium(true); err != nil {
		t.Fatalf("SetPremium() error = %v", err)
	}
	if !l.CheckQuota() {
		t.Error("CheckQuota() with premium = false, want true")
	}

	status := l.Status()
	if status.Limit != -1 || status.Remaining != -1 || status.Exhausted() {
		t.Errorf("premium Status() = %+v, want unlimited", status)
	}
}

func TestIsPremium_OnlyExactTrue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  bool
	}{
		{name: "absent", set: false, want: false},
		{name: "true", value: "true", set: true, want: true},
		{name: "uppercase", value: "TRUE", set: true, want: false},
		{name: "one", value: "1", set: true, want: false},
		{name: "false", value: "false", set: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, store, _ := newTestLimiter(t)
			if tt.set {
				store.Set(PremiumKey, tt.value)
			}
			if got := l.IsPremium(); got != tt.want {
				t.Errorf("IsPremium() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDateRollover_CheckQuotaResets(t *testing.T) {
	l, store, fc := newTestLimiter(t)

	store.Set(UsageKey, `{"date":"2026-10-16","count":3}`)

	if !l.CheckQuota() {
		t.Fatal("CheckQuota() on new day = false, want true")
	}

	raw, _, _ := store.Get(UsageKey)
	if raw != `{"date":"2026-10-17","count":0}` {
		t.Errorf("stored record after rollover = %s, want reset for today", raw)
	}

	// Later the same day the reset record is honoured.
	fc.Advance(2 * time.Hour)
	if got := l.Status().Used; got != 0 {
		t.Errorf("Status().Used = %d, want 0", got)
	}
}

func TestDateRollover_ConsumeResetsBeforeIncrement(t *testing.T) {
	l, store, _ := newTestLimiter(t)

	store.Set(UsageKey, `{"date":"2026-10-16","count":3}`)

	if err := l.Consume(); err != nil {
		t.Fatalf("Consume() error = %v", err)
	}

	raw, _, _ := store.Get(UsageKey)
	if raw != `{"date":"2026-10-17","count":1}` {
		t.Errorf("stored record = %s, want count 1 for today", raw)
	}
}

func TestDateRollover_AcrossMidnight(t *testing.T) {
	l, _, fc := newTestLimiter(t)

	for i := 0; i < 3; i++ {
		l.Consume()
	}
	if l.CheckQuota() {
		t.Fatal("CheckQuota() = true at limit, want false")
	}

	fc.Advance(24 * time.Hour)
	if !l.CheckQuota() {
		t.Error("CheckQuota() next day = false, want true")
	}
}

func TestMalformedRecordTreatedAsAbsent(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "{{{"},
		{name: "wrong types", raw: `{"date":5,"count":"x"}`},
		{name: "bad date", raw: `{"date":"Sat Oct 17 2026","count":1}`},
		{name: "negative count", raw: `{"date":"2026-10-17","count":-4}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, store, _ := newTestLimiter(t)
			store.Set(UsageKey, tt.raw)

			if !l.CheckQuota() {
				t.Error("CheckQuota() = false, want true for corrupt record")
			}
			if err := l.Consume(); err != nil {
				t.Fatalf("Consume() error = %v", err)
			}
			if got := l.Status().Used; got != 1 {
				t.Errorf("Status().Used = %d, want 1", got)
			}
		})
	}
}

type failingStore struct{}

func (failingStore) Get(string) (string, bool, error) { return "", false, errors.New("disk on fire") }
func (failingStore) Set(string, string) error        { return errors.New("disk on fire") }

func TestStoreErrors(t *testing.T) {
	l := New(failingStore{}, WithClock(clock.NewFakeClock(day1)))

	if !l.CheckQuota() {
		t.Error("CheckQuota() = false, want true when store is unreadable")
	}
	if l.IsPremium() {
		t.Error("IsPremium() = true, want false when store is unreadable")
	}
	if err := l.Consume(); err == nil {
		t.Error("Consume() error = nil, want write failure")
	}
}

func TestOnChange(t *testing.T) {
	var got []models.UsageStatus
	store := db.NewMemoryStore()
	l := New(store,
		WithClock(clock.NewFakeClock(day1)),
		WithDailyLimit(5),
		OnChange(func(s models.UsageStatus) { got = append(got, s) }),
	)

	l.Consume()
	l.Consume()

	if len(got) != 2 {
		t.Fatalf("listener called %d times, want 2", len(got))
	}
	if got[1].Used != 2 || got[1].Remaining != 3 || got[1].Limit != 5 {
		t.Errorf("last status = %+v, want used 2 remaining 3 limit 5", got[1])
	}
}

func TestStatus_ResetAtIsNextMidnight(t *testing.T) {
	l, _, _ := newTestLimiter(t)

	want := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.Local)
	if got := l.Status().ResetAt; !got.Equal(want) {
		t.Errorf("ResetAt = %v, want %v", got, want)
	}
}
