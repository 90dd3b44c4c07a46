package models

import "time"

// UsageRecord is the persisted daily counter. Date is a local calendar day
// formatted as 2006-01-02.
type UsageRecord struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// UsageStatus is the quota state shown to the user. Limit and Remaining are
// -1 when the account is premium.
type UsageStatus struct {
	Date      string    `json:"date" yaml:"date"`
	Used      int       `json:"used" yaml:"used"`
	Limit     int       `json:"limit" yaml:"limit"`
	Remaining int       `json:"remaining" yaml:"remaining"`
	Premium   bool      `json:"premium" yaml:"premium"`
	ResetAt   time.Time `json:"reset_at" yaml:"reset_at"`
}

// Exhausted reports whether a non-premium user has no generations left today.
func (s UsageStatus) Exhausted() bool {
	return !s.Premium && s.Remaining == 0
}
