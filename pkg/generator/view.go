package generator

import "github.com/dtnitsch/contentgen/models"

// View is the presentation side of a generation. Implementations must not
// block for long; they are called on the request goroutine.
type View interface {
	Render(s models.ContentStructure)
	RefreshUsage(status models.UsageStatus)
	ShowQuotaExceeded(status models.UsageStatus)
	ShowPremiumUpsell()
	ShowError(msg string)
	SetBusy(busy bool)
}

// NopView discards everything.
type NopView struct{}

func (NopView) Render(models.ContentStructure)       {}
func (NopView) RefreshUsage(models.UsageStatus)      {}
func (NopView) ShowQuotaExceeded(models.UsageStatus) {}
func (NopView) ShowPremiumUpsell()                   {}
func (NopView) ShowError(string)                     {}
func (NopView) SetBusy(bool)                         {}
