// Package termview renders generation results and notices in a terminal.
package termview

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/dtnitsch/contentgen/models"
	"github.com/dtnitsch/contentgen/pkg/exporter"
)

// Options configure a View.
type Options struct {
	// Plain disables Markdown rendering and styling.
	Plain bool
	// Style is a glamour style name; empty or "auto" detects the terminal.
	Style    string
	WordWrap int
	Logger   *slog.Logger
}

// View writes structures to out and notices (errors, busy state, modals)
// to notices.
type View struct {
	out      io.Writer
	notices  io.Writer
	plain    bool
	markdown *glamour.TermRenderer
	st       styles
	logger   *slog.Logger
}

func New(out, notices io.Writer, opts Options) (*View, error) {
	v := &View{
		out:     out,
		notices: notices,
		plain:   opts.Plain,
		st:      newStyles(lipgloss.NewRenderer(notices)),
		logger:  opts.Logger,
	}
	if v.logger == nil {
		v.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if v.plain {
		return v, nil
	}

	styleOpt := glamour.WithAutoStyle()
	if opts.Style != "" && opts.Style != "auto" {
		styleOpt = glamour.WithStandardStyle(opts.Style)
	}
	wrap := opts.WordWrap
	if wrap <= 0 {
		wrap = models.DefaultWordWrap
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrap))
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	v.markdown = r
	return v, nil
}

// Document is the Markdown shown for s: the export layout followed by the
// competitor titles from the SERP analysis.
func Document(s models.ContentStructure) string {
	var b strings.Builder
	b.WriteString(exporter.ToMarkdown(s))
	if len(s.Metrics.CompetitorTitles) > 0 {
		b.WriteString("## Principais Concorrentes\n\n")
		for i, title := range s.Metrics.CompetitorTitles {
			fmt.Fprintf(&b, "%d. %s\n", i+1, title)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) Render(s models.ContentStructure) {
	v.Markdown(Document(s))
}

// Markdown renders doc to the output writer.
func (v *View) Markdown(doc string) {
	if v.plain {
		fmt.Fprint(v.out, doc)
		return
	}

	rendered, err := v.markdown.Render(doc)
	if err != nil {
		v.logger.Warn("markdown render failed, printing raw", "error", err)
		rendered = doc
	}
	fmt.Fprint(v.out, rendered)
}

// UsageBadge is the one-line quota summary.
func UsageBadge(status models.UsageStatus) string {
	if status.Premium {
		return fmt.Sprintf("Premium: gerações ilimitadas (%d hoje)", status.Used)
	}
	return fmt.Sprintf("Uso hoje: %d/%d gerações", status.Used, status.Limit)
}

func (v *View) RefreshUsage(status models.UsageStatus) {
	badge := UsageBadge(status)
	if v.plain {
		fmt.Fprintln(v.notices, badge)
		return
	}

	style := v.st.badge
	switch {
	case status.Premium:
		style = v.st.badgePremium
	case status.Exhausted():
		style = v.st.badgeError
	}
	fmt.Fprintln(v.notices, style.Render(badge))
}

func (v *View) ShowQuotaExceeded(status models.UsageStatus) {
	title := "Limite diário atingido"
	body := fmt.Sprintf(
		"Você usou %d de %d gerações gratuitas hoje.\nO limite reinicia em %s.\n\nAssine o Premium para gerações ilimitadas: contentgen premium enable",
		status.Used, status.Limit, status.ResetAt.Format("02/01/2006 15:04"),
	)
	if v.plain {
		fmt.Fprintf(v.notices, "%s\n%s\n", title, body)
		return
	}
	fmt.Fprintln(v.notices, v.st.modal.Render(
		lipgloss.JoinVertical(lipgloss.Left, v.st.modalTitle.Render(title), body),
	))
}

var premiumBenefits = []string{
	"Gerações ilimitadas por dia",
	"Exportação em JSON, Markdown e YAML",
	"Auditoria de rascunhos contra a estrutura gerada",
}

func (v *View) ShowPremiumUpsell() {
	title := "Contentgen Premium"
	var body strings.Builder
	for _, b := range premiumBenefits {
		fmt.Fprintf(&body, "• %s\n", b)
	}
	body.WriteString("\nAtive com: contentgen premium enable")

	if v.plain {
		fmt.Fprintf(v.notices, "%s\n%s\n", title, body.String())
		return
	}
	fmt.Fprintln(v.notices, v.st.premiumBox.Render(
		lipgloss.JoinVertical(lipgloss.Left, v.st.premiumTitle.Render(title), body.String()),
	))
}

func (v *View) ShowError(msg string) {
	if v.plain {
		fmt.Fprintf(v.notices, "Erro: %s\n", msg)
		return
	}
	fmt.Fprintln(v.notices, v.st.errorBox.Render(msg))
}

func (v *View) SetBusy(busy bool) {
	if !busy {
		return
	}
	const msg = "Analisando SERP e gerando estrutura..."
	if v.plain {
		fmt.Fprintln(v.notices, msg)
		return
	}
	fmt.Fprintln(v.notices, v.st.busy.Render(msg))
}

// Notice prints an informational line.
func (v *View) Notice(msg string) {
	if v.plain {
		fmt.Fprintln(v.notices, msg)
		return
	}
	fmt.Fprintln(v.notices, v.st.dim.Render(msg))
}
