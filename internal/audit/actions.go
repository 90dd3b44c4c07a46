package audit

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/dtnitsch/contentgen/internal/common"
	"github.com/dtnitsch/contentgen/models"
	auditpkg "github.com/dtnitsch/contentgen/pkg/audit"
	"github.com/dtnitsch/contentgen/pkg/caching"
	"github.com/dtnitsch/contentgen/pkg/exporter"
	"github.com/dtnitsch/contentgen/pkg/fetcher"
	"github.com/dtnitsch/contentgen/pkg/generator"
	"github.com/dtnitsch/contentgen/pkg/parser"
	"github.com/dtnitsch/contentgen/pkg/storage"
	"github.com/urfave/cli/v2"
)

func AuditAction(c *cli.Context) error {
	format := strings.ToLower(c.String("format"))
	if format != "text" && format != "json" && format != "yaml" {
		return common.Exit(common.UserError(fmt.Errorf("unknown output format %q (valid: text, json, yaml)", format)))
	}

	source := c.Args().First()
	rawURL := c.String("url")
	switch {
	case source == "" && rawURL == "":
		return common.Exit(common.UserError(fmt.Errorf("provide a draft file or --url")))
	case source != "" && rawURL != "":
		return common.Exit(common.UserError(fmt.Errorf("cannot use both a draft file and --url")))
	}

	rt, err := common.Setup(c, os.Stdout)
	if err != nil {
		return common.Exit(err)
	}
	defer rt.Close()

	structure, ok := rt.Generator.Current()
	if !ok {
		rt.View.ShowError("Nenhuma estrutura gerada. Execute: contentgen generate <palavra-chave>")
		return common.Exit(generator.ErrNoStructure)
	}

	p := &parser.Parser{Readability: c.Bool("readability")}
	var page *models.DraftPage

	if rawURL != "" {
		target, err := common.ValidateURL(rawURL)
		if err != nil {
			return common.Exit(err)
		}
		body, err := fetchDraft(c, rt, target)
		if err != nil {
			return common.Exit(err)
		}
		page, err = p.ParseHTML(target, string(body))
		if err != nil {
			return common.Exit(err)
		}
	} else {
		store := &storage.Storage{}
		data, err := store.ReadFile(source)
		if err != nil {
			return common.Exit(common.UserError(err))
		}
		page, err = p.ParseFile(source, data)
		if err != nil {
			return common.Exit(err)
		}
		page.URL = source
	}

	rt.Logger.Debug("draft parsed", "source", page.URL, "blocks", len(page.Content), "images", len(page.Images))

	var detector auditpkg.LanguageDetector
	if !c.Bool("no-language") {
		detector = auditpkg.NewLanguageDetector()
	}
	report := auditpkg.NewAuditor(detector).Audit(page, structure)

	rt.Logger.Info("audit complete",
		"source", report.Source,
		"keyword", report.Keyword,
		"score", report.Score,
		"section_coverage", report.SectionCoverage(),
		"faq_coverage", report.FAQCoverage(),
	)

	if format == "text" {
		rt.View.Markdown(ReportMarkdown(report))
	} else {
		data, err := common.MarshalOutput(report, format)
		if err != nil {
			return common.Exit(err)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			return common.Exit(fmt.Errorf("failed to write output: %w", err))
		}
	}

	return checkMinScore(report.Score, c.Int("min-score"))
}

// checkMinScore fails with exit code 1 when score is under minScore,
// whatever the output format.
func checkMinScore(score, minScore int) error {
	if score < minScore {
		return cli.Exit(fmt.Sprintf("score %d is below --min-score %d", score, minScore), 1)
	}
	return nil
}

// fetchDraft downloads target, going through the on-disk cache.
func fetchDraft(c *cli.Context, rt *common.Runtime, target string) ([]byte, error) {
	cacheDir := c.String("cache-dir")
	if cacheDir == "" {
		cacheDir = caching.DefaultDir()
	}
	cache, err := caching.NewCache(cacheDir, c.Duration("max-age"), nil)
	if err != nil {
		return nil, err
	}

	if body, ok := cache.Get(target); ok {
		rt.Logger.Debug("draft served from cache", "url", target)
		return body, nil
	}

	f := fetcher.NewFetcher().WithClient(&http.Client{Timeout: c.Duration("timeout")})
	body, err := f.GetHtmlBytes(c.Context, target)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch draft: %w", err)
	}
	if err := cache.Set(target, body); err != nil {
		rt.Logger.Warn("failed to cache draft", "url", target, "error", err)
	}
	return body, nil
}

func check(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

// ReportMarkdown renders an audit report for the terminal.
func ReportMarkdown(r auditpkg.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Auditoria: %s\n\n", r.Keyword)
	if r.Source != "" {
		fmt.Fprintf(&b, "Fonte: `%s`\n\n", r.Source)
	}
	fmt.Fprintf(&b, "**Pontuação: %d/100**\n\n", r.Score)

	b.WriteString("## Resumo\n\n")
	fmt.Fprintf(&b, "- **Título**: %s\n", r.Title)
	if r.Language != nil {
		fmt.Fprintf(&b, "- **Idioma**: %s (%.0f%%)\n", r.Language.Name, r.Language.Confidence*100)
	}
	fmt.Fprintf(&b, "- **Palavras**: %s (meta %s)\n", exporter.FormatVolume(r.WordCount), exporter.FormatVolume(r.TargetWordCount))
	fmt.Fprintf(&b, "- **Densidade da palavra-chave**: %.1f%% (%d ocorrências)\n", r.KeywordUse.Density, r.KeywordUse.Occurrences)
	fmt.Fprintf(&b, "- **Palavra-chave no H1**: %s\n", check(r.KeywordUse.InH1 || r.KeywordUse.InTitle))
	fmt.Fprintf(&b, "- **Cabeçalhos**: %d H1, %d H2, %d H3\n", r.Headers.H1Count, r.Headers.H2Count, r.Headers.H3Count)
	fmt.Fprintf(&b, "- **Imagens com alt**: %d de %d sugeridas\n\n", r.Media.WithAlt, r.Media.Suggested)

	fmt.Fprintf(&b, "## Seções (%.0f%%)\n\n", r.SectionCoverage()*100)
	for _, c := range r.Sections {
		writeCoverage(&b, c)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## FAQ (%.0f%%)\n\n", r.FAQCoverage()*100)
	for _, c := range r.FAQ {
		writeCoverage(&b, c)
	}
	b.WriteString("\n")

	if len(r.TopTerms) > 0 {
		b.WriteString("## Termos mais frequentes\n\n")
		for _, tc := range r.TopTerms {
			fmt.Fprintf(&b, "- %s (%d)\n", tc.Term, tc.Count)
		}
		b.WriteString("\n")
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("## Recomendações\n\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeCoverage(b *strings.Builder, c auditpkg.Coverage) {
	if c.Covered {
		fmt.Fprintf(b, "- %s %s → *%s*\n", check(true), c.Expected, c.Match)
		return
	}
	fmt.Fprintf(b, "- %s %s\n", check(false), c.Expected)
}
