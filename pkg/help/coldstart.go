// Package help holds the quick-start reference printed by the quickstart
// command.
package help

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/contentgen/pkg/serp"
)

const ColdstartYAML = `# contentgen Quick Start

commands:
  generate: |
    contentgen generate "marketing digital"
    contentgen generate --intent commercial "melhor notebook"
    contentgen generate --format json "receitas saudáveis"
    contentgen generate --export markdown --export json "como fazer seo"

  export: |
    contentgen export markdown
    contentgen export --format json --stdout

  usage: |
    contentgen usage
    contentgen usage --format yaml

  premium: |
    contentgen premium
    contentgen premium enable
    contentgen premium status

  audit: |
    contentgen audit rascunho.md
    contentgen audit --url https://example.com/artigo --min-score 70

  state: |
    contentgen state show
    contentgen state reset

intents:
  informational: "Guias e explicações (padrão quando nada casa)"
  commercial: "Comparações, reviews, 'melhor X'"
  transactional: "Compra, preço, desconto"
  auto: "Classifica pela palavra-chave (padrão)"

quota:
  - "3 gerações gratuitas por dia (--daily-limit ou daily_limit no YAML)"
  - "O contador reinicia à meia-noite local"
  - "Premium remove o limite"
  - "Falhas não consomem a cota"

export_formats:
  json: "estrutura-<palavra-chave>.json (application/json)"
  markdown: "estrutura-<palavra-chave>.md (text/markdown)"
  yaml: "estrutura-<palavra-chave>.yaml (application/yaml)"

environment:
  CONTENTGEN_CONFIG: "YAML config file (default contentgen.yaml)"
  CONTENTGEN_STATE: "SQLite state database"
  CONTENTGEN_DAILY_LIMIT: "Free generations per day"
  CONTENTGEN_SERP_LATENCY: "Simulated SERP delay, e.g. 500ms"
  CONTENTGEN_OUTPUT_DIR: "Export directory"
  CONTENTGEN_PLAIN: "Raw Markdown, no colors"

error_behavior:
  - "Exit codes: 0=success, 1=input error or limit reached, 2=internal failure"
  - "Logs are JSON on stderr; --quiet keeps errors only, --verbose adds debug"
`

// Quickstart returns the reference followed by the keywords that have
// curated SERP metrics.
func Quickstart() string {
	var b strings.Builder
	b.WriteString(ColdstartYAML)
	b.WriteString("\ncurated_keywords:\n")
	for _, kw := range serp.CuratedKeywords() {
		fmt.Fprintf(&b, "  - %q\n", kw)
	}
	return b.String()
}
