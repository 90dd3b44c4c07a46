package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dtnitsch/contentgen/internal/audit"
	"github.com/dtnitsch/contentgen/internal/db"
	"github.com/dtnitsch/contentgen/internal/export"
	"github.com/dtnitsch/contentgen/internal/generate"
	"github.com/dtnitsch/contentgen/internal/usage"
	"github.com/dtnitsch/contentgen/models"
	"github.com/dtnitsch/contentgen/pkg/exporter"
	"github.com/dtnitsch/contentgen/pkg/fetcher"
	"github.com/dtnitsch/contentgen/pkg/help"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func outputFormatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: text, json or yaml",
	}
}

func newApp() *cli.App {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}

	return &cli.App{
		Name:    "contentgen",
		Usage:   "Generate SEO content outlines from a keyword",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   models.DefaultConfigFile,
				Usage:   "YAML config file (missing file uses defaults)",
				EnvVars: []string{"CONTENTGEN_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "state",
				Usage:   "SQLite state database (default: contentgen.db next to the binary)",
				EnvVars: []string{"CONTENTGEN_STATE"},
			},
			&cli.BoolFlag{
				Name:    "ephemeral",
				Usage:   "Keep usage and results in memory only",
				EnvVars: []string{"CONTENTGEN_EPHEMERAL"},
			},
			&cli.IntFlag{
				Name:    "daily-limit",
				Value:   models.DefaultDailyLimit,
				Usage:   "Free generations per day",
				EnvVars: []string{"CONTENTGEN_DAILY_LIMIT"},
			},
			&cli.DurationFlag{
				Name:    "serp-latency",
				Value:   models.DefaultSerpLatency,
				Usage:   "Simulated SERP analysis delay",
				EnvVars: []string{"CONTENTGEN_SERP_LATENCY"},
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Value:   ".",
				Usage:   "Directory for exported files",
				EnvVars: []string{"CONTENTGEN_OUTPUT_DIR"},
			},
			&cli.IntFlag{
				Name:    "word-wrap",
				Value:   models.DefaultWordWrap,
				Usage:   "Terminal word wrap for rendered output",
				EnvVars: []string{"CONTENTGEN_WORD_WRAP"},
			},
			&cli.BoolFlag{
				Name:    "plain",
				Usage:   "Print raw Markdown without colors",
				EnvVars: []string{"CONTENTGEN_PLAIN"},
			},
			&cli.StringFlag{
				Name:    "style",
				Value:   "auto",
				Usage:   "Markdown style: auto, dark, light, notty",
				EnvVars: []string{"CONTENTGEN_STYLE"},
			},
			&cli.Uint64Flag{
				Name:    "seed",
				Usage:   "Seed the random source for reproducible outlines",
				EnvVars: []string{"CONTENTGEN_SEED"},
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only log errors",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log debug details",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "generate",
				Aliases:   []string{"g"},
				Usage:     "Analyze a keyword and generate a content structure",
				ArgsUsage: "<keyword>",
				Action:    generate.GenerateAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "keyword",
						Aliases: []string{"k"},
						Usage:   "Keyword (alternative to the positional argument)",
					},
					&cli.StringFlag{
						Name:    "intent",
						Aliases: []string{"i"},
						Value:   "auto",
						Usage:   "Search intent: informational, commercial, transactional or auto",
					},
					outputFormatFlag(),
					&cli.StringSliceFlag{
						Name:    "export",
						Aliases: []string{"e"},
						Usage:   "Also write the structure as json, markdown or yaml (repeatable)",
					},
				},
			},
			{
				Name:      "export",
				Usage:     "Write the current structure to a file",
				ArgsUsage: "[json|markdown|yaml]",
				Action:    export.ExportAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "markdown",
						Usage:   "Export format: " + formatNames(),
					},
					&cli.BoolFlag{
						Name:  "stdout",
						Usage: "Print to stdout instead of writing a file",
					},
				},
			},
			{
				Name:   "usage",
				Usage:  "Show today's generation usage",
				Action: usage.UsageAction,
				Flags:  []cli.Flag{outputFormatFlag()},
			},
			{
				Name:   "premium",
				Usage:  "Show or change the premium plan",
				Action: usage.PremiumAction,
				Subcommands: []*cli.Command{
					{
						Name:   "enable",
						Usage:  "Enable unlimited generations",
						Action: usage.PremiumEnableAction,
					},
					{
						Name:   "disable",
						Usage:  "Return to the free daily limit",
						Action: usage.PremiumDisableAction,
					},
					{
						Name:   "status",
						Usage:  "Print the current plan",
						Action: usage.PremiumStatusAction,
					},
				},
			},
			{
				Name:      "audit",
				Usage:     "Check a draft against the current structure",
				ArgsUsage: "<draft.md|draft.html>",
				Action:    audit.AuditAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "url",
						Usage: "Fetch the draft from a published URL",
					},
					outputFormatFlag(),
					&cli.BoolFlag{
						Name:  "readability",
						Value: true,
						Usage: "Extract the main article from HTML before auditing",
					},
					&cli.BoolFlag{
						Name:  "no-language",
						Usage: "Skip language detection",
					},
					&cli.DurationFlag{
						Name:  "max-age",
						Value: time.Hour,
						Usage: "Reuse a fetched --url draft for this long (0 disables the cache)",
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Value: fetcher.DefaultTimeout,
						Usage: "HTTP timeout when fetching --url",
					},
					&cli.StringFlag{
						Name:    "cache-dir",
						Usage:   "Directory for fetched drafts (default: user cache dir)",
						EnvVars: []string{"CONTENTGEN_CACHE_DIR"},
					},
					&cli.IntFlag{
						Name:  "min-score",
						Usage: "Exit with status 1 when the score is below this value",
					},
				},
			},
			{
				Name:  "state",
				Usage: "Inspect or reset the persisted state",
				Subcommands: []*cli.Command{
					{
						Name:   "show",
						Usage:  "List stored keys",
						Action: db.StateShowAction,
					},
					{
						Name:   "reset",
						Usage:  "Clear usage and the current structure",
						Action: db.StateResetAction,
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  "all",
								Usage: "Also clear the premium flag",
							},
						},
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "Print a quick reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.Quickstart())
					return nil
				},
			},
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(c *cli.Context) error {
					fmt.Println(c.App.Version)
					return nil
				},
			},
		},
	}
}

func formatNames() string {
	names := ""
	for i, f := range exporter.Formats() {
		if i > 0 {
			names += ", "
		}
		names += f.Name
	}
	return names
}
