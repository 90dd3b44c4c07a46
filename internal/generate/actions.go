package generate

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dtnitsch/contentgen/internal/common"
	"github.com/dtnitsch/contentgen/models"
	"github.com/dtnitsch/contentgen/pkg/exporter"
	"github.com/dtnitsch/contentgen/pkg/storage"
	"github.com/urfave/cli/v2"
)

func GenerateAction(c *cli.Context) error {
	keyword := strings.Join(c.Args().Slice(), " ")
	if c.IsSet("keyword") {
		keyword = c.String("keyword")
	}

	in, err := parseIntent(c.String("intent"))
	if err != nil {
		return common.Exit(err)
	}

	format := strings.ToLower(c.String("format"))
	if format != "text" && format != "json" && format != "yaml" {
		return common.Exit(common.UserError(fmt.Errorf("unknown output format %q (valid: text, json, yaml)", format)))
	}

	exports := c.StringSlice("export")
	for _, name := range exports {
		if _, err := exporter.LookupFormat(name); err != nil {
			return common.Exit(err)
		}
	}

	var out io.Writer = os.Stdout
	if format != "text" {
		out = nil
	}

	rt, err := common.Setup(c, out)
	if err != nil {
		return common.Exit(err)
	}
	defer rt.Close()

	s, err := rt.Generator.Generate(c.Context, keyword, in)
	if err != nil {
		return common.Exit(err)
	}

	if format != "text" {
		data, err := common.MarshalOutput(s, format)
		if err != nil {
			return common.Exit(err)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			return common.Exit(fmt.Errorf("failed to write output: %w", err))
		}
	}

	store := &storage.Storage{Dir: rt.Config.OutputDir}
	for _, name := range exports {
		file, err := rt.Generator.Export(name)
		if err != nil {
			return common.Exit(err)
		}
		stats, err := store.SaveFile(file.Name, file.Content)
		if err != nil {
			return common.Exit(err)
		}
		rt.Logger.Info("export saved", "path", stats.Path, "bytes", stats.SizeBytes)
		rt.View.Notice("Exportado: " + stats.Path)
	}

	return nil
}

// parseIntent maps the --intent flag. Empty and "auto" classify the keyword.
func parseIntent(raw string) (models.Intent, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "auto") {
		return "", nil
	}
	in, ok := models.ParseIntent(raw)
	if !ok {
		valid := make([]string, 0, 4)
		for _, known := range models.Intents() {
			valid = append(valid, string(known))
		}
		valid = append(valid, "auto")
		return "", common.UserError(fmt.Errorf("invalid intent %q (valid: %s)", raw, strings.Join(valid, ", ")))
	}
	return in, nil
}
