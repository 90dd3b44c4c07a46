package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dtnitsch/contentgen/internal/common"
	"github.com/dtnitsch/contentgen/pkg/storage"
	"github.com/urfave/cli/v2"
)

func ExportAction(c *cli.Context) error {
	format := c.String("format")
	if c.Args().Present() {
		format = c.Args().First()
	}

	rt, err := common.Setup(c, nil)
	if err != nil {
		return common.Exit(err)
	}
	defer rt.Close()

	file, err := rt.Generator.Export(format)
	if err != nil {
		return common.Exit(err)
	}

	if c.Bool("stdout") {
		if _, err := os.Stdout.Write(file.Content); err != nil {
			return common.Exit(fmt.Errorf("failed to write output: %w", err))
		}
		return nil
	}

	store := &storage.Storage{Dir: rt.Config.OutputDir}
	if target := filepath.Join(store.Dir, file.Name); store.HasFile(target) {
		rt.Logger.Info("overwriting existing export", "path", target)
	}
	stats, err := store.SaveFile(file.Name, file.Content)
	if err != nil {
		return common.Exit(err)
	}
	rt.Logger.Info("export saved", "path", stats.Path, "mime", file.MIMEType, "bytes", stats.SizeBytes)
	fmt.Println(stats.Path)
	return nil
}
