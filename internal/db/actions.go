package db

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/contentgen/internal/common"
	dbpkg "github.com/dtnitsch/contentgen/pkg/db"
	"github.com/dtnitsch/contentgen/pkg/generator"
	"github.com/dtnitsch/contentgen/pkg/limiter"
	"github.com/urfave/cli/v2"
)

const maxValueWidth = 60

// StateShowAction lists the persisted keys.
func StateShowAction(c *cli.Context) error {
	if c.Bool("ephemeral") {
		fmt.Println("Ephemeral mode: nothing is persisted")
		return nil
	}

	database, err := openState(c)
	if err != nil {
		return common.Exit(fmt.Errorf("failed to open database: %w", err))
	}
	defer database.Close()

	entries, err := database.Entries()
	if err != nil {
		return common.Exit(fmt.Errorf("failed to list entries: %w", err))
	}

	fmt.Printf("Database: %s\n\n", database.Path())
	if len(entries) == 0 {
		fmt.Println("No state stored")
		return nil
	}

	fmt.Printf("%-22s %-20s %s\n", "Key", "Updated", "Value")
	fmt.Println(strings.Repeat("-", 100))
	for _, e := range entries {
		fmt.Printf("%-22s %-20s %s\n", e.Key, e.UpdatedAt.Format("2006-01-02 15:04:05"), truncate(e.Value, maxValueWidth))
	}
	fmt.Printf("\nTotal: %d keys\n", len(entries))
	return nil
}

// StateResetAction clears today's usage and the current structure. The
// premium flag is kept unless --all is given.
func StateResetAction(c *cli.Context) error {
	rt, err := common.Setup(c, nil)
	if err != nil {
		return common.Exit(err)
	}
	defer rt.Close()

	keys, err := resetState(rt.Store, c.Bool("all"))
	if err != nil {
		return common.Exit(err)
	}
	rt.Logger.Info("state reset", "keys", keys)

	fmt.Printf("Cleared: %s\n", strings.Join(keys, ", "))
	return nil
}

func resetState(store dbpkg.Store, all bool) ([]string, error) {
	keys := []string{limiter.UsageKey, generator.CurrentKey}
	if all {
		keys = append(keys, limiter.PremiumKey)
	}
	for _, k := range keys {
		if err := store.Delete(k); err != nil {
			return nil, fmt.Errorf("failed to delete %s: %w", k, err)
		}
	}
	return keys, nil
}

func openState(c *cli.Context) (*dbpkg.DB, error) {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return nil, err
	}
	return dbpkg.Open(cfg.StatePath)
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}
