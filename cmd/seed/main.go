// Command seed resets the persisted application state. It deletes the
// stored aggregate blobs so the next server start falls back to the
// built-in defaults. Pass storage keys as arguments to reset a subset.
package main

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	"remixradio/internal/config"
	"remixradio/internal/db"
	"remixradio/internal/state"
	"remixradio/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}

	database, err := db.Configure(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}

	if err := run(database, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run(database *gorm.DB, args []string) error {
	keys, err := selectKeys(args)
	if err != nil {
		return err
	}

	result := database.Where("key IN ?", keys).Delete(&models.StateEntry{})
	if result.Error != nil {
		return fmt.Errorf("delete stored state: %w", result.Error)
	}
	fmt.Printf("reset %d stored aggregate(s)\n", result.RowsAffected)
	return nil
}

func selectKeys(args []string) ([]string, error) {
	known := state.StorageKeys()
	if len(args) == 0 {
		return known, nil
	}

	valid := make(map[string]bool, len(known))
	for _, key := range known {
		valid[key] = true
	}
	for _, arg := range args {
		if !valid[arg] {
			return nil, fmt.Errorf("unknown storage key %q", arg)
		}
	}
	return args, nil
}
