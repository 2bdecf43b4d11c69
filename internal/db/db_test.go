package db

import (
	"testing"

	"remixradio/internal/config"
	"remixradio/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestInitializeRequiresURL(t *testing.T) {
	t.Parallel()

	database, err := Initialize(config.DatabaseConfig{URL: ""})
	if err == nil {
		t.Fatal("expected error when database URL is empty")
	}
	if database != nil {
		t.Fatal("expected returned db handle to be nil on error")
	}
}

func TestDialectorForRejectsUnknownScheme(t *testing.T) {
	t.Parallel()

	if _, err := dialectorFor("mysql://localhost/radio"); err == nil {
		t.Fatal("expected error for unsupported scheme")
	}
}

func TestDialectorForSQLiteVariants(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"sqlite://radio.db", "radio.db"} {
		if _, err := dialectorFor(raw); err != nil {
			t.Fatalf("dialectorFor(%q) error = %v", raw, err)
		}
	}
}

func TestAutoMigrateRejectsNilDatabase(t *testing.T) {
	t.Parallel()

	if err := AutoMigrate(nil); err == nil {
		t.Fatal("expected error when database handle is nil")
	}
}

func TestAutoMigrateCreatesStateTable(t *testing.T) {
	t.Parallel()

	sqliteDB, err := gorm.Open(sqlite.Open("file:memdb_state?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}

	if err := AutoMigrate(sqliteDB); err != nil {
		t.Fatalf("automigrate sqlite database: %v", err)
	}

	entry := models.StateEntry{Key: "kingz_accounts", Value: "[]"}
	if err := sqliteDB.Create(&entry).Error; err != nil {
		t.Fatalf("insert state entry: %v", err)
	}

	var loaded models.StateEntry
	if err := sqliteDB.First(&loaded, "key = ?", "kingz_accounts").Error; err != nil {
		t.Fatalf("load state entry: %v", err)
	}
	if loaded.Value != "[]" {
		t.Fatalf("loaded value = %q, want %q", loaded.Value, "[]")
	}
}

func TestConfigurePropagatesInitializationError(t *testing.T) {
	t.Parallel()

	if _, err := Configure(config.DatabaseConfig{}); err == nil {
		t.Fatal("expected configuration error when initialize fails")
	}
}
