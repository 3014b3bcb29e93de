package persistence

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/creaselab/crease/internal/database"
	"gorm.io/gorm"
)

// coachingColumns are the model fields added after the first schema version.
// Databases written before they existed are migrated in place by EnsureSchema.
var coachingColumns = []string{
	"DrillTags",
	"DrillDescription",
	"Difficulty",
	"Equipment",
	"AgeGroup",
	"SkillFocus",
	"DrillType",
}

// AutoMigrate runs GORM auto migration for all models.
func AutoMigrate(db database.Database) error {
	if err := db.GORM().AutoMigrate(&ContentModel{}); err != nil {
		return fmt.Errorf("auto migrate content: %w", err)
	}
	return nil
}

// EnsureSchema brings an existing content table forward to the current
// column set. It inspects the columns actually present and issues an ADD
// COLUMN for each missing one, so rows written by an earlier version are
// never rewritten or dropped. Running it against a current schema is a no-op.
func EnsureSchema(db database.Database) error {
	migrator := db.GORM().Migrator()

	if !migrator.HasTable(&ContentModel{}) {
		// Fresh database; AutoMigrate creates the table with every column.
		return nil
	}

	for _, field := range coachingColumns {
		if migrator.HasColumn(&ContentModel{}, field) {
			continue
		}
		slog.Info("adding column to content table", "field", field)
		if err := migrator.AddColumn(&ContentModel{}, field); err != nil {
			return fmt.Errorf("add column %s: %w", field, err)
		}
	}

	return nil
}

// ValidateSchema verifies every ContentModel field has a corresponding column
// in the database. Returns an error listing any missing columns.
func ValidateSchema(db database.Database) error {
	gdb := db.GORM()
	migrator := gdb.Migrator()

	stmt := &gorm.Statement{DB: gdb}
	if err := stmt.Parse(&ContentModel{}); err != nil {
		return fmt.Errorf("parse model schema: %w", err)
	}

	columnTypes, err := migrator.ColumnTypes(&ContentModel{})
	if err != nil {
		return fmt.Errorf("get column types for %s: %w", stmt.Table, err)
	}

	actual := make(map[string]bool, len(columnTypes))
	for _, ct := range columnTypes {
		actual[ct.Name()] = true
	}

	var missing []string
	for _, field := range stmt.Schema.Fields {
		if field.DBName == "" || field.DBName == "-" {
			continue
		}
		if !actual[field.DBName] {
			missing = append(missing, stmt.Table+"."+field.DBName)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("schema validation failed — missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Migrate opens the schema path used at startup: forward-migrate any existing
// table, then let AutoMigrate fill in the rest.
func Migrate(db database.Database) error {
	if err := EnsureSchema(db); err != nil {
		return err
	}
	return AutoMigrate(db)
}
