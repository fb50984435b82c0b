package store

import (
	"database/sql"
	"fmt"

	"versematch/internal/logging"
)

// Migration adds one column to an existing table.
type Migration struct {
	Table  string
	Column string
	Def    string
}

// verseColumnMigrations upgrade verse tables created before the extended
// record fields were stored.
var verseColumnMigrations = []Migration{
	{"verses", "english_meaning", "TEXT NOT NULL DEFAULT ''"},
	{"verses", "characters", "TEXT NOT NULL DEFAULT '[]'"},
	{"verses", "author", "TEXT NOT NULL DEFAULT ''"},
	// Commentary fields carried by the curated corpora.
	{"verses", "theme", "TEXT NOT NULL DEFAULT ''"},
	{"verses", "moral", "TEXT NOT NULL DEFAULT ''"},
	{"verses", "book_name", "TEXT NOT NULL DEFAULT ''"},
}

func runSQLiteMigrations(db *sql.DB) error {
	timer := logging.StartTimer(logging.CategoryStore, "RunMigrations")
	defer timer.Stop()

	columns := make(map[string]map[string]bool)
	applied := 0
	for _, m := range verseColumnMigrations {
		have, ok := columns[m.Table]
		if !ok {
			var err error
			if have, err = tableColumns(db, m.Table); err != nil {
				return err
			}
			columns[m.Table] = have
		}
		if have == nil {
			logging.StoreDebug("Table missing, skipping migration: %s.%s", m.Table, m.Column)
			continue
		}
		if have[m.Column] {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", m.Table, m.Column, m.Def)
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %s.%s failed: %w", m.Table, m.Column, err)
		}
		have[m.Column] = true
		applied++
	}
	if applied > 0 {
		logging.Store("Applied %d schema migrations", applied)
	}
	return nil
}

// tableColumns returns the column names of table, or nil when the table
// does not exist.
func tableColumns(db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.Query("SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return nil, fmt.Errorf("read columns of %s: %w", table, err)
	}
	defer rows.Close()

	var cols map[string]bool
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan column of %s: %w", table, err)
		}
		if cols == nil {
			cols = make(map[string]bool)
		}
		cols[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read columns of %s: %w", table, err)
	}
	return cols, nil
}
