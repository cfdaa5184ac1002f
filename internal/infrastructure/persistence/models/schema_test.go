package models

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

var createTablePattern = regexp.MustCompile(`(?s)CREATE TABLE (\w+) \((.*?)\);`)

// migrationColumns reads every up migration and returns table -> column set.
func migrationColumns(t *testing.T) map[string]map[string]bool {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join("..", "..", "..", "..", "migrations", "*.up.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	tables := make(map[string]map[string]bool)
	for _, path := range paths {
		sql, err := os.ReadFile(path)
		require.NoError(t, err)
		for _, m := range createTablePattern.FindAllStringSubmatch(string(sql), -1) {
			columns := make(map[string]bool)
			for _, line := range strings.Split(m[2], ",") {
				fields := strings.Fields(line)
				if len(fields) == 0 {
					continue
				}
				columns[strings.ToLower(fields[0])] = true
			}
			tables[m[1]] = columns
		}
	}
	return tables
}

// The migrations are the schema of record; GORM only maps onto them. Every
// column a persistence model declares must exist in the migrated table, or
// inserts fail at runtime.
func TestModelsMatchMigrations(t *testing.T) {
	tables := migrationColumns(t)

	models := []any{
		&UserModel{},
		&CategoryModel{},
		&ProductModel{},
		&BatchModel{},
		&WriteOffModel{},
		&SaleModel{},
		&SaleItemModel{},
		&PreorderModel{},
		&PreorderItemModel{},
	}

	for _, model := range models {
		parsed, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)

		columns, ok := tables[parsed.Table]
		require.True(t, ok, "table %q has no CREATE TABLE in migrations", parsed.Table)

		for _, field := range parsed.Fields {
			if field.DBName == "" { // association fields have no column
				continue
			}
			require.True(t, columns[field.DBName],
				"%s column %q has no column in migrations table %q", parsed.ModelType.Name(), field.DBName, parsed.Table)
		}
	}
}
