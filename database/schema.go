// database/schema.go
package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mathias/Halite-II/models"
)

// TableNames returns the tables this layer binds to, in reflection
// order. Every one of them must exist before the process may start.
func TableNames() []string {
	return []string{
		models.Organization{}.TableName(),
		models.OrganizationEmailDomain{}.TableName(),
		models.User{}.TableName(),
		models.UserNotification{}.TableName(),
		models.Bot{}.TableName(),
		models.BotHistory{}.TableName(),
		models.Game{}.TableName(),
		models.GameParticipant{}.TableName(),
		models.Hackathon{}.TableName(),
		models.HackathonParticipant{}.TableName(),
		models.HackathonSnapshot{}.TableName(),
	}
}

// Registry holds the column definitions discovered from the live
// database at startup. It is immutable after Reflect returns and safe
// to share across goroutines.
type Registry struct {
	tables  []string
	columns map[string][]gorm.ColumnType
}

// Reflect discovers column definitions for every bound table. A
// missing table or an unreachable database is a startup failure, not
// something to retry: the schema is migrated by another service and
// its absence means this deployment is broken.
func Reflect(db *gorm.DB) (*Registry, error) {
	migrator := db.Migrator()
	tables := TableNames()
	columns := make(map[string][]gorm.ColumnType, len(tables))

	for _, table := range tables {
		if !migrator.HasTable(table) {
			return nil, fmt.Errorf("schema reflection: table %q not found", table)
		}
		cols, err := migrator.ColumnTypes(table)
		if err != nil {
			return nil, fmt.Errorf("schema reflection: table %q: %w", table, err)
		}
		columns[table] = cols
	}

	return &Registry{tables: tables, columns: columns}, nil
}

// Tables lists the reflected table names, in reflection order.
func (r *Registry) Tables() []string {
	out := make([]string, len(r.tables))
	copy(out, r.tables)
	return out
}

// Columns returns the reflected column definitions for table.
func (r *Registry) Columns(table string) ([]gorm.ColumnType, error) {
	cols, ok := r.columns[table]
	if !ok {
		return nil, fmt.Errorf("schema registry: unknown table %q", table)
	}
	return cols, nil
}

// HasColumn reports whether the reflected table has the named column.
func (r *Registry) HasColumn(table, column string) bool {
	for _, col := range r.columns[table] {
		if col.Name() == column {
			return true
		}
	}
	return false
}
