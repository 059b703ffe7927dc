package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTableNames(t *testing.T) {
	names := TableNames()

	assert.Len(t, names, 11)
	for _, expected := range []string{
		"organization", "organization_email_domain",
		"user", "user_notification",
		"bot", "bot_history",
		"game", "game_participant",
		"hackathon", "hackathon_participant", "hackathon_snapshot",
	} {
		assert.Contains(t, names, expected)
	}
}

func TestRegistryTablesMatchCaptured(t *testing.T) {
	registry := &Registry{
		tables:  []string{"bot", "game"},
		columns: map[string][]gorm.ColumnType{"bot": nil, "game": nil},
	}

	// Tables reports what this registry actually captured, not the
	// static binding list, and hands out a copy.
	tables := registry.Tables()
	assert.Equal(t, []string{"bot", "game"}, tables)

	tables[0] = "mutated"
	assert.Equal(t, []string{"bot", "game"}, registry.Tables())
}

func TestRegistryUnknownTable(t *testing.T) {
	registry := &Registry{
		tables:  []string{"bot"},
		columns: map[string][]gorm.ColumnType{"bot": nil},
	}

	_, err := registry.Columns("nonexistent")
	assert.ErrorContains(t, err, `unknown table "nonexistent"`)

	cols, err := registry.Columns("bot")
	assert.NoError(t, err)
	assert.Empty(t, cols)

	assert.False(t, registry.HasColumn("nonexistent", "id"))
	assert.False(t, registry.HasColumn("bot", "id"))
}
