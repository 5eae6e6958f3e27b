package database

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTables_MatchMigrations keeps the Go description of the schema honest:
// after all migrations run, every table must have exactly the declared
// columns, nullability, primary key and foreign keys.
func TestTables_MatchMigrations(t *testing.T) {
	p := newTestProvider(t)

	db, err := p.Establish(context.Background())
	require.NoError(t, err)
	defer db.Close()

	for _, want := range Tables {
		t.Run(want.Name, func(t *testing.T) {
			rows, err := db.Query(`SELECT name, type, "notnull", pk FROM pragma_table_info(?) ORDER BY cid`, want.Name)
			require.NoError(t, err)
			defer rows.Close()

			got := Table{Name: want.Name}
			for rows.Next() {
				var (
					col     Column
					notNull int
					pk      int
				)
				require.NoError(t, rows.Scan(&col.Name, &col.Type, &notNull, &pk))
				col.NotNull = notNull == 1
				if pk > 0 {
					got.PrimaryKey = col.Name
				}
				got.Columns = append(got.Columns, col)
			}
			require.NoError(t, rows.Err())

			fkRows, err := db.Query(`SELECT "from", "table", "to" FROM pragma_foreign_key_list(?)`, want.Name)
			require.NoError(t, err)
			defer fkRows.Close()

			for fkRows.Next() {
				var fk ForeignKey
				require.NoError(t, fkRows.Scan(&fk.Column, &fk.RefTable, &fk.RefColumn))
				got.ForeignKeys = append(got.ForeignKeys, fk)
			}
			require.NoError(t, fkRows.Err())

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("schema mismatch for %s (-declared +migrated):\n%s", want.Name, diff)
			}
		})
	}
}

func TestTableByName(t *testing.T) {
	table, ok := TableByName(LMCPTaskTable)
	require.True(t, ok)
	assert.Equal(t, "id", table.PrimaryKey)
	assert.Len(t, table.Columns, 25)

	_, ok = TableByName("tasks")
	assert.False(t, ok)
}
