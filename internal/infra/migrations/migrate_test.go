package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationNames_SortedSQLFiles(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)

	require.NotEmpty(t, names)
	assert.Equal(t, "001_init.sql", names[0])
	assert.Contains(t, names, "002_exact_total_price.sql")
	assert.IsNonDecreasing(t, names)
}
