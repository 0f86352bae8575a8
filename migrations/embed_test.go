package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	got := SplitStatements("-- header; ignored\r\nCREATE TABLE a (x INT64) PRIMARY KEY (x);\n\n  CREATE INDEX i ON a(x) ;\n")
	assert.Equal(t, []string{"CREATE TABLE a (x INT64) PRIMARY KEY (x)", "CREATE INDEX i ON a(x)"}, got)
}

func TestSpannerStatements(t *testing.T) {
	stmts, err := SpannerStatements()
	require.NoError(t, err)
	require.NotEmpty(t, stmts)

	var tables []string
	for _, s := range stmts {
		assert.False(t, strings.HasSuffix(s, ";"))
		if strings.HasPrefix(s, "CREATE TABLE ") {
			tables = append(tables, strings.Fields(s)[2])
		}
	}
	assert.Equal(t, []string{"stores", "categories", "items", "outbox_events"}, tables)
}

func TestPostgresFilesArePaired(t *testing.T) {
	ups, err := fs.Glob(Postgres, "postgres/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(Postgres, "postgres/*.down.sql")
	require.NoError(t, err)
	assert.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}
