// Package migrations embeds the schema for both storage backends.
package migrations

import (
	"embed"
	"io/fs"
	"strings"
)

// Spanner holds the Cloud Spanner DDL, applied in file name order.
//
//go:embed spanner/*.sql
var Spanner embed.FS

// Postgres holds golang-migrate files (<version>_<name>.up.sql / .down.sql).
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SpannerStatements returns every DDL statement under spanner/, in order.
// Spanner's admin API takes statements without the trailing semicolon.
func SpannerStatements() ([]string, error) {
	entries, err := fs.ReadDir(Spanner, "spanner")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		b, err := fs.ReadFile(Spanner, "spanner/"+e.Name())
		if err != nil {
			return nil, err
		}
		out = append(out, SplitStatements(string(b))...)
	}
	return out, nil
}

// SplitStatements splits a DDL script on semicolons and drops "--" comment lines.
func SplitStatements(sql string) []string {
	sql = strings.ReplaceAll(sql, "\r\n", "\n")

	var kept []string
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}

	parts := strings.Split(strings.Join(kept, "\n"), ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
