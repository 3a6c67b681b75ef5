package parser

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// DefaultTable is the SQLite table read when none is configured
const DefaultTable = "matches"

// ReadSQLiteTable reads every row of a table in a SQLite database
func ReadSQLiteTable(ctx context.Context, dbPath, tableName string) (*Table, error) {
	if tableName == "" {
		tableName = DefaultTable
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", ErrUnreadable, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: connecting to database: %v", ErrUnreadable, err)
	}

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+quoteIdentifier(tableName))
	if err != nil {
		return nil, fmt.Errorf("%w: querying table %s: %v", ErrUnreadable, tableName, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: reading columns: %v", ErrUnreadable, err)
	}

	table := &Table{Header: columns}
	values := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", ErrUnreadable, err)
		}
		record := make([]Cell, len(columns))
		for i, v := range values {
			if v.Valid {
				record[i] = TextCell(v.String)
			}
		}
		table.Rows = append(table.Rows, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating rows: %v", ErrUnreadable, err)
	}

	return table, nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
