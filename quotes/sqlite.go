// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quotes

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS quotes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	author TEXT NOT NULL DEFAULT '',
	text TEXT NOT NULL
);`

func openSQLite(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("quotes: empty db path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// LoadSQLite reads the corpus from the quotes table of the SQLite
// database at path, in id order.
func LoadSQLite(ctx context.Context, path string) (Corpus, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	db, err := openSQLite(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT author, text FROM quotes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("quotes.LoadSQLite %s: %w", path, err)
	}
	defer rows.Close()
	var c Corpus
	for rows.Next() {
		var q Quote
		if err := rows.Scan(&q.Author, &q.Text); err != nil {
			return nil, err
		}
		c = append(c, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	c.normalize()
	return c, c.Validate()
}

// WriteSQLite writes the corpus to the quotes table of the SQLite
// database at path, creating the database and table as needed.
// Existing rows are replaced.
func WriteSQLite(ctx context.Context, path string, c Corpus) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	db, err := openSQLite(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("quotes.WriteSQLite: schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM quotes`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO quotes(author, text) VALUES(?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, q := range c {
		if _, err := stmt.ExecContext(ctx, q.Author, q.Text); err != nil {
			return fmt.Errorf("quotes.WriteSQLite: %w", err)
		}
	}
	return tx.Commit()
}
