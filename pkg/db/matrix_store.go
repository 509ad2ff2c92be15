package db

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"

	"github.com/yumyai/geneplatter/pkg/model"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS genes (
		position INTEGER PRIMARY KEY,
		gene     TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS years (
		position INTEGER PRIMARY KEY,
		year     TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS gene_year_counts (
		year          TEXT NOT NULL,
		gene          TEXT NOT NULL,
		isolate_count INTEGER NOT NULL CHECK (isolate_count >= 0),
		PRIMARY KEY (year, gene)
	)`,
}

// MatrixStore persists a dense frequency table in sqlite.
type MatrixStore struct {
	db *sql.DB
}

func NewMatrixStore(db *sql.DB) *MatrixStore {
	return &MatrixStore{db: db}
}

func (s *MatrixStore) Close() error {
	return s.db.Close()
}

func (s *MatrixStore) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "create matrix schema")
		}
	}
	return nil
}

// SaveTable replaces the stored matrix with table.
func (s *MatrixStore) SaveTable(ctx context.Context, table *model.FrequencyTable) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "fail to begin tx")
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM gene_year_counts`,
		`DELETE FROM genes`,
		`DELETE FROM years`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "clear matrix")
		}
	}

	for i, gene := range table.Genes {
		if _, err := tx.ExecContext(ctx, `INSERT INTO genes (position, gene) VALUES (?, ?)`, i, gene); err != nil {
			return errors.Wrapf(err, "insert gene %s", gene)
		}
	}

	for i, year := range table.Years {
		if _, err := tx.ExecContext(ctx, `INSERT INTO years (position, year) VALUES (?, ?)`, i, year); err != nil {
			return errors.Wrapf(err, "insert year %s", year)
		}
	}

	stm, err := tx.PrepareContext(ctx, `INSERT INTO gene_year_counts (year, gene, isolate_count) VALUES (?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "prepare count insert")
	}
	defer stm.Close()

	for i, year := range table.Years {
		for j, gene := range table.Genes {
			if _, err := stm.ExecContext(ctx, year, gene, table.Counts[i][j]); err != nil {
				return errors.Wrapf(err, "insert count %s/%s", year, gene)
			}
		}
	}

	return tx.Commit()
}

func (s *MatrixStore) orderedColumn(ctx context.Context, query string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0, 16)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// LoadTable rebuilds the stored matrix with its original row and column order.
func (s *MatrixStore) LoadTable(ctx context.Context) (*model.FrequencyTable, error) {

	genes, err := s.orderedColumn(ctx, `SELECT gene FROM genes ORDER BY position`)
	if err != nil {
		return nil, errors.Wrap(err, "load genes")
	}

	years, err := s.orderedColumn(ctx, `SELECT year FROM years ORDER BY position`)
	if err != nil {
		return nil, errors.Wrap(err, "load years")
	}

	geneIdx := make(map[string]int, len(genes))
	for j, g := range genes {
		geneIdx[g] = j
	}
	yearIdx := make(map[string]int, len(years))
	for i, y := range years {
		yearIdx[y] = i
	}

	counts := make([][]int, len(years))
	for i := range counts {
		counts[i] = make([]int, len(genes))
	}

	rows, err := s.db.QueryContext(ctx, `SELECT year, gene, isolate_count FROM gene_year_counts`)
	if err != nil {
		return nil, errors.Wrap(err, "load counts")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			year, gene string
			count      int
		)
		if err := rows.Scan(&year, &gene, &count); err != nil {
			return nil, errors.Wrap(err, "scan count")
		}
		i, okY := yearIdx[year]
		j, okG := geneIdx[gene]
		if !okY || !okG {
			return nil, errors.Newf("count for unknown cell %s/%s", year, gene)
		}
		counts[i][j] = count
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate counts")
	}

	return &model.FrequencyTable{
		Years:  years,
		Genes:  genes,
		Counts: counts,
	}, nil
}
