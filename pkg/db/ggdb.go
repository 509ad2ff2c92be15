package db

import (
	"context"
	"database/sql"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/yumyai/geneplatter/internal/util"

	_ "modernc.org/sqlite"
)

const MatrixDBName = "gene_year_matrix.db"

// OpenMatrixStore opens (or creates) the sqlite file at path and makes sure
// the schema exists.
func OpenMatrixStore(ctx context.Context, path string) (*MatrixStore, error) {
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, errors.Wrapf(err, "create folder for %s", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}

	store := NewMatrixStore(db)
	if err := store.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// OpenExistingMatrixStore opens a saved matrix database without creating one.
func OpenExistingMatrixStore(ctx context.Context, path string) (*MatrixStore, error) {
	if !util.FileExists(path) {
		return nil, errors.WithHint(
			errors.Wrapf(ErrInputNotFound, "matrix db %q", path),
			"run geneplatter with --output first, or check the --db path",
		)
	}
	return OpenMatrixStore(ctx, path)
}
