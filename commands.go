package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yumyai/geneplatter/internal/util"
	"github.com/yumyai/geneplatter/logger"
	"github.com/yumyai/geneplatter/pkg/db"
	"github.com/yumyai/geneplatter/pkg/handler"
	"github.com/yumyai/geneplatter/pkg/model"
	"github.com/yumyai/geneplatter/pkg/render"
)

var rootCmd = &cobra.Command{
	Use:   "geneplatter -i input.tab -o output_dir",
	Short: "Interactive visualization of accessory/core genes over years",
	Long: `geneplatter reads a .tab annotation file of gene variation records,
counts isolates per gene per year, writes the matrix to the output folder
(gene_year_matrix.csv and gene_year_matrix.db) and serves a page to compare
selected genes over time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlatter,
}

var matrixCmd = &cobra.Command{
	Use:   "matrix -i input.tab",
	Short: "Print the year x gene matrix to the terminal",
	RunE:  runMatrix,
}

var serveCmd = &cobra.Command{
	Use:   "serve --db gene_year_matrix.db",
	Short: "Serve a previously saved matrix without re-parsing the input",
	RunE:  runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "geneplatter", VERSION)
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.Flags().StringP("input", "i", "", "Input .tab file containing gene data")
	rootCmd.Flags().StringP("output", "o", "./output", "Output folder for the matrix files")
	rootCmd.Flags().String("listen", "127.0.0.1:8050", "Address to serve the page on")

	matrixCmd.Flags().StringP("input", "i", "", "Input .tab file containing gene data")

	serveCmd.Flags().String("db", "", "Matrix database written by a previous run")
	serveCmd.Flags().String("listen", "127.0.0.1:8050", "Address to serve the page on")

	rootCmd.AddCommand(matrixCmd, serveCmd, versionCmd)
}

// bootstrap loads config and sets up the logger for a command.
func bootstrap(cmd *cobra.Command) (*Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := logger.InitLogger(logger.ParseLevel(cfg.LogLevel)); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	reportDotenv(logger.L())
	return cfg, nil
}

func reportDotenv(log *zap.Logger) {
	if dotenvErr != nil {
		log.Debug("No .env found, using local environment")
	}
}

func requireInput(cfg *Config) (*db.TabFile, error) {
	if cfg.Input == "" {
		return nil, errors.WithHint(errors.New("no input file given"), "pass -i/--input or set GENEPLATTER_INPUT")
	}
	return db.NewTabFile(cfg.Input)
}

// buildMatrix parses the input and writes the CSV and sqlite copies into the
// output folder.
func buildMatrix(ctx context.Context, cfg *Config) (*model.FrequencyTable, error) {
	tf, err := requireInput(cfg)
	if err != nil {
		return nil, err
	}

	if err := util.EnsureDir(cfg.Output); err != nil {
		return nil, errors.Wrapf(err, "create output folder %s", cfg.Output)
	}

	table, err := tf.Parse()
	if err != nil {
		return nil, err
	}

	logger.Info("Parsed input",
		zap.String("input", cfg.Input),
		zap.Int("genes", len(table.Genes)),
		zap.Int("years", len(table.Years)),
	)

	if table.IsEmpty() {
		logger.Warn("No genes with dated isolates, the chart will be empty")
	}

	matrixPath, err := db.SaveMatrixCSV(cfg.Output, table)
	if err != nil {
		return nil, err
	}
	logger.Info("Saved matrix", zap.String("path", matrixPath))

	store, err := db.OpenMatrixStore(ctx, filepath.Join(cfg.Output, db.MatrixDBName))
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if err := store.SaveTable(ctx, table); err != nil {
		return nil, err
	}

	return table, nil
}

func runPlatter(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	table, err := buildMatrix(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	return serve(cmd.Context(), cfg.Listen, handler.NewAppContext(table, cfg.Input))
}

func runMatrix(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	tf, err := requireInput(cfg)
	if err != nil {
		return err
	}

	table, err := tf.Parse()
	if err != nil {
		return err
	}

	return render.RenderConsoleTable(cmd.OutOrStdout(), table)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	if cfg.DB == "" {
		return errors.WithHint(errors.New("no matrix db given"), "pass --db or set GENEPLATTER_DB")
	}

	store, err := db.OpenExistingMatrixStore(cmd.Context(), cfg.DB)
	if err != nil {
		return err
	}

	table, err := store.LoadTable(cmd.Context())
	store.Close()
	if err != nil {
		return err
	}

	logger.Info("Loaded matrix", zap.String("db", cfg.DB), zap.Int("genes", len(table.Genes)))

	return serve(cmd.Context(), cfg.Listen, handler.NewAppContext(table, cfg.DB))
}
