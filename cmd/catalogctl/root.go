package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"media-catalog-api/internal/config"
	"media-catalog-api/internal/database"
)

// cli carries global flags and the database opener shared by subcommands
type cli struct {
	configPath string
	driver     string
	dsn        string
	verbose    bool
	jsonOutput bool

	logger *zap.Logger
	openDB func(cfg config.DatabaseConfig) (*gorm.DB, error)
}

func newCLI() *cli {
	return &cli{
		openDB: func(cfg config.DatabaseConfig) (*gorm.DB, error) {
			return database.New(database.Config{
				Driver:          cfg.Driver,
				DSN:             cfg.GetDSN(),
				MaxOpenConns:    cfg.MaxOpenConns,
				MaxIdleConns:    cfg.MaxIdleConns,
				ConnMaxLifetime: cfg.ConnMaxLifetime,
			})
		},
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "Administer the media catalog database",
		Long: `catalogctl manages the media catalog database directly.

Commands:
  migrate  - create or update the schema
  seed     - insert sample categories, artworks, tags, users, comments and reviews
  stats    - print row counts per table`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.logger != nil {
				return nil
			}
			if c.verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				c.logger = logger
			} else {
				c.logger = zap.NewNop()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "configs/config.yaml", "Path to the YAML config file")
	root.PersistentFlags().StringVar(&c.driver, "driver", "", "Database driver override (sqlite or postgres)")
	root.PersistentFlags().StringVar(&c.dsn, "dsn", "", "Database URL override")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Verbose output")
	root.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "Output in JSON format")

	root.AddCommand(newMigrateCmd(c), newSeedCmd(c), newStatsCmd(c))
	return root
}

// connect loads configuration, applies flag overrides and opens the database
func (c *cli) connect() (*gorm.DB, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if c.driver != "" {
		cfg.Database.Driver = c.driver
	}
	if c.dsn != "" {
		cfg.Database.URL = c.dsn
	}

	db, err := c.openDB(cfg.Database)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("Database connected", zap.String("driver", cfg.Database.Driver))
	return db, nil
}
