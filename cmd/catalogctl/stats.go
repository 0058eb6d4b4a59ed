package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"media-catalog-api/internal/database"
	"media-catalog-api/internal/repository"
	"media-catalog-api/internal/service"
)

func newStatsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print row counts per catalog table",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := c.connect()
			if err != nil {
				return err
			}
			defer database.Close(db)

			return runStats(cmd.Context(), db, c.logger, cmd.OutOrStdout(), c.jsonOutput)
		},
	}
}

func runStats(ctx context.Context, db *gorm.DB, logger *zap.Logger, out io.Writer, jsonOutput bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	stats, err := service.NewStatsService(service.StatsRepositories{
		Categories: repository.NewCategoryRepository(db),
		Artworks:   repository.NewArtworkRepository(db),
		Users:      repository.NewUserRepository(db),
		Comments:   repository.NewCommentRepository(db),
		Reviews:    repository.NewReviewRepository(db),
		Tags:       repository.NewTagRepository(db),
	}, logger).Stats(ctx)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tROWS")
	fmt.Fprintf(w, "categories\t%d\n", stats.Categories)
	fmt.Fprintf(w, "artworks\t%d\n", stats.Artworks)
	fmt.Fprintf(w, "users\t%d\n", stats.Users)
	fmt.Fprintf(w, "comments\t%d\n", stats.Comments)
	fmt.Fprintf(w, "reviews\t%d\n", stats.Reviews)
	fmt.Fprintf(w, "tags\t%d\n", stats.Tags)
	return w.Flush()
}
