package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"media-catalog-api/internal/database"
	"media-catalog-api/internal/dto"
	"media-catalog-api/internal/repository"
	"media-catalog-api/internal/service"
)

type seedArtwork struct {
	category string
	request  dto.CreateArtworkRequest
	tags     []string
}

var (
	seedCategories = []dto.CreateCategoryRequest{
		{Name: "Animation", Description: "Animated films and series"},
		{Name: "Drama", Description: "Character driven stories"},
		{Name: "Books", Description: "Novels and graphic novels"},
	}

	seedTags = []dto.CreateTagRequest{
		{Name: "fantasy", Description: "Magic and other worlds"},
		{Name: "classic", Description: "Stood the test of time"},
		{Name: "family", Description: "Suitable for all ages"},
	}

	seedArtworks = []seedArtwork{
		{
			category: "Animation",
			request: dto.CreateArtworkRequest{
				Title:       "Spirited Away",
				Description: "A girl wanders into a world of spirits",
				PosterURL:   "https://example.com/posters/spirited-away.jpg",
				ReleaseDate: "2001-07-20",
				AgeRating:   "PG",
				StarRating:  4.8,
			},
			tags: []string{"fantasy", "family"},
		},
		{
			category: "Drama",
			request: dto.CreateArtworkRequest{
				Title:       "12 Angry Men",
				Description: "A jury deliberates a murder case",
				PosterURL:   "https://example.com/posters/12-angry-men.jpg",
				ReleaseDate: "1957-04-10",
				AgeRating:   "G",
				StarRating:  4.9,
			},
			tags: []string{"classic"},
		},
		{
			category: "Books",
			request: dto.CreateArtworkRequest{
				Title:       "The Hobbit",
				Description: "There and back again",
				PosterURL:   "https://example.com/posters/the-hobbit.jpg",
				ReleaseDate: "1937-09-21",
				AgeRating:   "G",
				StarRating:  4.7,
			},
			tags: []string{"fantasy", "classic"},
		},
	}

	seedUsers = []dto.CreateUserRequest{
		{Login: "dada", Password: "secret", Email: "dada@example.com"},
		{Login: "lala", Password: "secret", Email: "lala@example.com"},
	}
)

func newSeedCmd(c *cli) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample catalog data",
		Long: `Insert sample categories, artworks, tags, users, comments and reviews.

The schema is migrated first. An empty catalog is required unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := c.connect()
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				return err
			}
			return runSeed(cmd.Context(), db, c.logger, cmd.OutOrStdout(), force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Seed even when the catalog already has categories")
	return cmd
}

// runSeed inserts the sample data through the services so the catalog rules apply
func runSeed(ctx context.Context, db *gorm.DB, logger *zap.Logger, out io.Writer, force bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	categoryRepo := repository.NewCategoryRepository(db)
	artworkRepo := repository.NewArtworkRepository(db)
	tagRepo := repository.NewTagRepository(db)
	userRepo := repository.NewUserRepository(db)

	existing, err := categoryRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if existing > 0 && !force {
		fmt.Fprintf(out, "Catalog already has %d categories, use --force to seed anyway\n", existing)
		return nil
	}

	categories := service.NewCategoryService(categoryRepo, nil, logger)
	tags := service.NewTagService(tagRepo, nil, logger)
	artworks := service.NewArtworkService(artworkRepo, categoryRepo, tagRepo, nil, nil, logger)
	users := service.NewUserService(userRepo, nil, logger)
	comments := service.NewCommentService(repository.NewCommentRepository(db), userRepo, artworkRepo, nil, logger)
	reviews := service.NewReviewService(repository.NewReviewRepository(db), userRepo, artworkRepo, nil, logger)

	categoryIDs := make(map[string]uint, len(seedCategories))
	for i := range seedCategories {
		created, err := categories.CreateCategory(ctx, &seedCategories[i])
		if err != nil {
			return fmt.Errorf("failed to seed category %q: %w", seedCategories[i].Name, err)
		}
		categoryIDs[created.Name] = created.ID
	}

	tagIDs := make(map[string]uint, len(seedTags))
	for i := range seedTags {
		created, err := tags.CreateTag(ctx, &seedTags[i])
		if err != nil {
			return fmt.Errorf("failed to seed tag %q: %w", seedTags[i].Name, err)
		}
		tagIDs[created.Name] = created.ID
	}

	artworkIDs := make([]uint, 0, len(seedArtworks))
	for i := range seedArtworks {
		sa := &seedArtworks[i]
		created, err := artworks.CreateArtwork(ctx, categoryIDs[sa.category], &sa.request)
		if err != nil {
			return fmt.Errorf("failed to seed artwork %q: %w", sa.request.Title, err)
		}
		for _, tag := range sa.tags {
			if _, err := artworks.AddTag(ctx, created.ID, tagIDs[tag]); err != nil {
				return fmt.Errorf("failed to tag artwork %q: %w", sa.request.Title, err)
			}
		}
		artworkIDs = append(artworkIDs, created.ID)
	}

	userIDs := make([]uint, 0, len(seedUsers))
	for i := range seedUsers {
		created, err := users.CreateUser(ctx, &seedUsers[i])
		if err != nil {
			return fmt.Errorf("failed to seed user %q: %w", seedUsers[i].Login, err)
		}
		userIDs = append(userIDs, created.ID)
	}

	// every user comments on and reviews every artwork
	for _, userID := range userIDs {
		for n, artworkID := range artworkIDs {
			if _, err := comments.CreateComment(ctx, userID, artworkID, &dto.CreateCommentRequest{
				Text:  "Worth watching again",
				Likes: n,
			}); err != nil {
				return fmt.Errorf("failed to seed comment: %w", err)
			}
			if _, err := reviews.CreateReview(ctx, userID, artworkID, &dto.CreateReviewRequest{
				Text:  "Recommended",
				Score: 7 + float64(n),
			}); err != nil {
				return fmt.Errorf("failed to seed review: %w", err)
			}
		}
	}

	fmt.Fprintf(out, "Seeded %d categories, %d tags, %d artworks, %d users\n",
		len(categoryIDs), len(tagIDs), len(artworkIDs), len(userIDs))
	return nil
}
