package database

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"media-catalog-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := New(Config{Driver: DriverSQLite, DSN: MemoryDSN(uuid.NewString())})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

type mockMetricsRecorder struct {
	mu      sync.Mutex
	queries []queryRecord
	stats   []sql.DBStats
}

type queryRecord struct {
	operation string
	table     string
	err       error
}

func (m *mockMetricsRecorder) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, queryRecord{operation: operation, table: table, err: err})
}

func (m *mockMetricsRecorder) UpdateDBStats(stats interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := stats.(sql.DBStats); ok {
		m.stats = append(m.stats, s)
	}
}

func (m *mockMetricsRecorder) statsCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stats)
}

func (m *mockMetricsRecorder) operations() []string {
	ops := make([]string, 0, len(m.queries))
	for _, q := range m.queries {
		ops = append(ops, q.operation+":"+q.table)
	}
	return ops
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(Config{Driver: "mysql", DSN: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestPing(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, Ping(context.Background(), db))
	assert.Error(t, Ping(context.Background(), nil))
}

func TestAutoMigrate_CreatesAllTables(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{"categories", "artworks", "users", "comments", "reviews", "tags", domain.ArtworkTagTable} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
}

func TestSafeAutoMigrate_IsRepeatable(t *testing.T) {
	db := setupTestDB(t)
	logger := zap.NewNop()

	require.NoError(t, SafeAutoMigrate(db, logger))
	require.NoError(t, SafeAutoMigrate(db, logger))
}

func TestSchema_CascadesDeletes(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, AutoMigrate(db))

	category := &domain.Category{Name: "aaa", Description: "aaa"}
	require.NoError(t, db.Create(category).Error)
	user := &domain.User{Login: "dada", PasswordHash: "x", Email: "qwerty@gmail.com"}
	require.NoError(t, db.Create(user).Error)
	tag := &domain.Tag{Name: "fantasy", Description: "deep dark fantasy"}
	require.NoError(t, db.Create(tag).Error)

	artwork := &domain.Artwork{
		Title:       "abc",
		PosterURL:   "https://example.com/p.jpg",
		ReleaseDate: datatypes.Date(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)),
		AgeRating:   "G",
		StarRating:  4.3,
		CategoryID:  category.ID,
	}
	require.NoError(t, db.Create(artwork).Error)
	require.NoError(t, db.Model(artwork).Association("Tags").Append(tag))
	require.NoError(t, db.Create(&domain.Comment{Text: "c", AuthorID: user.ID, ArtworkID: artwork.ID}).Error)
	require.NoError(t, db.Create(&domain.Review{Text: "r", Score: 2.4, AuthorID: user.ID, ArtworkID: artwork.ID}).Error)

	require.NoError(t, db.Delete(&domain.Category{}, category.ID).Error)

	count := func(model interface{}) int64 {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		return n
	}
	assert.Zero(t, count(&domain.Artwork{}))
	assert.Zero(t, count(&domain.Comment{}))
	assert.Zero(t, count(&domain.Review{}))

	var links int64
	require.NoError(t, db.Table(domain.ArtworkTagTable).Count(&links).Error)
	assert.Zero(t, links)

	// tags and users are not owned by the category
	assert.Equal(t, int64(1), count(&domain.Tag{}))
	assert.Equal(t, int64(1), count(&domain.User{}))
}

func TestSchema_UniqueReviewPerAuthorAndArtwork(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, AutoMigrate(db))

	category := &domain.Category{Name: "films"}
	require.NoError(t, db.Create(category).Error)
	user := &domain.User{Login: "u", PasswordHash: "x", Email: "u@example.com"}
	require.NoError(t, db.Create(user).Error)
	artwork := &domain.Artwork{Title: "t", CategoryID: category.ID}
	require.NoError(t, db.Create(artwork).Error)

	require.NoError(t, db.Create(&domain.Review{Text: "first", AuthorID: user.ID, ArtworkID: artwork.ID}).Error)
	err := db.Create(&domain.Review{Text: "second", AuthorID: user.ID, ArtworkID: artwork.ID}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestRegisterMetricsCallbacks(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, AutoMigrate(db))

	recorder := &mockMetricsRecorder{}
	require.NoError(t, RegisterMetricsCallbacks(db, recorder))

	tag := &domain.Tag{Name: "noir"}
	require.NoError(t, db.Create(tag).Error)
	require.NoError(t, db.Model(tag).Update("description", "dark").Error)
	var found domain.Tag
	require.NoError(t, db.First(&found, tag.ID).Error)
	require.NoError(t, db.Delete(&domain.Tag{}, tag.ID).Error)

	ops := recorder.operations()
	assert.Contains(t, ops, "insert:tags")
	assert.Contains(t, ops, "update:tags")
	assert.Contains(t, ops, "select:tags")
	assert.Contains(t, ops, "delete:tags")
}

func TestRegisterMetricsCallbacks_RecordsErrors(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, AutoMigrate(db))

	recorder := &mockMetricsRecorder{}
	require.NoError(t, RegisterMetricsCallbacks(db, recorder))

	var missing domain.Tag
	err := db.First(&missing, 999).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NotEmpty(t, recorder.queries)
	last := recorder.queries[len(recorder.queries)-1]
	assert.Equal(t, "select", last.operation)
	assert.Error(t, last.err)
}

func TestStartDBStatsCollector(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}

	done := StartDBStatsCollector(db, recorder, 10*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	close(done)

	assert.Positive(t, recorder.statsCount())
}
