package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/VSP7988/maranatha-api/domain/content"
	"github.com/VSP7988/maranatha-api/domain/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestListActiveOnlyFiltersAndOrdersByPosition(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContentRepository[models.Banner](db, models.BannerSpec)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "banners" WHERE is_active = $1 ORDER BY "position" ASC, created_at ASC`,
	)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "position", "is_active"}).
			AddRow(uuid.NewString(), "First", 1, true).
			AddRow(uuid.NewString(), "Second", 2, true).
			AddRow(uuid.NewString(), "Third", 3, true))

	rows, err := repo.List(context.Background(), content.ListOptions{ActiveOnly: true})
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{rows[0].Position, rows[1].Position, rows[2].Position})
	assert.NoError(t, mock.ExpectationsWereMet(),
		"inactive rows must be filtered in SQL, not in Go")
}

func TestListWithoutPositionOrdersNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContentRepository[models.Event](db, models.EventSpec)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "events" ORDER BY created_at DESC`,
	)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow(uuid.NewString(), "Latest"))

	rows, err := repo.List(context.Background(), content.ListOptions{})
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "Latest", rows[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDiscriminatorAndLimitNarrowTheQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContentRepository[models.GalleryImage](db, models.GallerySpec)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "gallery_images" WHERE is_active = $1 AND album = $2 ORDER BY "position" ASC, created_at ASC LIMIT $3`,
	)).
		WithArgs(true, "retreat-2025", 6).
		WillReturnRows(sqlmock.NewRows([]string{"id", "album", "position", "is_active"}).
			AddRow(uuid.NewString(), "retreat-2025", 1, true))

	rows, err := repo.List(context.Background(), content.ListOptions{
		ActiveOnly:    true,
		Discriminator: "retreat-2025",
		Limit:         6,
	})
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "retreat-2025", rows[0].Album)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaxPositionCoalescesEmptyTable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContentRepository[models.Banner](db, models.BannerSpec)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COALESCE(MAX("position"), 0) FROM "banners"`,
	)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

	max, err := repo.MaxPosition(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 0, max)
	assert.NoError(t, mock.ExpectationsWereMet())
}
