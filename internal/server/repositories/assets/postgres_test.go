package assets

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columnNames = []string{"id", "owner_id", "name", "algorithm", "wrapped_key", "storage_key", "sidecar_key", "size", "width", "height",
	"watermark_enabled", "hidden_watermark_enabled", "metadata_enabled", "ai_protection_enabled", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func sampleAsset() *models.Asset {
	return &models.Asset{
		ID: "a1", OwnerID: "u1", Name: "photo.png", Algorithm: models.AlgoAESCBCHMAC,
		WrappedKey: []byte{1, 2, 3}, StorageKey: "assets/a1/original", Size: 10, Width: 4, Height: 2,
		WatermarkEnabled: true, CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func row(a *models.Asset) *sqlmock.Rows {
	return sqlmock.NewRows(columnNames).AddRow(a.ID, a.OwnerID, a.Name, a.Algorithm, a.WrappedKey, a.StorageKey, a.SidecarKey,
		a.Size, a.Width, a.Height, a.WatermarkEnabled, a.HiddenWatermarkEnabled, a.MetadataEnabled, a.AIProtectionEnabled, a.CreatedAt)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	a := sampleAsset()

	mock.ExpectExec(`INSERT\s+INTO\s+assets`).
		WithArgs(a.ID, a.OwnerID, a.Name, a.Algorithm, a.WrappedKey, a.StorageKey, a.SidecarKey,
			a.Size, a.Width, a.Height, true, false, false, false, a.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), a))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetForOwner(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	a := sampleAsset()

	mock.ExpectQuery(`FROM\s+assets\s+WHERE\s+id\s*=\s*\$1\s+AND\s+owner_id\s*=\s*\$2`).
		WithArgs("a1", "u1").
		WillReturnRows(row(a))

	got, err := repo.GetForOwner(context.Background(), "u1", "a1")
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+assets\s+WHERE\s+id`).WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestListByOwner(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	a := sampleAsset()
	b := sampleAsset()
	b.ID = "a2"

	rows := row(a).AddRow(b.ID, b.OwnerID, b.Name, b.Algorithm, b.WrappedKey, b.StorageKey, b.SidecarKey,
		b.Size, b.Width, b.Height, b.WatermarkEnabled, b.HiddenWatermarkEnabled, b.MetadataEnabled, b.AIProtectionEnabled, b.CreatedAt)
	mock.ExpectQuery(`FROM\s+assets\s+WHERE\s+owner_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC`).
		WithArgs("u1").
		WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a2", got[1].ID)
}

func TestUpdateFlags(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	a := sampleAsset()
	a.MetadataEnabled = true

	mock.ExpectExec(`UPDATE\s+assets\s+SET\s+watermark_enabled`).
		WithArgs("a1", true, false, true, false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateFlags(context.Background(), a))

	mock.ExpectExec(`UPDATE\s+assets`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.UpdateFlags(context.Background(), a), common.ErrorNotFound)
}

func TestDelete_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+assets`).WithArgs("a1").WillReturnError(errors.New("boom"))

	assert.ErrorContains(t, repo.Delete(context.Background(), "a1"), "db error: boom")
}
