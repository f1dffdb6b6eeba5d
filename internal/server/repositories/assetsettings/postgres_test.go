package assetsettings

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/metadata"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
	"github.com/dmitrijs2005/imagekeeper/internal/watermark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestGet_DecodesJSONColumns(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	wm := watermark.DefaultSettings()
	wm.Text = "CONFIDENTIAL"
	wmJSON, _ := json.Marshal(wm)
	mdJSON, _ := json.Marshal(metadata.Fields{Copyright: "ACME", ScrubAll: true})
	updated := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM\s+asset_settings\s+WHERE\s+asset_id\s*=\s*\$1`).
		WithArgs("a1").
		WillReturnRows(sqlmock.NewRows([]string{"asset_id", "watermark_enabled", "watermark", "hidden_enabled", "hidden_message",
			"metadata_enabled", "metadata", "ai_protection_enabled", "updated_at"}).
			AddRow("a1", true, wmJSON, true, "owner:alice", true, mdJSON, false, updated))

	got, err := repo.Get(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "CONFIDENTIAL", got.Watermark.Text)
	assert.Equal(t, wm.Opacity, got.Watermark.Opacity)
	assert.Equal(t, "ACME", got.Metadata.Copyright)
	assert.True(t, got.Metadata.ScrubAll)
	assert.Equal(t, "owner:alice", got.HiddenMessage)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM\s+asset_settings`).WithArgs("a1").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "a1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpsert(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	s := models.DefaultAssetSettings("a1")
	s.HiddenEnabled = true
	s.HiddenMessage = "hi"

	mock.ExpectExec(`INSERT\s+INTO\s+asset_settings.*ON\s+CONFLICT\s+\(asset_id\)\s+DO\s+UPDATE`).
		WithArgs("a1", false, sqlmock.AnyArg(), true, "hi", false, sqlmock.AnyArg(), false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), s))
	require.NoError(t, mock.ExpectationsWereMet())
}
