package grants

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/pipeline"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columnNames = []string{"id", "asset_id", "owner_id", "token", "name", "features", "password_hash", "allowed_emails",
	"max_views", "current_views", "allow_download", "artifact_key", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	g := &models.Grant{ID: "g1", AssetID: "a1", OwnerID: "u1", Token: "tok", Name: "press",
		Features: pipeline.Features{Watermark: true}, MaxViews: 3, CreatedAt: created}

	mock.ExpectExec(`INSERT\s+INTO\s+grants`).
		WithArgs("g1", "a1", "u1", "tok", "press",
			[]byte(`{"watermark":true,"hidden_watermark":false,"metadata":false,"ai_protection":false}`),
			"", []byte(`[]`), 3, 0, false, "", created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), g))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateToken(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(`INSERT\s+INTO\s+grants`).WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &models.Grant{ID: "g1"})
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestGetByToken_DecodesJSON(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+grants\s+WHERE\s+token\s*=\s*\$1`).
		WithArgs("tok").
		WillReturnRows(sqlmock.NewRows(columnNames).AddRow("g1", "a1", "u1", "tok", "press",
			[]byte(`{"watermark":true,"metadata":true}`), "$argon2id$x", []byte(`["alice@example.com"]`),
			3, 1, true, "grants/g1/protected.png", time.Now()))

	g, err := repo.GetByToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, pipeline.Features{Watermark: true, Metadata: true}, g.Features)
	assert.Equal(t, []string{"alice@example.com"}, g.AllowedEmails)
	assert.True(t, g.RequiresPassword())
	assert.Equal(t, 1, g.CurrentViews)
}

func TestGetByToken_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM\s+grants\s+WHERE\s+token`).WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByToken(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestIncrementViews(t *testing.T) {
	q := `(?s)UPDATE\s+grants\s+SET\s+current_views\s*=\s*current_views\s*\+\s*1\s+WHERE\s+id\s*=\s*\$1\s+AND\s+\(max_views\s*=\s*0\s+OR\s+current_views\s*<\s*max_views\)\s+RETURNING\s+current_views`

	t.Run("counts", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs("g1").WillReturnRows(sqlmock.NewRows([]string{"current_views"}).AddRow(2))

		n, err := repo.IncrementViews(context.Background(), "g1")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("exhausted", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs("g1").WillReturnError(sql.ErrNoRows)

		_, err := repo.IncrementViews(context.Background(), "g1")
		assert.ErrorIs(t, err, common.ErrGrantExhausted)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs("g1").WillReturnError(errors.New("boom"))

		_, err := repo.IncrementViews(context.Background(), "g1")
		assert.ErrorContains(t, err, "db error: boom")
	})
}

func TestAppendAllowedEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)UPDATE\s+grants\s+SET\s+allowed_emails\s*=\s*allowed_emails\s*\|\|\s*jsonb_build_array\(\$2::text\)\s+WHERE\s+id\s*=\s*\$1\s+AND\s+NOT`).
		WithArgs("g1", "bob@example.com").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.AppendAllowedEmail(context.Background(), "g1", "bob@example.com"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByAsset(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+grants\s+WHERE\s+owner_id\s*=\s*\$1\s+AND\s+asset_id\s*=\s*\$2`).
		WithArgs("u1", "a1").
		WillReturnRows(sqlmock.NewRows(columnNames).
			AddRow("g1", "a1", "u1", "t1", "one", []byte(`{}`), "", []byte(`[]`), 0, 0, false, "", time.Now()).
			AddRow("g2", "a1", "u1", "t2", "two", []byte(`{}`), "", []byte(`[]`), 0, 0, false, "", time.Now()))

	got, err := repo.ListByAsset(context.Background(), "u1", "a1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "t2", got[1].Token)
}
