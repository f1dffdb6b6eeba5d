package auditlog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/imagekeeper/internal/dbx"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *PostgresRepository) Append(ctx context.Context, e *models.AuditEntry) error {
	query := `
		INSERT INTO audit_log (id, grant_id, email, ip, country, region, city, action, success, created_at,
		                       grant_token, grant_name, asset_id, asset_name, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.db.ExecContext(ctx, query, e.ID, nullable(e.GrantID), e.Email, e.IP, e.Country, e.Region, e.City,
		e.Action, e.Success, e.CreatedAt,
		e.GrantToken, e.GrantName, e.AssetID, e.AssetName, e.OwnerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SnapshotGrant(ctx context.Context, grantID string, snap models.GrantSnapshot) (int64, error) {
	query := `
		UPDATE audit_log
		SET grant_token = $2, grant_name = $3, asset_id = $4, asset_name = $5, owner_id = $6
		WHERE grant_id = $1
	`
	res, err := r.db.ExecContext(ctx, query, grantID, snap.GrantToken, snap.GrantName, snap.AssetID, snap.AssetName, snap.OwnerID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string, limit int) ([]*models.AuditEntry, error) {
	query := `
		SELECT l.id, l.grant_id, l.email, l.ip, l.country, l.region, l.city, l.action, l.success, l.created_at,
		       COALESCE(g.token, l.grant_token), COALESCE(g.name, l.grant_name),
		       COALESCE(g.asset_id::text, l.asset_id), COALESCE(a.name, l.asset_name),
		       COALESCE(g.owner_id::text, l.owner_id)
		FROM audit_log l
		LEFT JOIN grants g ON g.id = l.grant_id
		LEFT JOIN assets a ON a.id = g.asset_id
		WHERE g.owner_id::text = $1 OR l.owner_id = $1
		ORDER BY l.created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.AuditEntry
	for rows.Next() {
		e := &models.AuditEntry{}
		var grantID sql.NullString
		err := rows.Scan(&e.ID, &grantID, &e.Email, &e.IP, &e.Country, &e.Region, &e.City, &e.Action, &e.Success, &e.CreatedAt,
			&e.GrantToken, &e.GrantName, &e.AssetID, &e.AssetName, &e.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		e.GrantID = grantID.String
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
