package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/imagekeeper/internal/dbx"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/accessrequests"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/assets"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/assetsettings"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/auditlog"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/grants"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/notifications"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/otps"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a handle, which is either
// the runner's plain connection or a transaction from Runner.InTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Notifications(db dbx.DBTX) notifications.Repository
	Assets(db dbx.DBTX) assets.Repository
	AssetSettings(db dbx.DBTX) assetsettings.Repository
	Grants(db dbx.DBTX) grants.Repository
	OTPs(db dbx.DBTX) otps.Repository
	AccessRequests(db dbx.DBTX) accessrequests.Repository
	AuditLog(db dbx.DBTX) auditlog.Repository
}
