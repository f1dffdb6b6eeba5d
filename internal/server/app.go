// Package server wires the stores, the protection pipeline and the services
// together and runs the public REST endpoint next to the owner gRPC endpoint
// until the process is signalled.
package server

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/imagekeeper/internal/aiprotect"
	"github.com/dmitrijs2005/imagekeeper/internal/dbx"
	"github.com/dmitrijs2005/imagekeeper/internal/execx"
	"github.com/dmitrijs2005/imagekeeper/internal/logging"
	"github.com/dmitrijs2005/imagekeeper/internal/metadata"
	"github.com/dmitrijs2005/imagekeeper/internal/pipeline"
	"github.com/dmitrijs2005/imagekeeper/internal/server/blob"
	"github.com/dmitrijs2005/imagekeeper/internal/server/config"
	"github.com/dmitrijs2005/imagekeeper/internal/server/mail"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/memstore"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/imagekeeper/internal/server/rest"
	"github.com/dmitrijs2005/imagekeeper/internal/server/services"
	"github.com/dmitrijs2005/imagekeeper/internal/stego"
	"github.com/dmitrijs2005/imagekeeper/internal/timex"
	"github.com/dmitrijs2005/imagekeeper/internal/watermark"

	gs "github.com/dmitrijs2005/imagekeeper/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	grpc     *gs.GRPCServer
	rest     *rest.Server
	notifier *mail.Notifier
	closers  []func() error
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.New(c.LogLevel)
	app := &App{config: c, logger: logger}

	masterKey, err := hex.DecodeString(c.MasterKey)
	if err != nil || len(masterKey) != 32 {
		return nil, fmt.Errorf("master key must be 32 hex encoded bytes")
	}

	runner, rm, err := app.initStore(context.Background())
	if err != nil {
		app.close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	blobs, files, err := app.initBlobs()
	if err != nil {
		app.close()
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	mailer, err := app.initMailer()
	if err != nil {
		app.close()
		return nil, fmt.Errorf("mail init error: %w", err)
	}
	app.notifier = mail.NewNotifier(mailer, logger)

	tools := execx.CommandRunner{Timeout: c.ExternalToolTimeout}
	exif := metadata.NewExifTool(tools, c.ExifToolPath)

	builder, err := app.initPipeline(tools, exif)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("pipeline init error: %w", err)
	}

	users := services.NewUserService(runner, rm, c)
	assets := services.NewAssetService(runner, rm, blobs, masterKey, c.DefaultAlgorithm, logger)
	settings := services.NewSettingsService(runner, rm)
	grants := services.NewGrantService(runner, rm, blobs, assets, builder, logger)
	access := services.NewAccessService(runner, rm, blobs, assets, mailer, app.notifier, timex.SystemClock{}, c, logger)
	inspect := services.NewInspectService(runner, rm, blobs, assets, exif, "", logger)

	app.grpc = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, gs.Services{
		Users:    users,
		Assets:   assets,
		Settings: settings,
		Grants:   grants,
		Access:   access,
		Inspect:  inspect,
	}, c.SecretKey, c.PublicBaseURL)

	var sf rest.SignedFiles
	if files != nil {
		sf = files
	}
	app.rest = rest.NewServer(c.EndpointAddrHTTP, access, sf, rest.NewLimiter(c.RateLimitPerMinute, c.RateLimitBurst), logger)

	return app, nil
}

// initStore opens PostgreSQL when a DSN is configured and falls back to the
// in-memory store otherwise.
func (app *App) initStore(ctx context.Context) (dbx.Runner, repomanager.RepositoryManager, error) {
	if app.config.DatabaseDSN == "" {
		app.logger.Warn(ctx, "no database configured, state is kept in memory")
		s := memstore.New()
		return s, s, nil
	}

	db, err := sql.Open("pgx", app.config.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	app.closers = append(app.closers, db.Close)

	if err := db.PingContext(ctx); err != nil {
		return nil, nil, err
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}
	return dbx.NewSQLRunner(db), rm, nil
}

// initBlobs returns the configured blob store and, for badger, the store
// again as the signed file source of the REST endpoint.
func (app *App) initBlobs() (blob.Store, *blob.BadgerStore, error) {
	switch app.config.BlobBackend {
	case config.BlobS3:
		return blob.NewS3Store(app.config), nil, nil
	case config.BlobBadger, "":
		b, err := blob.OpenBadger(app.config.BadgerPath, app.config.PublicBaseURL, []byte(app.config.SecretKey))
		if err != nil {
			return nil, nil, err
		}
		app.closers = append(app.closers, b.Close)
		return b, b, nil
	default:
		return nil, nil, fmt.Errorf("unknown blob backend %q", app.config.BlobBackend)
	}
}

func (app *App) initMailer() (mail.Mailer, error) {
	if app.config.SMTPHost == "" {
		app.logger.Warn(context.Background(), "no SMTP host configured, mails are logged")
		return mail.NewLogMailer(app.logger), nil
	}
	return mail.NewSMTPMailer(app.config)
}

func (app *App) initPipeline(runner execx.Runner, rewriter metadata.Rewriter) (*pipeline.Pipeline, error) {
	var renderer watermark.Renderer
	if app.config.WatermarkCommand != "" {
		renderer = watermark.ProcessRenderer{Tool: &execx.ImageTool{Runner: runner, Command: app.config.WatermarkCommand}}
	} else {
		r, err := watermark.NewTextRenderer()
		if err != nil {
			return nil, err
		}
		renderer = r
	}

	protector := aiprotect.New(&execx.ImageTool{Runner: runner, Command: app.config.AIProtectCommand})

	return pipeline.New(protector, stego.New(), renderer, rewriter, "", app.logger), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// serve runs one endpoint and takes the whole app down when it fails.
func (app *App) serve(ctx context.Context, cancelFunc context.CancelFunc, name string, run func(context.Context) error) {
	if err := run(ctx); err != nil {
		app.logger.Error(ctx, "server failed", "server", name, "error", err)
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.serve(ctx, cancelFunc, "grpc", app.grpc.Run)
	}()
	go func() {
		defer wg.Done()
		app.serve(ctx, cancelFunc, "rest", app.rest.Run)
	}()

	wg.Wait()

	app.notifier.Wait()
	app.close()
	app.logger.Info(context.Background(), "App stopped")
}

func (app *App) close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			app.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
	app.closers = nil
}
