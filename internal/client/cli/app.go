package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/imagekeeper/internal/client/client"
	"github.com/dmitrijs2005/imagekeeper/internal/client/config"
)

var errNotLoggedIn = errors.New("not logged in, run `imgtool login` first")

type App struct {
	config     *config.Config
	configFile string
	output     string

	reader *bufio.Reader
	out    io.Writer

	// seams for tests
	newClient func(cfg *config.Config) (client.Client, error)
	newViewer func(cfg *config.Config) *client.ViewerClient
}

func NewApp(in io.Reader, out io.Writer) *App {
	return &App{
		reader: bufio.NewReader(in),
		out:    out,
		newClient: func(cfg *config.Config) (client.Client, error) {
			return client.NewGRPCClient(cfg.ServerEndpointAddr)
		},
		newViewer: func(cfg *config.Config) *client.ViewerClient {
			return client.NewViewerClient(cfg.PublicBaseURL, &http.Client{Timeout: cfg.RequestTimeout})
		},
	}
}

// Run executes the command line args.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.RootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	return root.ExecuteContext(ctx)
}

func (a *App) printer() *Printer {
	return NewPrinter(a.output, a.out)
}

// withOwner runs fn with a client carrying the saved session and writes
// rotated tokens back afterwards.
func (a *App) withOwner(cmd *cobra.Command, fn func(ctx context.Context, c client.Client) error) error {
	sess, err := client.LoadSession(a.config.SessionFile)
	if err != nil {
		return err
	}
	if sess.AccessToken == "" {
		return errNotLoggedIn
	}

	c, err := a.newClient(a.config)
	if err != nil {
		return err
	}
	defer c.Close()
	c.SetTokens(sess.AccessToken, sess.RefreshToken)

	ctx, cancel := a.timeout(cmd.Context())
	defer cancel()

	callErr := fn(ctx, c)

	if access, refresh := c.Tokens(); access != sess.AccessToken || refresh != sess.RefreshToken {
		sess.AccessToken, sess.RefreshToken = access, refresh
		if err := sess.Save(a.config.SessionFile); err != nil {
			return errors.Join(callErr, fmt.Errorf("save session: %w", err))
		}
	}
	if errors.Is(callErr, client.ErrUnauthorized) {
		return fmt.Errorf("%w: session expired, log in again", callErr)
	}
	return callErr
}

func (a *App) timeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	d := a.config.RequestTimeout
	if d <= 0 {
		d = 30 * time.Second
	}
	return context.WithTimeout(ctx, d)
}
