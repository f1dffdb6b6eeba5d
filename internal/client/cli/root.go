package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/imagekeeper/internal/buildinfo"
	"github.com/dmitrijs2005/imagekeeper/internal/client/config"
)

// RootCommand builds the command tree.
func (a *App) RootCommand() *cobra.Command {
	var (
		addr    string
		baseURL string
		session string
		timeout time.Duration
	)

	root := &cobra.Command{
		Use:   "imgtool",
		Short: "ImageKeeper CLI - protect images and share them under control",
		Long: `imgtool encrypts, scrambles, watermarks and hides messages in images
locally, and manages protected images, share links and access requests on an
ImageKeeper server.`,
		Version:       buildinfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(a.configFile)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.ServerEndpointAddr = addr
			}
			if flags.Changed("url") {
				cfg.PublicBaseURL = baseURL
			}
			if flags.Changed("session") {
				cfg.SessionFile = session
			}
			if flags.Changed("timeout") {
				cfg.RequestTimeout = timeout
			}
			a.config = cfg
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "JSON config file")
	pf.StringVarP(&addr, "addr", "a", "", "owner gRPC endpoint (host:port)")
	pf.StringVarP(&baseURL, "url", "u", "", "public REST base URL")
	pf.StringVar(&session, "session", "", "session file")
	pf.DurationVar(&timeout, "timeout", 0, "deadline of remote calls")
	pf.StringVarP(&a.output, "output", "o", "text", "output format (text, json)")

	root.AddCommand(
		a.encryptCommand(),
		a.decryptCommand(),
		a.chaosCommand(),
		a.stegoCommand(),
		a.watermarkCommand(),

		a.registerCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.uploadCommand(),
		a.assetsCommand(),
		a.settingsCommand(),
		a.grantCommand(),
		a.requestsCommand(),
		a.auditCommand(),
		a.notificationsCommand(),
		a.inspectCommand(),

		a.viewCommand(),
		a.requestAccessCommand(),
	)
	return root
}
