package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/imagekeeper/internal/client/client"
	"github.com/dmitrijs2005/imagekeeper/internal/client/models"
	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/pipeline"
	"github.com/dmitrijs2005/imagekeeper/internal/watermark"
)

const timeLayout = "2006-01-02 15:04"

// credentials asks for whatever was not passed on the command line.
func (a *App) credentials(email string, confirm bool) (string, string, error) {
	var err error
	if email == "" {
		if email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
			return "", "", err
		}
	}
	get := GetPassword
	if confirm {
		get = GetNewPassword
	}
	pw, err := get(a.out, "Password")
	if err != nil {
		return "", "", err
	}
	defer common.WipeByteArray(pw)
	return email, string(pw), nil
}

func (a *App) registerCommand() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an owner account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, password, err := a.credentials(email, true)
			if err != nil {
				return err
			}
			c, err := a.newClient(a.config)
			if err != nil {
				return err
			}
			defer c.Close()

			ctx, cancel := a.timeout(cmd.Context())
			defer cancel()
			if err := c.Register(ctx, email, password); err != nil {
				return err
			}
			return a.printer().Message("registered %s, run `imgtool login` to sign in", email)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, password, err := a.credentials(email, false)
			if err != nil {
				return err
			}
			c, err := a.newClient(a.config)
			if err != nil {
				return err
			}
			defer c.Close()

			ctx, cancel := a.timeout(cmd.Context())
			defer cancel()
			if err := c.Login(ctx, email, password); err != nil {
				return err
			}

			access, refresh := c.Tokens()
			sess := &client.Session{Email: common.NormalizeEmail(email), AccessToken: access, RefreshToken: refresh}
			if err := sess.Save(a.config.SessionFile); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			return a.printer().Message("logged in as %s", sess.Email)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := client.ClearSession(a.config.SessionFile); err != nil {
				return err
			}
			return a.printer().Message("logged out")
		},
	}
}

func (a *App) uploadCommand() *cobra.Command {
	var name, algo string
	cmd := &cobra.Command{
		Use:     "upload <file>",
		Short:   "Upload an image and store it encrypted",
		Args:    cobra.ExactArgs(1),
		Example: `  imgtool upload photo.jpg --algo chaos-v1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = filepath.Base(args[0])
			}
			return a.withOwner(cmd, func(ctx context.Context, c client.Client) error {
				asset, err := c.UploadAsset(ctx, name, data, algo)
				if err != nil {
					return err
				}
				return a.printAsset(asset)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name (default file name)")
	cmd.Flags().StringVar(&algo, "algo", "", "aes-256-cbc-hmac, aes-256-cbc or chaos-v1 (default server choice)")
	return cmd
}

func (a *App) printAsset(as *models.Asset) error {
	return a.printer().Fields(as,
		"id", as.ID,
		"name", as.Name,
		"algorithm", as.Algorithm,
		"size", fmt.Sprintf("%d bytes, %dx%d", as.Size, as.Width, as.Height),
		"created", as.CreatedAt.Local().Format(timeLayout),
	)
}

func (a *App) assetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assets",
		Aliases: []string{"ls"},
		Short:   "List or delete uploaded images",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withOwner(cmd, func(ctx context.Context, c client.Client) error {
				assets, err := c.ListAssets(ctx)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(assets))
				for _, as := range assets {
					rows = append(rows, []string{
						as.ID, as.Name, as.Algorithm,
						fmt.Sprintf("%dx%d", as.Width, as.Height),
						featureList(pipeline.Features{
							Watermark:       as.WatermarkEnabled,
							HiddenWatermark: as.HiddenWatermarkEnabled,
							Metadata:        as.MetadataEnabled,
							AIProtection:    as.AIProtectionEnabled,
						}),
						as.CreatedAt.Local().Format(timeLayout),
					})
				}
				return a.printer().Table(assets, []string{"ID", "NAME", "ALGORITHM", "SIZE", "PROTECTION", "CREATED"}, rows)
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <asset-id>",
		Short: "Delete an image with its share links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withOwner(cmd, func(ctx context.Context, c client.Client) error {
				if err := c.DeleteAsset(ctx, args[0]); err != nil {
					return err
				}
				return a.printer().Message("deleted %s", args[0])
			})
		},
	})
	return cmd
}

func featureList(f pipeline.Features) string {
	var out []string
	if f.Watermark {
		out = append(out, "watermark")
	}
	if f.HiddenWatermark {
		out = append(out, "hidden")
	}
	if f.Metadata {
		out = append(out, "metadata")
	}
	if f.AIProtection {
		out = append(out, "ai")
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ",")
}

func (a *App) settingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the protection settings of an image",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <asset-id>",
		Short: "Show protection settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withOwner(cmd, func(ctx context.Context, c client.Client) error {
				s, err := c.GetSettings(ctx, args[0])
				if err != nil {
					return err
				}
				return a.printSettings(s)
			})
		},
	})

	var (
		wm, hidden, meta, ai bool
		hiddenMessage        string
		pattern              string
		w                    watermark.Settings
		title, artist, copyr string
		scrub                bool
	)
	set := &cobra.Command{
		Use:     "set <asset-id>",
		Short:   "Change protection settings",
		Args:    cobra.ExactArgs(1),
		Example: `  imgtool settings set 42 --watermark --text "(c) Jane" --pattern tiled --hidden --hidden-message "jane-2024"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			return a.withOwner(cmd, func(ctx context.Context, c client.Client) error {
				s, err := c.GetSettings(ctx, args[0])
				if err != nil {
					return err
				}
				applyBool(f.Changed("watermark"), &s.WatermarkEnabled, wm)
				applyBool(f.Changed("hidden"), &s.HiddenEnabled, hidden)
				applyBool(f.Changed("metadata"), &s.MetadataEnabled, meta)
				applyBool(f.Changed("ai"), &s.AIProtectionEnabled, ai)
				applyBool(f.Changed("scrub"), &s.Metadata.ScrubAll, scrub)
				applyString(f.Changed("hidden-message"), &s.HiddenMessage, hiddenMessage)
				applyString(f.Changed("text"), &s.Watermark.Text, w.Text)
				applyString(f.Changed("color"), &s.Watermark.Color, w.Color)
				applyString(f.Changed("pattern"), (*string)(&s.Watermark.Pattern), pattern)
				applyInt(f.Changed("font-size"), &s.Watermark.FontSize, w.FontSize)
				applyInt(f.Changed("opacity"), &s.Watermark.Opacity, w.Opacity)
				applyInt(f.Changed("rotation"), &s.Watermark.Rotation, w.Rotation)
				applyInt(f.Changed("spacing"), &s.Watermark.Spacing, w.Spacing)
				applyString(f.Changed("title"), &s.Metadata.Title, title)
				applyString(f.Changed("artist"), &s.Metadata.Artist, artist)
				applyString(f.Changed("copyright"), &s.Metadata.Copyright, copyr)

				if _, err := c.UpdateSettings(ctx, s); err != nil {
					return err
				}
				return a.printSettings(s)
			})
		},
	}
	sf := set.Flags()
	sf.BoolVar(&wm, "watermark", false, "enable the visible watermark")
	sf.BoolVar(&hidden, "hidden", false, "enable the hidden watermark")
	sf.BoolVar(&meta, "metadata", false, "enable metadata embedding")
	sf.BoolVar(&ai, "ai", false, "enable AI-training protection")
	sf.StringVar(&hiddenMessage, "hidden-message", "", "text hidden in the image")
	sf.StringVar(&w.Text, "text", "", "watermark text")
	sf.StringVar(&w.Color, "color", "", "watermark color")
	sf.StringVar(&pattern, "pattern", "", "single, diagonal, grid, corners or tiled")
	sf.IntVar(&w.FontSize, "font-size", 0, "watermark font size")
	sf.IntVar(&w.Opacity, "opacity", 0, "watermark opacity percent")
	sf.IntVar(&w.Rotation, "rotation", 0, "watermark rotation in degrees")
	sf.IntVar(&w.Spacing, "spacing", 0, "watermark spacing percent")
	sf.StringVar(&title, "title", "", "metadata title")
	sf.StringVar(&artist, "artist", "", "metadata artist")
	sf.StringVar(&copyr, "copyright", "", "metadata copyright")
	sf.BoolVar(&scrub, "scrub", false, "remove existing metadata first")

	cmd.AddCommand(set)
	return cmd
}

func applyBool(changed bool, dst *bool, v bool) {
	if changed {
		*dst = v
	}
}

func applyString(changed bool, dst *string, v string) {
	if changed {
		*dst = v
	}
}

func applyInt(changed bool, dst *int, v int) {
	if changed {
		*dst = v
	}
}

func (a *App) printSettings(s *models.Settings) error {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	w := s.Watermark
	return a.printer().Fields(s,
		"asset", s.AssetID,
		"watermark", onOff(s.WatermarkEnabled),
		"  text", w.Text,
		"  style", fmt.Sprintf("%s %dpx %s, opacity %d%%, rotation %d, spacing %d%%", w.Font, w.FontSize, w.Color, w.Opacity, w.Rotation, w.Spacing),
		"  pattern", string(w.Pattern),
		"hidden watermark", onOff(s.HiddenEnabled),
		"  message", s.HiddenMessage,
		"metadata", onOff(s.MetadataEnabled),
		"  title", s.Metadata.Title,
		"  artist", s.Metadata.Artist,
		"  copyright", s.Metadata.Copyright,
		"ai protection", onOff(s.AIProtectionEnabled),
	)
}

func (a *App) grantCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "grant",
		Aliases: []string{"share"},
		Short:   "Manage share links",
	}

	var (
		req      models.GrantRequest
		emails   string
		password bool
		features []string
	)
	create := &cobra.Command{
		Use:     "create <asset-id>",
		Short:   "Create a share link",
		Args:    cobra.ExactArgs(1),
		Example: `  imgtool grant create 42 --name "client preview" --emails a@x.com,b@y.com --max-views 3 --features watermark,hidden`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.AssetID = args[0]
			req.AllowedEmails = splitList(emails)
			f, err := parseFeatures(features)
			if err != nil {
				return err
			}
			req.Features = f
			if password {
				pw, err := GetNewPassword(a.out, "Link password")
				if err != nil {
					return err
				}
				req.Password = string(pw)
				common.WipeByteArray(pw)
			}
			return a.withOwner(cmd, func(ctx context.Context, c client.Client) error {
				g, err := c.CreateGrant(ctx, &req)
				if err != nil {
					return err
				}
				return a.printGrant(g)
			})
		},
	}
	cf := create.Flags()
	cf.StringVar(&req.Name, "name", "", "link label")
	cf.StringVar(&emails, "emails", "", "comma separated allow list (empty means anyone)")
	cf.BoolVar(&password, "password", false, "protect the link with a password (prompted)")
	cf.IntVar(&req.MaxViews, "max-views", 0, "view limit, 0 for unlimited")
	cf.BoolVar(&req.AllowDownload, "allow-download", false, "let viewers download the protected copy")
	cf.StringSliceVar(&features, "features", nil, "protection applied to this link: watermark, hidden, metadata, ai")
	_ = create.MarkFlagRequired("name")

	list := &cobra.Command{
		Use:   "list <asset-id>",
		Short: "List share links of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withOwner(cmd, func(ctx context.Context, c client.Client) error {
				grants, err := c.ListGrants(ctx, args[0])
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(grants))
				for _, g := range grants {
					rows = append(rows, []string{
						g.ID, g.Name, views(g.CurrentViews, g.MaxViews),
						featureList(g.Features), strconv.FormatBool(g.RequiresPassword), g.AccessURL,
					})
				}
				return a.printer().Table(grants, []string{"ID", "NAME", "VIEWS", "PROTECTION", "PASSWORD", "URL"}, rows)
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <grant-id>",
		Short: "Revoke a share link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withOwner(cmd, func(ctx context.Context, c client.Client) error {
				if err := c.DeleteGrant(ctx, args[0]); err != nil {
					return err
				}
				return a.printer().Message("revoked %s", args[0])
			})
		},
	}

	cmd.AddCommand(create, list, del)
	return cmd
}

func (a *App) printGrant(g *models.Grant) error {
	allowed := "anyone"
	if len(g.AllowedEmails) > 0 {
		allowed = strings.Join(g.AllowedEmails, ", ")
	}
	return a.printer().Fields(g,
		"id", g.ID,
		"name", g.Name,
		"url", g.AccessURL,
		"allowed", allowed,
		"views", views(g.CurrentViews, g.MaxViews),
		"download", strconv.FormatBool(g.AllowDownload),
		"protection", featureList(g.Features),
	)
}

func views(current, limit int) string {
	if limit == 0 {
		return fmt.Sprintf("%d/unlimited", current)
	}
	return fmt.Sprintf("%d/%d", current, limit)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseFeatures(names []string) (pipeline.Features, error) {
	var f pipeline.Features
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "watermark":
			f.Watermark = true
		case "hidden", "hidden-watermark":
			f.HiddenWatermark = true
		case "metadata":
			f.Metadata = true
		case "ai", "ai-protection":
			f.AIProtection = true
		case "":
		default:
			return f, fmt.Errorf("%w: unknown feature %q", common.ErrValidation, n)
		}
	}
	return f, nil
}

func (a *App) requestsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "List and review access requests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withOwner(cmd, func(ctx context.Context, c client.Client) error {
				reqs, err := c.ListAccessRequests(ctx)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(reqs))
				for _, r := range reqs {
					rows = append(rows, []string{
						r.ID, r.GrantName, r.Email, r.Status,
						r.CreatedAt.Local().Format(timeLayout), r.Message,
					})
				}
				return a.printer().Table(reqs, []string{"ID", "LINK", "EMAIL", "STATUS", "CREATED", "MESSAGE"}, rows)
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "review <request-id> approve|deny",
		Short:     "Approve or deny a request",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"approve", "deny"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := strings.ToLower(args[1])
			if action != "approve" && action != "deny" {
				return fmt.Errorf("%w: action must be approve or deny", common.ErrValidation)
			}
			return a.withOwner(cmd, func(ctx context.Context, c client.Client) error {
				r, err := c.ReviewAccessRequest(ctx, args[0], action)
				if err != nil {
					return err
				}
				return a.printer().Fields(r, "request", r.ID, "email", r.Email, "status", r.Status)
			})
		},
	})
	return cmd
}

func (a *App) auditCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show recent viewer activity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withOwner(cmd, func(ctx context.Context, c client.Client) error {
				entries, err := c.ListAuditLog(ctx, limit)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					result := "ok"
					if !e.Success {
						result = "failed"
					}
					rows = append(rows, []string{
						e.CreatedAt.Local().Format(time.DateTime), e.Action, result,
						e.AssetName, e.GrantName, e.Email, e.IP, location(e),
					})
				}
				return a.printer().Table(entries, []string{"TIME", "ACTION", "RESULT", "IMAGE", "LINK", "EMAIL", "IP", "LOCATION"}, rows)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 100, "number of entries")
	return cmd
}

func location(e *models.AuditEntry) string {
	var parts []string
	for _, p := range []string{e.City, e.Region, e.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func (a *App) notificationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Show or change email notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withOwner(cmd, func(ctx context.Context, c client.Client) error {
				n, err := c.GetNotificationSettings(ctx)
				if err != nil {
					return err
				}
				return a.printNotifications(n)
			})
		},
	}

	var requests, downloads bool
	set := &cobra.Command{
		Use:     "set",
		Short:   "Change notifications",
		Example: `  imgtool notifications set --downloads=false`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			return a.withOwner(cmd, func(ctx context.Context, c client.Client) error {
				n, err := c.GetNotificationSettings(ctx)
				if err != nil {
					return err
				}
				applyBool(f.Changed("requests"), &n.AccessRequests, requests)
				applyBool(f.Changed("downloads"), &n.Downloads, downloads)
				if n, err = c.UpdateNotificationSettings(ctx, n); err != nil {
					return err
				}
				return a.printNotifications(n)
			})
		},
	}
	set.Flags().BoolVar(&requests, "requests", true, "email me about new access requests")
	set.Flags().BoolVar(&downloads, "downloads", true, "email me when a protected copy is downloaded")

	cmd.AddCommand(set)
	return cmd
}

func (a *App) printNotifications(n *models.NotificationSettings) error {
	return a.printer().Fields(n,
		"access requests", strconv.FormatBool(n.AccessRequests),
		"downloads", strconv.FormatBool(n.Downloads),
	)
}

func (a *App) inspectCommand() *cobra.Command {
	var assetID, grantID string
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Look into an original or a share link's protected copy",
	}
	cmd.PersistentFlags().StringVar(&assetID, "asset", "", "inspect the original of this image")
	cmd.PersistentFlags().StringVar(&grantID, "grant", "", "inspect the protected copy of this share link")
	cmd.MarkFlagsMutuallyExclusive("asset", "grant")
	cmd.MarkFlagsOneRequired("asset", "grant")

	cmd.AddCommand(&cobra.Command{
		Use:     "metadata",
		Short:   "List the metadata tags",
		Example: `  imgtool inspect metadata --grant 7f3c`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withOwner(cmd, func(ctx context.Context, c client.Client) error {
				tags, err := c.GetMetadata(ctx, assetID, grantID)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(tags))
				for _, t := range tags {
					rows = append(rows, []string{t.Group, t.Name, t.Value})
				}
				return a.printer().Table(tags, []string{"GROUP", "TAG", "VALUE"}, rows)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "hidden",
		Short: "Read the invisible watermark",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withOwner(cmd, func(ctx context.Context, c client.Client) error {
				hm, err := c.ExtractHiddenMessage(ctx, assetID, grantID)
				if err != nil {
					return err
				}
				if !hm.Found {
					return a.printer().Fields(hm, "found", "false")
				}
				return a.printer().Fields(hm, "found", "true", "message", hm.Message)
			})
		},
	})
	return cmd
}
