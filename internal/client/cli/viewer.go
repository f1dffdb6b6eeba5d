package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/imagekeeper/internal/client/client"
	"github.com/dmitrijs2005/imagekeeper/internal/common"
)

func (a *App) viewCommand() *cobra.Command {
	var (
		email    string
		out      string
		download bool
	)
	cmd := &cobra.Command{
		Use:   "view <token>",
		Short: "Open a share link",
		Long: `Open a share link as a viewer. The server mails a one-time code to the
given address; enter it when asked. Links protected by a password prompt for it.`,
		Args:    cobra.ExactArgs(1),
		Example: `  imgtool view 3f9c... --email me@example.com --out photo.png --download`,
		RunE: func(cmd *cobra.Command, args []string) error {
			token := args[0]
			var err error
			if email == "" {
				if email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
					return err
				}
			}

			v := a.newViewer(a.config)
			ctx, cancel := a.timeout(cmd.Context())
			defer cancel()

			needPassword, err := v.Initiate(ctx, token, email, "")
			if err != nil {
				return a.viewerError(err)
			}
			if needPassword {
				pw, err := GetPassword(a.out, "Link password")
				if err != nil {
					return err
				}
				_, err = v.Initiate(ctx, token, email, string(pw))
				common.WipeByteArray(pw)
				if err != nil {
					return a.viewerError(err)
				}
			}

			code, err := GetSimpleText(a.reader, "Verification code from your email", a.out)
			if err != nil {
				return err
			}
			d, err := v.Verify(ctx, token, email, code)
			if err != nil {
				return a.viewerError(err)
			}

			img, err := v.Fetch(ctx, d)
			if err != nil {
				return err
			}
			if out == "" {
				out = "image.png"
			}
			if err := os.WriteFile(out, img.Body, 0o644); err != nil {
				return err
			}
			p := a.printer()
			if err := p.Message("%s, saved to %s", d.Message, out); err != nil {
				return err
			}
			if !download {
				return nil
			}
			if !d.AllowDownload {
				return errors.New("this link does not allow downloads")
			}

			file, err := v.Download(ctx, token, email, d.ViewerTicket)
			if err != nil {
				return err
			}
			name := file.Filename
			if name == "" {
				name = "protected-" + filepath.Base(out)
			}
			name = filepath.Join(filepath.Dir(out), filepath.Base(name))
			if err := os.WriteFile(name, file.Body, 0o644); err != nil {
				return err
			}
			return p.Message("downloaded protected copy to %s", name)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "your email")
	cmd.Flags().StringVar(&out, "out", "", "where to save the image (default image.png)")
	cmd.Flags().BoolVar(&download, "download", false, "also download the protected copy")
	return cmd
}

// viewerError adds a hint when the allow-list refused the viewer.
func (a *App) viewerError(err error) error {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || !apiErr.CanRequestAccess {
		return err
	}
	switch {
	case apiErr.RequestStatus == "pending":
		return fmt.Errorf("%w (your access request is pending)", err)
	case apiErr.RequestStatus != "" && !apiErr.CanRequestAgain:
		return fmt.Errorf("%w (your access request was %s)", err, apiErr.RequestStatus)
	default:
		return fmt.Errorf("%w (run `imgtool request` to ask the owner)", err)
	}
}

func (a *App) requestAccessCommand() *cobra.Command {
	var email, message string
	cmd := &cobra.Command{
		Use:   "request <token>",
		Short: "Ask the owner of a share link for access",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("message") {
				if message, err = GetMultiline(a.reader, "Message to the owner", a.out); err != nil {
					return err
				}
			}

			ctx, cancel := a.timeout(cmd.Context())
			defer cancel()
			status, err := a.newViewer(a.config).Request(ctx, args[0], email, message)
			if err != nil {
				return err
			}
			return a.printer().Fields(map[string]string{"status": status}, "request status", status)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "your email")
	cmd.Flags().StringVar(&message, "message", "", "note for the owner")
	return cmd
}
