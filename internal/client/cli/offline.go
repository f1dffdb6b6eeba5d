package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/imagekeeper/internal/chaos"
	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/cryptox"
	"github.com/dmitrijs2005/imagekeeper/internal/raster"
	"github.com/dmitrijs2005/imagekeeper/internal/stego"
	"github.com/dmitrijs2005/imagekeeper/internal/watermark"
)

// Local algorithm names. They match the server's.
const (
	algoCBC     = "aes-256-cbc"
	algoCBCHMAC = "aes-256-cbc-hmac"
)

// saltSize prefixes every passphrase protected file.
const saltSize = 16

// passphraseKey prompts for a passphrase and stretches it with salt.
func (a *App) passphraseKey(salt []byte, confirm bool) ([]byte, error) {
	get := GetPassword
	if confirm {
		get = GetNewPassword
	}
	pw, err := get(a.out, "Passphrase")
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(pw)
	if len(pw) == 0 {
		return nil, fmt.Errorf("%w: empty passphrase", common.ErrValidation)
	}
	return cryptox.DeriveKey(pw, salt), nil
}

func sealWith(plain []byte, algo string, key []byte) ([]byte, error) {
	switch algo {
	case algoCBC:
		return cryptox.EncryptCBC(plain, key)
	case algoCBCHMAC:
		return cryptox.Seal(plain, key)
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedAlgo, algo)
	}
}

func openWith(data []byte, algo string, key []byte) ([]byte, error) {
	switch algo {
	case algoCBC:
		return cryptox.DecryptCBC(data, key)
	case algoCBCHMAC:
		return cryptox.Open(data, key)
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedAlgo, algo)
	}
}

func (a *App) encryptCommand() *cobra.Command {
	var in, out, algo string
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file with a passphrase",
		Long: `Encrypt a file under a key derived from a passphrase (argon2id).

The output is salt || ciphertext. aes-256-cbc-hmac authenticates the data;
aes-256-cbc is kept for compatibility with older files.`,
		Example: `  imgtool encrypt --in photo.png --out photo.enc`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plain, err := os.ReadFile(in)
			if err != nil {
				return err
			}
			salt := common.GenerateRandByteArray(saltSize)
			key, err := a.passphraseKey(salt, true)
			if err != nil {
				return err
			}
			defer common.WipeByteArray(key)

			ct, err := sealWith(plain, algo, key)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, append(salt, ct...), 0o600); err != nil {
				return err
			}
			return a.printer().Message("encrypted %s -> %s (%s)", in, out, algo)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input file")
	cmd.Flags().StringVar(&out, "out", "", "output file")
	cmd.Flags().StringVar(&algo, "algo", algoCBCHMAC, "aes-256-cbc-hmac or aes-256-cbc")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (a *App) decryptCommand() *cobra.Command {
	var in, out, algo string
	cmd := &cobra.Command{
		Use:     "decrypt",
		Short:   "Decrypt a file produced by encrypt",
		Example: `  imgtool decrypt --in photo.enc --out photo.png`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(in)
			if err != nil {
				return err
			}
			if len(data) <= saltSize {
				return common.ErrMalformedCiphertext
			}
			key, err := a.passphraseKey(data[:saltSize], false)
			if err != nil {
				return err
			}
			defer common.WipeByteArray(key)

			plain, err := openWith(data[saltSize:], algo, key)
			if err != nil {
				return fmt.Errorf("wrong passphrase or corrupt file: %w", err)
			}
			if err := os.WriteFile(out, plain, 0o600); err != nil {
				return err
			}
			return a.printer().Message("decrypted %s -> %s", in, out)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input file")
	cmd.Flags().StringVar(&out, "out", "", "output file")
	cmd.Flags().StringVar(&algo, "algo", algoCBCHMAC, "aes-256-cbc-hmac or aes-256-cbc")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (a *App) chaosCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chaos",
		Short: "Scramble images with the chaotic map cipher",
		Long: `Scramble every channel of an image with a permutation and substitution
driven by a chaotic map. The result is still a viewable PNG.

The key material cannot be recovered from the scrambled image, so encrypt
writes it to a sidecar file sealed under the passphrase. Keep both files.`,
	}
	cmd.AddCommand(a.chaosEncryptCommand(), a.chaosDecryptCommand())
	return cmd
}

func (a *App) chaosEncryptCommand() *cobra.Command {
	var in, out, sidecar string
	cmd := &cobra.Command{
		Use:     "encrypt",
		Short:   "Scramble an image",
		Example: `  imgtool chaos encrypt --in photo.png --out scrambled.png`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			img, err := readImage(in)
			if err != nil {
				return err
			}
			pw, err := GetNewPassword(a.out, "Passphrase")
			if err != nil {
				return err
			}
			defer common.WipeByteArray(pw)

			planes, streams := chaos.EncryptPlanes(raster.Split(img), string(pw))
			scrambled, err := raster.Merge(planes)
			if err != nil {
				return err
			}
			pngData, err := raster.EncodePNG(scrambled)
			if err != nil {
				return err
			}
			raw, err := chaos.MarshalStreams(streams)
			if err != nil {
				return err
			}
			salt := common.GenerateRandByteArray(saltSize)
			key := cryptox.DeriveKey(pw, salt)
			defer common.WipeByteArray(key)
			sealed, err := cryptox.Seal(raw, key)
			if err != nil {
				return err
			}

			if sidecar == "" {
				sidecar = out + ".streams"
			}
			if err := os.WriteFile(out, pngData, 0o644); err != nil {
				return err
			}
			if err := os.WriteFile(sidecar, append(salt, sealed...), 0o600); err != nil {
				return err
			}
			return a.printer().Message("scrambled %s -> %s (key material in %s)", in, out, sidecar)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input PNG or JPEG")
	cmd.Flags().StringVar(&out, "out", "", "output PNG")
	cmd.Flags().StringVar(&sidecar, "streams", "", "sidecar path (default <out>.streams)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (a *App) chaosDecryptCommand() *cobra.Command {
	var in, out, sidecar string
	cmd := &cobra.Command{
		Use:     "decrypt",
		Short:   "Restore a scrambled image",
		Example: `  imgtool chaos decrypt --in scrambled.png --out photo.png`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			img, err := readImage(in)
			if err != nil {
				return err
			}
			if sidecar == "" {
				sidecar = in + ".streams"
			}
			data, err := os.ReadFile(sidecar)
			if err != nil {
				return err
			}
			if len(data) <= saltSize {
				return common.ErrMalformedCiphertext
			}
			key, err := a.passphraseKey(data[:saltSize], false)
			if err != nil {
				return err
			}
			defer common.WipeByteArray(key)

			raw, err := cryptox.Open(data[saltSize:], key)
			if err != nil {
				return fmt.Errorf("wrong passphrase or corrupt sidecar: %w", err)
			}
			streams, err := chaos.UnmarshalStreams(raw)
			if err != nil {
				return err
			}
			planes, err := chaos.DecryptPlanes(raster.Split(img), streams)
			if err != nil {
				return err
			}
			restored, err := raster.Merge(planes)
			if err != nil {
				return err
			}
			if err := writePNG(out, restored); err != nil {
				return err
			}
			return a.printer().Message("restored %s -> %s", in, out)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "scrambled PNG")
	cmd.Flags().StringVar(&out, "out", "", "output PNG")
	cmd.Flags().StringVar(&sidecar, "streams", "", "sidecar path (default <in>.streams)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (a *App) stegoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stego",
		Short: "Hide text in an image",
		Long: `Hide a short text in the wavelet coefficients of the blue channel.

The mark survives lossless copies only. The output is a 16-bit PNG.`,
	}

	var in, out, msg string
	embed := &cobra.Command{
		Use:     "embed",
		Short:   "Embed a message",
		Example: `  imgtool stego embed --in photo.png --out marked.png --message "(c) Jane"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			img, err := readImage(in)
			if err != nil {
				return err
			}
			if msg == "" {
				if msg, err = GetSimpleText(a.reader, "Message to hide", a.out); err != nil {
					return err
				}
			}
			marked, err := stego.New().Embed(img, msg)
			if err != nil {
				return err
			}
			if err := writePNG(out, marked); err != nil {
				return err
			}
			return a.printer().Message("embedded %d characters into %s", len(msg), out)
		},
	}
	embed.Flags().StringVar(&in, "in", "", "input image")
	embed.Flags().StringVar(&out, "out", "", "output PNG")
	embed.Flags().StringVar(&msg, "message", "", "message (prompted when empty)")
	_ = embed.MarkFlagRequired("in")
	_ = embed.MarkFlagRequired("out")

	var extractIn string
	extract := &cobra.Command{
		Use:   "extract",
		Short: "Read a hidden message",
		RunE: func(cmd *cobra.Command, _ []string) error {
			img, err := readImage(extractIn)
			if err != nil {
				return err
			}
			text, err := stego.New().Extract(img)
			if err != nil {
				return err
			}
			return a.printer().Fields(map[string]string{"message": text}, "message", text)
		},
	}
	extract.Flags().StringVar(&extractIn, "in", "", "marked PNG")
	_ = extract.MarkFlagRequired("in")

	var capIn string
	capacity := &cobra.Command{
		Use:   "capacity",
		Short: "Show how many characters an image holds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			img, err := readImage(capIn)
			if err != nil {
				return err
			}
			b := img.Bounds()
			n := stego.Capacity(img)
			return a.printer().Fields(map[string]int{"width": b.Dx(), "height": b.Dy(), "max_chars": n},
				"size", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
				"max characters", fmt.Sprint(n))
		},
	}
	capacity.Flags().StringVar(&capIn, "in", "", "image")
	_ = capacity.MarkFlagRequired("in")

	cmd.AddCommand(embed, extract, capacity)
	return cmd
}

func (a *App) watermarkCommand() *cobra.Command {
	var in, out string
	s := watermark.DefaultSettings()
	var pattern string

	cmd := &cobra.Command{
		Use:     "watermark",
		Short:   "Draw a visible text watermark",
		Example: `  imgtool watermark --in photo.png --out marked.png --text "DRAFT" --pattern grid --opacity 30`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s.Pattern = watermark.Pattern(pattern)
			if err := s.Validate(); err != nil {
				return err
			}
			img, err := readImage(in)
			if err != nil {
				return err
			}
			r, err := watermark.NewTextRenderer()
			if err != nil {
				return err
			}
			marked, err := r.Render(context.Background(), img, s)
			if err != nil {
				return err
			}
			if err := writePNG(out, marked); err != nil {
				return err
			}
			return a.printer().Message("watermarked %s -> %s", in, out)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in, "in", "", "input image")
	f.StringVar(&out, "out", "", "output PNG")
	f.StringVar(&s.Text, "text", s.Text, "watermark text")
	f.StringVar(&s.Font, "font", s.Font, "font (Go, Go Bold, Go Italic, Go Mono)")
	f.IntVar(&s.FontSize, "font-size", s.FontSize, "font size in pixels")
	f.StringVar(&s.Color, "color", s.Color, "text color (#RGB or #RRGGBB)")
	f.IntVar(&s.Opacity, "opacity", s.Opacity, "opacity percent")
	f.IntVar(&s.Rotation, "rotation", s.Rotation, "rotation in degrees")
	f.StringVar(&pattern, "pattern", string(s.Pattern), "single, diagonal, grid, corners or tiled")
	f.IntVar(&s.Spacing, "spacing", s.Spacing, "spacing percent of the shorter side")
	f.IntVar(&s.OffsetX, "offset-x", s.OffsetX, "horizontal offset percent")
	f.IntVar(&s.OffsetY, "offset-y", s.OffsetY, "vertical offset percent")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
