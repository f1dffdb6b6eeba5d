// Package aiprotect applies adversarial "AI protection" to images. The
// transform itself lives in an external tool; without one the stage is the
// identity.
package aiprotect

import (
	"context"
	"image"

	"github.com/dmitrijs2005/imagekeeper/internal/execx"
)

// Protector transforms an image to resist model training and inference.
type Protector interface {
	Protect(ctx context.Context, img image.Image) (image.Image, error)
}

// Nop returns images unchanged.
type Nop struct{}

func (Nop) Protect(_ context.Context, img image.Image) (image.Image, error) { return img, nil }

// Command runs an external protector as `<command> [args] <in.png> <out.png>`.
type Command struct {
	Tool *execx.ImageTool
}

func (c Command) Protect(ctx context.Context, img image.Image) (image.Image, error) {
	return c.Tool.Apply(ctx, img)
}

// New picks Command when a binary is configured, Nop otherwise.
func New(tool *execx.ImageTool) Protector {
	if tool == nil || tool.Command == "" {
		return Nop{}
	}
	return Command{Tool: tool}
}
