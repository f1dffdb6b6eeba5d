package execx

import (
	"context"
	"fmt"
	"image"

	"github.com/dmitrijs2005/imagekeeper/internal/filex"
	"github.com/dmitrijs2005/imagekeeper/internal/raster"
)

// ImageTool drives a command with the calling convention
//
//	<command> [args...] <input.png> <output.png> [extra...]
//
// writing the input to a scratch directory and decoding the output.
type ImageTool struct {
	Runner     Runner
	Command    string
	Args       []string
	ScratchDir string
}

// Apply runs the tool on img.
func (t *ImageTool) Apply(ctx context.Context, img image.Image, extra ...string) (image.Image, error) {
	if t.Command == "" {
		return nil, fmt.Errorf("image tool: no command configured")
	}

	data, err := raster.EncodePNG(img)
	if err != nil {
		return nil, err
	}

	scratch, err := filex.NewScratch(t.ScratchDir, "imgtool-")
	if err != nil {
		return nil, err
	}
	defer scratch.Cleanup()

	in, err := scratch.Write("input.png", data)
	if err != nil {
		return nil, err
	}
	out := scratch.Path("output.png")

	args := make([]string, 0, len(t.Args)+2+len(extra))
	args = append(args, t.Args...)
	args = append(args, in, out)
	args = append(args, extra...)

	if _, err := t.Runner.Run(ctx, t.Command, args...); err != nil {
		return nil, err
	}

	result, err := scratch.Read("output.png")
	if err != nil {
		return nil, fmt.Errorf("image tool produced no output: %w", err)
	}
	decoded, _, err := raster.Decode(result)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}
