// Package pipeline composes the protection stages into one derived artifact.
//
// Stages run in a fixed order: AI protection, hidden watermark, visible
// watermark, metadata. The first three degrade to pass-through on failure.
// Metadata is terminal: it needs a file, so it writes the image out, lets the
// rewriter edit it in place and returns that file's bytes.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/dmitrijs2005/imagekeeper/internal/aiprotect"
	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/filex"
	"github.com/dmitrijs2005/imagekeeper/internal/logging"
	"github.com/dmitrijs2005/imagekeeper/internal/metadata"
	"github.com/dmitrijs2005/imagekeeper/internal/metrics"
	"github.com/dmitrijs2005/imagekeeper/internal/raster"
	"github.com/dmitrijs2005/imagekeeper/internal/watermark"
)

// Stage names used in logs and metrics.
const (
	StageAIProtection    = "ai_protection"
	StageHiddenWatermark = "hidden_watermark"
	StageVisibleMark     = "watermark"
	StageMetadata        = "metadata"
)

// ContentType of every artifact the pipeline produces.
const ContentType = "image/png"

// Features selects the stages to run.
type Features struct {
	Watermark       bool `json:"watermark"`
	HiddenWatermark bool `json:"hidden_watermark"`
	Metadata        bool `json:"metadata"`
	AIProtection    bool `json:"ai_protection"`
}

// Any reports whether at least one stage is selected.
func (f Features) Any() bool {
	return f.Watermark || f.HiddenWatermark || f.Metadata || f.AIProtection
}

// Settings are the owner's per-stage parameters.
type Settings struct {
	Watermark     watermark.Settings
	HiddenMessage string
	Metadata      metadata.Fields
}

// Embedder hides a text payload in an image.
type Embedder interface {
	Embed(img image.Image, msg string) (*image.NRGBA64, error)
}

// Artifact is the derived image.
type Artifact struct {
	Data        []byte
	ContentType string
	// Applied lists the stages that actually changed the image.
	Applied []string
}

// Pipeline holds the stage collaborators.
type Pipeline struct {
	protector  aiprotect.Protector
	embedder   Embedder
	renderer   watermark.Renderer
	rewriter   metadata.Rewriter
	scratchDir string
	logger     logging.Logger
}

// New assembles a pipeline. scratchDir may be empty to use the OS temp dir.
func New(p aiprotect.Protector, e Embedder, r watermark.Renderer, m metadata.Rewriter, scratchDir string, l logging.Logger) *Pipeline {
	return &Pipeline{
		protector:  p,
		embedder:   e,
		renderer:   r,
		rewriter:   m,
		scratchDir: scratchDir,
		logger:     l.With("module", "pipeline"),
	}
}

// Run applies the selected stages to img. Only a metadata failure (or the
// final encode) makes it return an error.
func (p *Pipeline) Run(ctx context.Context, img image.Image, f Features, s Settings) (*Artifact, error) {
	var applied []string
	cur := img

	if f.AIProtection {
		cur = p.softStage(ctx, StageAIProtection, cur, &applied, func() (image.Image, error) {
			return p.protector.Protect(ctx, cur)
		})
	}

	if f.HiddenWatermark && s.HiddenMessage != "" {
		cur = p.softStage(ctx, StageHiddenWatermark, cur, &applied, func() (image.Image, error) {
			return p.embedder.Embed(cur, s.HiddenMessage)
		})
	}

	if f.Watermark {
		cur = p.softStage(ctx, StageVisibleMark, cur, &applied, func() (image.Image, error) {
			out, err := p.renderer.Render(ctx, cur, s.Watermark)
			if err != nil {
				return nil, errors.Join(common.ErrRenderingStage, err)
			}
			return out, nil
		})
	}

	if f.Metadata {
		data, err := p.metadataStage(ctx, cur, s.Metadata)
		if err != nil {
			metrics.PipelineStageFailures.WithLabelValues(StageMetadata).Inc()
			p.logger.Error(ctx, "metadata stage failed", "error", err)
			return nil, fmt.Errorf("%w: %w", common.ErrMetadataStage, err)
		}
		return &Artifact{Data: data, ContentType: ContentType, Applied: append(applied, StageMetadata)}, nil
	}

	data, err := raster.EncodePNG(cur)
	if err != nil {
		return nil, err
	}
	return &Artifact{Data: data, ContentType: ContentType, Applied: applied}, nil
}

// softStage runs fn and keeps prev when it fails.
func (p *Pipeline) softStage(ctx context.Context, name string, prev image.Image, applied *[]string, fn func() (image.Image, error)) image.Image {
	start := time.Now()
	out, err := fn()
	metrics.PipelineStageDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if err != nil || out == nil {
		metrics.PipelineStageFailures.WithLabelValues(name).Inc()
		p.logger.Warn(ctx, "protection stage skipped", "stage", name, "error", err)
		return prev
	}
	*applied = append(*applied, name)
	return out
}

func (p *Pipeline) metadataStage(ctx context.Context, img image.Image, fields metadata.Fields) ([]byte, error) {
	start := time.Now()
	defer func() {
		metrics.PipelineStageDuration.WithLabelValues(StageMetadata).Observe(time.Since(start).Seconds())
	}()

	data, err := raster.EncodePNG(img)
	if err != nil {
		return nil, err
	}

	scratch, err := filex.NewScratch(p.scratchDir, "metadata-")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := scratch.Cleanup(); err != nil {
			p.logger.Warn(ctx, "scratch cleanup failed", "dir", scratch.Dir, "error", err)
		}
	}()

	path, err := scratch.Write("protected.png", data)
	if err != nil {
		return nil, err
	}
	if err := p.rewriter.Rewrite(ctx, path, fields); err != nil {
		return nil, err
	}
	return scratch.Read("protected.png")
}
