// Package metadata rewrites image metadata through exiftool. The tool works on
// files, which is why the pipeline's metadata stage is file based.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/imagekeeper/internal/execx"
)

// Fields is the owner-editable metadata. Empty values are left alone.
type Fields struct {
	Title        string   `json:"title,omitempty"`
	Description  string   `json:"description,omitempty"`
	Artist       string   `json:"artist,omitempty"`
	Copyright    string   `json:"copyright,omitempty"`
	Software     string   `json:"software,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
	City         string   `json:"city,omitempty"`
	Country      string   `json:"country,omitempty"`
	WebStatement string   `json:"web_statement,omitempty"`
	// ScrubAll removes every existing tag before writing.
	ScrubAll bool `json:"scrub_all"`
}

// IsZero reports whether applying f would change nothing.
func (f Fields) IsZero() bool {
	return !f.ScrubAll && len(f.tags()) == 0
}

type tag struct {
	name  string
	value string
}

// tags maps fields onto EXIF, IPTC and XMP names so every common reader sees
// the same values.
func (f Fields) tags() []tag {
	var out []tag
	add := func(value string, names ...string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		for _, n := range names {
			out = append(out, tag{n, value})
		}
	}

	add(f.Title, "IPTC:ObjectName", "XMP-dc:Title")
	add(f.Description, "EXIF:ImageDescription", "IPTC:Caption-Abstract", "XMP-dc:Description")
	add(f.Artist, "EXIF:Artist", "IPTC:By-line", "XMP-dc:Creator")
	add(f.Copyright, "EXIF:Copyright", "IPTC:CopyrightNotice", "XMP-dc:Rights")
	add(f.Software, "EXIF:Software")
	add(f.City, "IPTC:City", "XMP-photoshop:City")
	add(f.Country, "IPTC:Country-PrimaryLocationName", "XMP-photoshop:Country")
	add(f.WebStatement, "XMP-xmpRights:WebStatement")
	for _, k := range f.Keywords {
		add(k, "IPTC:Keywords", "XMP-dc:Subject")
	}
	return out
}

// Rewriter applies Fields to a file in place.
type Rewriter interface {
	Rewrite(ctx context.Context, path string, f Fields) error
}

// ExifTool runs the exiftool binary.
type ExifTool struct {
	Runner execx.Runner
	Binary string
}

// NewExifTool returns an ExifTool using binary ("exiftool" when empty).
func NewExifTool(r execx.Runner, binary string) *ExifTool {
	if binary == "" {
		binary = "exiftool"
	}
	return &ExifTool{Runner: r, Binary: binary}
}

// Args builds the exiftool command line for f.
func (e *ExifTool) Args(path string, f Fields) []string {
	args := []string{"-overwrite_original", "-m"}
	if f.ScrubAll {
		args = append(args, "-all=")
	}
	for _, t := range f.tags() {
		args = append(args, fmt.Sprintf("-%s=%s", t.name, t.value))
	}
	return append(args, path)
}

func (e *ExifTool) Rewrite(ctx context.Context, path string, f Fields) error {
	if _, err := e.Runner.Run(ctx, e.Binary, e.Args(path, f)...); err != nil {
		return fmt.Errorf("exiftool: %w", err)
	}
	return nil
}

// Read returns the tags of a file grouped by family-1 group name, e.g.
// result["IFD0"]["Artist"].
func (e *ExifTool) Read(ctx context.Context, path string) (map[string]map[string]any, error) {
	out, err := e.Runner.Run(ctx, e.Binary, "-j", "-G1", path)
	if err != nil {
		return nil, fmt.Errorf("exiftool: %w", err)
	}

	var docs []map[string]any
	if err := json.Unmarshal(out, &docs); err != nil {
		return nil, fmt.Errorf("exiftool output: %w", err)
	}
	if len(docs) == 0 {
		return map[string]map[string]any{}, nil
	}

	grouped := make(map[string]map[string]any)
	for key, v := range docs[0] {
		group, name, ok := strings.Cut(key, ":")
		if !ok {
			group, name = "File", key
		}
		if grouped[group] == nil {
			grouped[group] = make(map[string]any)
		}
		grouped[group][name] = v
	}
	return grouped, nil
}
