// Package pbconv converts between the owner API messages and the domain
// values shared by the server and the CLI.
package pbconv

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/imagekeeper/internal/metadata"
	"github.com/dmitrijs2005/imagekeeper/internal/pipeline"
	pb "github.com/dmitrijs2005/imagekeeper/internal/proto"
	"github.com/dmitrijs2005/imagekeeper/internal/watermark"
)

func Watermark(s watermark.Settings) *pb.WatermarkSettings {
	return &pb.WatermarkSettings{
		Text:     s.Text,
		Font:     s.Font,
		FontSize: int32(s.FontSize),
		Color:    s.Color,
		Opacity:  int32(s.Opacity),
		Rotation: int32(s.Rotation),
		Pattern:  string(s.Pattern),
		Spacing:  int32(s.Spacing),
		OffsetX:  int32(s.OffsetX),
		OffsetY:  int32(s.OffsetY),
	}
}

// ToWatermark accepts nil and returns the zero settings for it.
func ToWatermark(p *pb.WatermarkSettings) watermark.Settings {
	return watermark.Settings{
		Text:     p.GetText(),
		Font:     p.GetFont(),
		FontSize: int(p.GetFontSize()),
		Color:    p.GetColor(),
		Opacity:  int(p.GetOpacity()),
		Rotation: int(p.GetRotation()),
		Pattern:  watermark.Pattern(p.GetPattern()),
		Spacing:  int(p.GetSpacing()),
		OffsetX:  int(p.GetOffsetX()),
		OffsetY:  int(p.GetOffsetY()),
	}
}

func Metadata(f metadata.Fields) *pb.MetadataFields {
	return &pb.MetadataFields{
		Title:        f.Title,
		Description:  f.Description,
		Artist:       f.Artist,
		Copyright:    f.Copyright,
		Software:     f.Software,
		Keywords:     f.Keywords,
		City:         f.City,
		Country:      f.Country,
		WebStatement: f.WebStatement,
		ScrubAll:     f.ScrubAll,
	}
}

func ToMetadata(p *pb.MetadataFields) metadata.Fields {
	return metadata.Fields{
		Title:        p.GetTitle(),
		Description:  p.GetDescription(),
		Artist:       p.GetArtist(),
		Copyright:    p.GetCopyright(),
		Software:     p.GetSoftware(),
		Keywords:     p.GetKeywords(),
		City:         p.GetCity(),
		Country:      p.GetCountry(),
		WebStatement: p.GetWebStatement(),
		ScrubAll:     p.GetScrubAll(),
	}
}

func Features(f pipeline.Features) *pb.Features {
	return &pb.Features{
		Watermark:       f.Watermark,
		HiddenWatermark: f.HiddenWatermark,
		Metadata:        f.Metadata,
		AiProtection:    f.AIProtection,
	}
}

func ToFeatures(p *pb.Features) pipeline.Features {
	return pipeline.Features{
		Watermark:       p.GetWatermark(),
		HiddenWatermark: p.GetHiddenWatermark(),
		Metadata:        p.GetMetadata(),
		AIProtection:    p.GetAiProtection(),
	}
}

// Time leaves zero times unset on the wire.
func Time(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func ToTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
