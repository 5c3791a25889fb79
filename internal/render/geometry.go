package render

import (
	"fmt"

	"clipforge/internal/services"
)

// Vertical output resolution (9:16).
const (
	TargetWidth  = 1080
	TargetHeight = 1920
)

// GeometrySpec declares the crop-then-scale transform from an arbitrary
// landscape source to the fixed vertical target, independent of any
// engine's filter syntax. The crop expressions use the engine's iw/ih
// input-dimension variables so one spec serves every source size.
type GeometrySpec struct {
	CropWidthExpr  string
	CropHeightExpr string
	CropXExpr      string
	CropYExpr      string
	TargetWidth    int
	TargetHeight   int
}

// VerticalCrop returns the transform used for short-form output: a
// horizontally centered crop of min(iw, ih*9/16) x ih, scaled to
// 1080x1920.
func VerticalCrop() GeometrySpec {
	return GeometrySpec{
		CropWidthExpr:  "min(iw,ih*9/16)",
		CropHeightExpr: "ih",
		CropXExpr:      "(iw-min(iw,ih*9/16))/2",
		CropYExpr:      "0",
		TargetWidth:    TargetWidth,
		TargetHeight:   TargetHeight,
	}
}

// Filter renders the spec as an ffmpeg video-filter chain.
func (g GeometrySpec) Filter() string {
	return fmt.Sprintf("crop='%s':%s:'%s':%s,scale=%d:%d",
		g.CropWidthExpr, g.CropHeightExpr, g.CropXExpr, g.CropYExpr,
		g.TargetWidth, g.TargetHeight)
}

// ValidateSource checks that the crop formula applies to the source
// dimensions. The formula only handles sources at least as wide as 9:16;
// portrait or narrower-than-9:16 sources are rejected rather than
// silently cropped vertically, which the transform was never designed for.
func ValidateSource(width, height int) error {
	if width <= 0 || height <= 0 {
		return services.Wrap(services.ErrValidation, "render", "geometry",
			fmt.Sprintf("unusable source dimensions %dx%d", width, height), nil)
	}
	// width < height*9/16, kept in integer math.
	if width*16 < height*9 {
		return services.Wrap(services.ErrValidation, "render", "geometry",
			fmt.Sprintf("source %dx%d is narrower than 9:16; vertical crop is unsupported", width, height), nil)
	}
	return nil
}
