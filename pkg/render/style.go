package render

import (
	"os"
	"strings"

	// Packages
	yaml "gopkg.in/yaml.v3"

	// Namespace imports
	. "github.com/djthorpe/go-errors"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Margins in inches
type Margins struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Style controls the layout of the pdf document. Font sizes and leading are
// in points, widths in inches.
type Style struct {
	PageSize        string  `yaml:"page_size"`
	Font            string  `yaml:"font"`
	Author          string  `yaml:"author"`
	Margins         Margins `yaml:"margins"`
	TitleSize       float64 `yaml:"title_size"`
	TitleLeading    float64 `yaml:"title_leading"`
	SubtitleSize    float64 `yaml:"subtitle_size"`
	SubtitleLeading float64 `yaml:"subtitle_leading"`
	TimestampSize   float64 `yaml:"timestamp_size"`
	TimestampWidth  float64 `yaml:"timestamp_width"`
	BodySize        float64 `yaml:"body_size"`
	BodyLeading     float64 `yaml:"body_leading"`
	RowSpacing      float64 `yaml:"row_spacing"`
	Separators      bool    `yaml:"separators"`
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const pointsPerInch = 72.0

var pageSizes = []string{"A3", "A4", "A5", "Letter", "Legal"}

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// DefaultStyle returns a letter-sized, book-like layout
func DefaultStyle() *Style {
	return &Style{
		PageSize: "Letter",
		Font:     "Helvetica",
		Author:   "Whisper Transcript Formatter",
		Margins: Margins{
			Left:   0.85,
			Right:  0.85,
			Top:    0.75,
			Bottom: 0.75,
		},
		TitleSize:       18,
		TitleLeading:    22,
		SubtitleSize:    10.5,
		SubtitleLeading: 14,
		TimestampSize:   9,
		TimestampWidth:  0.9,
		BodySize:        11,
		BodyLeading:     15,
		RowSpacing:      6,
		Separators:      true,
	}
}

// LoadStyle reads a YAML style file. Fields which are not set in the file
// keep their default values.
func LoadStyle(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	style := DefaultStyle()
	if err := yaml.Unmarshal(data, style); err != nil {
		return nil, ErrBadParameter.Withf("%s: %v", path, err)
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}
	return style, nil
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate checks the page size and that the text column has room
func (s *Style) Validate() error {
	if !validPageSize(s.PageSize) {
		return ErrBadParameter.Withf("page size %q not supported", s.PageSize)
	}
	for _, v := range []float64{s.TitleSize, s.SubtitleSize, s.TimestampSize, s.BodySize, s.TitleLeading, s.SubtitleLeading, s.BodyLeading} {
		if v <= 0 {
			return ErrBadParameter.With("font sizes and leading must be positive")
		}
	}
	if s.Margins.Left < 0 || s.Margins.Right < 0 || s.Margins.Top < 0 || s.Margins.Bottom < 0 || s.TimestampWidth < 0 || s.RowSpacing < 0 {
		return ErrBadParameter.With("margins and widths cannot be negative")
	}
	return nil
}

//////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func validPageSize(size string) bool {
	for _, v := range pageSizes {
		if strings.EqualFold(v, size) {
			return true
		}
	}
	return false
}

func inches(v float64) float64 {
	return v * pointsPerInch
}
