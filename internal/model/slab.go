package model

import "github.com/google/uuid"

// SlabPlacement controls which stock dimension spans the width being
// covered: long-ways lays the longer side across, side-ways the shorter.
type SlabPlacement string

const (
	PlacementLongWays SlabPlacement = "longWays"
	PlacementSideWays SlabPlacement = "sideWays"
)

// CutPolicy decides how a row that does not divide evenly into full sheets
// is finished off.
type CutPolicy string

const (
	// OneCut trims a single sheet at the end of the row.
	OneCut CutPolicy = "oneCut"
	// TwoCuts splits the leftover width into two equal trimmed pieces,
	// one at each end, for a symmetric look. Falls back to a single cut
	// when the row needs only one sheet.
	TwoCuts CutPolicy = "twoCuts"
)

// SlabSize is one entry of the fixed stock catalogue, in cm.
type SlabSize struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
}

// SpanWidth returns the dimension laid across the covered width for the
// given placement, and SpanLength the other one.
func (s SlabSize) SpanWidth(p SlabPlacement) float64 {
	if p == PlacementLongWays {
		return maxf(s.Width, s.Length)
	}
	return minf(s.Width, s.Length)
}

func (s SlabSize) SpanLength(p SlabPlacement) float64 {
	if p == PlacementLongWays {
		return minf(s.Width, s.Length)
	}
	return maxf(s.Width, s.Length)
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// SlabCatalogue returns the fixed set of stock sheet sizes offered for
// stair finishing.
func SlabCatalogue() []SlabSize {
	return []SlabSize{
		{Name: "30 x 30", Width: 30, Length: 30},
		{Name: "40 x 40", Width: 40, Length: 40},
		{Name: "50 x 50", Width: 50, Length: 50},
		{Name: "60 x 40", Width: 60, Length: 40},
		{Name: "80 x 40", Width: 80, Length: 40},
		{Name: "100 x 60", Width: 100, Length: 60},
		{Name: "120 x 60", Width: 120, Length: 60},
	}
}

// FindSlabSize returns the catalogue entry with the given name, or the
// first entry if the name is unknown.
func FindSlabSize(name string) SlabSize {
	catalogue := SlabCatalogue()
	for _, s := range catalogue {
		if s.Name == name {
			return s
		}
	}
	return catalogue[0]
}

// SlabSizeNames returns the catalogue names for UI dropdowns.
func SlabSizeNames() []string {
	catalogue := SlabCatalogue()
	names := make([]string, len(catalogue))
	for i, s := range catalogue {
		names[i] = s.Name
	}
	return names
}

// MinWasteDimension is the minimum width or length (cm) for a cut remainder
// to be banked for reuse. Anything smaller is scrap.
const MinWasteDimension = 5.0

// WastePiece is a reusable rectangular remainder left by an earlier cut.
// Duplicates with identical dimensions are legal and tracked as separate
// entries; each piece is consumed at most once.
type WastePiece struct {
	ID           string  `json:"id"`
	Width        float64 `json:"width"`
	Length       float64 `json:"length"`
	Source       string  `json:"source"` // which step and location produced it
	CanBeRotated bool    `json:"can_be_rotated"`
}

// NewWastePiece creates a waste piece with a generated ID.
func NewWastePiece(width, length float64, source string) WastePiece {
	return WastePiece{
		ID:           uuid.New().String()[:8],
		Width:        width,
		Length:       length,
		Source:       source,
		CanBeRotated: true,
	}
}

// Area returns the piece area in square cm.
func (w WastePiece) Area() float64 {
	return w.Width * w.Length
}

// Usable reports whether the piece is worth keeping at all.
func (w WastePiece) Usable() bool {
	return w.Width >= MinWasteDimension && w.Length >= MinWasteDimension
}

// SlabLocation names the surface of a step being covered.
type SlabLocation string

const (
	LocationTread SlabLocation = "tread"
	LocationFront SlabLocation = "front"
)

// SlabPlacementResult records how one step surface was covered.
type SlabPlacementResult struct {
	Step        int          `json:"step"`
	Location    SlabLocation `json:"location"`
	UnitsNeeded int          `json:"units_needed"` // new sheets only
	Description string       `json:"description"`
	WasteUsed   bool         `json:"waste_used"`
	WasteSource string       `json:"waste_source,omitempty"`
	Cuts        int          `json:"cuts"`
	Pieces      []SlabPiece  `json:"pieces"`
}

// SlabPiece is one physical piece laid on a surface, in row order.
type SlabPiece struct {
	Width     float64 `json:"width"`
	Depth     float64 `json:"depth"`
	Cut       bool    `json:"cut"`
	FromWaste bool    `json:"from_waste"`
}

// SlabPlan is the slab cutting planner's full output.
type SlabPlan struct {
	Results         []SlabPlacementResult `json:"results"`
	TotalStepSlabs  int                   `json:"total_step_slabs"`
	TotalFrontSlabs int                   `json:"total_front_slabs"`
	TotalCuts       int                   `json:"total_cuts"`
	LeftoverWaste   []WastePiece          `json:"leftover_waste"` // available for reuse on a future job
}

// TotalSlabs returns the number of new sheets across treads and fronts.
func (p SlabPlan) TotalSlabs() int {
	return p.TotalStepSlabs + p.TotalFrontSlabs
}
