package project

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/piwi3910/StairMason/internal/model"
)

// JobFile is the TOML description of one stair estimate, the input format
// of the command line tool. All lengths are centimeters; the slab joint gap
// is millimeters. Only the [stair] measurements are mandatory, every other
// field falls back to the application defaults.
//
//	[stair]
//	total_height = 200
//	total_width  = 120
//	step_height  = 18
//	step_tread   = 30
//
//	[slabs]
//	size = "40 x 40"
//	cut_policy = "twoCuts"
type JobFile struct {
	Name      string        `toml:"name"`
	Stair     stairSection  `toml:"stair"`
	Sides     sidesSection  `toml:"sides"`
	Slabs     slabsSection  `toml:"slabs"`
	Materials []string      `toml:"materials"` // catalogue names; empty = all
	Prices    PriceList     `toml:"prices"`
}

type stairSection struct {
	TotalHeight    float64 `toml:"total_height"`
	TotalWidth     float64 `toml:"total_width"`
	StepHeight     float64 `toml:"step_height"`
	StepTread      float64 `toml:"step_tread"`
	FrontOverhang  float64 `toml:"front_overhang"`
	SideOverhang   float64 `toml:"side_overhang"`
	TopSlab        float64 `toml:"top_slab"`
	SideSlab       float64 `toml:"side_slab"`
	FrontSlab      float64 `toml:"front_slab"`
	StepConfig     string  `toml:"step_config"`
	Orientation    string  `toml:"orientation"` // "flat" or "onSide"
}

type sidesSection struct {
	Left  *bool `toml:"left"`
	Right *bool `toml:"right"`
	Back  *bool `toml:"back"`
}

type slabsSection struct {
	Size      string  `toml:"size"`
	Placement string  `toml:"placement"`
	GapMM     float64 `toml:"gap_mm"`
	CutPolicy string  `toml:"cut_policy"`
}

// LoadJobFile reads and decodes a TOML job file.
func LoadJobFile(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var job JobFile
	if err := toml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &job, nil
}

// Inputs converts the file's stair section into pipeline inputs. Missing
// sides default to a free-standing stair built up on both flanks.
func (j *JobFile) Inputs() model.StairInputs {
	in := model.StairInputs{
		TotalHeight: j.Stair.TotalHeight,
		TotalWidth:  j.Stair.TotalWidth,
		StepHeight:  j.Stair.StepHeight,
		StepTread:   j.Stair.StepTread,
		Overhang: model.Overhangs{
			Front: j.Stair.FrontOverhang,
			Side:  j.Stair.SideOverhang,
		},
		Slab: model.SlabThickness{
			Top:   j.Stair.TopSlab,
			Side:  j.Stair.SideSlab,
			Front: j.Stair.FrontSlab,
		},
		Sides: model.SideConfig{
			Left:  boolOr(j.Sides.Left, true),
			Right: boolOr(j.Sides.Right, true),
			Back:  boolOr(j.Sides.Back, false),
		},
		Config: model.FrontsOnTop,
	}
	if j.Stair.StepConfig == string(model.StepsToFronts) {
		in.Config = model.StepsToFronts
	}
	return in
}

// Settings converts the file's slab and material sections into estimate
// settings, starting from the given defaults. Material names not present in
// the catalogue are reported as an error so a typo never silently widens
// the selection to the whole catalogue.
func (j *JobFile) Settings(defaults model.EstimateSettings, catalogue []model.MaterialOption) (model.EstimateSettings, error) {
	s := defaults

	if j.Slabs.Size != "" {
		s.SlabSize = j.Slabs.Size
	}
	if j.Slabs.Placement != "" {
		s.Placement = model.SlabPlacement(j.Slabs.Placement)
	}
	if j.Slabs.GapMM > 0 {
		s.GapMM = j.Slabs.GapMM
	}
	if j.Slabs.CutPolicy != "" {
		s.Policy = model.CutPolicy(j.Slabs.CutPolicy)
	}
	if j.Stair.Orientation == "flat" {
		s.Orientation = model.OrientationFlat
	}

	s.MaterialIDs = nil
	for _, name := range j.Materials {
		m := model.FindMaterialByName(catalogue, name)
		if m == nil {
			return s, fmt.Errorf("unknown material %q", name)
		}
		s.MaterialIDs = append(s.MaterialIDs, m.ID)
	}
	return s, nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
