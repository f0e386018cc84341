package model

import "github.com/google/uuid"

// UnitKind distinguishes bricks, which may be laid flat or on their side,
// from larger blocks that only stack one way.
type UnitKind string

const (
	KindBrick UnitKind = "brick"
	KindBlock UnitKind = "block"
)

// Orientation controls how brick-type units are laid. For flat bricks the
// course height is the unit's own height; on their side it is the unit's
// width. Block-type units ignore the orientation.
type Orientation int

const (
	OrientationOnSide Orientation = iota // width becomes the course height
	OrientationFlat                      // height becomes the course height
)

func (o Orientation) String() string {
	if o == OrientationFlat {
		return "Flat"
	}
	return "On side"
}

// MaterialOption describes one masonry unit in its laid orientation.
// Dimensions are in cm: CourseHeight is the unit's own height, Width the
// dimension that becomes vertical when the unit is laid on its side, and
// Length the dimension running along the wall.
type MaterialOption struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Kind         UnitKind `json:"kind"`
	CourseHeight float64  `json:"course_height"`
	Width        float64  `json:"width"`
	Length       float64  `json:"length"`
}

// NewMaterialOption creates a material with a generated ID.
func NewMaterialOption(name string, kind UnitKind, courseHeight, width, length float64) MaterialOption {
	return MaterialOption{
		ID:           uuid.New().String()[:8],
		Name:         name,
		Kind:         kind,
		CourseHeight: courseHeight,
		Width:        width,
		Length:       length,
	}
}

// PlacedHeight returns the vertical size of one laid course of this unit.
// Blocks always stack on their width; bricks follow the orientation toggle.
func (m MaterialOption) PlacedHeight(orientation Orientation) float64 {
	if m.Kind == KindBrick && orientation == OrientationFlat {
		return m.CourseHeight
	}
	return m.Width
}

// DefaultMaterials returns the built-in masonry unit catalogue. Dimensions
// follow common European formats (cm).
func DefaultMaterials() []MaterialOption {
	return []MaterialOption{
		NewMaterialOption("Solid brick NF", KindBrick, 7.1, 11.5, 24),
		NewMaterialOption("Solid brick 2DF", KindBrick, 11.3, 11.5, 24),
		NewMaterialOption("Hollow block 17.5", KindBlock, 23.8, 17.5, 49.8),
		NewMaterialOption("Hollow block 24", KindBlock, 23.8, 24, 49.8),
		NewMaterialOption("Aerated block 20", KindBlock, 19.9, 20, 59.9),
		NewMaterialOption("Shuttering block 25", KindBlock, 25, 25, 50),
	}
}

// FindMaterialByID returns a pointer to the material with the given ID, or nil.
func FindMaterialByID(materials []MaterialOption, id string) *MaterialOption {
	for i := range materials {
		if materials[i].ID == id {
			return &materials[i]
		}
	}
	return nil
}

// FindMaterialByName returns a pointer to the first material with the given
// name, or nil.
func FindMaterialByName(materials []MaterialOption, name string) *MaterialOption {
	for i := range materials {
		if materials[i].Name == name {
			return &materials[i]
		}
	}
	return nil
}

// MaterialNames returns the catalogue names for UI dropdowns.
func MaterialNames(materials []MaterialOption) []string {
	names := make([]string, len(materials))
	for i, m := range materials {
		names[i] = m.Name
	}
	return names
}
