// Package campus holds the campus dataset records and their parsers.
//
// A dataset consists of buildings of interest and walkway segments between
// points on the campus map. The package only supplies records, it does not
// build or validate the walkway graph itself.
package campus

import "fmt"

// Point is a location on the campus map, in map coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

// Building is a campus building of interest.
type Building struct {
	// ShortName is the abbreviated name the building is addressed by.
	ShortName string
	// LongName is the full display name.
	LongName string
	// Location is where the building connects to the walkway network.
	Location Point
}

func (b *Building) String() string {
	return fmt.Sprintf("%s: %s", b.ShortName, b.LongName)
}

// Segment is a directed walkway segment between two points.
type Segment struct {
	From     Point
	To       Point
	Distance float64
}
