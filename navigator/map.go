package navigator

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/safing/portbase/log"

	"github.com/wayfind/campus/campus"
	"github.com/wayfind/campus/graph"
)

// Map represents a campus: its buildings of interest and the walkway network
// between points on the campus. Route queries address buildings by their
// short name.
type Map struct {
	sync.RWMutex
	Name string

	// longNames maps a building's short name to its full display name.
	longNames map[string]string
	// locations maps a building's short name to its walkway entry point.
	locations map[string]campus.Point
	// walkways connects campus points, weighted by walking distance.
	walkways *graph.Graph[campus.Point, float64]
}

// NewMap returns a new empty Map with the given name and registers it for
// the map API.
func NewMap(name string) *Map {
	m := &Map{
		Name:      name,
		longNames: make(map[string]string),
		locations: make(map[string]campus.Point),
		walkways:  graph.New[campus.Point, float64](),
	}
	addMapToAPI(m)
	return m
}

// Close unregisters the Map from the map API.
func (m *Map) Close() {
	removeMapFromAPI(m.Name)
}

// isEmpty returns whether the Map holds no buildings.
func (m *Map) isEmpty() bool {
	return len(m.longNames) == 0
}

// AddBuilding adds a building to the Map, registering its names and making
// its location part of the walkway network.
func (m *Map) AddBuilding(b campus.Building) {
	m.Lock()
	defer m.Unlock()

	m.longNames[b.ShortName] = b.LongName
	m.locations[b.ShortName] = b.Location
	m.walkways.AddNode(b.Location)
}

// AddSegment adds a directed walkway segment to the Map, creating endpoint
// nodes as needed. It returns graph.ErrDuplicateEdge wrapped when the exact
// segment was already added.
func (m *Map) AddSegment(s campus.Segment) error {
	m.Lock()
	defer m.Unlock()

	m.walkways.AddNode(s.From)
	m.walkways.AddNode(s.To)
	return m.walkways.AddEdge(s.From, s.To, s.Distance)
}

// FillFromDataset adds all buildings and walkway segments of the given
// dataset to the Map. Duplicate segments are logged and skipped.
func (m *Map) FillFromDataset(ds *campus.Dataset) error {
	for _, b := range ds.Buildings {
		m.AddBuilding(b)
	}
	for _, s := range ds.Segments {
		if err := m.AddSegment(s); err != nil {
			if errors.Is(err, graph.ErrDuplicateEdge) {
				log.Warningf("campus/navigator: skipping duplicate segment %s -> %s in dataset %s", s.From, s.To, ds.Name)
				continue
			}
			return err
		}
	}
	return nil
}

// BuildingExists reports whether a building with the given short name is on
// the Map.
func (m *Map) BuildingExists(shortName string) bool {
	m.RLock()
	defer m.RUnlock()

	_, ok := m.longNames[shortName]
	return ok
}

// LongName returns the full name of the building with the given short name.
func (m *Map) LongName(shortName string) (string, error) {
	m.RLock()
	defer m.RUnlock()

	longName, ok := m.longNames[shortName]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrBuildingNotFound, shortName)
	}
	return longName, nil
}

// BuildingNames returns a copy of the short name to long name mapping of all
// buildings on the Map.
func (m *Map) BuildingNames() map[string]string {
	m.RLock()
	defer m.RUnlock()

	names := make(map[string]string, len(m.longNames))
	for short, long := range m.longNames {
		names[short] = long
	}
	return names
}

// sortedBuildings returns all buildings sorted by short name.
func (m *Map) sortedBuildings() []campus.Building {
	sorted := make([]campus.Building, 0, len(m.longNames))
	for short, long := range m.longNames {
		sorted = append(sorted, campus.Building{
			ShortName: short,
			LongName:  long,
			Location:  m.locations[short],
		})
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ShortName < sorted[j].ShortName
	})
	return sorted
}

// Route is a walking route between two buildings.
type Route struct {
	// From and To are the short names of the route's endpoints.
	From string
	To   string

	// Path holds the traversed walkway points with per-hop distances.
	Path *Path[campus.Point]
}

// TotalDistance returns the summed walking distance of the route.
func (r *Route) TotalDistance() float64 {
	return r.Path.Cost()
}

func (r *Route) String() string {
	return fmt.Sprintf("%s -> %s: %s", r.From, r.To, r.Path)
}

// FindRoute returns the shortest walking route between the two named
// buildings. It returns ErrBuildingNotFound if either short name is unknown,
// ErrEmptyMap if the Map holds no buildings, and ErrNoRoute if the buildings
// are not connected by the walkway network.
func (m *Map) FindRoute(from, to string) (*Route, error) {
	m.RLock()
	defer m.RUnlock()

	if m.isEmpty() {
		return nil, ErrEmptyMap
	}

	src, ok := m.locations[from]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBuildingNotFound, from)
	}
	dst, ok := m.locations[to]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBuildingNotFound, to)
	}

	path, ok := FindShortestPath(m.walkways, src, dst)
	if !ok {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoRoute, from, to)
	}

	return &Route{
		From: from,
		To:   to,
		Path: path,
	}, nil
}

// Stats holds a summary of a Map.
type Stats struct {
	Name      string
	Buildings int
	Waypoints int
	Walkways  int
	// TotalLength is the summed length of all walkway segments. As segments
	// are directed, a two-way walkway counts twice.
	TotalLength float64
}

// Stats returns a summary of the Map.
func (m *Map) Stats() *Stats {
	m.RLock()
	defer m.RUnlock()

	stats := &Stats{
		Name:      m.Name,
		Buildings: len(m.longNames),
		Waypoints: m.walkways.Size(),
	}
	for _, parent := range m.walkways.Nodes() {
		for _, child := range m.walkways.Children(parent) {
			for _, distance := range m.walkways.Labels(parent, child) {
				stats.Walkways++
				stats.TotalLength += distance
			}
		}
	}
	return stats
}

func (s *Stats) String() string {
	return fmt.Sprintf(
		"%s: %d buildings, %d waypoints, %d walkways, %.1f total length",
		s.Name, s.Buildings, s.Waypoints, s.Walkways, s.TotalLength,
	)
}
