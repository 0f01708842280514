package navigator

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/awalterschulze/gographviz"
	"github.com/safing/portbase/api"
	"github.com/safing/portbase/log"

	"github.com/wayfind/campus/campus"
)

var (
	apiMapsLock sync.Mutex
	apiMaps     = make(map[string]*Map)
)

func addMapToAPI(m *Map) {
	apiMapsLock.Lock()
	defer apiMapsLock.Unlock()

	apiMaps[m.Name] = m
}

func getMapForAPI(name string) (m *Map, ok bool) {
	apiMapsLock.Lock()
	defer apiMapsLock.Unlock()

	m, ok = apiMaps[name]
	return
}

func removeMapFromAPI(name string) {
	apiMapsLock.Lock()
	defer apiMapsLock.Unlock()

	delete(apiMaps, name)
}

func registerAPIEndpoints() error {
	if err := api.RegisterEndpoint(api.Endpoint{
		Path:        `campus/map/{map:[A-Za-z0-9]{1,255}}/buildings`,
		Read:        api.PermitUser,
		BelongsTo:   module,
		StructFunc:  handleMapBuildingsRequest,
		Name:        "Get campus map buildings",
		Description: "Returns a list of buildings on the given campus map.",
	}); err != nil {
		return err
	}

	if err := api.RegisterEndpoint(api.Endpoint{
		Path:        `campus/map/{map:[A-Za-z0-9]{1,255}}/route`,
		Read:        api.PermitUser,
		BelongsTo:   module,
		StructFunc:  handleMapRouteRequest,
		Name:        "Get campus route",
		Description: "Returns the shortest walking route between two buildings on the given campus map.",
		Parameters: []api.Parameter{
			{
				Method:      http.MethodGet,
				Field:       "from",
				Value:       "building short name",
				Description: "Specify the building to start from.",
			},
			{
				Method:      http.MethodGet,
				Field:       "to",
				Value:       "building short name",
				Description: "Specify the building to walk to.",
			},
		},
	}); err != nil {
		return err
	}

	if err := api.RegisterEndpoint(api.Endpoint{
		Path:        `campus/map/{map:[A-Za-z0-9]{1,255}}/graph{format:\.[a-z]{2,4}}`,
		Read:        api.PermitUser,
		BelongsTo:   module,
		HandlerFunc: handleMapGraphRequest,
		Name:        "Get campus map graph",
		Description: "Returns a graph of the walkway network of the given campus map.",
		Parameters: []api.Parameter{
			{
				Method:      http.MethodGet,
				Field:       "map (in path)",
				Value:       "name of map",
				Description: "Specify the map you want to get the graph for. The main map is called `main`.",
			},
			{
				Method:      http.MethodGet,
				Field:       "format (in path)",
				Value:       "file type",
				Description: "Specify the format you want to get the graph in. Available values: `dot`, `html`. Please note that the html format is only available in development mode.",
			},
		},
	}); err != nil {
		return err
	}

	return nil
}

// BuildingExport is the API representation of a building.
type BuildingExport struct {
	ShortName string
	LongName  string
	X         float64
	Y         float64
}

func handleMapBuildingsRequest(ar *api.Request) (i interface{}, err error) {
	m, ok := getMapForAPI(ar.URLVars["map"])
	if !ok {
		return nil, errors.New("map not found")
	}

	m.RLock()
	defer m.RUnlock()

	buildings := m.sortedBuildings()
	export := make([]*BuildingExport, len(buildings))
	for key, b := range buildings {
		export[key] = &BuildingExport{
			ShortName: b.ShortName,
			LongName:  b.LongName,
			X:         b.Location.X,
			Y:         b.Location.Y,
		}
	}

	return export, nil
}

// RouteExport is the API representation of a walking route.
type RouteExport struct {
	From  string
	To    string
	Steps []RouteStepExport
	Total float64
}

// RouteStepExport is a single hop of an exported route.
type RouteStepExport struct {
	X        float64
	Y        float64
	Distance float64
}

func handleMapRouteRequest(ar *api.Request) (i interface{}, err error) {
	m, ok := getMapForAPI(ar.URLVars["map"])
	if !ok {
		return nil, errors.New("map not found")
	}

	from := ar.URL.Query().Get("from")
	to := ar.URL.Query().Get("to")
	if from == "" || to == "" {
		return nil, errors.New("both from and to must be set")
	}

	route, err := m.FindRoute(from, to)
	if err != nil {
		return nil, err
	}

	export := &RouteExport{
		From:  route.From,
		To:    route.To,
		Total: route.TotalDistance(),
	}
	for _, step := range route.Path.Steps() {
		export.Steps = append(export.Steps, RouteStepExport{
			X:        step.Node.X,
			Y:        step.Node.Y,
			Distance: step.Cost,
		})
	}

	return export, nil
}

func handleMapGraphRequest(w http.ResponseWriter, hr *http.Request) {
	r := api.GetAPIRequest(hr)
	if r == nil {
		http.Error(w, "API request invalid.", http.StatusInternalServerError)
		return
	}

	// Get map.
	m, ok := getMapForAPI(r.URLVars["map"])
	if !ok {
		http.Error(w, "Map not found.", http.StatusNotFound)
		return
	}

	// Check format.
	var format string
	switch r.URLVars["format"] {
	case ".dot":
		format = "dot"
	case ".html":
		format = "html"

		// Check if we are in dev mode.
		if !devMode() {
			http.Error(w, "Graph html formatting (js rendering) is only available in dev mode.", http.StatusPreconditionFailed)
			return
		}
	default:
		http.Error(w, "Unsupported format.", http.StatusBadRequest)
		return
	}

	// Build graph.
	graph, err := m.WalkwayGraph()
	if err != nil {
		http.Error(w, "Failed to build graph.", http.StatusInternalServerError)
		return
	}

	var mimeType string
	var responseData []byte
	switch format {
	case "dot":
		mimeType = "text/x-dot"
		responseData = []byte(graph.String())
	case "html":
		mimeType = "text/html"
		responseData = []byte(fmt.Sprintf(
			`<!DOCTYPE html><html><meta charset="utf-8"><body style="margin:0;padding:0;">
<style>#graph svg {height: 99.5vh; width: 99.5vw;}</style>
<div id="graph"></div>
<script src="https://cdn.jsdelivr.net/npm/@hpcc-js/wasm@1.11.0/dist/index.min.js" integrity="sha256-ddqQRurJoGHtZfPh6lth44TYGG5dHRxgHJjnqeOVN2Y=" crossorigin="anonymous"></script>
<script src="https://cdn.jsdelivr.net/npm/d3@7.0.1/dist/d3.min.js" integrity="sha256-rw249VxIkeE54bKM2Cl2L7BIwIeVYNfFOaJ8it1ODvo=" crossorigin="anonymous"></script>
<script src="https://cdn.jsdelivr.net/npm/d3-graphviz@4.0.0/build/d3-graphviz.min.js" integrity="sha256-i+M3EvUd72UcF7LuKZm4eACil5o5qIibtX85JyxD5fQ=" crossorigin="anonymous"></script>
<script>
d3.select("#graph").graphviz(useWorker=false).renderDot(%s%s%s);
</script>
</body></html>`,
			"`", graph.String(), "`",
		))
	}

	// Write response.
	w.Header().Set("Content-Type", mimeType+"; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseData)))
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(responseData)
	if err != nil {
		log.Tracer(r.Context()).Warningf("api: failed to write response: %s", err)
	}
}

const (
	graphColorBuilding    = "steelblue2"
	graphColorWaypoint    = "seashell2"
	graphColorDefaultEdge = "black"
)

// WalkwayGraph renders the walkway network as a Graphviz graph. Buildings
// are labeled with their short name, plain waypoints stay unlabeled.
func (m *Map) WalkwayGraph() (*gographviz.Graph, error) {
	m.RLock()
	defer m.RUnlock()

	// Map walkway points back to building short names.
	buildings := make(map[campus.Point]string, len(m.locations))
	for short, location := range m.locations {
		buildings[location] = short
	}

	graph := gographviz.NewGraph()
	if err := graph.SetDir(true); err != nil {
		return nil, err
	}
	for _, attr := range [][2]string{
		{"ranksep", "0.2"},
		{"nodesep", "0.5"},
		{"center", "true"},
		{"overlap", "false"},
	} {
		if err := graph.AddAttr("", attr[0], attr[1]); err != nil {
			return nil, err
		}
	}

	nodeID := func(p campus.Point) string {
		return fmt.Sprintf(`"%.1f,%.1f"`, p.X, p.Y)
	}

	for _, point := range m.walkways.Nodes() {
		attrs := map[string]string{
			"shape":     "point",
			"fillcolor": graphColorWaypoint,
			"style":     "filled",
		}
		if short, ok := buildings[point]; ok {
			attrs["shape"] = "circle"
			attrs["label"] = fmt.Sprintf(`"%s"`, short)
			attrs["fillcolor"] = graphColorBuilding
			attrs["fontsize"] = "12"
			attrs["penwidth"] = "2"
		}
		if err := graph.AddNode("", nodeID(point), attrs); err != nil {
			return nil, err
		}
	}
	for _, parent := range m.walkways.Nodes() {
		for _, child := range m.walkways.Children(parent) {
			distances := m.walkways.Labels(parent, child)
			if len(distances) == 0 {
				continue
			}
			if err := graph.AddEdge(nodeID(parent), nodeID(child), true, map[string]string{
				"color": graphColorDefaultEdge,
				"label": fmt.Sprintf(`"%.0f"`, distances[0]),
			}); err != nil {
				return nil, err
			}
		}
	}

	return graph, nil
}
