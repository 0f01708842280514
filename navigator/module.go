package navigator

import (
	"errors"

	"github.com/safing/portbase/config"
	"github.com/safing/portbase/log"
	"github.com/safing/portbase/modules"

	"github.com/wayfind/campus/campus"
	"github.com/wayfind/campus/conf"
)

var (
	// ErrEmptyMap is returned when the Map holds no buildings.
	ErrEmptyMap = errors.New("campus map is empty")

	// ErrBuildingNotFound is returned when a building short name is not on
	// the Map.
	ErrBuildingNotFound = errors.New("building not found on map")

	// ErrNoRoute is returned when the walkway network does not connect the
	// two requested buildings.
	ErrNoRoute = errors.New("no route between buildings")
)

// CfgDatasetFileKey configures the campus dataset descriptor loaded into the
// main map on start.
const CfgDatasetFileKey = "campus/datasetFile"

var (
	module *modules.Module

	// Main is the primary map used.
	Main *Map

	datasetFile config.StringOption
	devMode     config.BoolOption
)

func init() {
	module = modules.Register("navigator", prep, start, stop, "api")
}

func prep() error {
	err := config.Register(&config.Option{
		Name:         "Campus Dataset",
		Key:          CfgDatasetFileKey,
		Description:  "Path to the campus dataset descriptor to load into the main map on start.",
		OptType:      config.OptTypeString,
		DefaultValue: "",
	})
	if err != nil {
		return err
	}
	datasetFile = config.Concurrent.GetAsString(CfgDatasetFileKey, "")

	return registerAPIEndpoints()
}

func start() error {
	Main = NewMap(conf.MainMapName)
	devMode = config.Concurrent.GetAsBool(config.CfgDevModeKey, false)

	if path := datasetFile(); path != "" {
		ds, err := campus.LoadDataset(path)
		if err != nil {
			return err
		}
		if err := Main.FillFromDataset(ds); err != nil {
			return err
		}
		log.Infof("campus/navigator: loaded dataset %s: %s", ds.Name, Main.Stats())
	} else {
		log.Warningf("campus/navigator: no dataset configured, main map starts empty")
	}

	return nil
}

func stop() error {
	if Main != nil {
		Main.Close()
	}
	return nil
}
