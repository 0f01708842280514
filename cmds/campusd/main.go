// Campusd serves the campus map API.
package main

import (
	"os"

	"github.com/safing/portbase/api"
	"github.com/safing/portbase/config"
	"github.com/safing/portbase/info"
	"github.com/safing/portbase/run"

	"github.com/wayfind/campus/navigator"

	// include required modules
	_ "github.com/safing/portbase/database/dbmodule"
)

func main() {
	info.Set("Campus Navigator", "0.1.0", "MIT", true)

	// Serve locally only, routes need no authentication.
	config.SetDefaultConfigOption(api.CfgDefaultListenAddressKey, "127.0.0.1:8317")

	// Load the dataset given in the environment, if any.
	if path, ok := os.LookupEnv("CAMPUS_DATASET"); ok {
		config.SetDefaultConfigOption(navigator.CfgDatasetFileKey, path)
	}

	// start
	os.Exit(run.Run())
}
