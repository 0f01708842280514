// Package conf holds shared campus navigator settings.
package conf

import "flag"

// MainMapName is the name of the primary campus map.
var MainMapName = "main"

func init() {
	flag.StringVar(&MainMapName, "campus-map", "main", "set main campus map name - use only for testing")
}
