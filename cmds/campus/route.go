package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wayfind/campus/navigator"
)

var routeCmd = &cobra.Command{
	Use:   "route FROM TO",
	Short: "Find the shortest walking route between two buildings",
	Args:  cobra.ExactArgs(2),
	RunE:  runRoute,
}

func init() {
	rootCmd.AddCommand(routeCmd)
}

func runRoute(cmd *cobra.Command, args []string) error {
	m, err := loadMap()
	if err != nil {
		return err
	}
	defer m.Close()

	printRoute(m, args[0], args[1])
	return nil
}

// printRoute prints the shortest route between two buildings, translating
// expected query failures into friendly messages.
func printRoute(m *navigator.Map, from, to string) {
	route, err := m.FindRoute(from, to)
	switch {
	case errors.Is(err, navigator.ErrBuildingNotFound):
		if !m.BuildingExists(from) {
			fmt.Printf("Unknown building: %s\n", from)
		}
		if !m.BuildingExists(to) {
			fmt.Printf("Unknown building: %s\n", to)
		}
		return
	case errors.Is(err, navigator.ErrNoRoute):
		fmt.Printf("There is no path from %s to %s.\n", from, to)
		return
	case err != nil:
		fmt.Printf("Failed to find route: %s\n", err)
		return
	}

	fromLong, _ := m.LongName(from)
	toLong, _ := m.LongName(to)
	fmt.Printf("Path from %s to %s:\n", fromLong, toLong)

	steps := route.Path.Steps()
	for i := 1; i < len(steps); i++ {
		fmt.Printf("\tWalk %.0f units from %s to %s\n", steps[i].Cost, steps[i-1].Node, steps[i].Node)
	}
	fmt.Printf("Total distance: %.0f units\n", route.TotalDistance())
}
