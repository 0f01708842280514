package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var buildingsCmd = &cobra.Command{
	Use:   "buildings",
	Short: "List all buildings on the map",
	Args:  cobra.NoArgs,
	RunE:  runBuildings,
}

func init() {
	rootCmd.AddCommand(buildingsCmd)
}

func runBuildings(cmd *cobra.Command, args []string) error {
	m, err := loadMap()
	if err != nil {
		return err
	}
	defer m.Close()

	printBuildings(m.BuildingNames())
	return nil
}

func printBuildings(names map[string]string) {
	shortNames := make([]string, 0, len(names))
	for short := range names {
		shortNames = append(shortNames, short)
	}
	sort.Strings(shortNames)

	fmt.Println("Buildings:")
	for _, short := range shortNames {
		fmt.Printf("\t%s: %s\n", short, names[short])
	}
}
