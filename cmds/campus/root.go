package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/wayfind/campus/campus"
	"github.com/wayfind/campus/conf"
	"github.com/wayfind/campus/navigator"
)

var (
	datasetPath string

	rootCmd = &cobra.Command{
		Use:           "campus",
		Short:         "Query walking routes on a campus map",
		Long:          `Campus loads a campus dataset and answers shortest-route queries between buildings, addressed by their short names.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "path to the campus dataset descriptor (yaml)")
}

// loadMap loads the configured dataset into a fresh map.
func loadMap() (*navigator.Map, error) {
	if datasetPath == "" {
		return nil, errors.New("no dataset given, use --dataset")
	}

	ds, err := campus.LoadDataset(datasetPath)
	if err != nil {
		return nil, err
	}

	m := navigator.NewMap(conf.MainMapName)
	if err := m.FillFromDataset(ds); err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}
