package campus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ParseBuildings reads a tab-separated buildings file. Each record holds the
// short name, long name and the x/y map coordinates of a building.
func ParseBuildings(path string) ([]Building, error) {
	var buildings []Building
	err := parseTSV(path, 4, func(record []string) error {
		x, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return fmt.Errorf("invalid x coordinate %q: %w", record[2], err)
		}
		y, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return fmt.Errorf("invalid y coordinate %q: %w", record[3], err)
		}
		buildings = append(buildings, Building{
			ShortName: record[0],
			LongName:  record[1],
			Location:  Point{X: x, Y: y},
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return buildings, nil
}

// ParseSegments reads a tab-separated walkway file. Each record holds the
// x/y coordinates of both endpoints and the length of the segment.
func ParseSegments(path string) ([]Segment, error) {
	var segments []Segment
	err := parseTSV(path, 5, func(record []string) error {
		values := make([]float64, 5)
		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", field, err)
			}
			values[i] = v
		}
		if values[4] < 0 {
			return fmt.Errorf("negative segment distance %f", values[4])
		}
		segments = append(segments, Segment{
			From:     Point{X: values[0], Y: values[1]},
			To:       Point{X: values[2], Y: values[3]},
			Distance: values[4],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return segments, nil
}

// parseTSV reads all records of a tab-separated file and hands them to apply.
func parseTSV(path string, fields int, apply func(record []string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = '\t'
	reader.FieldsPerRecord = fields
	reader.Comment = '#'

	for line := 1; ; line++ {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := apply(record); err != nil {
			return fmt.Errorf("%s line %d: %w", path, line, err)
		}
	}
}
