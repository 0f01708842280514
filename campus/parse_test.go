package campus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBuildings(t *testing.T) {
	buildings, err := ParseBuildings(filepath.Join("testdata", "buildings.tsv"))
	require.NoError(t, err)
	require.Len(t, buildings, 4)

	assert.Equal(t, Building{
		ShortName: "CSE",
		LongName:  "Computer Science & Engineering",
		Location:  Point{X: 2259.7, Y: 1715.5},
	}, buildings[0])
	assert.Equal(t, "KNE", buildings[1].ShortName)
	assert.Equal(t, "Kane Hall", buildings[1].LongName)
}

func TestParseSegments(t *testing.T) {
	segments, err := ParseSegments(filepath.Join("testdata", "paths.tsv"))
	require.NoError(t, err)
	require.Len(t, segments, 8)

	assert.Equal(t, Segment{
		From:     Point{X: 2259.7, Y: 1715.5},
		To:       Point{X: 1895.8, Y: 1325.9},
		Distance: 520,
	}, segments[0])

	// Every segment has a reverse twin in the fixture.
	for _, seg := range segments {
		var found bool
		for _, other := range segments {
			if other.From == seg.To && other.To == seg.From && other.Distance == seg.Distance {
				found = true
				break
			}
		}
		assert.True(t, found, "missing reverse segment for %v -> %v", seg.From, seg.To)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := ParseBuildings(filepath.Join("testdata", "does-not-exist.tsv"))
	assert.Error(t, err)

	// Wrong column count.
	bad := writeTemp(t, "bad-columns.tsv", "CSE\tComputer Science\n")
	_, err = ParseBuildings(bad)
	assert.Error(t, err)

	// Unparsable coordinate.
	bad = writeTemp(t, "bad-float.tsv", "CSE\tComputer Science\tabc\t12.0\n")
	_, err = ParseBuildings(bad)
	assert.Error(t, err)

	// Negative distance.
	bad = writeTemp(t, "bad-distance.tsv", "0\t0\t1\t1\t-5.0\n")
	_, err = ParseSegments(bad)
	assert.Error(t, err)
}

func TestLoadDataset(t *testing.T) {
	ds, err := LoadDataset(filepath.Join("testdata", "campus.yml"))
	require.NoError(t, err)

	assert.Equal(t, "Test Campus", ds.Name)
	assert.Len(t, ds.Buildings, 4)
	assert.Len(t, ds.Segments, 8)
}

func TestLoadDatasetErrors(t *testing.T) {
	_, err := LoadDataset(filepath.Join("testdata", "does-not-exist.yml"))
	assert.Error(t, err)

	// Descriptor without data files.
	bad := writeTemp(t, "incomplete.yml", "name: No Files\n")
	_, err = LoadDataset(bad)
	assert.Error(t, err)
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
