package transform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knakk/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runCSV = `utc_timestamp,cet_cest_timestamp,interpolated,DE_KN_industrial1_grid_import,DE_KN_industrial1_pv,temperature_outside
2015-01-01T00:00:00Z,2015-01-01T01:00:00+0100,nan,3.5,0.1,-2
2015-01-01T01:00:00Z,2015-01-01T02:00:00+0100,DE_KN_industrial1_pv,3.6,0.2,-2.5
2015-01-01T02:00:00Z,2015-01-01T03:00:00+0100,nan,,error,-3
`

func writeRunInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "household.csv")
	require.NoError(t, os.WriteFile(path, []byte(runCSV), 0644))
	return path
}

func TestRun(t *testing.T) {
	input := writeRunInput(t)
	output := filepath.Join(t.TempDir(), "out.nt")

	sum, err := Run(Options{Input: input, Output: output, Format: rdf.NTriples})
	require.NoError(t, err)

	assert.Equal(t, 3, sum.Rows)
	assert.Equal(t, 0, sum.RowsSkipped)
	// Row 1: all three cells numeric. Row 2: pv interpolated, two
	// emitted. Row 3: empty import cell, non-numeric pv, one emitted.
	assert.Equal(t, 6, sum.Observations)
	assert.Equal(t, 1, sum.Interpolated)
	assert.Equal(t, 1, sum.Empty)
	assert.Equal(t, 1, sum.NonNumeric)

	fh, err := os.Open(output)
	require.NoError(t, err)
	defer fh.Close()
	triples, err := rdf.NewTripleDecoder(fh, rdf.NTriples).DecodeAll()
	require.NoError(t, err)

	// 3 sensors, 3 properties, 1 location declared once; observations
	// with a location carry 6 statements, the weather one carries 5.
	declarations := 3*3 + 3*2 + 1*2
	assert.Equal(t, declarations+3*6+3*5, len(triples))
}

func TestRunDeterminism(t *testing.T) {
	input := writeRunInput(t)
	dir := t.TempDir()
	one := filepath.Join(dir, "one.nt")
	two := filepath.Join(dir, "two.nt")

	_, err := Run(Options{Input: input, Output: one, Format: rdf.NTriples})
	require.NoError(t, err)
	_, err = Run(Options{Input: input, Output: two, Format: rdf.NTriples})
	require.NoError(t, err)

	first, err := os.ReadFile(one)
	require.NoError(t, err)
	second, err := os.ReadFile(two)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunMissingInput(t *testing.T) {
	_, err := Run(Options{
		Input:  filepath.Join(t.TempDir(), "nope.csv"),
		Output: filepath.Join(t.TempDir(), "out.nt"),
		Format: rdf.NTriples,
	})
	assert.Error(t, err)
}

func TestRunSerializationFailure(t *testing.T) {
	input := writeRunInput(t)
	_, err := Run(Options{
		Input:  input,
		Output: filepath.Join(t.TempDir(), "missing", "out.nt"),
		Format: rdf.NTriples,
	})
	assert.Error(t, err)
}
