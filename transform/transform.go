// Package transform maps household energy-meter tables onto a SAREF
// style sensor/observation graph. Column names become Sensor, Property
// and FeatureOfInterest identities; each numeric cell becomes one
// Observation.
package transform

import (
	"fmt"

	"github.com/knakk/rdf"

	"github.com/BCJonkhout/turtle-transformer/graph"
	"github.com/BCJonkhout/turtle-transformer/log"
	"github.com/BCJonkhout/turtle-transformer/tabular"
)

// Options configure a single transformation run.
type Options struct {
	Input  string
	Output string
	Format rdf.Format
}

// Run executes one whole-file transformation: declare the entities
// discoverable from the header, materialize observations from every
// row, then serialize the accumulated graph to the output path. Only
// the final serialization step is fatal.
func Run(opts Options) (Summary, error) {
	table, err := tabular.Open(opts.Input)
	if err != nil {
		return Summary{}, fmt.Errorf("opening table: %w", err)
	}
	defer table.Close()

	g := graph.New()
	registry := NewRegistry(g)
	if err := registry.Declare(table.Columns()); err != nil {
		return Summary{}, err
	}

	sum := NewMaterializer(g, registry, table.Columns()).Run(table.Rows())

	if err := g.SerializeFile(opts.Output, opts.Format); err != nil {
		return sum, fmt.Errorf("serializing graph to %s: %w", opts.Output, err)
	}
	log.WithFields(log.Fields{
		"statements": g.Len(),
		"output":     opts.Output,
	}).Info("Graph serialized")
	return sum, nil
}
