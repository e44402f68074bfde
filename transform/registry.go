package transform

import (
	"fmt"
	"strings"

	"github.com/knakk/rdf"

	"github.com/BCJonkhout/turtle-transformer/graph"
	"github.com/BCJonkhout/turtle-transformer/log"
	"github.com/BCJonkhout/turtle-transformer/vocabulary/saref"
)

// Reserved column names that never describe a measurement channel.
const (
	ColTimestamp    = "utc_timestamp"
	ColTimestampCET = "cet_cest_timestamp"
	ColInterpolated = "interpolated"
)

// MeasurementColumns filters a header down to the columns eligible to
// produce sensors and observations, preserving header order.
func MeasurementColumns(header []string) []string {
	out := []string{}
	for _, col := range header {
		if !strings.Contains(col, "_") {
			continue
		}
		switch col {
		case ColTimestamp, ColTimestampCET, ColInterpolated:
			continue
		}
		out = append(out, col)
	}
	return out
}

// Registry declares every Sensor, Property and FeatureOfInterest
// discoverable from the table header, each identity exactly once. The
// declared IRIs are kept for reuse by the materializer.
type Registry struct {
	sink graph.Sink

	sensors    map[string]rdf.IRI
	properties map[string]rdf.IRI
	locations  map[string]rdf.IRI
}

// NewRegistry returns a registry writing declarations into sink.
func NewRegistry(sink graph.Sink) *Registry {
	return &Registry{
		sink:       sink,
		sensors:    map[string]rdf.IRI{},
		properties: map[string]rdf.IRI{},
		locations:  map[string]rdf.IRI{},
	}
}

// Declare walks the header in order and emits the one-time declaration
// statements for every qualifying column.
func (r *Registry) Declare(header []string) error {
	for _, col := range MeasurementColumns(header) {
		if err := r.declareColumn(col); err != nil {
			return fmt.Errorf("declaring entities for column %q: %w", col, err)
		}
	}
	log.WithFields(log.Fields{
		"sensors":    len(r.sensors),
		"properties": len(r.properties),
		"locations":  len(r.locations),
	}).Info("Declared ontology entities")
	return nil
}

func (r *Registry) declareColumn(col string) error {
	propID := PropertyID(col)
	propIRI, haveProp := r.properties[propID]
	if !haveProp {
		var err error
		propIRI, err = saref.TermIRI(propID)
		if err != nil {
			return err
		}
	}

	sensorID := SensorID(col)
	if _, seen := r.sensors[sensorID]; !seen {
		sensorIRI, err := saref.DataIRI(sensorID)
		if err != nil {
			return err
		}
		label, err := rdf.NewLiteral("Sensor for " + col)
		if err != nil {
			return err
		}
		r.sink.Add(sensorIRI, saref.RDFType, saref.Sensor)
		r.sink.Add(sensorIRI, saref.Label, label)
		r.sink.Add(sensorIRI, saref.MeasuresProperty, propIRI)
		r.sensors[sensorID] = sensorIRI
	}

	if !haveProp {
		label, err := rdf.NewLiteral("Property measured by " + col)
		if err != nil {
			return err
		}
		r.sink.Add(propIRI, saref.RDFType, saref.Property)
		r.sink.Add(propIRI, saref.Label, label)
		r.properties[propID] = propIRI
	}

	// Columns without a location token yield no FeatureOfInterest.
	if locID, ok := LocationID(col); ok {
		if _, seen := r.locations[locID]; !seen {
			locIRI, err := saref.DataIRI(locID)
			if err != nil {
				return err
			}
			token := strings.ReplaceAll(strings.TrimPrefix(locID, "Location_"), "_", " ")
			label, err := rdf.NewLiteral("Location " + token)
			if err != nil {
				return err
			}
			r.sink.Add(locIRI, saref.RDFType, saref.FeatureOfInterest)
			r.sink.Add(locIRI, saref.Label, label)
			r.locations[locID] = locIRI
		}
	}
	return nil
}

// SensorIRI returns the declared sensor identity for a column.
func (r *Registry) SensorIRI(col string) (rdf.IRI, bool) {
	iri, ok := r.sensors[SensorID(col)]
	return iri, ok
}

// PropertyIRI returns the declared property identity for a column.
func (r *Registry) PropertyIRI(col string) (rdf.IRI, bool) {
	iri, ok := r.properties[PropertyID(col)]
	return iri, ok
}

// LocationIRI returns the declared feature-of-interest identity for a
// column, if its name carries one.
func (r *Registry) LocationIRI(col string) (rdf.IRI, bool) {
	locID, ok := LocationID(col)
	if !ok {
		return rdf.IRI{}, false
	}
	iri, ok := r.locations[locID]
	return iri, ok
}
