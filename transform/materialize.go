package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/knakk/rdf"
	"github.com/spf13/cast"

	"github.com/BCJonkhout/turtle-transformer/graph"
	"github.com/BCJonkhout/turtle-transformer/log"
	"github.com/BCJonkhout/turtle-transformer/tabular"
	"github.com/BCJonkhout/turtle-transformer/vocabulary/saref"
)

// The interpolation marker uses this sentinel when no column was
// interpolated for the row.
const missingSentinel = "nan"

// RowResult reports what happened to a single table row. A set Err
// means the row was abandoned; statements emitted before the failure
// stay in the graph.
type RowResult struct {
	Line         int
	Emitted      int
	Interpolated int
	Empty        int
	NonNumeric   int
	Err          error
}

// Summary aggregates row results for one run. The cell counters make
// the silently skipped values observable: nothing is logged per cell,
// but nothing is dropped without being counted either.
type Summary struct {
	Rows         int
	RowsSkipped  int
	Observations int
	Interpolated int
	Empty        int
	NonNumeric   int
}

func (s *Summary) observe(res RowResult) {
	s.Rows++
	s.Observations += res.Emitted
	s.Interpolated += res.Interpolated
	s.Empty += res.Empty
	s.NonNumeric += res.NonNumeric
	if res.Err != nil {
		s.RowsSkipped++
	}
}

// Materializer turns table rows into observation statements. One
// observation is emitted per (row, measurement column) pair that holds
// a numeric value and is not marked as interpolated for that row.
type Materializer struct {
	sink     graph.Sink
	registry *Registry
	columns  []string
}

// NewMaterializer builds a materializer over the measurement columns of
// header. The registry must already hold declarations for that header.
func NewMaterializer(sink graph.Sink, registry *Registry, header []string) *Materializer {
	return &Materializer{
		sink:     sink,
		registry: registry,
		columns:  MeasurementColumns(header),
	}
}

// Run consumes rows until the channel closes and returns the aggregated
// summary. Failed rows are logged and skipped; they never abort the
// run.
func (m *Materializer) Run(rows <-chan tabular.Row) Summary {
	var sum Summary
	for row := range rows {
		res := m.materializeRow(row)
		if res.Err != nil {
			log.WithFields(log.Fields{
				"line":  res.Line,
				"error": res.Err,
			}).Warning("Skipping row")
		}
		sum.observe(res)
	}
	return sum
}

func (m *Materializer) materializeRow(row tabular.Row) RowResult {
	res := RowResult{Line: row.Line}
	if row.Err != nil {
		res.Err = row.Err
		return res
	}

	// The timestamp string is propagated verbatim, both as the typed
	// literal and inside observation identities.
	ts := row.Values[ColTimestamp]
	tsLiteral := rdf.NewTypedLiteral(ts, saref.DateTime)

	excluded := interpolatedSensors(row.Values[ColInterpolated])

	for _, col := range m.columns {
		if _, skip := excluded[SensorID(col)]; skip {
			res.Interpolated++
			continue
		}
		raw := row.Values[col]
		if raw == "" {
			res.Empty++
			continue
		}
		value, err := cast.ToFloat64E(raw)
		if err != nil {
			// Non-numeric payloads are expected in measurement
			// columns (categorical flags); counted, not logged.
			res.NonNumeric++
			continue
		}
		if err := m.emit(col, ts, tsLiteral, value); err != nil {
			res.Err = fmt.Errorf("column %q: %w", col, err)
			return res
		}
		res.Emitted++
	}
	return res
}

func (m *Materializer) emit(col, ts string, tsLiteral rdf.Literal, value float64) error {
	sensorIRI, ok := m.registry.SensorIRI(col)
	if !ok {
		return fmt.Errorf("sensor %q not declared", SensorID(col))
	}
	propIRI, ok := m.registry.PropertyIRI(col)
	if !ok {
		return fmt.Errorf("property %q not declared", PropertyID(col))
	}

	obsIRI, err := saref.DataIRI("Observation_" + Sanitize(col) + "_" + ts)
	if err != nil {
		return fmt.Errorf("building observation identity: %w", err)
	}
	valueLiteral := rdf.NewTypedLiteral(
		strconv.FormatFloat(value, 'g', -1, 64), saref.Float)

	m.sink.Add(obsIRI, saref.RDFType, saref.Observation)
	m.sink.Add(obsIRI, saref.HasTimestamp, tsLiteral)
	m.sink.Add(obsIRI, saref.HasValue, valueLiteral)
	m.sink.Add(obsIRI, saref.MadeBySensor, sensorIRI)
	m.sink.Add(obsIRI, saref.RelatesToProperty, propIRI)
	if locIRI, ok := m.registry.LocationIRI(col); ok {
		m.sink.Add(obsIRI, saref.IsAbout, locIRI)
	}
	return nil
}

// interpolatedSensors parses the interpolation-marker cell into the set
// of sensor identities excluded for the row. The marker is a
// pipe-delimited list of column names, or the missing sentinel when
// nothing was interpolated.
func interpolatedSensors(marker string) map[string]struct{} {
	out := map[string]struct{}{}
	if marker == "" || strings.EqualFold(marker, missingSentinel) {
		return out
	}
	for _, tok := range strings.Split(marker, "|") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		out[SensorID(tok)] = struct{}{}
	}
	return out
}
