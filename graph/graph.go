// Package graph is the statement sink the transformation stages write
// into. It accumulates triples in insertion order and serializes them
// once at the end of a run.
package graph

import (
	"fmt"
	"io"
	"os"

	"github.com/knakk/rdf"
)

// Sink accepts statements from the stages that build the graph.
type Sink interface {
	Add(subj rdf.Subject, pred rdf.Predicate, obj rdf.Object)
}

// Graph is an in-memory, insertion-ordered triple collection.
type Graph struct {
	triples []rdf.Triple
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{}
}

// Add appends one statement to the graph.
func (g *Graph) Add(subj rdf.Subject, pred rdf.Predicate, obj rdf.Object) {
	g.triples = append(g.triples, rdf.Triple{Subj: subj, Pred: pred, Obj: obj})
}

// Len returns the number of statements added so far.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples exposes the accumulated statements in insertion order.
func (g *Graph) Triples() []rdf.Triple {
	return g.triples
}

// Serialize encodes every statement to w in the given format.
func (g *Graph) Serialize(w io.Writer, f rdf.Format) error {
	enc := rdf.NewTripleEncoder(w, f)
	if err := enc.EncodeAll(g.triples); err != nil {
		enc.Close()
		return fmt.Errorf("encoding triples: %w", err)
	}
	return enc.Close()
}

// SerializeFile writes the graph to path, creating or truncating it.
func (g *Graph) SerializeFile(path string, f rdf.Format) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.Serialize(fh, f); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

// FormatFromName maps a command line format name to a serialization
// format.
func FormatFromName(name string) (rdf.Format, error) {
	switch name {
	case "turtle", "ttl":
		return rdf.Turtle, nil
	case "ntriples", "nt":
		return rdf.NTriples, nil
	}
	return rdf.NTriples, fmt.Errorf("unknown output format %q", name)
}
