package graph

import (
	"bytes"
	"testing"

	"github.com/knakk/rdf"
)

func iri(t *testing.T, s string) rdf.IRI {
	t.Helper()
	out, err := rdf.NewIRI(s)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestAddAndSerialize(t *testing.T) {
	g := New()
	subj := iri(t, "http://example.com/data/Sensor_a1_pv")
	pred := iri(t, "http://www.w3.org/1999/02/22-rdf-syntax-ns#type")
	obj := iri(t, "https://saref.etsi.org/core/Sensor")
	g.Add(subj, pred, obj)

	if g.Len() != 1 {
		t.Fatalf("Len = %d", g.Len())
	}

	var buf bytes.Buffer
	if err := g.Serialize(&buf, rdf.NTriples); err != nil {
		t.Fatal(err)
	}

	dec := rdf.NewTripleDecoder(&buf, rdf.NTriples)
	triples, err := dec.DecodeAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(triples) != 1 {
		t.Fatalf("decoded %d triples", len(triples))
	}
	if triples[0].Subj.String() != subj.String() {
		t.Errorf("subject = %s", triples[0].Subj)
	}
}

// Statement order is insertion order, and two identical graphs must
// serialize to identical bytes.
func TestSerializeDeterminism(t *testing.T) {
	build := func() *Graph {
		g := New()
		for _, s := range []string{"http://example.com/a", "http://example.com/b", "http://example.com/c"} {
			g.Add(iri(t, s), iri(t, "http://example.com/p"), iri(t, "http://example.com/o"))
		}
		return g
	}

	var one, two bytes.Buffer
	if err := build().Serialize(&one, rdf.NTriples); err != nil {
		t.Fatal(err)
	}
	if err := build().Serialize(&two, rdf.NTriples); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(one.Bytes(), two.Bytes()) {
		t.Error("serializations differ")
	}
}

func TestSerializeFileFailure(t *testing.T) {
	g := New()
	if err := g.SerializeFile("/nonexistent-dir/out.ttl", rdf.NTriples); err == nil {
		t.Error("expected an error")
	}
}

func TestFormatFromName(t *testing.T) {
	for _, name := range []string{"turtle", "ttl"} {
		f, err := FormatFromName(name)
		if err != nil || f != rdf.Turtle {
			t.Errorf("FormatFromName(%q) = %v, %v", name, f, err)
		}
	}
	for _, name := range []string{"ntriples", "nt"} {
		f, err := FormatFromName(name)
		if err != nil || f != rdf.NTriples {
			t.Errorf("FormatFromName(%q) = %v, %v", name, f, err)
		}
	}
	if _, err := FormatFromName("rdfxml"); err == nil {
		t.Error("expected an error for unsupported format")
	}
}
