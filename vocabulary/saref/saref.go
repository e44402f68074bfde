// Package saref holds the RDF terms the transformer emits: the SAREF
// core classes and predicates, the example data namespaces identities
// are minted in, and the XSD datatypes used for literals.
package saref

import "github.com/knakk/rdf"

// Namespace IRIs.
const (
	Core   = "https://saref.etsi.org/core/"
	NS     = "http://example.com/"
	NSData = "http://example.com/data/"
	XSD    = "http://www.w3.org/2001/XMLSchema#"
	rdfNS  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	rdfsNS = "http://www.w3.org/2000/01/rdf-schema#"
)

func mustIRI(s string) rdf.IRI {
	iri, err := rdf.NewIRI(s)
	if err != nil {
		panic("vocabulary: bad IRI " + s + ": " + err.Error())
	}
	return iri
}

// Classes.
var (
	Sensor            = mustIRI(Core + "Sensor")
	Property          = mustIRI(Core + "Property")
	FeatureOfInterest = mustIRI(Core + "FeatureOfInterest")
	Observation       = mustIRI(Core + "Observation")
)

// Predicates.
var (
	RDFType           = mustIRI(rdfNS + "type")
	Label             = mustIRI(rdfsNS + "label")
	MeasuresProperty  = mustIRI(Core + "measuresProperty")
	HasTimestamp      = mustIRI(Core + "hasTimestamp")
	HasValue          = mustIRI(Core + "hasValue")
	MadeBySensor      = mustIRI(Core + "madeBySensor")
	RelatesToProperty = mustIRI(Core + "relatesToProperty")
	IsAbout           = mustIRI(Core + "isAbout")
)

// Literal datatypes.
var (
	DateTime = mustIRI(XSD + "dateTime")
	Float    = mustIRI(XSD + "float")
)

// DataIRI mints an entity identity in the data namespace.
func DataIRI(local string) (rdf.IRI, error) {
	return rdf.NewIRI(NSData + local)
}

// TermIRI mints a term in the general example namespace. Property
// identities live here, entity identities in the data namespace.
func TermIRI(local string) (rdf.IRI, error) {
	return rdf.NewIRI(NS + local)
}
