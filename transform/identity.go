package transform

import (
	"regexp"
	"strings"
)

// Column names follow the Open Power System Data household convention:
// a fixed country/region marker, a location token (letters followed by
// digits) and the measured quantity, joined by underscores, e.g.
// DE_KN_industrial1_grid_import. Identity derivation is pure string
// parsing against that grammar; the derived strings are the dedup keys
// for the whole run.
const locationPrefix = "DE_KN_"

var (
	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_]`)
	locationRe  = regexp.MustCompile(`^` + locationPrefix + `([A-Za-z]+[0-9]+)(_|$)`)
	propertyRe  = regexp.MustCompile(`^` + locationPrefix + `[A-Za-z]+[0-9]+_(.+)$`)
)

// Sanitize strips the location-prefix marker if present and replaces
// every character unsafe inside a URI token with an underscore. Total:
// never fails, any input yields a token-safe string.
func Sanitize(name string) string {
	name = strings.TrimPrefix(name, locationPrefix)
	return unsafeChars.ReplaceAllString(name, "_")
}

// LocationToken extracts the building/location fragment of a column
// name. Returns false when the name does not follow the location
// naming pattern; that is an expected shape, not an error.
func LocationToken(name string) (string, bool) {
	m := locationRe.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// SensorID derives the sensor identity for a column.
func SensorID(name string) string {
	return "Sensor_" + Sanitize(name)
}

// PropertyID derives the identity of the measured quantity, the suffix
// after the location token. Columns without the location pattern fall
// back to the whole sanitized name.
func PropertyID(name string) string {
	if m := propertyRe.FindStringSubmatch(name); m != nil {
		return "Property_" + Sanitize(m[1])
	}
	return "Property_" + Sanitize(name)
}

// LocationID derives the feature-of-interest identity for a column,
// when it carries a location token.
func LocationID(name string) (string, bool) {
	tok, ok := LocationToken(name)
	if !ok {
		return "", false
	}
	return "Location_" + tok, true
}
