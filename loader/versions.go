package loader

// VersionBeforeOAS3 reports whether a detected version string predates
// OpenAPI 3.0 and the document therefore uses the swagger-style layout
// (top-level definitions map, #/definitions/ references).
//
// The comparison is deliberately lexical: "2.0" < "3" and "3.0.0" > "3"
// hold for every version string the swagger/openapi fields can carry, and
// the swagger-vs-openapi code paths throughout this module key off exactly
// this string comparison. Do not replace it with semver parsing.
func VersionBeforeOAS3(version string) bool {
	return version < "3"
}
