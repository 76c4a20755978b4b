// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package crossref

import (
	"regexp"
	"strings"
)

// doiPattern matches DOIs: "10.1145/1234567.1234568".
var doiPattern = regexp.MustCompile(`^10\.\d{4,9}/\S+$`)

// resolverPrefixes are stripped by Normalize, longest first.
var resolverPrefixes = []string{
	"https://dx.doi.org/",
	"http://dx.doi.org/",
	"https://doi.org/",
	"http://doi.org/",
	"doi:",
}

// Normalize trims whitespace and strips a resolver URL or "doi:" prefix.
// The resolver never calls it; user input is sent as typed.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	for _, p := range resolverPrefixes {
		if strings.HasPrefix(lower, p) {
			return strings.TrimSpace(s[len(p):])
		}
	}
	return s
}

// IsDOI reports whether s is syntactically a DOI.
func IsDOI(s string) bool {
	return doiPattern.MatchString(s)
}
