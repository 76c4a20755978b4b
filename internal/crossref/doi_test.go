// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package crossref

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"10.1145/1234567.1234568", "10.1145/1234567.1234568"},
		{"  10.1038/s41586-024-07487-w \n", "10.1038/s41586-024-07487-w"},
		{"doi:10.1000/xyz123", "10.1000/xyz123"},
		{"DOI:10.1000/xyz123", "10.1000/xyz123"},
		{"https://doi.org/10.1000/xyz123", "10.1000/xyz123"},
		{"http://dx.doi.org/10.1000/xyz123", "10.1000/xyz123"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsDOI(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"10.1145/1234567.1234568", true},
		{"10.1038/s41586-024-07487-w", true},
		{"10.1000/xyz123", true},
		{"10.12/short-registrant", false},
		{"11.1000/xyz", false},
		{"10.1000/", false},
		{"10.1000/has space", false},
		{"not-a-doi", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsDOI(tt.in); got != tt.want {
			t.Errorf("IsDOI(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
