package backend

import (
	"reflect"
	"testing"
)

func TestParseGemListExtractsVersions(t *testing.T) {
	output := `
*** REMOTE GEMS ***

fpm (1.8.1, 1.8.0, 1.7.0, 1.6.3)
fpm-cookery (0.37.0, 0.36.0)
`
	got := parseGemList(output, "fpm")
	want := []string{"1.8.1", "1.8.0", "1.7.0", "1.6.3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseGemList = %v, want %v", got, want)
	}
}

func TestParseGemListSkipsNameCollisions(t *testing.T) {
	// "fpm-cookery" appears first; the prefix scan requires "fpm (" so the
	// longer name must not be mistaken for the requested gem.
	output := "fpm-cookery (0.37.0)\nfpm (1.8.1)\n"
	got := parseGemList(output, "fpm")
	want := []string{"1.8.1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseGemList = %v, want %v", got, want)
	}
}

func TestParseGemListUnknownGemIsEmpty(t *testing.T) {
	output := "*** REMOTE GEMS ***\n\nother-gem (1.0.0)\n"
	if got := parseGemList(output, "fpm"); got != nil {
		t.Fatalf("parseGemList for unknown gem = %v, want nil", got)
	}
}

func TestParseGemListEmptyParensIsEmpty(t *testing.T) {
	if got := parseGemList("fpm ()\n", "fpm"); got != nil {
		t.Fatalf("parseGemList with empty parens = %v, want nil", got)
	}
}

func TestParseGemListSingleVersion(t *testing.T) {
	got := parseGemList("fpm (1.8.1)\n", "fpm")
	want := []string{"1.8.1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseGemList = %v, want %v", got, want)
	}
}

func TestParseGemListTrimsCarriageReturns(t *testing.T) {
	got := parseGemList("fpm (1.8.1, 1.8.0)\r\n", "fpm")
	want := []string{"1.8.1", "1.8.0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseGemList with CRLF = %v, want %v", got, want)
	}
}

func TestParseGemListIgnoresUnterminatedLine(t *testing.T) {
	// A matching line without a closing paren is treated as noise; the scan
	// keeps going and may find a well-formed line further down.
	output := "fpm (1.8.1, 1.8.0\nfpm (1.7.0)\n"
	got := parseGemList(output, "fpm")
	want := []string{"1.7.0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseGemList = %v, want %v", got, want)
	}
}
