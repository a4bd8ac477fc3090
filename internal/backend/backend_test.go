package backend

import (
	"reflect"
	"strings"
	"testing"
)

func TestNewGemBackend(t *testing.T) {
	source, err := New("gem", Options{GemBin: "/opt/ruby/bin/gem", Verbose: true})
	if err != nil {
		t.Fatalf("New(gem) returned error: %v", err)
	}

	gemSource, ok := source.(*GemSource)
	if !ok {
		t.Fatalf("New(gem) = %T, want *GemSource", source)
	}
	if gemSource.GemBin != "/opt/ruby/bin/gem" || !gemSource.Verbose {
		t.Fatalf("New(gem) did not carry options: %+v", gemSource)
	}
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New("npm", Options{})
	if err == nil {
		t.Fatalf("New(npm) succeeded, want error")
	}
	if !strings.Contains(err.Error(), `unknown backend "npm"`) {
		t.Fatalf("error = %q, want it to name the unknown backend", err)
	}
	if !strings.Contains(err.Error(), "gem") {
		t.Fatalf("error = %q, want it to list known backends", err)
	}
}

func TestNamesIsSortedAndComplete(t *testing.T) {
	got := Names()
	want := []string{"gem"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}
