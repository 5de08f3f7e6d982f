package config

import (
	"os"
	"testing"
)

// The shipped example must stay loadable and match the defaults.
func TestExampleFileMatchesDefaults(t *testing.T) {
	data, err := os.ReadFile("../../sandbox.example.toml")
	if err != nil {
		t.Skipf("example config not found: %v", err)
	}
	var cfg Config
	if err := Decode(data, &cfg); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cfg != Default() {
		t.Errorf("example = %+v\nwant    %+v", cfg, Default())
	}
}
