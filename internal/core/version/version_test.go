package version

import "testing"

func TestInfo(t *testing.T) {
	got := Info("prlens-api")
	if got.Service != "prlens-api" || got.Version != "dev" || got.Commit != "none" {
		t.Fatalf("Info = %+v", got)
	}
	if Info("").Service != "prlens" {
		t.Fatalf("empty service should fall back to prlens")
	}
}
