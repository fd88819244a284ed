package glimmediate

import "testing"

func TestOpenWithoutLoaderFails(t *testing.T) {
	procLoader = nil
	if _, err := (Backend{}).Open(); err == nil {
		t.Fatal("expected an error opening without a proc address loader")
	}
}

func TestVariantIsImmediate(t *testing.T) {
	if (Backend{}).Variant().String() != "Immediate" {
		t.Fatalf("unexpected variant: %s", (Backend{}).Variant())
	}
}
