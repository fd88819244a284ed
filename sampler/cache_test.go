package sampler_test

import (
	"testing"

	"github.com/gogpu/shaderchain/hal/noop"
	"github.com/gogpu/shaderchain/sampler"
	"github.com/gogpu/shaderchain/types"
)

func TestGetCachesByKey(t *testing.T) {
	dev, err := (noop.Backend{}).Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	c := sampler.New(dev)

	key := types.SamplerKey{Wrap: types.WrapRepeat, Filter: types.FilterLinear, Mip: types.MipFilterLinear}
	a, err := c.Get(key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	b, err := c.Get(key)
	if err != nil {
		t.Fatalf("Get (repeat): %v", err)
	}
	if a != b {
		t.Fatalf("expected cached sampler to be reused, got %v != %v", a, b)
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
}

func TestGetDistinctKeysProduceDistinctSamplers(t *testing.T) {
	dev, err := (noop.Backend{}).Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	c := sampler.New(dev)

	a, _ := c.Get(types.SamplerKey{Wrap: types.WrapClamp, Filter: types.FilterNearest})
	b, _ := c.Get(types.SamplerKey{Wrap: types.WrapRepeat, Filter: types.FilterNearest})
	if a == b {
		t.Fatal("expected distinct samplers for distinct keys")
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
}
