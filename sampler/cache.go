package sampler

import (
	"github.com/gogpu/shaderchain/hal"
	"github.com/gogpu/shaderchain/types"
)

// Cache lazily builds and memoizes backend samplers by types.SamplerKey.
// A Cache is not safe for concurrent use, matching the single-thread
// contract of the device it wraps.
type Cache struct {
	device  hal.Device
	entries map[types.SamplerKey]hal.Sampler
}

// New returns an empty Cache backed by device.
func New(device hal.Device) *Cache {
	return &Cache{device: device, entries: make(map[types.SamplerKey]hal.Sampler)}
}

// Get returns the sampler for key, constructing it via the device on
// first request.
func (c *Cache) Get(key types.SamplerKey) (hal.Sampler, error) {
	if s, ok := c.entries[key]; ok {
		return s, nil
	}
	s, err := c.device.SamplerFor(key)
	if err != nil {
		return hal.Sampler{}, err
	}
	c.entries[key] = s
	return s, nil
}

// Len reports how many distinct samplers have been constructed so far.
func (c *Cache) Len() int { return len(c.entries) }
