package shaderchain

import (
	"github.com/gogpu/shaderchain/hal"
	"github.com/gogpu/shaderchain/rendertarget"
	"github.com/gogpu/shaderchain/types"
)

// historyRing is an array-backed ring of H previous-frame input images.
// head names the most recent (front) slot; pushing rotates head backward
// by one and reuses the slot that falls out the back (the oldest image)
// as the new front's backing store. No element is ever copied between
// slots, only resized-in-place and overwritten.
type historyRing struct {
	images []*rendertarget.Image
	head   int
}

// newHistoryRing allocates depth placeholder images. depth == 0 disables
// history entirely (push and at become no-ops / always-empty).
func newHistoryRing(device hal.Device, depth int) (*historyRing, error) {
	r := &historyRing{images: make([]*rendertarget.Image, depth)}
	for i := range r.images {
		img, err := rendertarget.New(device, 1)
		if err != nil {
			r.destroy()
			return nil, err
		}
		r.images[i] = img
	}
	return r, nil
}

func (r *historyRing) depth() int { return len(r.images) }

// at returns the image at the given age (0 = most recent).
func (r *historyRing) at(age int) *rendertarget.Image {
	n := len(r.images)
	if n == 0 {
		return nil
	}
	return r.images[(r.head+age)%n]
}

// push writes input into the slot that falls out the back of the ring
// and makes it the new front.
func (r *historyRing) push(input types.ImageHandle) error {
	n := len(r.images)
	if n == 0 {
		return nil
	}
	newHead := (r.head - 1 + n) % n
	if err := r.images[newHead].CopyFrom(input); err != nil {
		return err
	}
	r.head = newHead
	return nil
}

// clear resets every slot to black, leaving ring order unchanged.
func (r *historyRing) clear() error {
	for _, img := range r.images {
		if err := img.Clear(); err != nil {
			return err
		}
	}
	return nil
}

// sampledAges returns SampledInput views for ages [0, n), using sample
// for every view.
func (r *historyRing) sampledAges(n int, sample types.SamplerKey) []types.SampledInput {
	if n <= 0 {
		return nil
	}
	out := make([]types.SampledInput, n)
	for i := 0; i < n; i++ {
		out[i] = r.at(i).AsSampled(sample)
	}
	return out
}

func (r *historyRing) destroy() {
	for _, img := range r.images {
		if img != nil {
			img.Destroy()
		}
	}
	r.images = nil
}
