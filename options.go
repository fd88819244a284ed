package shaderchain

// LoadOptions configures chain construction. The zero value selects every
// default: no particular backend API version requested, no program
// caching.
type LoadOptions struct {
	// BackendVersion optionally names a backend API version/profile to
	// request (e.g. a GL context version string); empty means "let the
	// backend pick". Not read by any code in this module.
	BackendVersion string
	// CachePrograms requests that compiled programs be cached across
	// LoadFromPreset calls sharing the same preset path, if the compile
	// pipeline supports it. Unused in this module; reserved for a
	// caching-aware compiler.
	CachePrograms bool
}

// FrameOptions configures one call to Frame. The zero value clears no
// history and assumes forward playback.
type FrameOptions struct {
	// ClearHistory clears every history image before this frame's draws.
	ClearHistory bool
	// FrameDirection is written as the FrameDirection uniform; typically
	// +1 for forward playback, -1 for rewind. Zero is treated as +1.
	FrameDirection int32
}

func (o FrameOptions) direction() int32 {
	if o.FrameDirection == 0 {
		return 1
	}
	return o.FrameDirection
}
