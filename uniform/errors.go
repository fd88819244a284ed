package uniform

import "fmt"

// OffsetError reports that a write's offset and size exceed the declared
// block size. Reflection is trusted to never produce this in a correctly
// built program; seeing it indicates a compile/reflect bug, not a runtime
// condition to recover from.
type OffsetError struct {
	Block      string // "ubo" or "push"
	Offset     uint32
	WriteSize  int
	BlockSize  int
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("uniform: write of %d bytes at offset %d exceeds %s block size %d",
		e.WriteSize, e.Offset, e.Block, e.BlockSize)
}

// IsOffsetError reports whether err is an *OffsetError.
func IsOffsetError(err error) bool {
	_, ok := err.(*OffsetError)
	return ok
}
