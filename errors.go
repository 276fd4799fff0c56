package polyline

import (
	"errors"
	"fmt"
)

// ErrTruncated reports an encoded string that ends mid-value: the
// continuation bit was set on the final byte, or a latitude delta had no
// matching longitude. The character class of such a string may still be
// valid - passing IsValidEncoding does not guarantee a clean decode.
var ErrTruncated = errors.New("polyline: truncated encoding")

// DecodeError carries the byte offset at which decoding failed.
type DecodeError struct {
	Offset int
	reason error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("polyline: decode failed at byte %d: %v", e.Offset, e.reason)
}

func (e *DecodeError) Unwrap() error { return e.reason }
