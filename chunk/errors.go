package chunk

import "errors"

// ErrIndexOutOfBounds signals invalid byte offsets for slicing.
var ErrIndexOutOfBounds = errors.New("chunk: index out of bounds")
