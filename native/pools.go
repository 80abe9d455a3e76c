// Copyright 2024 The open62541pp Authors. All rights reserved.

package native

import (
	"github.com/djherbis/buffer"
)

// the default size of the encoder scratch buffers.
const defaultBufferSize = 64 * 1024

// bufferPool is a pool of capacity buffers backing Marshal.
var bufferPool = buffer.NewMemPoolAt(int64(defaultBufferSize))
