// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"

	flatbuffers "github.com/google/flatbuffers/go"
)

// safeFlatBuffersInteraction runs a function that interacts with
// FlatBuffers, trapping any panic that occurs and converting it to a
// normal Go error.
//
// FlatBuffers' Go code doesn't use standard Go error handling, so any
// attempt to read a corrupt buffer may panic with an index out of
// range.
func safeFlatBuffersInteraction(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: flatbuffers: %v", r)
		}
	}()
	err = f()
	return
}

// writeSizePrefixed writes a finished, size-prefixed FlatBuffers buffer
// to an output stream. The size prefix must agree with the length of
// the buffer.
func writeSizePrefixed(w io.Writer, buf []byte) (n int, err error) {
	var size uint32
	if size, err = bufferSize(buf); err != nil {
		return
	} else if uint64(size)+flatbuffers.SizeUint32 != uint64(len(buf)) {
		err = fmtErr("FlatBuffers size prefix does not match buffer (Len=%d, size=%d)", len(buf), size)
		return
	}
	return w.Write(buf)
}

func bufferSize(buf []byte) (size uint32, err error) {
	if len(buf) < flatbuffers.SizeUint32 {
		err = fmtErr("FlatBuffers buffer too short for size prefix (Len=%d)", len(buf))
		return
	}
	size = flatbuffers.GetUint32(buf)
	return
}
