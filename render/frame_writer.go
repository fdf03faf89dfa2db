// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package render

import (
	"io"

	flatbuffers "github.com/google/flatbuffers/go"
)

// FrameWriter writes a frame stream to an underlying stream.
//
// The magic number is written before the first frame, so a FrameWriter
// which is closed without writing any frames writes nothing at all.
type FrameWriter struct {
	stateful
	// w is the stream to write to.
	w io.Writer
	// b is reused to build each frame.
	b *flatbuffers.Builder
	// numFrames is the number of frames written so far.
	numFrames int
}

// NewFrameWriter creates a FrameWriter writing to w. Panics if w is nil.
func NewFrameWriter(w io.Writer) *FrameWriter {
	if w == nil {
		textPanic("nil writer")
	}
	return &FrameWriter{w: w, b: flatbuffers.NewBuilder(1024)}
}

// Write writes one Scene as a frame, returning the number of bytes
// written. The first call also writes the magic number.
//
// Once a write to the underlying stream fails, every subsequent call
// returns the same error.
func (w *FrameWriter) Write(s Scene) (n int, err error) {
	if w.state == uninitialized {
		if err = w.toState(uninitialized, inFrames); err != nil {
			return
		}
		var m int
		m, err = w.w.Write(magic[:])
		n += m
		if err != nil {
			err = w.toErr(wrapErr("failed to write magic number", err))
			return
		}
	} else if err = w.toState(inFrames, inFrames); err != nil {
		return
	}

	var buf []byte
	if buf, err = s.build(w.b); err != nil {
		err = wrapErr("failed to build frame %d", err, w.numFrames)
		return
	}

	m, err := writeSizePrefixed(w.w, buf)
	n += m
	if err != nil {
		err = w.toErr(wrapErr("failed to write frame %d", err, w.numFrames))
		return
	}
	w.numFrames++
	return
}

// NumFrames returns the number of frames successfully written.
func (w *FrameWriter) NumFrames() int {
	return w.numFrames
}

// Close closes the FrameWriter. If the underlying stream is an
// io.Closer, it is closed too.
func (w *FrameWriter) Close() error {
	return w.close(w.w)
}
