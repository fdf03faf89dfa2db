// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package render

import (
	"errors"
	"io"

	flatbuffers "github.com/google/flatbuffers/go"
)

// FrameReader reads a frame stream from an underlying stream.
type FrameReader struct {
	stateful
	// r is the stream to read from.
	r io.Reader
	// buf is reused to hold each frame.
	buf []byte
}

// NewFrameReader creates a FrameReader reading from r. Panics if r is
// nil.
func NewFrameReader(r io.Reader) *FrameReader {
	if r == nil {
		textPanic("nil reader")
	}
	return &FrameReader{r: r}
}

// Read reads the next frame and returns it as a Scene. The magic
// number is checked on the first call.
//
// Read returns io.EOF when the stream ends cleanly between frames, or
// is empty.
// A stream which ends partway through a frame, a frame larger than the
// package limit, and a corrupt frame are errors, and once an error
// other than io.EOF is returned every subsequent call returns it too.
func (r *FrameReader) Read() (Scene, error) {
	if r.err != nil {
		return Scene{}, r.err
	} else if r.state == uninitialized {
		if err := r.toState(uninitialized, inFrames); err != nil {
			return Scene{}, err
		}
		// An empty stream is a stream of zero frames.
		version, err := Magic(r.r)
		if err == io.EOF {
			r.state = eof
			return Scene{}, io.EOF
		} else if err != nil {
			return Scene{}, r.toErr(wrapErr("failed to read magic number", err))
		} else if version != Version {
			return Scene{}, r.toErr(fmtErr("unsupported version 0x%02x", version))
		}
	} else if r.state == eof {
		return Scene{}, io.EOF
	} else if err := r.toState(inFrames, inFrames); err != nil {
		return Scene{}, err
	}

	// Read the size prefix. Running out of data here is the normal
	// end of the stream.
	var prefix [flatbuffers.SizeUint32]byte
	if _, err := io.ReadFull(r.r, prefix[:]); errors.Is(err, io.EOF) {
		r.state = eof
		return Scene{}, io.EOF
	} else if err != nil {
		return Scene{}, r.toErr(wrapErr("failed to read frame size", err))
	}
	size := flatbuffers.GetUint32(prefix[:])
	if size > frameMaxLen {
		return Scene{}, r.toErr(fmtErr("frame size %d exceeds limit of %d bytes", size, frameMaxLen))
	} else if size < flatbuffers.SizeUOffsetT {
		return Scene{}, r.toErr(fmtErr("frame size %d too small", size))
	}

	// Read the frame itself, keeping the size prefix at the front of
	// the buffer so it stays a valid size-prefixed FlatBuffer.
	n := flatbuffers.SizeUint32 + int(size)
	if cap(r.buf) < n {
		r.buf = make([]byte, n)
	}
	r.buf = r.buf[:n]
	copy(r.buf, prefix[:])
	if _, err := io.ReadFull(r.r, r.buf[flatbuffers.SizeUint32:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return Scene{}, r.toErr(wrapErr("failed to read frame", err))
	}

	var f *Frame
	if err := safeFlatBuffersInteraction(func() error {
		f = GetSizePrefixedRootAsFrame(r.buf, 0)
		return nil
	}); err != nil {
		return Scene{}, r.toErr(wrapErr("failed to read frame", err))
	}
	s, err := sceneFromFrame(f)
	if err != nil {
		return Scene{}, r.toErr(wrapErr("failed to decode frame", err))
	}
	return s, nil
}

// Close closes the FrameReader. If the underlying stream is an
// io.Closer, it is closed too.
func (r *FrameReader) Close() error {
	return r.close(r.r)
}
