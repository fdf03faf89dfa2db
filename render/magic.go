// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package render

import "io"

const (
	// magicLen is the length of the frame stream magic number in bytes.
	magicLen = 4
	// Version is the frame stream format version written by this
	// package, and the only one it can read.
	Version = 0x01
	// frameMaxLen is the maximum size of a single frame this package
	// will read. It keeps a corrupt or malicious size prefix from
	// causing a huge and pointless memory allocation.
	frameMaxLen = 64 * 1024 * 1024
)

// magic contains the frame stream magic number. The last byte is the
// format version.
var magic = [magicLen]byte{0x72, 0x74, 0x66, Version}

// Magic reads the frame stream magic number from a stream and, if it is
// valid, returns the format version. It does not read beyond the magic
// number, so it can be used to test whether any stream seems to be a
// frame stream.
func Magic(r io.Reader) (uint8, error) {
	m := make([]byte, magicLen)
	_, err := io.ReadFull(r, m)
	if err != nil {
		return 0, err
	}
	if m[0] == magic[0] && m[1] == magic[1] && m[2] == magic[2] {
		return m[3], nil
	}
	return 0, textErr("invalid magic number")
}
