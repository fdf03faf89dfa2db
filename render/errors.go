// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package render

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned when attempting to perform an operation on
	// a FrameReader or FrameWriter which has been closed.
	ErrClosed = textErr("closed")

	errUnexpectedState = textErr("unexpected state")
)

const packageName = "render: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
