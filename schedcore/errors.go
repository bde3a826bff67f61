// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schedcore

import "errors"

// Sentinel errors covering the error taxonomy of §7: submit-time
// rejections are isolated to the one offending request, while
// ErrUnknownPolicy is the one sentinel a caller should treat as fatal,
// aborting before the server starts accepting connections.
var (
	// ErrBadRequest indicates submit() could not parse a GET request
	// line. Submit has already replied "400 Bad request" and closed the
	// connection by the time it returns this.
	ErrBadRequest = errors.New("schedcore: malformed request")

	// ErrNotFound indicates the requested path does not stat to an
	// existing, openable file. Submit has already replied "404 File not
	// found" and closed the connection by the time it returns this.
	ErrNotFound = errors.New("schedcore: file not found")

	// ErrAborted indicates a socket write or file read failed mid-serve.
	// The RCB is abandoned: closed and destroyed, never re-enqueued.
	ErrAborted = errors.New("schedcore: request aborted")

	// ErrUnknownPolicy indicates an unrecognized <scheduler> CLI
	// argument. Fatal: the process must abort before accepting any
	// connections.
	ErrUnknownPolicy = errors.New("schedcore: unknown scheduler policy")
)
