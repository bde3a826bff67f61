// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schedcore

import "io"

// copyChunk reads up to IOUnit bytes from rcb.File and writes them to
// rcb.Conn, advancing rcb.SntBytes. buf is a caller-owned scratch slice
// of length IOUnit: the design note in §9 calls out the source's shared
// static scratch buffer as a latent race, so every call site here is
// required to pass a buffer allocated on its own goroutine's stack
// (never package-level state).
//
// A read that reaches EOF before rcb.Remaining() bytes have been seen
// (the file shrank, or tot_bytes was otherwise optimistic) is treated as
// completion rather than an error: per §9 edge cases, a short read near
// EOF completes the RCB mid-quantum instead of surfacing as an I/O
// failure.
func copyChunk(rcb *RCB, buf []byte) (int, error) {
	remaining := rcb.Remaining()
	if remaining <= 0 {
		return 0, nil
	}
	want := int64(len(buf))
	if remaining < want {
		want = remaining
	}
	n, err := rcb.File.Read(buf[:want])
	if n > 0 {
		if _, werr := rcb.Conn.Write(buf[:n]); werr != nil {
			return n, werr
		}
		rcb.SntBytes += int64(n)
	}
	if err == io.EOF {
		rcb.SntBytes = rcb.TotBytes
		return n, nil
	}
	return n, err
}

// NewIOFunc returns an IOFunc backed by a freshly allocated IOUnit
// scratch buffer, one per worker goroutine call stack.
func NewIOFunc() IOFunc {
	buf := make([]byte, IOUnit)
	return func(rcb *RCB) (int, error) {
		return copyChunk(rcb, buf)
	}
}
