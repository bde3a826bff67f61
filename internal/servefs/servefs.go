// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package servefs resolves a requested HTTP path to an openable file
// beneath the server's current working directory — the stat/open
// collaborator described at the interface level in §6.
package servefs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned for any path that does not resolve to an
// existing, readable, regular file beneath the working directory,
// including one that attempts to traverse outside of it.
var ErrNotFound = errors.New("servefs: file not found")

// Open strips path's leading slash, rejects any traversal outside the
// working directory, stats it, and opens it for reading. On success it
// returns the open file and its size at open time.
//
// The traversal guard is additive hardening beyond the literal source
// behavior (see SPEC_FULL.md, "Supplemented feature — path traversal
// guard"): a request that escapes the working directory is reported
// exactly like a missing file, preserving the three-status-line wire
// contract.
func Open(path string) (*os.File, int64, error) {
	rel := strings.TrimPrefix(path, "/")
	if rel == "" {
		return nil, 0, ErrNotFound
	}

	clean := filepath.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, "../") || filepath.IsAbs(clean) {
		return nil, 0, ErrNotFound
	}

	info, err := os.Stat(clean)
	if err != nil || info.IsDir() {
		return nil, 0, ErrNotFound
	}

	f, err := os.Open(clean)
	if err != nil {
		return nil, 0, ErrNotFound
	}
	return f, info.Size(), nil
}
