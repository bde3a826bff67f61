// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logx is the server's structured-logging collaborator, built
// on github.com/joeycumines/logiface with a zerolog writer, matching
// the logging stack used across the rest of the hybscloud/joeycumines
// ecosystem these packages are drawn from.
package logx

import (
	"fmt"
	"io"
	"os"

	"github.com/joeycumines/izerolog"
	"github.com/joeycumines/logiface"
	"github.com/rs/zerolog"
)

// Logger is the concrete logiface logger type used throughout sws.
type Logger = logiface.Logger[*izerolog.Event]

// New constructs a Logger writing structured JSON lines to w.
func New(w io.Writer) *Logger {
	zl := zerolog.New(w).With().Timestamp().Logger()
	return izerolog.L.New(izerolog.WithZerolog(zl))
}

// NewStdout constructs a Logger writing to standard output, the
// default used by cmd/sws.
func NewStdout() *Logger {
	return New(os.Stdout)
}

// RequestCompleted logs the spec's required "Request <seq> completed"
// outcome for a finished RCB, at informational level. The message text
// carries the literal "Request <seq> completed" phrase S1/S2/S3 assert
// the ordering of on standard output; seq_num is also attached as a
// structured field for anything parsing the JSON form.
func RequestCompleted(l *Logger, seqNum uint64) {
	l.Info().Uint64("seq_num", seqNum).Log(fmt.Sprintf("Request %d completed", seqNum))
}

// RequestAborted logs an RCB abandoned mid-serve due to an I/O error.
func RequestAborted(l *Logger, seqNum uint64, err error) {
	l.Warning().Uint64("seq_num", seqNum).Err(err).Log("request aborted")
}

// RequestRejected logs a submit-time rejection (malformed request or
// missing file); per §7 these are isolated to the one connection and
// never escalate.
func RequestRejected(l *Logger, reason string, err error) {
	l.Notice().Str("reason", reason).Err(err).Log("request rejected")
}

// Fatal logs a startup error at the Alert level and exits the process
// with a non-zero status, per §7's "fatal: abort process before
// accepting requests."
func Fatal(l *Logger, msg string, err error) {
	l.Fatal().Err(err).Log(msg)
}
