// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command sws is the static file server's entrypoint: it parses the
// positional CLI contract, wires a scheduler policy to a TCP listener,
// and runs the accept loop and worker pool described in §4 of the
// scheduler core's design.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"code.hybscloud.com/sws/internal/logx"
	"code.hybscloud.com/sws/internal/netio"
	"code.hybscloud.com/sws/schedcore"
)

const usage = "usage: sws <port> <scheduler> <thread_count>\n  scheduler: SJF | RR | MLQF\n"

func main() {
	port, scheduler, threads, ok := parseArgs(os.Args[1:])
	if !ok {
		fmt.Print(usage)
		os.Exit(1)
	}

	log := logx.NewStdout()

	policy, err := schedcore.New(scheduler)
	if err != nil {
		logx.Fatal(log, "unknown scheduler", err)
		return
	}

	ln, err := netio.Listen(port)
	if err != nil {
		logx.Fatal(log, "listen failed", err)
		return
	}

	disp := schedcore.NewDispatcher(policy)

	for i := 0; i < threads; i++ {
		go worker(disp, log)
	}

	// Workers and the accept loop never self-terminate (§4.6); this
	// goroutine only exists so SIGINT/SIGTERM log a final line before the
	// process exits. The logger writes straight to standard output, so
	// there is no buffer to flush.
	go watchShutdownSignal(log)

	acceptLoop(ln, disp, log)
}

// watchShutdownSignal blocks until the process receives SIGINT or
// SIGTERM, logs that the server is stopping, and exits with status 0.
// It never interrupts an in-flight Serve call: per §5 there is no
// cancellation mechanism, so a quantum or full serve already underway
// runs to its own completion or I/O error regardless of this signal.
func watchShutdownSignal(log *logx.Logger) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	sig := <-ch
	log.Notice().Str("signal", sig.String()).Log("shutting down")
	os.Exit(0)
}

// parseArgs validates the positional "sws <port> <scheduler>
// <thread_count>" contract. It never treats a recoverable parse error
// as fatal to the process: the caller prints the usage message and
// exits on its own.
func parseArgs(args []string) (port int, scheduler string, threads int, ok bool) {
	if len(args) != 3 {
		return 0, "", 0, false
	}
	p, err := strconv.Atoi(args[0])
	if err != nil || p <= 0 {
		return 0, "", 0, false
	}
	switch args[1] {
	case "SJF", "RR", "MLQF":
	default:
		return 0, "", 0, false
	}
	t, err := strconv.Atoi(args[2])
	if err != nil || t < 1 {
		return 0, "", 0, false
	}
	return p, args[1], t, true
}

// acceptLoop is the single producer goroutine: network_wait, then
// network_open, then submit. It never terminates itself; the process
// exits by external signal, per §4.6.
func acceptLoop(ln *netio.Listener, disp *schedcore.Dispatcher, log *logx.Logger) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			logx.RequestRejected(log, "accept failed", err)
			continue
		}
		if _, err := disp.Submit(conn); err != nil {
			reason := "malformed request"
			if errors.Is(err, schedcore.ErrNotFound) {
				reason = "file not found"
			}
			logx.RequestRejected(log, reason, err)
		}
	}
}

// worker is one consumer goroutine: next, serve, repeat, exactly as
// described in §4.5/§4.6. A Completed or Aborted outcome destroys the
// RCB; Requeued hands it straight back to the dispatcher and the loop
// picks up its own or another RCB next iteration.
func worker(disp *schedcore.Dispatcher, log *logx.Logger) {
	io := schedcore.NewIOFunc()
	for {
		rcb := disp.Next()
		switch disp.Serve(rcb, io) {
		case schedcore.Completed:
			logx.RequestCompleted(log, rcb.SeqNum)
			rcb.Close()
		case schedcore.Aborted:
			logx.RequestAborted(log, rcb.SeqNum, schedcore.ErrAborted)
			rcb.Close()
		case schedcore.Requeued:
			// ownership returned to the policy; nothing to release here.
		}
	}
}
