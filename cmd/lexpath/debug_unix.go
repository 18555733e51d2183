//go:build !windows

package main

import (
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

const (
	stackTraceBufMax = 1 << 24
)

// setupDebugHandlers installs the debugging signal handlers; SIGUSR1 dumps
// all goroutine stacks to standard error and SIGUSR2 forces a garbage
// collection cycle.
func setupDebugHandlers() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGUSR1)
	go func() {
		for range sigChan {
			buf := make([]byte, stackTraceBufMax)
			stacklen := runtime.Stack(buf, true)
			os.Stderr.Write(buf[:stacklen]) //nolint:errcheck
		}
	}()

	sigChan2 := make(chan os.Signal, 1)
	signal.Notify(sigChan2, syscall.SIGUSR2)
	go func() {
		for range sigChan2 {
			runtime.GC()
		}
	}()
}
