//go:build windows

package main

// setupDebugHandlers is a no-op; the debugging signals are not available on
// this platform.
func setupDebugHandlers() {}
