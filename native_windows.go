//go:build windows

package lexpath

// Native is the [Grammar] of the compile target.
var Native = Windows
