//go:build !dbgprint

package dbg

// Enabled is true when the binary is built with the dbgprint build tag.
// Without the tag the default printer is permanently off and every
// package-level call reduces to a constant-false check.
const Enabled = false
