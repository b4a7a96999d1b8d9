//go:build dbgprint

package dbg

// Enabled is true when the binary is built with the dbgprint build tag.
const Enabled = true
