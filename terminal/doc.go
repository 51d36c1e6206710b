// Package terminal provides the cell, color and key model shared by the
// toolkit, and a Terminal implementation backed by tcell.
//
// Features:
//   - 24-bit RGB cells with bold/dim/italic/underline/blink/reverse attributes
//   - Row-major cell buffer flushed to the screen in one call
//   - Key events normalized to a small Key enum, independent of tcell
//   - Emergency reset for panic handlers that cannot reach Fini
//
// Widgets never see tcell types; only this package does.
package terminal
