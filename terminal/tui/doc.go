// Package tui provides the drawing primitives widgets render through.
//
// Core abstraction is Region, representing a rectangular area within a cell buffer.
// All drawing operations are relative to region bounds with automatic clipping.
//
// Design principles:
//   - Zero allocation in hot paths: Region is a small value type
//   - Composable: regions nest via Sub(), a nested region never exceeds its parent
//   - Display width aware: wide runes occupy two cells, text helpers measure cells not runes
//
// Usage pattern:
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//	root.Fill(theme.Bg)
//
//	box := tui.Center(root, 30, 8)
//	box.Box(tui.LineSingle, theme.Style(tui.EmphasisBorder))
//	box.Sub(1, 1, 28, 6).Text(0, 0, "Hello", theme.Style(tui.EmphasisNormal))
//
//	term.Flush(cells, w, h)
package tui
