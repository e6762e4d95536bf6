// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements scroll containers that keep a sticky
// header pinned while their content scrolls, and that hand a single
// touch gesture back and forth between nested scrollable regions.
//
// A Container owns a tree of Nodes. Nodes that accept pointer input
// implement Handler; nodes that scroll implement Scrollable. List and
// ScrollView are Scrollable regions, Box is a plain or clickable
// node. Hosts with their own view hierarchy implement the interfaces
// directly.
//
// All methods must be called from the goroutine that delivers
// events.
package widget
