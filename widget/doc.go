// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements leaf elements for layout containers.
// Each widget measures its own content: a fixed size, a line of text
// or an icon, and resolves it against the constraints handed down by
// its container.
package widget
