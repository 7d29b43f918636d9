// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The hstack command measures and lays out a scene description.

Usage:

	hstack [flags] <scene.hcl>

The scene file declares the constraints of the root stack and its
children in HCL (or HCL's JSON syntax for files ending in .json). The
command runs a measure pass followed by a layout pass and prints every
element with its requested size, measured size, bounds relative to its
parent, and measured state.

The -width and -height flags override the scene constraints. Both take
a mode and a size in pixels, for example "exact 300", "at_most 100" or
"unspecified".

The -v flag logs every measure pass to standard error.
`
