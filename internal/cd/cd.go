// Package cd provides short names for the Gio layout types, meant to be
// dot-imported by widget code.
package cd

import "gioui.org/layout"

type (
	C = layout.Context
	D = layout.Dimensions
)
