package main

import (
	"image"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
)

// grid lays out rows of cells on a fixed number of equal columns.
type grid struct {
	cols    int
	spacing int
}

// gridCell is a widget covering span columns.
type gridCell struct {
	span   int
	widget layout.Widget
}

// layout places the cells row by row. This only really works well if spacing
// is non-zero because the cells are placed at integer coordinates. The grid
// will look slighly uneven with too little spacing.
func (g *grid) layout(gtx layout.Context, rows [][]gridCell) layout.Dimensions {
	var (
		size  = gtx.Constraints.Max
		w, h  = float32(size.X), float32(size.Y)
		space = float32(g.spacing)
	)
	if g.cols > 0 {
		w = (w - float32(g.cols-1)*space) / float32(g.cols)
	}
	if n := len(rows); n > 0 {
		h = (h - float32(n-1)*space) / float32(n)
	}

	for row, cells := range rows {
		col := 0
		for _, cell := range cells {
			span := cell.span
			if span < 1 {
				span = 1
			}
			pos := image.Point{
				X: int(float32(col)*w + float32(col)*space),
				Y: int(float32(row)*h + float32(row)*space),
			}
			cellSize := image.Pt(int(float32(span)*w+float32(span-1)*space), int(h))
			g.layoutCell(gtx, pos, cellSize, cell.widget)
			col += span
		}
	}
	return layout.Dimensions{Size: size}
}

func (g *grid) layoutCell(gtx layout.Context, pos, size image.Point, w layout.Widget) {
	defer op.Offset(pos).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(size)
	w(gtx)
}

// keypadCells converts keypad rows into grid cells. A row with fewer buttons
// than cols widens its first button to fill the row.
func keypadCells(rows [][]string, cols int, cell func(token string) layout.Widget) [][]gridCell {
	out := make([][]gridCell, len(rows))
	for i, row := range rows {
		for j, tok := range row {
			span := 1
			if j == 0 && len(row) < cols {
				span = cols - len(row) + 1
			}
			out[i] = append(out[i], gridCell{span: span, widget: cell(tok)})
		}
	}
	return out
}

// shrinkToFit renders w, scaling down if it doesn't fit into the available width.
func shrinkToFit(gtx layout.Context, w layout.Widget) layout.Dimensions {
	// Render w with near-infinite width.
	macro := op.Record(gtx.Ops)
	wide := gtx
	wide.Constraints.Max.X = 10e6
	dim := w(wide)
	call := macro.Stop()

	// Scale down if it exceeds the available space.
	if dim.Size.X > gtx.Constraints.Max.X {
		scale := float32(gtx.Constraints.Max.X) / float32(dim.Size.X)
		origin := f32.Pt(0, float32(gtx.Constraints.Max.Y))
		tr := f32.Affine2D{}.Scale(origin, f32.Pt(scale, scale))
		defer op.Affine(tr).Push(gtx.Ops).Pop()
	}
	call.Add(gtx.Ops)
	return layout.Dimensions{Size: gtx.Constraints.Max}
}
