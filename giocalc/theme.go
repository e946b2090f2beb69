package main

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/fjl/scicalc/internal/calc"
	. "github.com/fjl/scicalc/internal/cd"
)

// buttonKind selects how a button is drawn. It has no effect on what the
// button does.
type buttonKind int

const (
	kindDigit buttonKind = iota
	kindAction
	kindExtra
	kindSci
)

// kindOf picks the style of a keypad token.
func kindOf(token string) buttonKind {
	k, ok := calc.ParseKey(token)
	if !ok {
		return kindExtra
	}
	switch k.Kind {
	case calc.KindDigit:
		return kindDigit
	case calc.KindBinary:
		if k.Op == calc.OpPow {
			return kindSci
		}
		return kindAction
	case calc.KindEquals:
		return kindAction
	case calc.KindUnary:
		if k.Func == calc.FnPercent || k.Func == calc.FnSignFlip {
			return kindExtra
		}
		return kindSci
	case calc.KindConstant:
		return kindSci
	default:
		return kindExtra
	}
}

var buttonLabels = map[string]string{
	"+/-":  "±",
	"*":    "×",
	"/":    "÷",
	"x^y":  "xʸ",
	"sqrt": "√",
	"pi":   "π",
}

// buttonLabel returns the text shown on a token's button.
func buttonLabel(token string) string {
	if l, ok := buttonLabels[token]; ok {
		return l
	}
	return token
}

// calcTheme defines the calculator style.
type calcTheme struct {
	*material.Theme
	Color struct {
		Background   color.NRGBA
		Result       color.NRGBA
		ResultBG     color.NRGBA
		Error        color.NRGBA
		ActiveAction color.NRGBA
		Button       [kindSci + 1]color.NRGBA
		ButtonText   [kindSci + 1]color.NRGBA
	}
	Size struct {
		Width        unit.Dp
		Height       unit.Dp
		SciHeight    unit.Dp
		Inset        unit.Dp
		CornerRadius unit.Dp
	}
}

func newCalcTheme() *calcTheme {
	th := &calcTheme{Theme: material.NewTheme()}

	// Colors.
	th.Color.Background = color.NRGBA{0, 0, 0, 255}
	th.Color.Result = color.NRGBA{255, 255, 255, 255}
	th.Color.ResultBG = color.NRGBA{28, 28, 28, 255}
	th.Color.Error = color.NRGBA{255, 119, 119, 255}
	th.Color.ActiveAction = color.NRGBA{255, 193, 94, 255}

	th.Color.Button[kindDigit] = color.NRGBA{255, 255, 255, 61}
	th.Color.ButtonText[kindDigit] = color.NRGBA{255, 255, 255, 255}
	th.Color.Button[kindAction] = color.NRGBA{255, 152, 0, 255}
	th.Color.ButtonText[kindAction] = color.NRGBA{255, 255, 255, 255}
	th.Color.Button[kindExtra] = color.NRGBA{207, 216, 220, 255}
	th.Color.ButtonText[kindExtra] = color.NRGBA{0, 0, 0, 255}
	th.Color.Button[kindSci] = color.NRGBA{69, 90, 100, 255}
	th.Color.ButtonText[kindSci] = color.NRGBA{255, 255, 255, 255}

	// Sizes.
	th.Size.Width = 300
	th.Size.Height = 380
	th.Size.SciHeight = 510
	th.Size.Inset = 6
	th.Size.CornerRadius = 5

	return th
}

// loadFonts installs a shaper for the Go fonts.
func (th *calcTheme) loadFonts() {
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
}

// windowHeight is the preferred height for a keypad.
func (th *calcTheme) windowHeight(kp calc.Keypad) unit.Dp {
	if kp == calc.KeypadScientific {
		return th.Size.SciHeight
	}
	return th.Size.Height
}

// keyButtonStyle draws a keypad button.
type keyButtonStyle struct {
	material.ButtonStyle
}

// KeyButton makes a button of the given kind. When active is true, the
// button is highlighted as the pending operator.
func (th *calcTheme) KeyButton(click *widget.Clickable, label string, kind buttonKind, active bool) keyButtonStyle {
	style := material.Button(th.Theme, click, label)
	style.Background = th.Color.Button[kind]
	style.Color = th.Color.ButtonText[kind]
	if active {
		style.Background = th.Color.ActiveAction
	}
	style.Inset = layout.Inset{}
	style.CornerRadius = th.Size.CornerRadius
	return keyButtonStyle{style}
}

// Layout draws the button, scaling the label to the button height.
func (b keyButtonStyle) Layout(gtx C) D {
	textSizePx := float32(gtx.Constraints.Max.Y) / 2.4
	b.TextSize = unit.Sp(textSizePx / gtx.Metric.PxPerSp)
	return b.ButtonStyle.Layout(gtx)
}
