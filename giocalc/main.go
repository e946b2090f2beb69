package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/io/clipboard"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/fjl/scicalc/internal/calc"
)

const keypadCols = 4

// calcUI is the user interface of the calculator. It only renders the
// engine's display and forwards tokens.
type calcUI struct {
	engine  *calc.Engine
	theme   *calcTheme
	mode    widget.Clickable
	buttons map[string]*button
}

// button is a clickable keypad button.
type button struct {
	token   string
	label   string
	kind    buttonKind
	clicker widget.Clickable
}

func newUI(theme *calcTheme, engine *calc.Engine) *calcUI {
	ui := &calcUI{
		engine:  engine,
		theme:   theme,
		buttons: make(map[string]*button),
	}
	// Buttons of both keypads exist up front so click state survives
	// switching modes.
	for _, row := range calc.KeypadScientific.Rows() {
		for _, tok := range row {
			ui.buttons[tok] = &button{token: tok, label: buttonLabel(tok), kind: kindOf(tok)}
		}
	}
	return ui
}

// press forwards a token to the engine.
func (ui *calcUI) press(token string) {
	ui.engine.Handle(token)
}

// isActive reports whether b is the pending operator.
func (ui *calcUI) isActive(b *button) bool {
	k, _ := calc.ParseKey(b.token)
	if k.Kind != calc.KindBinary {
		return false
	}
	op, pending := ui.engine.Pending()
	return pending && op == k.Op && ui.engine.State().AwaitingNewOperand
}

// Layout draws the UI.
func (ui *calcUI) Layout(gtx layout.Context) layout.Dimensions {
	// Handle key events.
	ui.layoutInput(gtx)

	if ui.mode.Clicked(gtx) {
		ui.engine.ToggleMode()
	}

	rowWeight := float32(len(ui.engine.Keypad().Rows()))
	inset := layout.UniformInset(ui.theme.Size.Inset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		flex := layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceStart}
		return flex.Layout(gtx,
			layout.Flexed(1.5, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutHeader)
			}),
			layout.Flexed(rowWeight, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutButtons)
			}),
		)
	})
}

// layoutHeader draws the mode switch and the display.
func (ui *calcUI) layoutHeader(gtx layout.Context) layout.Dimensions {
	flex := layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}
	return flex.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			label := "SCI"
			if ui.engine.Keypad() == calc.KeypadScientific {
				label = "STD"
			}
			gtx.Constraints.Max.X = gtx.Dp(unit.Dp(64))
			gtx.Constraints.Min = gtx.Constraints.Max
			return ui.theme.KeyButton(&ui.mode, label, kindExtra, false).Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: ui.theme.Size.Inset}.Layout),
		layout.Flexed(1, ui.layoutResult),
	)
}

func (ui *calcUI) layoutResult(gtx layout.Context) layout.Dimensions {
	rect := image.Rectangle{Max: gtx.Constraints.Max}
	rr := clip.UniformRRect(rect, gtx.Dp(ui.theme.Size.CornerRadius))
	paint.FillShape(gtx.Ops, ui.theme.Color.ResultBG, rr.Op(gtx.Ops))

	inset := layout.UniformInset(ui.theme.Size.Inset)
	return inset.Layout(gtx, ui.layoutResultText)
}

func (ui *calcUI) layoutResultText(gtx layout.Context) layout.Dimensions {
	// Scale font based on height.
	fontSizePx := float32(gtx.Constraints.Max.Y) / 1.4
	fontSizeSp := unit.Sp(fontSizePx / gtx.Metric.PxPerSp)

	display := ui.engine.State().Display
	l := material.Label(ui.theme.Theme, fontSizeSp, display)
	l.Color = ui.theme.Color.Result
	if display == calc.ErrorDisplay {
		l.Color = ui.theme.Color.Error
	}
	l.Alignment = text.End
	return shrinkToFit(gtx, l.Layout)
}

func (ui *calcUI) layoutButtons(gtx layout.Context) layout.Dimensions {
	g := grid{cols: keypadCols, spacing: gtx.Dp(ui.theme.Size.Inset)}
	rows := keypadCells(ui.engine.Keypad().Rows(), keypadCols, func(tok string) layout.Widget {
		b := ui.buttons[tok]
		return func(gtx layout.Context) layout.Dimensions {
			return ui.layoutButton(gtx, b)
		}
	})
	return g.layout(gtx, rows)
}

func (ui *calcUI) layoutButton(gtx layout.Context, b *button) layout.Dimensions {
	for b.clicker.Clicked(gtx) {
		ui.press(b.token)
	}
	return ui.theme.KeyButton(&b.clicker, b.label, b.kind, ui.isActive(b)).Layout(gtx)
}

// layoutInput registers the global key handler.
func (ui *calcUI) layoutInput(gtx layout.Context) {
	// Register handler for key events.
	input := key.InputOp{
		Tag:  ui,
		Hint: key.HintNumeric,
		Keys: keySet,
	}
	input.Add(gtx.Ops)

	// Request keyboard focus. This is required to make the Return key work.
	key.FocusOp{Tag: ui}.Add(gtx.Ops)

	for _, ev := range gtx.Events(ui) {
		switch ev := ev.(type) {
		case key.Event:
			switch {
			case isCopy(ev):
				op := clipboard.WriteOp{Text: ui.engine.State().Display}
				op.Add(gtx.Ops)
			case isPaste(ev):
				op := clipboard.ReadOp{Tag: ui}
				op.Add(gtx.Ops)
			default:
				ui.handleKey(ev)
			}

		case clipboard.Event:
			if !ui.engine.Paste(ev.Text) {
				log.Printf("ignoring pasted text %q", ev.Text)
			}
		}
	}
}

func isCopy(e key.Event) bool {
	return e.Name == "C" && e.Modifiers.Contain(key.ModShortcut)
}

func isPaste(e key.Event) bool {
	return e.Name == "V" && e.Modifiers.Contain(key.ModShortcut)
}

// handleKey handles a key event. Keys for buttons that are not on the
// current keypad are ignored.
func (ui *calcUI) handleKey(e key.Event) {
	if e.State == key.Release {
		return
	}
	tok, ok := keyToken(e.Name, e.Modifiers)
	if !ok || !ui.engine.Keypad().Accepts(tok) {
		return
	}
	ui.press(tok)
}

func main() {
	sciFlag := flag.Bool("sci", false, "Start with the scientific keypad")
	verboseFlag := flag.Bool("v", false, "Log key presses to stderr")
	flag.Parse()

	engine := calc.NewEngine()
	if *verboseFlag {
		engine.SetLogger(log.New(os.Stderr, "giocalc: ", log.LstdFlags))
	}
	if *sciFlag {
		engine.ToggleMode()
	}
	theme := newCalcTheme()

	var (
		height   = theme.windowHeight(engine.Keypad())
		size     = app.Size(theme.Size.Width, height)
		statusBg = app.StatusColor(theme.Color.Background)
		sysBg    = app.NavigationColor(theme.Color.Background)
		title    = app.Title("GioCalc")
		portrait = app.PortraitOrientation.Option()
	)
	go func() {
		w := app.NewWindow(statusBg, sysBg, size, title, portrait)
		w.Option(app.MinSize(theme.Size.Width, theme.Size.Height))
		// The shaper can only be created once a window exists.
		theme.loadFonts()

		if err := loop(w, newUI(theme, engine)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loop is the main loop of the app.
func loop(w *app.Window, ui *calcUI) error {
	var ops op.Ops
	keypad := ui.engine.Keypad()
	for {
		switch e := w.NextEvent().(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			paint.Fill(gtx.Ops, ui.theme.Color.Background)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)

			// Grow the window when the scientific rows appear.
			if kp := ui.engine.Keypad(); kp != keypad {
				keypad = kp
				w.Option(app.Size(ui.theme.Size.Width, ui.theme.windowHeight(kp)))
			}
		}
	}
}
