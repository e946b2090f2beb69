package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/fjl/scicalc/internal/calc"
)

// repl is the interactive front end.
type repl struct {
	engine  *calc.Engine
	scanner *scanner
	out     io.Writer
}

// errQuit is returned by exec when the user asks to leave.
var errQuit = errors.New("quit")

// exec processes one input line.
func (r *repl) exec(line string) error {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, ":") {
		return r.command(line[1:])
	}
	tokens, err := r.scanner.split(line)
	if err != nil {
		fmt.Fprintln(r.out, err)
	}
	if len(tokens) == 0 {
		return nil
	}
	keypad := r.engine.Keypad()
	for _, tok := range tokens {
		if !keypad.Accepts(tok) {
			fmt.Fprintf(r.out, "%q is not on the %v keypad (use :mode)\n", tok, keypad)
			continue
		}
		r.engine.Handle(tok)
	}
	fmt.Fprintln(r.out, r.engine.State().Display)
	return nil
}

func (r *repl) command(cmd string) error {
	switch strings.TrimSpace(cmd) {
	case "mode":
		fmt.Fprintf(r.out, "%v keypad\n", r.engine.ToggleMode())
	case "tape":
		for _, entry := range r.engine.Tape() {
			fmt.Fprintln(r.out, entry)
		}
	case "state":
		st := r.engine.State()
		fmt.Fprintf(r.out, "display=%q operand1=%v operator=%v awaiting=%v sci=%v\n",
			st.Display, st.Operand1, st.Operator, st.AwaitingNewOperand, st.SciMode)
		if err := r.engine.Err(); err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
	case "keys":
		for _, row := range r.engine.Keypad().Rows() {
			fmt.Fprintln(r.out, strings.Join(row, "  "))
		}
	case "quit", "q":
		return errQuit
	default:
		fmt.Fprintf(r.out, "unknown command %q (try :mode, :tape, :state, :keys, :quit)\n", cmd)
	}
	return nil
}

// run reads lines until EOF or :quit. Line history is kept in memory only.
func (r *repl) run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	r.out = rl.Stdout()

	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if line == "" {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
		if err := r.exec(line); err != nil {
			if err == errQuit {
				return nil
			}
			return err
		}
	}
}
