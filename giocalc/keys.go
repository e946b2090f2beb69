package main

import (
	"gioui.org/io/key"

	"github.com/fjl/scicalc/internal/calc"
)

// keySet lists the keys the calculator listens to.
const keySet = "Short-[C,V]|(Shift)-[0,1,2,3,4,5,6,7,8,9,.,+,*,/,%,^,=,⌤,⏎,⌫,⌦,⎋]|(Alt)-(Shift)-[-]|[S,C,T,L,R,E,P]"

var letterTokens = map[string]string{
	"S": "sin",
	"C": "cos",
	"T": "tan",
	"L": "log",
	"R": "sqrt",
	"E": "e",
	"P": "pi",
}

// keyToken maps a key press to a calculator token.
func keyToken(name string, mods key.Modifiers) (string, bool) {
	switch name {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".", "+", "*", "/", "%":
		return name, true
	case "-":
		if mods.Contain(key.ModAlt) {
			return "+/-", true
		}
		return "-", true
	case "^":
		return "x^y", true
	case "=", key.NameEnter, key.NameReturn:
		return calc.TokenEquals, true
	case key.NameDeleteBackward, key.NameDeleteForward:
		return calc.TokenDelete, true
	case key.NameEscape:
		return calc.TokenClear, true
	}
	if tok, ok := letterTokens[name]; ok && !mods.Contain(key.ModShortcut) {
		return tok, true
	}
	return "", false
}
