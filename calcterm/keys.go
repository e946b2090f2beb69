package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fjl/scicalc/internal/calc"
)

// keyConfig is the format of the key alias file.
type keyConfig struct {
	Aliases map[string]string `yaml:"aliases"`
}

var defaultAliases = map[string]string{
	"^":  "x^y",
	"±":  "+/-",
	"π":  "pi",
	"√":  "sqrt",
	"×":  "*",
	"÷":  "/",
	"ln": "log",
	"c":  calc.TokenClear,
}

// loadAliases returns the built-in aliases merged with those in file.
// An empty file name yields the built-in set.
func loadAliases(file string) (map[string]string, error) {
	aliases := make(map[string]string, len(defaultAliases))
	for k, v := range defaultAliases {
		aliases[k] = v
	}
	if file == "" {
		return aliases, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg keyConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	for alias, tok := range cfg.Aliases {
		if alias == "" {
			return nil, fmt.Errorf("%s: empty alias for %q", file, tok)
		}
		if _, ok := calc.ParseKey(tok); !ok {
			return nil, fmt.Errorf("%s: alias %q maps to unknown token %q", file, alias, tok)
		}
		aliases[alias] = tok
	}
	return aliases, nil
}
