// Command calcterm is a terminal front end for the calculator. It runs
// interactively, or replays a token script (optionally on every save).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	var (
		scriptFlag  = flag.String("script", "", "Run a token script and print each result")
		watchFlag   = flag.Bool("watch", false, "Re-run the script whenever it changes")
		delayFlag   = flag.Duration("delay", 300*time.Millisecond, "Debounce delay for -watch")
		keysFlag    = flag.String("keys", "", "YAML file with key aliases")
		sciFlag     = flag.Bool("sci", false, "Start with the scientific keypad")
		verboseFlag = flag.Bool("v", false, "Log key presses to stderr")
	)
	flag.Parse()
	log.SetPrefix("calcterm: ")

	if err := run(*scriptFlag, *watchFlag, *delayFlag, *keysFlag, *sciFlag, *verboseFlag); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(script string, watch bool, delay time.Duration, keys string, sci, verbose bool) error {
	aliases, err := loadAliases(keys)
	if err != nil {
		return err
	}
	sc := newScanner(aliases)
	cfg := engineConfig{sci: sci, verbose: verbose}

	switch {
	case script != "" && watch:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		fmt.Println("Watching", script, "for changes. Press Ctrl+C to exit.")
		return newScriptWatcher(script, delay, sc, cfg).watch(ctx)
	case script != "":
		return runScriptFile(script, sc, cfg, os.Stdout)
	case watch:
		return fmt.Errorf("-watch requires -script")
	}

	r := &repl{engine: cfg.newEngine(), scanner: sc, out: os.Stdout}
	return r.run()
}
