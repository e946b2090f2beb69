package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gosuri/uilive"

	"github.com/fjl/scicalc/internal/calc"
)

// engineConfig holds the engine settings shared by all modes.
type engineConfig struct {
	sci     bool
	verbose bool
}

func (c engineConfig) newEngine() *calc.Engine {
	engine := calc.NewEngine()
	if c.verbose {
		engine.SetLogger(log.Default())
	}
	if c.sci {
		engine.ToggleMode()
	}
	return engine
}

// runScript feeds each line of a token script to a fresh engine and writes
// one "tokens => display" line per script line. Text after '#' is a comment.
// A ":mode" line switches keypads. Tokens must be on the current keypad.
func runScript(name string, r io.Reader, sc *scanner, cfg engineConfig, w io.Writer) error {
	engine := cfg.newEngine()
	in := bufio.NewScanner(r)
	lineno := 0
	for in.Scan() {
		lineno++
		line := in.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == ":mode" {
			fmt.Fprintf(w, "%s => %v keypad\n", line, engine.ToggleMode())
			continue
		}
		tokens, err := sc.split(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineno, err)
		}
		if len(tokens) == 0 {
			continue
		}
		keypad := engine.Keypad()
		for _, tok := range tokens {
			if !keypad.Accepts(tok) {
				return fmt.Errorf("%s:%d: %q is not on the %v keypad", name, lineno, tok, keypad)
			}
			engine.Handle(tok)
		}
		fmt.Fprintf(w, "%s => %s\n", strings.Join(tokens, " "), engine.State().Display)
	}
	return in.Err()
}

// runScriptFile runs the script in file.
func runScriptFile(file string, sc *scanner, cfg engineConfig, w io.Writer) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	return runScript(file, f, sc, cfg, w)
}

// scriptWatcher re-runs a script whenever it changes.
type scriptWatcher struct {
	file    string
	delay   time.Duration
	scanner *scanner
	config  engineConfig
	writer  *uilive.Writer
}

func newScriptWatcher(file string, delay time.Duration, sc *scanner, cfg engineConfig) *scriptWatcher {
	writer := uilive.New()
	writer.RefreshInterval = 100 * time.Millisecond
	return &scriptWatcher{file: file, delay: delay, scanner: sc, config: cfg, writer: writer}
}

// watch runs until ctx is canceled.
func (sw *scriptWatcher) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to initialize watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory because editors often replace the file on save.
	if err := watcher.Add(filepath.Dir(sw.file)); err != nil {
		return fmt.Errorf("error setting up watch: %w", err)
	}

	sw.writer.Start()
	defer sw.writer.Stop()
	sw.run()

	var (
		target = filepath.Clean(sw.file)
		rerun  = make(chan struct{}, 1)
		timer  *time.Timer
	)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			// Debounce to run only once for a burst of writes.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(sw.delay, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})

		case <-rerun:
			sw.run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)

		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		}
	}
}

// run executes the script once and redraws the output block.
func (sw *scriptWatcher) run() {
	fmt.Fprintf(sw.writer, "%s (%s)\n", sw.file, time.Now().Format("15:04:05"))
	if err := runScriptFile(sw.file, sw.scanner, sw.config, sw.writer); err != nil {
		fmt.Fprintf(sw.writer, "error: %v\n", err)
	}
	sw.writer.Flush()
}
