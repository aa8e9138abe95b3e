package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/replay"
	"github.com/jask/jaskcalc/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "config file (default $JASKCALC_CONFIG or ~/.config/jaskcalc/config.toml)")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	session := uuid.NewString()[:8]

	switch flag.Arg(0) {
	case "":
	case "replay":
		log.SetPrefix("jaskcalc " + session + " ")
		os.Exit(runReplay(cfg, flag.Args()[1:]))
	case "init":
		os.Exit(runInit(*configPath, cfg))
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", flag.Arg(0))
		usage()
		os.Exit(2)
	}

	closeLog, err := setupLogging(cfg.Log.Path, session)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()
	log.Printf("starting (reset delay %s, max digits %d, cancellable reset %t)",
		cfg.Engine.ResetDelay, cfg.Engine.MaxDigits, cfg.Engine.CancellableReset)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(tui.New(cfg), opts...)

	// engine settings need a restart; UI settings apply live
	if err := config.Watch(*configPath, func(c config.Config, err error) {
		if err != nil {
			log.Printf("config reload: %v", err)
			return
		}
		p.Send(tui.ConfigMsg(c.UI))
	}); err != nil {
		log.Printf("config watch disabled: %v", err)
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage: jaskcalc [-config file] [command]\n\n")
	fmt.Fprintf(out, "commands:\n")
	fmt.Fprintf(out, "  (none)                 run the interactive calculator\n")
	fmt.Fprintf(out, "  replay script.yaml...  run key scripts headless and print every display write\n")
	fmt.Fprintf(out, "  init                   write a config file with the current settings\n\n")
	flag.PrintDefaults()
}

func setupLogging(path, session string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "jaskcalc "+session)
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}

func runReplay(cfg config.Config, paths []string) int {
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "replay: no script given")
		return 2
	}
	opts := calc.Options{
		ResetDelay:       cfg.Engine.ResetDelay,
		MaxDigits:        cfg.Engine.MaxDigits,
		CancellableReset: cfg.Engine.CancellableReset,
	}
	status := 0
	for _, path := range paths {
		s, err := replay.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			status = 1
			continue
		}
		if len(paths) > 1 {
			fmt.Printf("== %s\n", path)
		}
		if _, err := replay.Run(s, opts, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			status = 1
		}
	}
	return status
}

func runInit(path string, cfg config.Config) int {
	target := path
	if target == "" {
		target = os.Getenv("JASKCALC_CONFIG")
	}
	if target == "" {
		target = config.DefaultPath()
	}
	if _, err := os.Stat(target); err == nil {
		fmt.Fprintf(os.Stderr, "init: %s already exists\n", target)
		return 1
	} else if !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		return 1
	}
	if err := config.Save(target, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		return 1
	}
	fmt.Printf("wrote %s\n", target)
	return 0
}
