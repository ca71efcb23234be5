// Package main is the entry point for the termhost input pipeline demo.
// It pumps terminal events through the event buffer and paints the damage
// the invalidation tracker accumulates.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/termhost/internal/config"
	"github.com/dshills/termhost/internal/host"
	"github.com/dshills/termhost/internal/input/queue"
	"github.com/dshills/termhost/internal/input/record"
	"github.com/dshills/termhost/internal/input/source"
	"github.com/dshills/termhost/internal/renderer/invalid"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errQuit signals a user-requested shutdown.
var errQuit = errors.New("quit")

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading configuration: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	logFile, err := os.OpenFile("termhost.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
		return 1
	}
	defer logFile.Close()
	log := host.NewLogger(host.ParseLogLevel(cfg.Logging.Level), logFile)

	console, err := host.New(host.Options{
		InitialCapacity: cfg.Queue.InitialCapacity,
		MaxCapacity:     cfg.Queue.MaxCapacity,
		GrowthIncrement: cfg.Queue.GrowthIncrement,
		ViewportWidth:   cfg.Viewport.Width,
		ViewportHeight:  cfg.Viewport.Height,
		Logger:          log,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating console: %v\n", err)
		return 1
	}
	defer console.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing screen: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return pumpEvents(ctx, screen, console, log) })
	g.Go(func() error { return consumeInput(ctx, console, log) })
	g.Go(func() error { return paintDamage(ctx, screen, console.Tracker()) })
	g.Go(func() error {
		// PollEvent blocks outside the context; nudge it awake on
		// cancellation so the pump can exit.
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// pumpEvents translates terminal events into records and writes them to
// the console. Ctrl+C (delivered by tcell as a key event while the screen
// owns the terminal) requests shutdown.
func pumpEvents(ctx context.Context, screen tcell.Screen, console *host.Console, log *host.Logger) error {
	translator := source.NewTranslator()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch e := ev.(type) {
		case *tcell.EventInterrupt:
			return ctx.Err()
		case *tcell.EventKey:
			if e.Key() == tcell.KeyCtrlC {
				return errQuit
			}
		case *tcell.EventResize:
			w, h := e.Size()
			console.Tracker().SetViewport(invalid.FromSize(w, h))
			console.Tracker().InvalidateAll()
		}

		recs := translator.Translate(ev)
		if len(recs) == 0 {
			continue
		}
		if _, err := console.WriteInput(recs); err != nil {
			log.Warn("dropping input: %v", err)
		}
	}
}

// consumeInput drains the buffer one record at a time the way a client
// read loop would, marking cursor movement on the tracker for key input.
func consumeInput(ctx context.Context, console *host.Console, log *host.Logger) error {
	h := queue.NewReadHandle()
	dst := make([]record.Record, 1)
	col, row := 0, 0

	for {
		n, err := console.ReadInput(ctx, dst, host.ReadInputOptions{Stream: true, Wait: true}, h)
		if err != nil {
			if errors.Is(err, queue.ErrClosed) {
				return nil
			}
			return err
		}
		if n == 0 {
			continue
		}

		rec := dst[0]
		log.Debug("read %s", rec)

		switch rec.Kind {
		case record.KindKey:
			console.Tracker().Invalidate(invalid.FromCell(col, row))
			console.Tracker().InvalidateCursor(col, row)
			col += record.CellWidth(rec.Key.Rune)
		case record.KindMouse:
			console.Tracker().Invalidate(invalid.FromCell(rec.Mouse.X, rec.Mouse.Y))
		case record.KindBufferSize:
			col, row = 0, 0
		}
	}
}

// paintDamage periodically consumes the accumulated dirty region and
// repaints just that rectangle.
func paintDamage(ctx context.Context, screen tcell.Screen, tracker *invalid.Tracker) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	style := tcell.StyleDefault.Background(tcell.ColorDarkBlue)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rect, ok := tracker.Consume()
			if !ok || rect.IsEmpty() {
				continue
			}
			for y := rect.Top; y < rect.Bottom; y++ {
				for x := rect.Left; x < rect.Right; x++ {
					screen.SetContent(x, y, ' ', nil, style)
				}
			}
			screen.Show()
		}
	}
}

type flags struct {
	configPath string
	logLevel   string
}

func parseFlags() flags {
	var f flags
	var showVersion bool
	var showHelp bool

	flag.StringVar(&f.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&f.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Termhost - terminal input pipeline\n\n")
		fmt.Fprintf(os.Stderr, "Usage: termhost [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Termhost %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if f.logLevel != "" {
		switch f.logLevel {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", f.logLevel)
			os.Exit(1)
		}
	}

	return f
}
