package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-errors/errors"
	isatty "github.com/mattn/go-isatty"
	"github.com/micro-editor/tcell/v2"

	"github.com/ellery/tilde/internal/action"
	"github.com/ellery/tilde/internal/buffer"
	"github.com/ellery/tilde/internal/clipboard"
	"github.com/ellery/tilde/internal/config"
	"github.com/ellery/tilde/internal/display"
	"github.com/ellery/tilde/internal/layout"
)

const version = "0.3.0"

var (
	flagVersion   = flag.Bool("version", false, "Show the version number and exit")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging to ./tilde.log")
	flagConfigDir = flag.String("config-dir", "", "Specify a custom location for the configuration directory")
)

var screen tcell.Screen

// initLog routes the log package to a file in debug mode and discards it
// otherwise, so a release build never writes into the working directory.
func initLog() {
	if *flagDebug {
		f, err := os.Create("tilde.log")
		if err == nil {
			log.SetOutput(f)
			log.Println("tilde: debug logging enabled")
			return
		}
	}
	log.SetOutput(io.Discard)
}

func exit(rc int) {
	if screen != nil {
		screen.Fini()
	}
	os.Exit(rc)
}

func main() {
	flag.Usage = func() {
		fmt.Println("Usage: tilde [OPTIONS] [FILE]...")
		fmt.Println("")
		fmt.Println("Each extra FILE opens in its own split.")
		fmt.Println("")
		fmt.Println("Options:")
		fmt.Println("  -version           Show version and exit")
		fmt.Println("  -debug             Enable debug logging to ./tilde.log")
		fmt.Println("  -config-dir <dir>  Use custom configuration directory")
		fmt.Println("")
		fmt.Println("Keys:")
		fmt.Println("  Ctrl+G open  Ctrl+N new  Ctrl+S save  Ctrl+F find")
		fmt.Println("  Ctrl+R command (split - | split | | theme <t> | close)")
		fmt.Println("  Shift+Left/Right switch window   Ctrl+Q quit")
	}
	flag.Parse()

	if *flagVersion {
		fmt.Println("tilde", version)
		os.Exit(0)
	}

	initLog()

	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "tilde requires an interactive terminal")
		os.Exit(1)
	}

	if err := config.InitConfigDir(*flagConfigDir); err != nil {
		log.Println("tilde: config dir:", err)
	}
	settings := config.ReadSettings()
	if sc, ok := config.LookupScheme(settings.Colorscheme); ok {
		config.CurrentScheme = sc
	}
	if err := clipboard.Initialize(settings.Clipboard); err != nil {
		log.Println("tilde:", err)
	}

	var err error
	screen, err = tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Println(err)
		fmt.Println("Fatal: tilde could not initialize a screen.")
		os.Exit(1)
	}

	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Println("tilde encountered an unexpected error!")
			fmt.Println()
			fmt.Printf("Error: %v\n", r)
			fmt.Println()
			fmt.Println(errors.Wrap(r, 2).ErrorStack())
			os.Exit(1)
		}
	}()

	width, height := screen.Size()
	tree := layout.NewTree(width, height)
	ed := action.NewEditor(tree)

	openArgs(tree)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev != nil {
				events <- ev
			}
		}
	}()
	ed.Pending = func() bool { return len(events) > 0 }

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGHUP)

	renderer := display.NewRenderer(screen)
	for !ed.Quitting() {
		renderer.Frame(tree)

		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				w, h := e.Size()
				tree.SetSize(w, h)
				screen.Sync()
			case *tcell.EventKey:
				ed.HandleKey(action.KeyFromEvent(e))
			case *tcell.EventError:
				log.Println("tilde: event error:", e.Error())
				if e.Err() == io.EOF {
					exit(0)
				}
			}
		case <-sigterm:
			exit(0)
		}
	}

	exit(0)
}

// openArgs loads the files named on the command line. The first goes into
// the root window; the rest open in side-by-side splits. A path that does
// not exist yet becomes a fresh unsaved buffer.
func openArgs(tree *layout.Tree) {
	for i, path := range flag.Args() {
		w := tree.Active
		if i > 0 {
			w = tree.Split(w, false)
			tree.Active = w
		}
		b, err := buffer.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				b = buffer.Create(path)
			} else {
				w.SetError("can not open file " + path)
				continue
			}
		}
		w.SetBuffer(b)
	}
}
