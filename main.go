package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gookit/color"

	"darkmaze/pkg/engine/input"
	"darkmaze/pkg/engine/terminal"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/devtools"
	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/i18n"
	"darkmaze/pkg/game/renderer"
	ebitenRenderer "darkmaze/pkg/game/renderer/ebiten"
	"darkmaze/pkg/game/renderer/tui"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	useTUI := flag.Bool("tui", false, "play in the terminal instead of a window")
	headless := flag.Bool("headless", false, "run the simulation without drawing or input")
	duration := flag.Duration("duration", 30*time.Second, "headless run time limit")
	locale := flag.String("locale", "", "message catalogue (defaults to the config's locale)")
	logFile := flag.String("log", "", "log file for terminal play (logs are discarded when empty)")
	dumpMap := flag.Bool("dump-map", false, "write the first maze to map.txt before starting")
	flag.Parse()

	cfg := loadConfig(*configPath)
	if *locale != "" {
		cfg.Engine.Locale = *locale
	}

	if err := i18n.Load(cfg.Engine.Locale); err != nil {
		log.Fatalf("Cannot load messages: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	session := gameplay.NewSession(cfg, gameplay.WithSeed(*seed))

	if *dumpMap {
		path, err := devtools.DumpMapToFile(session.RevealedSnapshot(), *seed)
		if err != nil {
			log.Fatalf("Cannot dump map: %v", err)
		}
		log.Printf("Map written to %s", path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *headless:
		printBanner(session, *seed)
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
		renderer.SetRenderer(tui.New(session, os.Stdout, nil))
	case *useTUI:
		if !terminal.IsInteractive() {
			log.Fatalf("Terminal play needs an interactive terminal")
		}
		printBanner(session, *seed)
		restoreLog := redirectLog(*logFile)
		defer restoreLog()

		restore, err := input.MakeRaw()
		if err != nil {
			log.Fatalf("Cannot switch terminal to raw mode: %v", err)
		}
		defer restore()

		keys := input.NewTerminalReader(os.Stdin, input.DefaultHoldWindow)
		go keys.Run(ctx)
		renderer.SetRenderer(tui.New(session, os.Stdout, keys))
	default:
		renderer.SetRenderer(ebitenRenderer.New(session))
	}

	renderer.Init()
	if err := renderer.Run(ctx); err != nil {
		log.Fatalf("Game loop failed: %v", err)
	}

	if *headless {
		printSummary(session)
	}
}

// loadConfig returns the defaults, or the defaults overridden by a YAML file
func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}
	log.Printf("Loaded config from %s", path)
	return cfg
}

// redirectLog keeps log output off the raw-mode screen
func redirectLog(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Cannot open log file: %v", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}
}

func printBanner(session *gameplay.Session, seed int64) {
	color.Style{color.FgMagenta, color.OpBold}.Println("DARK MAZE")
	color.Style{color.FgGray}.Printf("session %s  seed %d\n", session.ID(), seed)
	color.Style{color.FgCyan}.Println(renderer.Controls())
}

// printSummary reports how far a headless run got
func printSummary(session *gameplay.Session) {
	snap := session.Snapshot()
	color.Style{color.FgGray}.Printf("state %s  frames %d  collected %d\n", snap.State, snap.Frame, session.CollectedTotal())
}
