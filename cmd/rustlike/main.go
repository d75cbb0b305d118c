package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/Samwisebuze/rustlike/internal/agent"
	"github.com/Samwisebuze/rustlike/internal/engine"
	"github.com/Samwisebuze/rustlike/internal/input"
	"github.com/Samwisebuze/rustlike/internal/tui"
	"github.com/Samwisebuze/rustlike/internal/version"
	"github.com/Samwisebuze/rustlike/pkg/locale"
	"github.com/Samwisebuze/rustlike/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var (
		seed        int64
		autoTurns   int
		scriptPath  string
		dumpPath    string
		localeDir   string
		lang        string
		showVersion bool
	)
	// Читаем флаг -seed. 0 - взять RL_SEED или сгенерировать случайно.
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for RL_SEED or random)")
	flag.IntVar(&autoTurns, "auto", 0, "Let the bot play N turns headless")
	flag.StringVar(&scriptPath, "script", "", "Play commands from a script file")
	flag.StringVar(&dumpPath, "dump", "", "Write the final frame as JSON to this file")
	flag.StringVar(&localeDir, "locale", "locales", "Directory with message catalogues")
	flag.StringVar(&lang, "lang", locale.DefaultLanguage, "Message language (en_US, ru_RU)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		return
	}

	logger.Log.WithFields(version.Fields()).Info("Starting rustlike...")

	if err := locale.Init(localeDir, lang); err != nil {
		logger.Log.WithError(err).Warn("Message catalogue unavailable, falling back to English.")
	}

	// Формируем конфиг
	cfg := engine.NewConfig()
	switch {
	case seed != 0:
		cfg = cfg.WithSeed(seed)
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	case os.Getenv("RL_SEED") != "":
		envSeed, err := strconv.ParseInt(os.Getenv("RL_SEED"), 10, 64)
		if err != nil {
			logger.Log.Fatalf("Invalid RL_SEED: %v", err)
		}
		cfg = cfg.WithSeed(envSeed)
		logger.Log.Infof("🎲 Using Master Seed from RL_SEED: %d", envSeed)
	default:
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}

	// 2. Инициализация ядра с конфигом
	game, err := engine.New(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to build level: ", err)
	}

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Режим запуска
	switch {
	case autoTurns > 0:
		logger.Log.Info("🤖 Mode: Autoplay")
		res, err := agent.NewBot().Play(ctx, game, autoTurns)
		if err != nil {
			logger.Log.Fatal("Autoplay aborted: ", err)
		}
		printSummary(game, res.Turns)

	case scriptPath != "":
		logger.Log.Info("📜 Mode: Script")
		f, err := os.Open(scriptPath)
		if err != nil {
			logger.Log.Fatal("Failed to open script: ", err)
		}
		defer f.Close()

		if _, err := input.RunScript(ctx, game, f); err != nil {
			logger.Log.Fatal("Script aborted: ", err)
		}
		printSummary(game, game.Turn())

	default:
		restore, err := tui.MakeRaw()
		if err != nil {
			logger.Log.Fatal("Cannot set terminal to raw mode: ", err)
		}
		session := tui.NewSession(game, tui.NewRenderer(), os.Stdin, os.Stdout)
		err = session.Run(ctx)
		restore()
		if err != nil {
			logger.Log.Fatal("Game aborted: ", err)
		}
	}

	if dumpPath != "" {
		if err := dumpFrame(game, dumpPath); err != nil {
			logger.Log.Fatal("Frame dump failed: ", err)
		}
		logger.Log.WithField("path", dumpPath).Info("Frame dumped.")
	}

	logger.Log.Info("Done.")
}

// dumpFrame сохраняет последний кадр для отладки рендера и бота.
func dumpFrame(game *engine.Engine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dump: %w", err)
	}
	if err := game.WriteSnapshot(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// printSummary печатает итог неинтерактивной партии.
func printSummary(game *engine.Engine, turns int) {
	frame := game.Snapshot()

	fmt.Printf("seed %d, %d turns\n", game.Seed(), turns)
	if frame.Player != nil && frame.Player.Stats != nil {
		fmt.Printf("HP %d/%d\n", frame.Player.Stats.HP, frame.Player.Stats.MaxHP)
	} else {
		fmt.Println(locale.T("You are dead."))
	}
	for _, entry := range game.Log().Latest(tui.LogLines) {
		fmt.Printf("[%d] %s\n", entry.Turn, entry.Text)
	}
}
