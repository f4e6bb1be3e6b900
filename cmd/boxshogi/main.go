package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"boxshogi/internal/boxshogi"
	"boxshogi/internal/cli"
	"boxshogi/internal/config"
	"boxshogi/internal/game"
)

func main() {
	interactive := flag.Bool("i", false, "interactive mode, read actions from stdin")
	file := flag.String("f", "", "test case file to play")
	strict := flag.Bool("strict", false, "interactive mode: an illegal action loses the game instead of re-prompting")
	flag.Parse()

	if !*interactive && *file == "" {
		fmt.Println("Please specify input by -i or -f [file name]")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	mgr := game.NewManager(logger, boxshogi.WithMaxTurns(cfg.MaxTurns))
	runner := cli.NewRunner(mgr, cli.NewMessages(cfg.Locale), os.Stdout, logger, *strict)

	if *interactive {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runner.RunInteractive(ctx, os.Stdin); err != nil && err != context.Canceled {
			log.Fatalf("interactive: %v", err)
		}
		return
	}
	if err := runner.RunFile(*file); err != nil {
		log.Fatalf("file mode: %v", err)
	}
}
