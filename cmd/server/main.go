package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"roomchat/internal"
	"syscall"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle and
// centralizes error reporting so that deferred cleanup always runs.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Wiring
	orchestrator, err := internal.NewOrchestrator(log, config)
	if err != nil {
		return exitConfig, fmt.Errorf("orchestrator setup failed: %w", err)
	}
	if err := orchestrator.Listen(); err != nil {
		return exitRuntime, err
	}
	printBanner(orchestrator)

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Run until a signal arrives
	if err := orchestrator.Start(ctx); err != nil {
		return exitRuntime, fmt.Errorf("orchestrator failed to start: %w", err)
	}
	log.Info("Program stopped cleanly")
	return exitOK, nil
}

func printBanner(o *internal.Orchestrator) {
	title := color.New(color.FgCyan, color.OpBold)
	label := color.New(color.FgGray)
	title.Println("roomchat")
	label.Print("  chat   ")
	color.Green.Println(o.ChatAddr())
	if addr := o.AdminAddr(); addr != "" {
		label.Print("  admin  ")
		color.Green.Println("http://" + addr + "  (/healthz /metrics /stats /ws)")
	}
	if addr := o.HealthAddr(); addr != "" {
		label.Print("  health ")
		color.Green.Println(addr)
	}
}
