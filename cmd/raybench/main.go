package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/lukaszgryglicki/raybench/internal/raybench"
)

func main() {
	raybench.Debug = os.Getenv("DEBUG") != ""
	raybench.PNG = os.Getenv("PNG") != ""
	raybench.BMP = os.Getenv("BMP") != ""
	raybench.GIF = os.Getenv("GIF") != ""
	raybench.Reconcile = os.Getenv("RECONCILE") != ""
	if raybench.Debug {
		raybench.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := ""
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := raybench.Run(ctx, cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
