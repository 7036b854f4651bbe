package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/coder/quartz"

	"scroggy_backend/internal/app"
	"scroggy_backend/internal/config/env"
	"scroggy_backend/internal/engine"
)

func main() {
	rtpRounds := flag.Int("rtp", 0, "вместо запуска сервера посчитать RTP за N спинов")
	configPath := flag.String("config", "config.yaml", "путь к конфигу игровой математики")
	flag.Parse()

	if *rtpRounds > 0 {
		if err := runAnalysis(*configPath, *rtpRounds); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	a := app.NewApp()
	if err := a.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runAnalysis(configPath string, rounds int) error {
	cfg, err := env.NewSlotConfigFromYAML(configPath)
	if err != nil {
		return err
	}

	eng := engine.New(cfg.Tables(), engine.NewRand(time.Now().UnixNano()), quartz.NewReal())

	report := eng.Analyze(rounds)
	fmt.Printf("rounds:   %d\n", report.Rounds)
	fmt.Printf("rtp:      %.4f\n", report.RTP)
	fmt.Printf("hit rate: %.4f\n", report.HitRate)
	fmt.Printf("variance: %.4f\n", report.Variance)
	return nil
}
