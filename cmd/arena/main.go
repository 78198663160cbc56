package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cave-combat/internal/config"
	"cave-combat/internal/engine"
	"cave-combat/internal/version"
	"cave-combat/pkg/cavemap"
	"cave-combat/pkg/logger"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Флаги
	var (
		mapPath       string
		rulesPath     string
		scenariosPath string
		elfAttack     int
		calibrate     bool
		render        bool
		showVersion   bool
	)
	flag.StringVar(&mapPath, "map", "", "Path to the cave map")
	flag.StringVar(&rulesPath, "config", "", "Path to YAML rules (hit points, attack powers, limits)")
	flag.StringVar(&scenariosPath, "scenarios", "", "Verify every scenario from a YAML file and exit")
	flag.IntVar(&elfAttack, "elf-attack", 0, "Elf attack power (0 keeps the configured value)")
	flag.BoolVar(&calibrate, "calibrate", false, "Find the minimal elf attack power with zero elf losses")
	flag.BoolVar(&render, "render", false, "Print the final cave state")
	flag.BoolVar(&showVersion, "version", false, "Print build info and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		return
	}
	logger.Log.Debug(version.String())

	// 2. Правила боя: значения по умолчанию, поверх них файл, поверх флаги
	cfg := engine.NewConfig()
	if rulesPath != "" {
		var err error
		if cfg, err = config.LoadRules(rulesPath); err != nil {
			logger.Log.Fatal("Failed to load rules: ", err)
		}
	}
	if elfAttack > 0 {
		cfg.ElfAttack = elfAttack
		if cfg.MaxAttackPower < elfAttack {
			cfg.MaxAttackPower = elfAttack
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// РЕЖИМ ПРОВЕРКИ СЦЕНАРИЕВ
	if scenariosPath != "" {
		if failed := runScenarios(ctx, scenariosPath, cfg); failed > 0 {
			stop()
			logger.Log.Fatalf("%d scenario(s) failed", failed)
		}
		return
	}

	if mapPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	m, err := cavemap.Load(mapPath)
	if err != nil {
		logger.Log.Fatal("Failed to load map: ", err)
	}
	logger.Log.WithFields(logrus.Fields{
		"map":    mapPath,
		"width":  m.Cave.Width(),
		"height": m.Cave.Height(),
		"agents": len(m.Spawns),
	}).Info("Cave loaded.")

	// РЕЖИМ КАЛИБРОВКИ
	if calibrate {
		cal, err := engine.Calibrate(ctx, m.Cave, m.Spawns, cfg)
		if err != nil {
			logger.Log.Fatal("Calibration failed: ", err)
		}
		logger.Log.WithField("attempts", cal.Attempts).Info(cal.Outcome.String())
		fmt.Printf("%d %d\n", cal.AttackPower, cal.Outcome.Value)
		return
	}

	// ПРЯМОЙ БОЙ
	b, err := engine.NewBattle(m.Cave, m.Spawns, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to set up battle: ", err)
	}
	out, err := b.Run(ctx)
	if err != nil {
		logger.Log.Fatal("Battle failed: ", err)
	}
	logger.Log.Info(out.String())

	if render {
		fmt.Print(cavemap.Render(b.Registry()))
	}
	fmt.Println(out.Value)
}

// runScenarios прогоняет сценарии и печатает PASS/FAIL по каждому.
// Возвращает число проваленных.
func runScenarios(ctx context.Context, path string, base engine.Config) int {
	scenarios, err := config.LoadScenarios(path)
	if err != nil {
		logger.Log.Fatal("Failed to load scenarios: ", err)
	}

	failed := 0
	for _, sc := range scenarios {
		if err := checkScenario(ctx, sc, base); err != nil {
			failed++
			fmt.Printf("FAIL %s: %v\n", sc.Name, err)
			continue
		}
		fmt.Printf("PASS %s\n", sc.Name)
	}
	return failed
}

var errMismatch = errors.New("mismatch")

func checkScenario(ctx context.Context, sc config.Scenario, base engine.Config) error {
	m, err := sc.Parse()
	if err != nil {
		return err
	}
	cfg := sc.Apply(base)

	b, err := engine.NewBattle(m.Cave, m.Spawns, cfg)
	if err != nil {
		return err
	}
	out, err := b.Run(ctx)
	if err != nil {
		return err
	}
	if out.Value != sc.Expect.Outcome {
		return fmt.Errorf("%w: outcome %d, want %d", errMismatch, out.Value, sc.Expect.Outcome)
	}

	if sc.Expect.CalibratedPower == 0 {
		return nil
	}
	cal, err := engine.Calibrate(ctx, m.Cave, m.Spawns, cfg)
	if err != nil {
		return err
	}
	if cal.AttackPower != sc.Expect.CalibratedPower || cal.Outcome.Value != sc.Expect.CalibratedOutcome {
		return fmt.Errorf("%w: calibrated %d@%d, want %d@%d", errMismatch,
			cal.Outcome.Value, cal.AttackPower, sc.Expect.CalibratedOutcome, sc.Expect.CalibratedPower)
	}
	return nil
}
