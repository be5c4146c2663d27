package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/duskmire/server/internal/config"
	"github.com/duskmire/server/internal/data"
	"github.com/duskmire/server/internal/msg"
	"github.com/duskmire/server/internal/persist"
	"github.com/duskmire/server/internal/sched"
	"github.com/duskmire/server/internal/scripting"
	"github.com/duskmire/server/internal/term"
	"github.com/duskmire/server/internal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(seed string) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m            Duskmire  v0.1.0               \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m      turn-based dungeon simulation        \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mseed:\033[0m %s\n\n", seed)
}

func printSection(title string) {
	lineLen := 46 - term.DisplayWidth(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - term.DisplayWidth(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(m string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", m)
}

func printReady(m string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", m)
}

// ── Main simulation logic ──────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/duskmire.toml"
	if p := os.Getenv("DUSKMIRE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		// A missing file at the default path just means "use defaults";
		// an explicitly configured path must exist.
		if os.Getenv("DUSKMIRE_CONFIG") != "" || !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = config.Default()
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Sim.Seed)

	// 3. Load static data
	printSection("data")

	speciesTable, err := data.LoadSpeciesTable(cfg.Sim.SpeciesPath)
	if err != nil {
		return fmt.Errorf("load species table: %w", err)
	}
	printStat("species templates", speciesTable.Count())

	scenario, err := data.LoadScenario(cfg.Sim.ScenarioPath)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}
	printStat("spawn entries", len(scenario.Spawns))
	printStat("timed messages", len(scenario.Messages))

	// 4. Initialize Lua scripting engine
	luaEngine, err := scripting.NewEngine(cfg.Sim.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()
	printOK("lua scripts loaded")

	// 5. Optional Postgres chronicle
	var chronicle *persist.ChronicleRepo
	runID := fmt.Sprintf("%s-%d", cfg.Sim.Seed, time.Now().Unix())
	if cfg.Chronicle.Enabled {
		printSection("chronicle")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		db, err := persist.NewDB(ctx, cfg.Chronicle, log)
		if err != nil {
			cancel()
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()
		printOK("postgres connected")
		if err := persist.RunMigrations(ctx, db.Pool); err != nil {
			cancel()
			return fmt.Errorf("migrations: %w", err)
		}
		cancel()
		printOK("migrations applied")
		chronicle = persist.NewChronicleRepo(db)
	}
	fmt.Println()

	// 6. Build world and schedule
	state := world.NewState(scenario.Width, scenario.Height)
	queue := sched.NewQueue()
	sink := sched.NewSink()

	actorCount := spawnActors(state, queue, speciesTable, scenario, luaEngine, cfg.Sim.Seed, log)
	printStat("actors spawned", actorCount)

	for _, me := range scenario.Messages {
		queue.Push(sched.Tick(me.Tick), world.NewMessenger(me.From, me.Body))
	}

	// 7. Run
	printSection("simulation")
	printReady(fmt.Sprintf("scenario %q on %dx%d grid", scenario.Name, scenario.Width, scenario.Height))
	fmt.Println()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	renderer := term.NewRenderer(msg.ParseImportance(cfg.Sim.MinImportance))
	var batch []persist.ChronicleEntry
	steps := 0
	logged := 0
	lastTick := sched.Tick(0)

	for {
		select {
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			return finish(chronicle, batch, runID, steps, lastTick, logged, state, log)
		default:
		}

		if cfg.Sim.MaxSteps > 0 && steps >= cfg.Sim.MaxSteps {
			log.Info("step budget reached", zap.Int("steps", steps))
			break
		}

		now, ok := queue.Step(sink)
		if !ok {
			// No active entities left: the normal end of a run.
			break
		}
		steps++
		lastTick = now

		for _, e := range sink.Drain() {
			switch eff := e.(type) {
			case sched.Log:
				logged++
				if line, show := renderer.Line(uint64(now), eff.Message); show {
					fmt.Println(line)
				}
				log.Debug("effect", zap.Uint64("tick", uint64(now)), zap.String("msg", eff.Message.String()))
				if chronicle != nil {
					batch = append(batch, persist.ChronicleEntry{
						RunID:      runID,
						Tick:       uint64(now),
						Kind:       int16(eff.Message.Kind),
						Importance: int16(eff.Message.Importance),
						Body:       eff.Message.String(),
					})
				}
			}
		}

		if chronicle != nil && len(batch) >= cfg.Chronicle.FlushEvery {
			batch = flushChronicle(chronicle, batch, log)
		}

		if cfg.Sim.StepDelay > 0 {
			time.Sleep(cfg.Sim.StepDelay)
		}
	}

	return finish(chronicle, batch, runID, steps, lastTick, logged, state, log)
}

// finish flushes any buffered chronicle entries and prints the run summary.
func finish(chronicle *persist.ChronicleRepo, batch []persist.ChronicleEntry, runID string, steps int, lastTick sched.Tick, logged int, state *world.State, log *zap.Logger) error {
	if chronicle != nil {
		flushChronicle(chronicle, batch, log)
	}
	fmt.Println()
	printSection("summary")
	printStat("steps processed", steps)
	printStat("final tick", int(lastTick))
	printStat("messages logged", logged)
	printStat("actors alive", state.AliveCount())
	if chronicle != nil {
		printOK(fmt.Sprintf("chronicle run %s", runID))
	}
	return nil
}

func flushChronicle(chronicle *persist.ChronicleRepo, batch []persist.ChronicleEntry, log *zap.Logger) []persist.ChronicleEntry {
	if len(batch) == 0 {
		return batch
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := chronicle.WriteBatch(ctx, batch); err != nil {
		log.Error("chronicle flush failed", zap.Int("entries", len(batch)), zap.Error(err))
	}
	return batch[:0]
}

// spawnActors creates actor instances from the scenario spawn list, adds them
// to world state, and schedules their first turns.
func spawnActors(state *world.State, queue *sched.Queue, species *data.SpeciesTable, scenario *data.Scenario, lua *scripting.Engine, seed string, log *zap.Logger) int {
	total := 0
	for si, spawn := range scenario.Spawns {
		tmpl := species.Get(spawn.SpeciesID)
		if tmpl == nil {
			log.Warn("spawn: unknown species", zap.String("species_id", spawn.SpeciesID))
			continue
		}
		scatter := rand.New(rand.NewSource(world.SubSeed(seed, "spawn", int32(si))))
		for i := 0; i < spawn.Count; i++ {
			x := spawn.X
			y := spawn.Y
			if spawn.ScatterX > 0 {
				x += int32(scatter.Intn(int(spawn.ScatterX*2+1))) - spawn.ScatterX
			}
			if spawn.ScatterY > 0 {
				y += int32(scatter.Intn(int(spawn.ScatterY*2+1))) - spawn.ScatterY
			}

			var ctrl world.Controller
			if tmpl.Controller == "script" {
				ctrl = &world.ScriptController{Script: lua}
			} else {
				ctrl = world.WanderController{}
			}

			actor := world.NewActor(tmpl, int32(i), x, y, ctrl, lua, seed)
			if !state.Add(actor) {
				log.Warn("spawn: tile unavailable",
					zap.String("species_id", spawn.SpeciesID),
					zap.Int32("x", x), zap.Int32("y", y))
				continue
			}
			queue.Push(sched.Tick(spawn.StartTick), actor)
			total++
		}
	}
	return total
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
