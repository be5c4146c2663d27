package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for simulation formulas.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given directory.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	for _, sub := range []string{"core", "combat", "ai"} {
		p := filepath.Join(scriptsDir, sub)
		if err := e.loadDir(p); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}

	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// Close releases the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// MeleeContext holds pre-packed data for a melee attack calculation.
type MeleeContext struct {
	AttackerSTR int
	AttackerDEX int
	TargetDEX   int
	TargetHP    int
	Roll        int // caller-supplied RNG roll 0-99, keeps the VM deterministic
}

// MeleeResult is returned by the Lua melee function.
type MeleeResult struct {
	IsHit  bool
	Damage int
}

// CalcMelee calls the Lua calc_melee function. Falls back to a guaranteed
// 1-damage hit when the script is missing or misbehaves, so a broken formula
// degrades the numbers rather than stalling the simulation.
func (e *Engine) CalcMelee(ctx MeleeContext) MeleeResult {
	fn := e.vm.GetGlobal("calc_melee")
	if fn == lua.LNil {
		e.log.Error("lua function calc_melee not found")
		return MeleeResult{IsHit: true, Damage: 1}
	}

	t := e.vm.NewTable()

	atk := e.vm.NewTable()
	atk.RawSetString("str", lua.LNumber(ctx.AttackerSTR))
	atk.RawSetString("dex", lua.LNumber(ctx.AttackerDEX))
	t.RawSetString("attacker", atk)

	tgt := e.vm.NewTable()
	tgt.RawSetString("dex", lua.LNumber(ctx.TargetDEX))
	tgt.RawSetString("hp", lua.LNumber(ctx.TargetHP))
	t.RawSetString("target", tgt)

	t.RawSetString("roll", lua.LNumber(ctx.Roll))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua calc_melee error", zap.Error(err))
		return MeleeResult{IsHit: true, Damage: 1}
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua calc_melee returned non-table")
		return MeleeResult{IsHit: true, Damage: 1}
	}

	return MeleeResult{
		IsHit:  rt.RawGetString("is_hit") == lua.LTrue,
		Damage: int(lua.LVAsNumber(rt.RawGetString("damage"))),
	}
}

// ActionContext holds pre-packed data for a scripted action decision.
type ActionContext struct {
	SpeciesID string
	HP        int
	MaxHP     int
	SP        int
	MaxSP     int
	X         int
	Y         int
	TargetDir int // direction of the nearest adjacent enemy, -1 if none
	Roll      int // caller-supplied RNG roll 0-99
}

// ActionResult is returned by the Lua action function.
type ActionResult struct {
	Kind string // "walk", "wait", "rest", "melee"
	Dir  int    // 0-7 heading for walk/melee
}

// NextAction calls the Lua next_action function. Falls back to "wait" when
// the script is missing or misbehaves.
func (e *Engine) NextAction(ctx ActionContext) ActionResult {
	fn := e.vm.GetGlobal("next_action")
	if fn == lua.LNil {
		e.log.Error("lua function next_action not found")
		return ActionResult{Kind: "wait"}
	}

	t := e.vm.NewTable()
	t.RawSetString("species", lua.LString(ctx.SpeciesID))
	t.RawSetString("hp", lua.LNumber(ctx.HP))
	t.RawSetString("max_hp", lua.LNumber(ctx.MaxHP))
	t.RawSetString("sp", lua.LNumber(ctx.SP))
	t.RawSetString("max_sp", lua.LNumber(ctx.MaxSP))
	t.RawSetString("x", lua.LNumber(ctx.X))
	t.RawSetString("y", lua.LNumber(ctx.Y))
	t.RawSetString("target_dir", lua.LNumber(ctx.TargetDir))
	t.RawSetString("roll", lua.LNumber(ctx.Roll))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua next_action error", zap.Error(err))
		return ActionResult{Kind: "wait"}
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua next_action returned non-table")
		return ActionResult{Kind: "wait"}
	}

	return ActionResult{
		Kind: lua.LVAsString(rt.RawGetString("kind")),
		Dir:  int(lua.LVAsNumber(rt.RawGetString("dir"))),
	}
}
