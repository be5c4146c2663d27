package world

import (
	"math/rand"
	"strconv"

	"github.com/duskmire/server/internal/data"
	"github.com/duskmire/server/internal/msg"
	"github.com/duskmire/server/internal/sched"
	"github.com/duskmire/server/internal/scripting"
)

// MeleeCalc resolves an attack roll into hit/damage. Implemented by
// scripting.Engine; tests substitute a fixed-formula stub.
type MeleeCalc interface {
	CalcMelee(scripting.MeleeContext) scripting.MeleeResult
}

// Controller decides what an actor does with each turn.
type Controller interface {
	NextAction(a *Actor, s *State) Action
}

// Actor is a simulated creature. It implements sched.Updatable: each turn it
// asks its controller for an action, applies it against the world, emits any
// log effects, and reports the action's tick cost as its reschedule delay.
//
// Owned by the game loop goroutine; while scheduled, only the queue touches it.
type Actor struct {
	ID        int32
	Name      string
	SpeciesID string
	Hostile   bool

	X, Y int32

	HP, MaxHP     int32
	SP, MaxSP     int32
	MP, MaxMP     int32
	STR, DEX, INT int32

	WalkDelay   sched.Tick
	AttackDelay sched.Tick
	RestDelay   sched.Tick

	ctrl   Controller
	combat MeleeCalc
	rng    *rand.Rand
	state  *State

	inactive bool

	// wander state, used by WanderController
	wanderDist int
	wanderDir  Dir
}

// NewActor builds an actor from a species template. n disambiguates actors of
// the same species in names and RNG streams.
func NewActor(tmpl *data.SpeciesTemplate, n int32, x, y int32, ctrl Controller, combat MeleeCalc, seed string) *Actor {
	name := tmpl.Name
	if n > 0 {
		name = tmpl.Name + " " + strconv.Itoa(int(n+1))
	}
	return &Actor{
		ID:          NextActorID(),
		Name:        name,
		SpeciesID:   tmpl.SpeciesID,
		Hostile:     tmpl.Hostile,
		X:           x,
		Y:           y,
		HP:          tmpl.HP,
		MaxHP:       tmpl.HP,
		SP:          tmpl.SP,
		MaxSP:       tmpl.SP,
		MP:          tmpl.MP,
		MaxMP:       tmpl.MP,
		STR:         tmpl.STR,
		DEX:         tmpl.DEX,
		INT:         tmpl.INT,
		WalkDelay:   sched.Tick(tmpl.WalkDelay),
		AttackDelay: sched.Tick(tmpl.AttackDelay),
		RestDelay:   sched.Tick(tmpl.RestDelay),
		ctrl:        ctrl,
		combat:      combat,
		rng:         rand.New(rand.NewSource(SubSeed(seed, tmpl.SpeciesID, n))),
	}
}

// Update performs one turn. Called only by the queue.
func (a *Actor) Update(sink *sched.Sink) (sched.Tick, bool) {
	if a.HP <= 0 {
		// Killed between scheduling and this turn without being deactivated;
		// treat it the same as a deactivation.
		return 0, false
	}

	act := a.ctrl.NextAction(a, a.state)
	switch act.Kind {
	case ActWalk:
		a.SP--
		if a.SP < 0 {
			a.SP = 0
		}
		a.state.Move(a, a.X+act.Dir.DX(), a.Y+act.Dir.DY())
		return a.WalkDelay, true

	case ActRest:
		a.SP += 2
		if a.SP > a.MaxSP {
			a.SP = a.MaxSP
		}
		if a.HP < a.MaxHP {
			a.HP++
		}
		sink.Emit(sched.Log{Message: msg.Message{
			Kind:       msg.KindDisplay,
			Importance: msg.ImportanceVerbose,
			Contents:   []msg.Text{msg.Bold(a.Name), msg.Plain("rests.")},
		}})
		return a.RestDelay, true

	case ActMelee:
		a.melee(act.Dir, sink)
		return a.AttackDelay, true

	default: // ActWait
		return a.WalkDelay, true
	}
}

func (a *Actor) melee(d Dir, sink *sched.Sink) {
	target := a.state.ActorAt(a.X+d.DX(), a.Y+d.DY())
	if target == nil || !target.IsActive() {
		return // target moved or died before our turn
	}

	res := a.combat.CalcMelee(scripting.MeleeContext{
		AttackerSTR: int(a.STR),
		AttackerDEX: int(a.DEX),
		TargetDEX:   int(target.DEX),
		TargetHP:    int(target.HP),
		Roll:        a.rng.Intn(100),
	})

	if !res.IsHit {
		sink.Emit(sched.Log{Message: msg.Normal(
			msg.Bold(a.Name),
			msg.Plain("misses"),
			msg.Bold(target.Name+"."),
		)})
		return
	}

	target.HP -= int32(res.Damage)
	sink.Emit(sched.Log{Message: msg.Normal(
		msg.Bold(a.Name),
		msg.Plain("hits"),
		msg.Bold(target.Name),
		msg.Plain("for"),
		msg.Colored(msg.Named(msg.ColorRed), strconv.Itoa(res.Damage)),
		msg.Plain("damage."),
	)})

	if target.HP <= 0 {
		target.Deactivate()
		a.state.Remove(target)
		sink.Emit(sched.Log{Message: msg.Message{
			Kind:       msg.KindDisplay,
			Importance: msg.ImportanceHigh,
			Contents:   []msg.Text{msg.Bold(target.Name), msg.Colored(msg.Named(msg.ColorRed), "dies.")},
		}})
	}
}

// IsActive reports whether the actor should still take turns.
func (a *Actor) IsActive() bool { return !a.inactive }

// Deactivate permanently retires the actor. Its queue entry, if any, is
// discarded the next time it reaches the front.
func (a *Actor) Deactivate() { a.inactive = true }
