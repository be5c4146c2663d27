package world

import "github.com/duskmire/server/internal/scripting"

// WanderController is the default actor brain: attack an adjacent foe when
// hostile, rest when winded, otherwise wander a few tiles in one heading
// before picking a new one.
type WanderController struct{}

func (WanderController) NextAction(a *Actor, s *State) Action {
	if a.Hostile {
		if _, d, ok := s.AdjacentFoe(a); ok {
			return Action{Kind: ActMelee, Dir: d}
		}
	}
	if a.SP <= 0 || (a.HP < a.MaxHP/2 && a.rng.Intn(4) == 0) {
		return Action{Kind: ActRest}
	}
	if a.wanderDist <= 0 {
		a.wanderDist = 2 + a.rng.Intn(5)
		a.wanderDir = Dir(a.rng.Intn(8))
	}
	a.wanderDist--
	// Turn around at walls so actors don't grind against the edge.
	nx, ny := a.X+a.wanderDir.DX(), a.Y+a.wanderDir.DY()
	if !s.InBounds(nx, ny) {
		a.wanderDir = a.wanderDir.Opposite()
	}
	return Action{Kind: ActWalk, Dir: a.wanderDir}
}

// ActionScript decides an actor's turn; implemented by scripting.Engine.
type ActionScript interface {
	NextAction(scripting.ActionContext) scripting.ActionResult
}

// ScriptController delegates the turn decision to the Lua next_action
// function, falling back to wandering when the script declines (empty kind).
type ScriptController struct {
	Script ActionScript

	fallback WanderController
}

func (c *ScriptController) NextAction(a *Actor, s *State) Action {
	targetDir := -1
	if _, d, ok := s.AdjacentFoe(a); ok {
		targetDir = int(d)
	}
	res := c.Script.NextAction(scripting.ActionContext{
		SpeciesID: a.SpeciesID,
		HP:        int(a.HP),
		MaxHP:     int(a.MaxHP),
		SP:        int(a.SP),
		MaxSP:     int(a.MaxSP),
		X:         int(a.X),
		Y:         int(a.Y),
		TargetDir: targetDir,
		Roll:      a.rng.Intn(100),
	})
	switch res.Kind {
	case "walk":
		return Action{Kind: ActWalk, Dir: Dir(res.Dir & 7)}
	case "rest":
		return Action{Kind: ActRest}
	case "melee":
		return Action{Kind: ActMelee, Dir: Dir(res.Dir & 7)}
	case "wait":
		return Action{Kind: ActWait}
	default:
		return c.fallback.NextAction(a, s)
	}
}
