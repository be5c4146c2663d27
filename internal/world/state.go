package world

import "sync/atomic"

// actorIDCounter generates unique actor object IDs.
var actorIDCounter atomic.Int32

// NextActorID returns a unique object ID for an actor instance.
func NextActorID() int32 {
	return actorIDCounter.Add(1)
}

// State holds everything currently in-world: the actor registry and the
// occupancy grid they move on. Accessed only from the game loop goroutine —
// no locks needed.
type State struct {
	width    int32
	height   int32
	actors   map[int32]*Actor
	occupied map[[2]int32]int32 // tile -> actor ID
}

// NewState creates an empty world of the given dimensions.
func NewState(width, height int32) *State {
	return &State{
		width:    width,
		height:   height,
		actors:   make(map[int32]*Actor, 64),
		occupied: make(map[[2]int32]int32, 64),
	}
}

func (s *State) Width() int32  { return s.width }
func (s *State) Height() int32 { return s.height }

// InBounds reports whether a tile lies on the grid.
func (s *State) InBounds(x, y int32) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

// ActorAt returns the actor occupying a tile, or nil.
func (s *State) ActorAt(x, y int32) *Actor {
	id, ok := s.occupied[[2]int32{x, y}]
	if !ok {
		return nil
	}
	return s.actors[id]
}

// Add registers an actor and claims its tile. Returns false when the tile is
// out of bounds or already occupied; the actor is not added in that case.
func (s *State) Add(a *Actor) bool {
	if !s.InBounds(a.X, a.Y) {
		return false
	}
	key := [2]int32{a.X, a.Y}
	if _, taken := s.occupied[key]; taken {
		return false
	}
	s.actors[a.ID] = a
	s.occupied[key] = a.ID
	a.state = s
	return true
}

// Remove drops an actor from the registry and frees its tile. Corpses do not
// block movement.
func (s *State) Remove(a *Actor) {
	key := [2]int32{a.X, a.Y}
	if s.occupied[key] == a.ID {
		delete(s.occupied, key)
	}
	delete(s.actors, a.ID)
}

// Move relocates an actor one tile. Returns false if the destination is out
// of bounds or occupied, leaving the actor in place.
func (s *State) Move(a *Actor, x, y int32) bool {
	if !s.InBounds(x, y) {
		return false
	}
	to := [2]int32{x, y}
	if _, taken := s.occupied[to]; taken {
		return false
	}
	from := [2]int32{a.X, a.Y}
	if s.occupied[from] == a.ID {
		delete(s.occupied, from)
	}
	s.occupied[to] = a.ID
	a.X, a.Y = x, y
	return true
}

// AdjacentFoe scans the 8 neighbouring tiles of a for a living actor on the
// other side (hostile vs non-hostile), returning it and its heading.
func (s *State) AdjacentFoe(a *Actor) (*Actor, Dir, bool) {
	for d := DirN; d <= DirNW; d++ {
		other := s.ActorAt(a.X+d.DX(), a.Y+d.DY())
		if other != nil && other.IsActive() && other.Hostile != a.Hostile {
			return other, d, true
		}
	}
	return nil, 0, false
}

// AllActors calls fn for every registered actor. fn must not add or remove
// actors.
func (s *State) AllActors(fn func(*Actor)) {
	for _, a := range s.actors {
		fn(a)
	}
}

// AliveCount returns the number of registered actors still active.
func (s *State) AliveCount() int {
	n := 0
	for _, a := range s.actors {
		if a.IsActive() {
			n++
		}
	}
	return n
}
