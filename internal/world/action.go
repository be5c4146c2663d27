package world

// Dir is an 8-way heading, clockwise from north.
type Dir int16

const (
	DirN Dir = iota
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW
)

var dirDX = [8]int32{0, 1, 1, 1, 0, -1, -1, -1}
var dirDY = [8]int32{-1, -1, 0, 1, 1, 1, 0, -1}

// DX and DY return the x/y offset of one step in this direction.
func (d Dir) DX() int32 { return dirDX[d&7] }
func (d Dir) DY() int32 { return dirDY[d&7] }

// Opposite returns the reversed heading.
func (d Dir) Opposite() Dir { return (d + 4) & 7 }

// ActionKind enumerates what an actor can do with one turn.
type ActionKind int

const (
	ActWait ActionKind = iota
	ActWalk
	ActRest
	ActMelee
)

// Action is one turn's decision: a kind plus a heading for walk/melee.
type Action struct {
	Kind ActionKind
	Dir  Dir
}
