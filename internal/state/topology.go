package state

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/pentaGo/internal/generics"
	"github.com/pkg/errors"
)

// PentaColor is one of the five colors of the board. Stops (Start and Goal fields), player pieces
// and black blockers are colored; connection fields and gray blockers are not.
type PentaColor uint8

const (
	ColorA PentaColor = iota
	ColorB
	ColorC
	ColorD
	ColorE

	// ColorNone is used by fields and pieces without a color.
	ColorNone
)

//go:generate go tool enumer -type=PentaColor -trimprefix=Color -values -text -json -yaml topology.go

// NumColors is the number of colors, and also the number of Start fields, Goal fields and
// pieces per player.
const NumColors = 5

// Colors enumerates the 5 colors, skipping ColorNone.
var Colors = [NumColors]PentaColor{ColorA, ColorB, ColorC, ColorD, ColorE}

// Shift returns the color delta positions further around the pentagon (wrapping).
func (c PentaColor) Shift(delta int) PentaColor {
	return PentaColor(((int(c)+delta)%NumColors + NumColors) % NumColors)
}

// FieldID identifies a field of the board. See Topology for the naming scheme.
type FieldID string

// NoField is used for "off-board".
const NoField FieldID = ""

// FieldRole is the geometric role of a field.
type FieldRole uint8

const (
	// RoleConnection fields are the steps along the paths between stops.
	RoleConnection FieldRole = iota

	// RoleStart fields are the 5 stops in the outer circle, where player pieces start.
	RoleStart

	// RoleGoal fields are the 5 stops at the inner junctions of the star.
	RoleGoal
)

var fieldRoleNames = [...]string{"Connection", "Start", "Goal"}

func (r FieldRole) String() string {
	if int(r) < len(fieldRoleNames) {
		return fieldRoleNames[r]
	}
	return fmt.Sprintf("FieldRole(%d)", r)
}

// Field is a node of the board graph.
type Field struct {
	ID    FieldID
	Role  FieldRole
	Color PentaColor

	// Neighbours are the directly adjacent fields, sorted by id.
	Neighbours []FieldID
}

// IsCorner returns whether the field is a corner field (a Start or a Goal), the only fields
// where player pieces can be stacked.
func (f *Field) IsCorner() bool {
	return f.Role == RoleStart || f.Role == RoleGoal
}

func (f *Field) String() string {
	return string(f.ID)
}

// Number of connection fields on each kind of path.
const (
	StepsOuterArc = 6 // Start(k) to Start(k+1), along the outer circle.
	StepsStar     = 3 // Start to Goal, and Goal to Goal along the inner pentagon.
)

// Topology is the static graph of the board.
//
// Field ids:
//
//   - Start fields are the upper case color letters "A" ... "E".
//   - Goal fields are the lower case color letters "a" ... "e". The Goal of a color is the stop
//     opposite to the Start of the same color.
//   - Connection fields are named "<from>-<step>-<to>", e.g. "A-1-B" is the first step
//     from "A" along the outer arc to "B".
//
// A Topology is immutable after construction, and can be shared by any number of boards.
type Topology struct {
	fields map[FieldID]*Field
	order  []FieldID
	starts [NumColors]FieldID
	goals  [NumColors]FieldID
}

// PentaBoard returns the shared standard topology. It is built on first use.
var PentaBoard = sync.OnceValue(NewTopology)

// StartID returns the id of the Start field of the given color.
func StartID(c PentaColor) FieldID {
	return FieldID(c.String())
}

// GoalID returns the id of the Goal field of the given color.
func GoalID(c PentaColor) FieldID {
	return FieldID(strings.ToLower(c.String()))
}

// ConnectionID returns the id of the step-th connection field on the path from -> to.
func ConnectionID(from FieldID, step int, to FieldID) FieldID {
	return FieldID(fmt.Sprintf("%s-%d-%s", from, step, to))
}

// Path is a chain of connection fields between two stops.
type Path struct {
	From, To FieldID
	Steps    []FieldID
}

// Paths enumerates the 20 paths of the board in a fixed order: for each color k the outer
// arc k -> k+1, the two star segments from Start k, and the inner segment Goal k -> Goal k+1.
func Paths() []Path {
	paths := make([]Path, 0, 4*NumColors)
	add := func(from, to FieldID, steps int) {
		p := Path{From: from, To: to, Steps: make([]FieldID, steps)}
		for ii := range steps {
			p.Steps[ii] = ConnectionID(from, ii+1, to)
		}
		paths = append(paths, p)
	}
	for _, c := range Colors {
		add(StartID(c), StartID(c.Shift(1)), StepsOuterArc)
		add(StartID(c), GoalID(c.Shift(2)), StepsStar)
		add(StartID(c), GoalID(c.Shift(3)), StepsStar)
		add(GoalID(c), GoalID(c.Shift(1)), StepsStar)
	}
	return paths
}

// NewTopology builds the standard Pentagame board graph. Construction is deterministic.
// Most users want the shared PentaBoard instead.
func NewTopology() *Topology {
	t := &Topology{fields: make(map[FieldID]*Field)}
	addField := func(id FieldID, role FieldRole, color PentaColor) {
		t.fields[id] = &Field{ID: id, Role: role, Color: color}
		t.order = append(t.order, id)
	}
	for _, c := range Colors {
		t.starts[c] = StartID(c)
		addField(t.starts[c], RoleStart, c)
	}
	for _, c := range Colors {
		t.goals[c] = GoalID(c)
		addField(t.goals[c], RoleGoal, c)
	}

	adjacency := make(map[FieldID]generics.Set[FieldID])
	connect := func(a, b FieldID) {
		for _, pair := range [2][2]FieldID{{a, b}, {b, a}} {
			if adjacency[pair[0]] == nil {
				adjacency[pair[0]] = generics.MakeSet[FieldID]()
			}
			adjacency[pair[0]].Insert(pair[1])
		}
	}
	for _, path := range Paths() {
		prev := path.From
		for _, step := range path.Steps {
			addField(step, RoleConnection, ColorNone)
			connect(prev, step)
			prev = step
		}
		connect(prev, path.To)
	}
	for id, neighbours := range adjacency {
		t.fields[id].Neighbours = slices.Collect(generics.SortedKeys(neighbours))
	}
	return t
}

// NumFields returns the number of fields in the board.
func (t *Topology) NumFields() int {
	return len(t.order)
}

// Fields returns all fields, Start fields first, then Goal fields, then connection fields in
// path order.
func (t *Topology) Fields() []*Field {
	return generics.SliceMap(t.order, func(id FieldID) *Field { return t.fields[id] })
}

// Has returns whether the id names a field of the board.
func (t *Topology) Has(id FieldID) bool {
	_, found := t.fields[id]
	return found
}

// Field returns the field with the given id, or an error wrapping ErrUnknownField.
func (t *Topology) Field(id FieldID) (*Field, error) {
	f, found := t.fields[id]
	if !found {
		return nil, errors.Wrapf(ErrUnknownField, "field %q", id)
	}
	return f, nil
}

// MustField is like Field, but panics if the field doesn't exist: use it only for ids that
// come from the topology itself.
func (t *Topology) MustField(id FieldID) *Field {
	f, found := t.fields[id]
	if !found {
		exceptions.Panicf("%v: field %q", ErrUnknownField, id)
	}
	return f
}

// Adjacent returns whether a and b are directly connected. It returns an error wrapping
// ErrUnknownField if either doesn't exist.
func (t *Topology) Adjacent(a, b FieldID) (bool, error) {
	fa, err := t.Field(a)
	if err != nil {
		return false, err
	}
	if _, err = t.Field(b); err != nil {
		return false, err
	}
	_, found := slices.BinarySearch(fa.Neighbours, b)
	return found, nil
}

// Start returns the id of the Start field of the given color.
func (t *Topology) Start(c PentaColor) FieldID {
	return t.starts[c]
}

// Goal returns the id of the Goal field of the given color.
func (t *Topology) Goal(c PentaColor) FieldID {
	return t.goals[c]
}
