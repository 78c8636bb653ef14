package state_test

import (
	"testing"

	. "github.com/janpfeifer/pentaGo/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopology(t *testing.T) {
	topo := PentaBoard()
	require.Same(t, topo, PentaBoard())
	assert.Equal(t, 85, topo.NumFields())
	assert.Len(t, topo.Fields(), 85)
	assert.Len(t, Paths(), 20)

	counts := make(map[FieldRole]int)
	for _, f := range topo.Fields() {
		counts[f.Role]++
		switch f.Role {
		case RoleConnection:
			assert.Len(t, f.Neighbours, 2, "connection field %s", f.ID)
			assert.Equal(t, ColorNone, f.Color)
			assert.False(t, f.IsCorner())
		default:
			assert.Len(t, f.Neighbours, 4, "stop %s", f.ID)
			assert.True(t, f.IsCorner())
		}
		for _, n := range f.Neighbours {
			adjacent, err := topo.Adjacent(n, f.ID)
			require.NoError(t, err)
			assert.True(t, adjacent, "adjacency %s <-> %s must be symmetric", f.ID, n)
		}
	}
	assert.Equal(t, 5, counts[RoleStart])
	assert.Equal(t, 5, counts[RoleGoal])
	assert.Equal(t, 75, counts[RoleConnection])

	a := topo.MustField("A")
	assert.Equal(t, []FieldID{"A-1-B", "A-1-c", "A-1-d", "E-6-A"}, a.Neighbours)
	assert.Equal(t, RoleStart, a.Role)
	assert.Equal(t, ColorA, a.Color)
	c := topo.MustField("c")
	assert.Equal(t, []FieldID{"A-3-c", "E-3-c", "b-3-c", "c-1-d"}, c.Neighbours)
	assert.Equal(t, RoleGoal, c.Role)
	assert.Equal(t, ColorC, c.Color)

	adjacent, err := topo.Adjacent("A-1-B", "A-2-B")
	require.NoError(t, err)
	assert.True(t, adjacent)
	adjacent, err = topo.Adjacent("A-1-B", "A-3-B")
	require.NoError(t, err)
	assert.False(t, adjacent)
}

func TestTopologyGoalsOppositeStarts(t *testing.T) {
	for _, path := range Paths() {
		from := PentaBoard().MustField(path.From)
		to := PentaBoard().MustField(path.To)
		if from.Role == RoleStart && to.Role == RoleGoal {
			assert.NotEqual(t, from.Color, to.Color, "path %s -> %s", path.From, path.To)
		}
	}
	for _, c := range Colors {
		assert.Equal(t, StartID(c), PentaBoard().Start(c))
		assert.Equal(t, GoalID(c), PentaBoard().Goal(c))
	}
	assert.Equal(t, ColorA, ColorE.Shift(1))
	assert.Equal(t, ColorD, ColorA.Shift(-2))
}

func TestTopologyUnknownField(t *testing.T) {
	topo := PentaBoard()
	_, err := topo.Field("Z")
	require.ErrorIs(t, err, ErrUnknownField)
	_, err = topo.Adjacent("A", "Z")
	require.ErrorIs(t, err, ErrUnknownField)
	assert.False(t, topo.Has("Z"))
	assert.Panics(t, func() { topo.MustField("Z") })
}

func TestTopologyDeterministic(t *testing.T) {
	t1, t2 := NewTopology(), NewTopology()
	require.Equal(t, t1.NumFields(), t2.NumFields())
	for ii, f := range t1.Fields() {
		assert.Equal(t, *f, *t2.Fields()[ii])
	}
}
