package narrate_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routenav/builder"
	"github.com/katalvlaran/routenav/core"
	"github.com/katalvlaran/routenav/narrate"
)

// corner builds the chain A(0,0) - B(10,0) - C(10,10) - D(20,10).
func corner(t *testing.T) *core.Graph {
	t.Helper()

	g, err := builder.BuildGraph(nil, builder.Layout([]core.Node{
		{ID: 0, X: 0, Y: 0, Name: "A"},
		{ID: 1, X: 10, Y: 0, Name: "B"},
		{ID: 2, X: 10, Y: 10, Name: "C"},
		{ID: 3, X: 20, Y: 10, Name: "D"},
	}, [2]core.NodeID{0, 1}, [2]core.NodeID{1, 2}, [2]core.NodeID{2, 3}))
	require.NoError(t, err)
	return g
}

func TestReconstructPath(t *testing.T) {
	t.Parallel()

	prev := map[core.NodeID]core.NodeID{
		0: core.NoNode,
		1: 0,
		2: 1,
		3: 2,
		4: core.NoNode, // unreachable
		5: 4,
	}
	tests := []struct {
		name       string
		prev       map[core.NodeID]core.NodeID
		start, end core.NodeID
		want       []core.NodeID
	}{
		{"full chain", prev, 0, 3, []core.NodeID{0, 1, 2, 3}},
		{"single hop", prev, 0, 1, []core.NodeID{0, 1}},
		{"unreachable end", prev, 0, 4, nil},
		{"chain ends elsewhere", prev, 0, 5, nil},
		{"start equals end", prev, 2, 2, nil},
		{"missing end", prev, 0, 9, nil},
		{"cycle", map[core.NodeID]core.NodeID{1: 2, 2: 1}, 0, 1, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, narrate.ReconstructPath(tc.prev, tc.start, tc.end))
		})
	}
}

func TestBearing(t *testing.T) {
	t.Parallel()

	o := core.Node{X: 0, Y: 0}
	assert.InDelta(t, 0.0, narrate.Bearing(o, core.Node{X: 10, Y: 0}), 1e-12)
	assert.InDelta(t, 90.0, narrate.Bearing(o, core.Node{X: 0, Y: 10}), 1e-12)
	assert.InDelta(t, -90.0, narrate.Bearing(o, core.Node{X: 0, Y: -10}), 1e-12)
	assert.InDelta(t, 180.0, narrate.Bearing(o, core.Node{X: -10, Y: 0}), 1e-12)
}

func TestTurnAngle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		b1, b2, want float64
	}{
		{0, 90, 90},
		{0, -90, -90},
		{170, -170, 20},
		{-170, 170, -20},
		{0, 180, 180},
		{0, -180, 180},
		{90, 90, 0},
	}
	for _, tc := range tests {
		assert.InDelta(t, tc.want, narrate.TurnAngle(tc.b1, tc.b2), 1e-9, "TurnAngle(%v, %v)", tc.b1, tc.b2)
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		angle float64
		want  narrate.Turn
		text  string
	}{
		{90, narrate.TurnRight, "Turn right"},
		{-90, narrate.TurnLeft, "Turn left"},
		{5, narrate.TurnStraight, "Continue straight"},
		{-19.9, narrate.TurnStraight, "Continue straight"},
		{170, narrate.TurnUTurn, "Make a U-turn"},
		{20, narrate.TurnRight, "Turn right"},
		{-20, narrate.TurnLeft, "Turn left"},
		{160, narrate.TurnUTurn, "Make a U-turn"},
		{-160, narrate.TurnUTurn, "Make a U-turn"},
		{180, narrate.TurnUTurn, "Make a U-turn"},
	}
	for _, tc := range tests {
		got := narrate.Classify(tc.angle)
		assert.Equal(t, tc.want, got, "Classify(%v)", tc.angle)
		assert.Equal(t, tc.text, got.String())
	}
	assert.Empty(t, narrate.TurnNone.String())
}

func TestNarrate_Corner(t *testing.T) {
	t.Parallel()

	g := corner(t)
	n, err := narrate.Narrate([]core.NodeID{0, 1, 2, 3}, g)
	require.NoError(t, err)
	require.Len(t, n.Instructions, 4)

	var texts []string
	for _, ins := range n.Instructions {
		texts = append(texts, ins.Text)
	}
	// canvas y grows downwards: east then south is a right turn
	assert.Equal(t, []string{
		"Start at A",
		"Turn right toward C",
		"Turn left toward D",
		"Arrive at D",
	}, texts)

	assert.Equal(t, narrate.TurnNone, n.Instructions[0].Turn)
	assert.Equal(t, narrate.TurnRight, n.Instructions[1].Turn)
	assert.Equal(t, core.NodeID(1), n.Instructions[1].From)
	assert.Equal(t, core.NodeID(2), n.Instructions[1].To)
	assert.Equal(t, "B", n.Instructions[1].FromName)
	assert.Equal(t, "C", n.Instructions[1].ToName)
	assert.Equal(t, "A", n.Instructions[0].FromName)
	assert.Equal(t, "D", n.Instructions[3].FromName)
	assert.Equal(t, "D", n.Instructions[3].ToName)
	assert.InDelta(t, 10.0, n.Instructions[2].Distance, 1e-12)
	assert.Zero(t, n.Instructions[3].Distance)
	assert.InDelta(t, 30.0, n.TotalDistance, 1e-12)
}

func TestNarrate_TwoNodes(t *testing.T) {
	t.Parallel()

	n, err := narrate.Narrate([]core.NodeID{0, 1}, corner(t))
	require.NoError(t, err)
	require.Len(t, n.Instructions, 2)
	assert.Equal(t, "Start at A", n.Instructions[0].Text)
	assert.Equal(t, "A", n.Instructions[0].FromName)
	assert.Equal(t, "B", n.Instructions[0].ToName)
	assert.InDelta(t, 10.0, n.Instructions[0].Distance, 1e-12)
	assert.Equal(t, "Arrive at B", n.Instructions[1].Text)
	assert.Zero(t, n.Instructions[1].Distance)
	assert.Equal(t, "B", n.Instructions[1].FromName)
	assert.Equal(t, "B", n.Instructions[1].ToName)
	assert.InDelta(t, 10.0, n.TotalDistance, 1e-12)
}

func TestNarrate_ShortAndInvalid(t *testing.T) {
	t.Parallel()

	g := corner(t)

	for _, path := range [][]core.NodeID{nil, {2}} {
		n, err := narrate.Narrate(path, g)
		require.NoError(t, err)
		assert.Empty(t, n.Instructions)
		assert.Zero(t, n.TotalDistance)
	}

	_, err := narrate.Narrate([]core.NodeID{0, 7}, g)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = narrate.Narrate([]core.NodeID{0, 1}, nil)
	assert.ErrorIs(t, err, narrate.ErrNilGraph)
}

func TestInstruction_JSON(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(narrate.Instruction{Text: "Turn left toward D", Turn: narrate.TurnLeft, Distance: 10, From: 2, To: 3, FromName: "C", ToName: "D"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"Turn left toward D","turn":"Turn left","distance":10,"from":2,"to":3,"fromName":"C","toName":"D"}`, string(raw))
}
