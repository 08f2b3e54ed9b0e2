// Package narrate turns a route (an ordered list of node ids) into
// human-readable driving instructions.
//
// For a route p0 … pn-1 (n ≥ 2) Narrate emits n instructions:
//
//   - hop 0:        "Start at <p0>"
//   - hop i (i ≥ 1): "<turn> toward <pi+1>", where the turn is classified from
//     the change of bearing between hop i-1 and hop i
//   - final:        "Arrive at <pn-1>" with zero distance
//
// Hop distances are straight-line lengths; TotalDistance is their sum.
//
// Errors:
//
//	– core.ErrNodeNotFound (wrapped) if any route id is missing from the graph.
//	– ErrNilGraph if the graph is nil.
package narrate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/routenav/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("narrate: graph is nil")

const methodNarrate = "Narrate"

// Instruction is one step of a narrated route.
type Instruction struct {
	Text     string      `json:"text"`
	Turn     Turn        `json:"turn"`
	Distance float64     `json:"distance"`
	From     core.NodeID `json:"from"`
	To       core.NodeID `json:"to"`
	FromName string      `json:"fromName"`
	ToName   string      `json:"toName"`
}

// Narration is the full set of instructions for a route.
type Narration struct {
	Instructions  []Instruction `json:"instructions"`
	TotalDistance float64       `json:"totalDistance"`
}

// Narrate builds the instructions for path over g.
// Paths with fewer than two nodes yield an empty Narration.
func Narrate(path []core.NodeID, g *core.Graph) (*Narration, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out := &Narration{}
	if len(path) < 2 {
		return out, nil
	}

	nodes := make([]core.Node, len(path))
	for i, id := range path {
		n, err := g.Node(id)
		if err != nil {
			return nil, fmt.Errorf("%s: path[%d]: %w", methodNarrate, i, err)
		}
		nodes[i] = n
	}

	out.Instructions = make([]Instruction, 0, len(path))
	for i := 0; i < len(nodes)-1; i++ {
		cur, next := nodes[i], nodes[i+1]
		dist := core.Euclidean(cur, next)
		out.TotalDistance += dist

		ins := Instruction{
			Distance: dist,
			From:     cur.ID,
			To:       next.ID,
			FromName: cur.Name,
			ToName:   next.Name,
		}
		if i == 0 {
			ins.Text = "Start at " + cur.Name
		} else {
			prev := nodes[i-1]
			ins.Turn = Classify(TurnAngle(Bearing(prev, cur), Bearing(cur, next)))
			ins.Text = fmt.Sprintf("%s toward %s", ins.Turn, next.Name)
		}
		out.Instructions = append(out.Instructions, ins)
	}

	last := nodes[len(nodes)-1]
	out.Instructions = append(out.Instructions, Instruction{
		Text:     "Arrive at " + last.Name,
		From:     last.ID,
		To:       last.ID,
		FromName: last.Name,
		ToName:   last.Name,
	})

	return out, nil
}
