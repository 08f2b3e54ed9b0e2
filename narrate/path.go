// SPDX-License-Identifier: MIT
// Package: routenav/narrate
//
// path.go - rebuilding an ordered route from a predecessor map.

package narrate

import "github.com/katalvlaran/routenav/core"

// ReconstructPath walks prev from end back to start and returns the route in
// travel order (start first).
//
// The result is nil when:
//   - the walk stops (core.NoNode or a missing entry) anywhere but start;
//   - the route would have fewer than two nodes (start == end);
//   - prev contains a cycle that never reaches start.
//
// Complexity: O(L) time and space, L = route length.
func ReconstructPath(prev map[core.NodeID]core.NodeID, start, end core.NodeID) []core.NodeID {
	var (
		rev  []core.NodeID
		seen = make(map[core.NodeID]bool)
	)
	for cur := end; ; {
		if seen[cur] {
			return nil
		}
		seen[cur] = true
		rev = append(rev, cur)
		if cur == start {
			break
		}
		p, ok := prev[cur]
		if !ok || p == core.NoNode {
			return nil
		}
		cur = p
	}

	if len(rev) < 2 {
		return nil
	}
	path := make([]core.NodeID, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return path
}
