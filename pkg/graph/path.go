package graph

// FindPath returns the shortest directed path from start to end, following
// outgoing edges only, as an ordered sequence of node ids including both
// endpoints. It returns [start] when start == end, and an empty slice when
// either id is unknown or end is unreachable. An empty result for known ids
// means "no causal path", which is a normal query outcome.
//
// The search is a breadth-first expansion with a FIFO frontier. Among paths
// of equal length the winner is the first one discovered, which is fixed by
// edge-insertion order. Each call walks the current graph in O(V+E); no path
// index is maintained between calls.
func (s *Store) FindPath(start, end NodeID) []NodeID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.nodes[start]; !ok {
		return nil
	}
	if _, ok := s.nodes[end]; !ok {
		return nil
	}
	if start == end {
		return []NodeID{start}
	}

	parent := make(map[NodeID]NodeID)
	visited := map[NodeID]bool{start: true}
	queue := []NodeID{start}

	found := false
	for head := 0; head < len(queue); head++ {
		curr := queue[head]
		if curr == end {
			found = true
			break
		}
		for _, edgeID := range s.outgoing[curr] {
			neighbor := s.edges[edgeID].TargetID
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			parent[neighbor] = curr
			queue = append(queue, neighbor)
		}
	}

	if !found {
		return nil
	}

	var path []NodeID
	for curr := end; curr != start; curr = parent[curr] {
		path = append(path, curr)
	}
	path = append(path, start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
