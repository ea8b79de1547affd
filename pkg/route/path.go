package route

import "container/list"

type discovery struct {
	prev Location
	edge Edge
}

// FindPath returns a fewest-hops path from start to end over the active edges.
//
// When start equals end the empty path is returned without searching. The
// second return value is false when end cannot be reached. Outgoing edges are
// examined in input order and a location keeps the first edge that discovered
// it, so ties between equally short paths go to the edge listed first.
func FindPath(active []Edge, start, end Location) (Path, bool) {
	if start == end {
		return Path{}, true
	}

	graph := BuildGraph(active)

	queue := list.New()
	queue.PushBack(start)
	visited := map[Location]bool{start: true}
	parent := make(map[Location]discovery)

	for queue.Len() > 0 {
		node := queue.Remove(queue.Front()).(Location)

		for _, edge := range graph[node] {
			next := edge.To
			if visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = discovery{prev: node, edge: edge}

			if next == end {
				return reconstructPath(parent, start, end), true
			}
			queue.PushBack(next)
		}
	}

	return nil, false
}

// reconstructPath walks predecessor links back from end and reverses them.
func reconstructPath(parent map[Location]discovery, start, end Location) Path {
	path := make(Path, 0)
	for cur := end; cur != start; {
		info := parent[cur]
		path = append(path, Step{
			From:   info.prev,
			Portal: info.edge.Portal,
			To:     cur,
		})
		cur = info.prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Distance returns the fewest number of hops from start to end, computed by a
// plain level-order search that records no paths.
func Distance(active []Edge, start, end Location) (int, bool) {
	if start == end {
		return 0, true
	}

	graph := BuildGraph(active)
	dist := map[Location]int{start: 0}
	frontier := []Location{start}

	for len(frontier) > 0 {
		var next []Location
		for _, node := range frontier {
			for _, edge := range graph[node] {
				if _, seen := dist[edge.To]; seen {
					continue
				}
				dist[edge.To] = dist[node] + 1
				if edge.To == end {
					return dist[edge.To], true
				}
				next = append(next, edge.To)
			}
		}
		frontier = next
	}

	return 0, false
}
