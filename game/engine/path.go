package engine

// FindPath computes the shortest word ladder from the start word to the
// target word. Consecutive words in the result differ by exactly one letter
// and every word is a dictionary member. It returns an empty slice when no
// ladder exists; that is an expected outcome, not an error.
//
// The word graph is never materialized: neighbors are generated on demand by
// substituting each position with each letter of the alphabet and testing
// dictionary membership. BFS explores layer by layer, so the first time the
// target is dequeued the reconstructed ladder is minimal.
func (e *GameEngine) FindPath() []string {
	queue := []string{e.startWord}
	visited := map[string]bool{e.startWord: true}
	parents := map[string]string{}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == e.targetWord {
			return reconstructPath(parents, e.startWord, e.targetWord)
		}

		buf := []byte(current)
		for i := 0; i < len(buf); i++ {
			orig := buf[i]
			for c := byte('a'); c <= 'z'; c++ {
				if c == orig {
					continue
				}
				buf[i] = c
				neighbor := string(buf)

				if e.dict.Contains(neighbor) && !visited[neighbor] {
					visited[neighbor] = true
					parents[neighbor] = current
					queue = append(queue, neighbor)
				}
			}
			buf[i] = orig
		}
	}

	// No ladder exists between the pair
	return []string{}
}

// reconstructPath walks parent pointers from target back to start and
// reverses the result.
func reconstructPath(parents map[string]string, start, target string) []string {
	path := []string{target}
	for word := target; word != start; {
		word = parents[word]
		path = append(path, word)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
