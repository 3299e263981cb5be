package internal

// ReconstructPath rebuilds the path from the cameFrom map, ending at current.
// ok is false when the predecessor chain breaks before reaching start.
func ReconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	current NodeType,
	start NodeType,
) (path []NodeType, ok bool) {
	path = []NodeType{current}
	for current != start {
		previousNode, exists := cameFrom[current]
		if !exists {
			return nil, false
		}
		path = append(path, previousNode)
		current = previousNode
	}
	Reverse(path)
	return path, true
}

// Reverse reverses s in place.
func Reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
