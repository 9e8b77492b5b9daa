package builder

// Canonical constructor names, used to prefix errors with context.
const (
	// MethodTree is the canonical name for the Tree constructor.
	MethodTree = "Tree"
	// MethodRandom is the canonical name for the Random constructor.
	MethodRandom = "Random"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
)

// Minimum vertex counts per topology.
const (
	// MinTreeNodes: the empty tree is valid and has no edges.
	MinTreeNodes = 0
	// MinRandomNodes: an empty vertex set simply yields no edges.
	MinRandomNodes = 0
	// MinCompleteNodes: K_0 is the empty graph.
	MinCompleteNodes = 0
	// MinCycleNodes is the smallest ring without loops or parallel edges.
	MinCycleNodes = 3
)

// Default weight range, inclusive on both ends.
const (
	DefaultMinWeight int64 = 1
	DefaultMaxWeight int64 = 19
)
