package bench

// Scenario is one benchmark row request.
type Scenario struct {
	// Label names the graph family in the report.
	Label string
	// Vertices is the vertex count.
	Vertices int
	// Edges is the requested edge count (ignored by fixed topologies, capped
	// for random graphs).
	Edges int
	// Note is free text copied to the report.
	Note string
	// Mode names the generator topology and is resolved with builder.ParseMode;
	// unknown names, ModeNormal included, generate a random graph.
	Mode string
}

// Generator mode names used by the presets.
const (
	ModeNormal = "normal"
	ModeTree   = "tree"
)

// Graph family labels.
const (
	LabelComplete = "Complete graph"
	LabelSparse   = "Sparse graph"
	LabelTree     = "Tree"
	LabelCyclic   = "Cyclic graph"
)

// DefaultScenarios returns the fixed battery of eight presets, in report order.
// "Complete" rows request n(n-1)/2 random edges, so the random generator
// produces K_n with shuffled orientation and weights.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{LabelComplete, 10, 45, "Graph is fully connected", ModeNormal},
		{LabelSparse, 10, 15, "Graph with few edges", ModeNormal},
		{LabelComplete, 20, 190, "Complete graph with more vertices", ModeNormal},
		{LabelSparse, 20, 30, "Graph with more vertices and edges", ModeNormal},
		{LabelTree, 15, 14, "Graph is already a spanning tree", ModeTree},
		{LabelCyclic, 10, 20, "Graph with cycles", ModeNormal},
		{LabelComplete, 50, 1225, "Large graph test", ModeNormal},
		{LabelSparse, 50, 75, "Graph with few edges and vertices", ModeNormal},
	}
}
