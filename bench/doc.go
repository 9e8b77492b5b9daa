// Package bench drives the Kruskal benchmark: for each Scenario it generates
// a graph with builder, times kruskal.FindMST on a monotonic clock and writes
// one tab-separated row.
//
// Output (Report):
//
//	Graph type	Vertices	Edges	MST weight	Time (ms)	Notes
//	Complete graph	10	45	<weight>	<ms>	Graph is fully connected
//	...
//
// Columns: label, vertex count, requested edge count, total MST weight,
// elapsed milliseconds (truncated), free-text note.
//
// Timings are recorded into a go-metrics histogram per scenario. With
// WithRepeat(n) the MST is computed n times on the same graph and the row
// shows the mean. WithVerify(true) cross-checks every result against a BFS
// component count.
//
// Scenarios run one after another; each builds fresh graph and union-find
// state and nothing is shared between them.
package bench
