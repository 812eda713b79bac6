// Package priyam is a toolbox of small, deterministic science and
// algorithm helpers, centred on a chemical formula evaluator.
//
// 🚀 What is priyam?
//
//	A pure-Go library plus a CLI that brings together:
//		• Chemistry: formula parsing, molar mass, composition, grams↔moles,
//		  ideal gas volume, pH of acids, bases and buffers
//		• Physics: kinematics, dynamics, projectiles, optics, fields, thermo
//		• Graphs: BFS, DFS, topological sort, Dijkstra
//		• Dynamic programming: 0/1 knapsack, LIS, edit distance
//		• Searching & sorting: binary search, quicksort, mergesort, greedy
//		  activity selection
//		• Statistics and number theory
//
// ✨ Why choose priyam?
//
//   - Strict by default: malformed formulas fail with a position, never a
//     silent zero; opt into the forgiving parser with chem.WithLenient()
//   - Pluggable data: extend the element table from TOML or YAML
//   - Concurrency-safe: every function is pure; tables are immutable
//
// Layout:
//
//	chem/        tokenizer, parser, element table, stoichiometry, pH
//	physics/     closed-form SI formulas
//	bfs/ dfs/    traversals over string-keyed adjacency maps
//	dijkstra/    single-source shortest paths with float weights
//	dp/          rolling-array dynamic programming
//	sorting/     generic search, sort and scheduling
//	stats/       descriptive statistics, counting, regression
//	numtheory/   primes, fractions, modular inverses
//	cmd/priyam/  the command-line calculator and REPL
//
// Quick example:
//
//	m, err := chem.MolarMass("Ca(OH)2")
//	// m == 74.092
//
//	go install github.com/katalvlaran/priyam/cmd/priyam@latest
package priyam
