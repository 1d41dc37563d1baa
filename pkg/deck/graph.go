package deck

import "github.com/dd0wney/cluso-opsdeck/pkg/graphview"

// Graph flattens agents, ledger accounts and spaces into entities and
// their relations for the explorer: agents link to their space, ledger
// accounts link to every space they fund. The explorer treats the
// result as plain read-only data.
func Graph(agents []Agent, entries []LedgerEntry, spaces []Space) ([]graphview.Entity, []graphview.Edge) {
	entities := make([]graphview.Entity, 0, len(agents)+len(spaces))
	edges := make([]graphview.Edge, 0, len(agents))

	for _, s := range spaces {
		entities = append(entities, graphview.Entity{ID: s.ID, Label: s.Name, Type: "space"})
	}
	for _, a := range agents {
		entities = append(entities, graphview.Entity{ID: a.ID, Label: a.Name, Type: "agent"})
		if a.Space != "" {
			edges = append(edges, graphview.Edge{Source: a.ID, Target: a.Space})
		}
	}

	seen := make(map[string]bool)
	for i, e := range entries {
		if seen[e.Account] {
			continue
		}
		seen[e.Account] = true
		entities = append(entities, graphview.Entity{ID: e.Account, Label: e.Account, Type: "ledger"})
		if len(spaces) > 0 {
			edges = append(edges, graphview.Edge{Source: e.Account, Target: spaces[i%len(spaces)].ID})
		}
	}
	return entities, edges
}
