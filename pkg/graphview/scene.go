package graphview

// Scene is the immutable snapshot of positioned nodes, their connection
// lists and resolved colors used by one render pass. It is replaced
// wholesale when the input data changes; rotation never touches it.
type Scene struct {
	nodes  []*Node
	byID   map[string]*Node
	edges  int
	scheme ColorScheme
}

// NewScene builds a scene from positioned nodes and the edge list.
// Edges referencing an unknown endpoint are kept on the node's
// connection list and skipped at draw time, matching the silent
// degradation policy; the edge count reflects drawable pairs only.
func NewScene(nodes []Node, edges []Edge, scheme ColorScheme) *Scene {
	s := &Scene{
		nodes:  make([]*Node, 0, len(nodes)),
		byID:   make(map[string]*Node, len(nodes)),
		scheme: scheme,
	}

	for i := range nodes {
		n := nodes[i]
		n.Color = scheme.Resolve(n.Type)
		if n.Connections == nil {
			n.Connections = []string{}
		}
		s.nodes = append(s.nodes, &n)
		s.byID[n.ID] = &n
	}

	for _, e := range edges {
		src, ok := s.byID[e.Source]
		if !ok {
			continue
		}
		src.Connections = append(src.Connections, e.Target)
		if _, ok := s.byID[e.Target]; ok {
			s.edges++
		}
	}
	return s
}

// Nodes returns the scene's nodes in insertion order
func (s *Scene) Nodes() []*Node {
	return s.nodes
}

// Lookup returns the node with the given id, or nil
func (s *Scene) Lookup(id string) *Node {
	return s.byID[id]
}

// NodeCount reports how many nodes the scene holds
func (s *Scene) NodeCount() int {
	return len(s.nodes)
}

// EdgeCount reports how many edges have both endpoints in the scene
func (s *Scene) EdgeCount() int {
	return s.edges
}
