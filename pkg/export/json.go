// Package export renders scene snapshots to JSON, SVG and PNG. The SVG
// and PNG paths implement the renderer's Surface, so snapshots go
// through the exact draw path the terminal uses.
package export

import (
	"encoding/json"

	"github.com/dd0wney/cluso-opsdeck/pkg/graphview"
)

// JSON serializes the scene's nodes, positions and drawable edges
func JSON(scene *graphview.Scene) ([]byte, error) {
	type nodeViz struct {
		ID          string         `json:"id"`
		Label       string         `json:"label"`
		Type        string         `json:"type"`
		Position    graphview.Vec3 `json:"position"`
		Connections []string       `json:"connections"`
		Color       string         `json:"color"`
	}

	type edgeViz struct {
		Source string `json:"source"`
		Target string `json:"target"`
	}

	type vizData struct {
		Nodes []nodeViz `json:"nodes"`
		Edges []edgeViz `json:"edges"`
	}

	data := vizData{Nodes: []nodeViz{}, Edges: []edgeViz{}}
	if scene == nil {
		return json.Marshal(data)
	}

	for _, n := range scene.Nodes() {
		data.Nodes = append(data.Nodes, nodeViz{
			ID:          n.ID,
			Label:       n.Label,
			Type:        n.Type,
			Position:    n.Position,
			Connections: n.Connections,
			Color:       n.Color.Primary,
		})
		for _, target := range n.Connections {
			if scene.Lookup(target) != nil {
				data.Edges = append(data.Edges, edgeViz{Source: n.ID, Target: target})
			}
		}
	}
	return json.Marshal(data)
}
