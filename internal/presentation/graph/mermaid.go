package graph

import (
	"fmt"
	"strings"

	"github.com/veldt-labs/detent/pkg/domain"
	"github.com/veldt-labs/detent/pkg/machine"
)

// Overlay contains dynamic state data to visualize on the graph.
type Overlay struct {
	Current string
}

// GenerateMermaid produces a Mermaid flowchart from the machine's static
// transition table. The table is derived from the transition methods' type
// signatures, so the diagram reflects the build-time graph without running
// the machine. Rejected pairs are implicit: any (state, operation) arrow
// not drawn here is a rejection.
func GenerateMermaid(edges []machine.Edge, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, name := range domain.StateNames() {
		opener, closer := "[", "]"
		if name == domain.StateStored {
			// Genesis state.
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeMermaidID(name), opener, name, closer))
	}

	for _, e := range edges {
		safeFrom := sanitizeMermaidID(e.From)
		for _, out := range e.Outcomes {
			arrow := fmt.Sprintf("-- \"%s\" -->", e.Op)
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeFrom, arrow, sanitizeMermaidID(out)))
		}
	}

	if overlay != nil && overlay.Current != "" {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text for high contrast regardless of theme.
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.Current)))
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
