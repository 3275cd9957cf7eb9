// Package template renders the template catalog into destination file
// content. Rendering is pure: no function here touches the filesystem.
package template

import (
	"strings"

	"github.com/sddkit/sddkit/pkg/types"
)

// Suffix markers map template names onto destination names inside a
// template directory. The marker set is closed; names are matched
// literally, longest marker first is irrelevant since none overlap.
var suffixMarkers = []struct {
	marker string
	out    string
	mode   types.RenderMode
}{
	{".tpl.json", ".json", types.RenderJSON},
	{".tpl.md", ".md", types.RenderText},
	{".tpl.toml", ".toml", types.RenderText},
}

// Classify maps a template directory entry onto its destination name
// and render mode. Unmarked names pass through unchanged in text mode.
func Classify(name string) (string, types.RenderMode) {
	for _, s := range suffixMarkers {
		if strings.HasSuffix(name, s.marker) {
			return strings.TrimSuffix(name, s.marker) + s.out, s.mode
		}
	}
	return name, types.RenderText
}

// ClassifyDest picks the render mode for an explicit destination file
// name: .json destinations render as JSON, everything else as text.
func ClassifyDest(destFile string) types.RenderMode {
	if strings.HasSuffix(strings.ToLower(destFile), ".json") {
		return types.RenderJSON
	}
	return types.RenderText
}
