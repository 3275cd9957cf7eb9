package types

import "strings"

// RenderMode defines how a planned file's content is produced. It is a
// plain value so dry-run output can serialize the full plan.
type RenderMode string

const (
	// RenderStatic copies source bytes untouched
	RenderStatic RenderMode = "static"

	// RenderText substitutes placeholder tokens in UTF-8 text
	RenderText RenderMode = "text"

	// RenderJSON substitutes tokens, then parses and re-serializes as JSON
	RenderJSON RenderMode = "json"
)

// InstallCategory classifies a destination by its role in the target
// project. The category selects the default conflict behavior.
type InstallCategory string

const (
	// CategoryToolSetting is shared workflow state under the kiro directory
	CategoryToolSetting InstallCategory = "tool_setting"

	// CategoryCommandPrompt is a slash-command prompt under the agent's commands directory
	CategoryCommandPrompt InstallCategory = "command_prompt"

	// CategoryAgentDoc is the agent documentation file at the project root
	CategoryAgentDoc InstallCategory = "agent_doc"

	// CategoryOther is everything else
	CategoryOther InstallCategory = "other"
)

// OverwritePolicy decides what happens when a destination already exists
type OverwritePolicy string

const (
	// PolicyAuto applies the per-category default
	PolicyAuto OverwritePolicy = ""

	// PolicyPrompt asks before overwriting
	PolicyPrompt OverwritePolicy = "prompt"

	// PolicySkip never overwrites
	PolicySkip OverwritePolicy = "skip"

	// PolicyForce always overwrites
	PolicyForce OverwritePolicy = "force"
)

// ParseOverwritePolicy parses a user-supplied policy name. The empty
// string means auto.
func ParseOverwritePolicy(s string) (OverwritePolicy, bool) {
	switch strings.ToLower(s) {
	case "", "auto":
		return PolicyAuto, true
	case "prompt":
		return PolicyPrompt, true
	case "skip":
		return PolicySkip, true
	case "force":
		return PolicyForce, true
	default:
		return PolicyAuto, false
	}
}

// FileOperation is one planned file write. Operations are built during
// planning, sorted by RelPath, and executed in that order.
type FileOperation struct {
	// ArtifactID is the manifest entry this operation came from
	ArtifactID string `json:"artifact_id"`

	// SourcePath is the absolute path of the source file
	SourcePath string `json:"source"`

	// DestPath is the absolute destination path
	DestPath string `json:"dest"`

	// RelPath is the destination as a slash path relative to the project
	// root. It is the stable sort key and the path shown to users.
	RelPath string `json:"path"`

	// Mode defines how content is produced from the source
	Mode RenderMode `json:"mode"`

	// Category drives the default conflict behavior
	Category InstallCategory `json:"category"`
}
