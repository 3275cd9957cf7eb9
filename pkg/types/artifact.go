package types

// ArtifactKind defines how an artifact's source maps onto destination files
type ArtifactKind string

const (
	// KindStaticDir copies a directory tree verbatim, no rendering
	KindStaticDir ArtifactKind = "static_dir"

	// KindTemplateFile renders a single template into an explicit destination file
	KindTemplateFile ArtifactKind = "template_file"

	// KindTemplateDir renders a directory of templates, mapping names by suffix
	KindTemplateDir ArtifactKind = "template_dir"
)

// Artifact is one entry of the install manifest. Source paths are slash
// paths relative to the templates root; DestDir is a slash path relative
// to the project root and may contain placeholder tokens.
type Artifact struct {
	// ID uniquely identifies the artifact within a manifest
	ID string `json:"id" yaml:"id"`

	// Kind selects the source-to-destination mapping strategy
	Kind ArtifactKind `json:"type" yaml:"type"`

	// Source is the file or directory under the templates root
	Source string `json:"source" yaml:"source"`

	// DestDir is the destination directory under the project root
	DestDir string `json:"dest_dir" yaml:"dest_dir"`

	// DestFile names the destination file, template_file artifacts only
	DestFile string `json:"dest_file,omitempty" yaml:"dest_file,omitempty"`

	// OS restricts the artifact to the listed platforms. Empty means all.
	OS []string `json:"os,omitempty" yaml:"os,omitempty"`
}
