// Package install turns manifest artifacts into concrete file
// operations and applies them to a project. Planning is pure and
// fatal on error; applying records per-file outcomes and keeps going.
package install

import (
	"strings"

	"github.com/sddkit/sddkit/pkg/agent"
	"github.com/sddkit/sddkit/pkg/types"
)

// Categorize classifies a destination path by its role in the target
// project. The doc file is an exact match; the directories claim
// everything below them.
func Categorize(relPath string, cfg types.ResolvedConfig, layout agent.Layout) types.InstallCategory {
	switch {
	case relPath == layout.Doc:
		return types.CategoryAgentDoc
	case underDir(relPath, cfg.KiroDir):
		return types.CategoryToolSetting
	case underDir(relPath, layout.CommandsDir):
		return types.CategoryCommandPrompt
	default:
		return types.CategoryOther
	}
}

func underDir(relPath, dir string) bool {
	if dir == "" {
		return false
	}
	return strings.HasPrefix(relPath, dir+"/")
}

// DefaultPolicy is the per-category conflict behavior when no explicit
// policy is configured. Tool-owned files refresh in place; files users
// are expected to edit ask first.
func DefaultPolicy(cat types.InstallCategory) types.OverwritePolicy {
	switch cat {
	case types.CategoryToolSetting, types.CategoryCommandPrompt:
		return types.PolicyForce
	default:
		return types.PolicyPrompt
	}
}

// EffectivePolicy resolves the policy for one category: an explicit
// configured policy wins over the category default.
func EffectivePolicy(cat types.InstallCategory, cfg types.ResolvedConfig) types.OverwritePolicy {
	if cfg.Policy != types.PolicyAuto {
		return cfg.Policy
	}
	return DefaultPolicy(cat)
}
