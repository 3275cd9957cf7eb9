// Package types defines the core types used throughout sddkit.
// This includes the Artifact and FileOperation data structures, the
// ResolvedConfig that drives a run, and the RunReport produced by it.
package types
