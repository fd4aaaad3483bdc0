// Package paths centralizes filesystem path resolution for skillsref.
//
// Config lives under the XDG config home and cached repository clones under
// the XDG cache home, both namespaced by the application name. The package
// also names the fixed parts of the skill directory convention: the required
// SKILL.md file and the optional scripts/, references/, and assets/
// subdirectories.
package paths
