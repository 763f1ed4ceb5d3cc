// Package git provides the git-backed driven adapters:
//
//   - DiffSource: runs the git CLI to diff the working tree against HEAD
//   - Inspector: reads branch and HEAD with go-git for the startup banner
package git
