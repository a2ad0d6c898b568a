package git

import "github.com/gitscope/gitscope/internal/blame"

// Executor defines the interface for the git operations the viewers need.
// This abstraction allows for easy testing with mock implementations.
type Executor interface {
	IsGitRepo() bool
	GetRepoRoot() (string, error)
	GetCurrentBranch() (string, error)

	// Diff operations for viewing git diffs
	// GetDiff returns the unified diff output for the given ref (e.g., "HEAD~1", "main").
	GetDiff(ref string) (string, error)
	// GetFileDiff returns the diff for a single file against the given ref.
	GetFileDiff(ref, path string) (string, error)
	// GetWorkingDirDiff returns the diff of uncommitted changes (staged + unstaged vs HEAD).
	GetWorkingDirDiff() (string, error)
	// GetCommitDiff returns the diff for a specific commit (what changed in that commit).
	GetCommitDiff(hash string) (string, error)
	// GetFileContent returns the content of a file in the working directory.
	GetFileContent(path string) (string, error)

	// Blame returns the per-line revision records for a file. If ref is
	// empty the working tree version is blamed.
	Blame(ref, path string) ([]blame.Line, error)
}
