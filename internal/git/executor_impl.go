package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/gitscope/gitscope/internal/blame"
	"github.com/gitscope/gitscope/internal/log"
)

var (
	// ErrNotGitRepo indicates the directory is not a git repository.
	ErrNotGitRepo = errors.New("not a git repository")

	// ErrUnknownRevision indicates the requested ref does not resolve.
	ErrUnknownRevision = errors.New("unknown revision")

	// ErrNoSuchPath indicates the requested path is not tracked at the ref.
	ErrNoSuchPath = errors.New("no such path")
)

// Compile-time check that RealExecutor implements Executor.
var _ Executor = (*RealExecutor)(nil)

// RealExecutor implements Executor by executing actual git commands.
type RealExecutor struct {
	workDir string
}

// NewRealExecutor creates a new RealExecutor.
func NewRealExecutor(workDir string) *RealExecutor {
	return &RealExecutor{workDir: workDir}
}

// runGitOutput executes a git command and returns stdout and any error.
func (e *RealExecutor) runGitOutput(args ...string) (string, error) {
	//nolint:gosec // G204: args come from controlled sources
	cmd := exec.Command("git", args...)
	if e.workDir != "" {
		cmd.Dir = e.workDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		log.Debug(log.CatGit, "git command failed", "args", strings.Join(args, " "), "stderr", stderrStr)
		if stderrStr != "" {
			return "", parseGitError(stderrStr, err)
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}

	return stdout.String(), nil
}

// parseGitError converts git stderr messages to specific error types.
func parseGitError(stderr string, originalErr error) error {
	stderrLower := strings.ToLower(stderr)

	if strings.Contains(stderrLower, "not a git repository") {
		return fmt.Errorf("%w: %s", ErrNotGitRepo, stderr)
	}

	if strings.Contains(stderrLower, "unknown revision") ||
		strings.Contains(stderrLower, "bad revision") {
		return fmt.Errorf("%w: %s", ErrUnknownRevision, stderr)
	}

	if strings.Contains(stderrLower, "no such path") ||
		strings.Contains(stderrLower, "does not exist") {
		return fmt.Errorf("%w: %s", ErrNoSuchPath, stderr)
	}

	return fmt.Errorf("git error: %s: %w", stderr, originalErr)
}

// IsGitRepo checks if the working directory is inside a git repository.
func (e *RealExecutor) IsGitRepo() bool {
	_, err := e.runGitOutput("rev-parse", "--git-dir")
	return err == nil
}

// GetRepoRoot returns the root directory of the git repository.
func (e *RealExecutor) GetRepoRoot() (string, error) {
	out, err := e.runGitOutput("rev-parse", "--show-toplevel")
	return strings.TrimSpace(out), err
}

// GetCurrentBranch returns the name of the current branch.
func (e *RealExecutor) GetCurrentBranch() (string, error) {
	// git branch --show-current requires git 2.22+
	out, err := e.runGitOutput("branch", "--show-current")
	if err == nil && strings.TrimSpace(out) != "" {
		return strings.TrimSpace(out), nil
	}

	// Fallback: parse symbolic-ref
	out, err = e.runGitOutput("symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// GetDiff returns the unified diff against the given ref.
func (e *RealExecutor) GetDiff(ref string) (string, error) {
	return e.runGitOutput("diff", "--no-color", "--no-ext-diff", ref)
}

// GetFileDiff returns the diff for one file against the given ref.
func (e *RealExecutor) GetFileDiff(ref, path string) (string, error) {
	return e.runGitOutput("diff", "--no-color", "--no-ext-diff", ref, "--", path)
}

// GetWorkingDirDiff returns the diff of all uncommitted changes against HEAD.
func (e *RealExecutor) GetWorkingDirDiff() (string, error) {
	return e.runGitOutput("diff", "--no-color", "--no-ext-diff", "HEAD")
}

// GetCommitDiff returns what changed in a specific commit.
func (e *RealExecutor) GetCommitDiff(hash string) (string, error) {
	return e.runGitOutput("diff", "--no-color", "--no-ext-diff", hash+"^", hash)
}

// GetFileContent returns the staged content of a file.
func (e *RealExecutor) GetFileContent(path string) (string, error) {
	return e.runGitOutput("show", ":"+path)
}

// Blame runs git blame in porcelain mode and parses the per-line records.
func (e *RealExecutor) Blame(ref, path string) ([]blame.Line, error) {
	args := []string{"blame", "--porcelain"}
	if ref != "" {
		args = append(args, ref)
	}
	args = append(args, "--", path)

	out, err := e.runGitOutput(args...)
	if err != nil {
		return nil, err
	}

	lines, err := ParseBlamePorcelain(out)
	if err != nil {
		return nil, fmt.Errorf("parsing blame for %s: %w", path, err)
	}

	log.Debug(log.CatGit, "blame loaded", "path", path, "lines", len(lines))
	return lines, nil
}
