package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output. When git itself
// fails, the error carries git's stderr text so the caller can surface it
// without further decoration.
func (c *LocalGitClient) Run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// GetAuthorLog implements the GitClient interface.
func (c *LocalGitClient) GetAuthorLog(ctx context.Context, repoPath string, since string) ([]byte, error) {
	return c.Run(ctx, repoPath, authorLogArgs(since)...)
}

// authorLogArgs builds the log query arguments. The since expression goes to
// git untouched; git's approxidate parser owns its meaning.
func authorLogArgs(since string) []string {
	return []string{
		"log",
		"--since=" + since,
		"--pretty=format:%an <%ae>",
	}
}
