package gitops

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ErrTokenNotFound means no PAC file exists for the project.
var ErrTokenNotFound = errors.New("github token file not found")

const fallbackTokenName = "github"

// ResolveToken reads the GitHub personal access token for a project:
// pacs/<project>-pac.txt first, then the shared pacs/github-pac.txt.
// The token is trimmed; it must never appear in logs or command echoes.
func ResolveToken(project string) (string, error) {
	pacsDir := viper.GetString("paths.pacs")
	if pacsDir == "" {
		pacsDir = "pacs"
	}

	candidates := []string{
		filepath.Join(pacsDir, project+"-pac.txt"),
		filepath.Join(pacsDir, fallbackTokenName+"-pac.txt"),
	}
	for _, path := range candidates {
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("failed to read token file %s: %w", path, err)
		}
		token := strings.TrimSpace(string(content))
		if token != "" {
			return token, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrTokenNotFound, strings.Join(candidates, ", "))
}

// CloneURL embeds the token into the HTTPS remote. The token is
// URL-encoded so classic tokens with special characters survive.
func CloneURL(token, owner, project string) string {
	return fmt.Sprintf(
		"https://%s@github.com/%s/%s.git",
		url.QueryEscape(token),
		owner,
		project,
	)
}

// Redact replaces every occurrence of the token (raw and URL-encoded)
// in s before it reaches a log or the terminal.
func Redact(s, token string) string {
	if token == "" {
		return s
	}
	s = strings.ReplaceAll(s, token, "[REDACTED]")
	if encoded := url.QueryEscape(token); encoded != token {
		s = strings.ReplaceAll(s, encoded, "[REDACTED]")
	}
	return s
}
