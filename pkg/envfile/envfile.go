package envfile

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/docker"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/sshutils"
)

const (
	// SecretLength is how many characters a synthesized secret gets.
	SecretLength = 50

	// secretAlphabet excludes quotes, backslash, and backtick so the
	// values survive shell and dotenv quoting unescaped.
	secretAlphabet = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"!@#$%^&*(-_=+)"

	exampleFileName = ".env.example"
)

// assignmentPattern splits a KEY=value line into its layout parts so the
// original spacing around the equals sign is preserved on rewrite.
var assignmentPattern = regexp.MustCompile(`^(\s*)([A-Za-z_][A-Za-z0-9_]*)(\s*=\s*)(.*)$`)

// placeholderPattern matches template markers like <your-key-here>.
var placeholderPattern = regexp.MustCompile(`^<[^>]*>$`)

func envsDir() string {
	dir := viper.GetString("paths.envs")
	if dir == "" {
		dir = "envs"
	}
	return dir
}

// ProjectEnvPath is the local env file generated for a project.
func ProjectEnvPath(project string) string {
	return filepath.Join(envsDir(), ".env."+project)
}

// Generate builds envs/.env.<project> from envs/.env.example. Keys with
// empty or placeholder values are synthesized: secret-looking names get
// a random 50-character value, project-looking names get the project
// name. Values already present in an existing .env.<project> are kept,
// so regeneration is additive. Comments, blank lines, and the spacing
// style of each assignment pass through unchanged.
func Generate(project string) (string, error) {
	l := logger.Get()

	examplePath := filepath.Join(envsDir(), exampleFileName)
	example, err := os.ReadFile(examplePath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", examplePath, err)
	}

	outputPath := ProjectEnvPath(project)
	existing := map[string]string{}
	if _, statErr := os.Stat(outputPath); statErr == nil {
		existing, err = godotenv.Read(outputPath)
		if err != nil {
			return "", fmt.Errorf("failed to parse existing %s: %w", outputPath, err)
		}
	}

	lines := strings.Split(string(example), "\n")
	for i, line := range lines {
		match := assignmentPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		indent, key, separator, value := match[1], match[2], match[3], match[4]

		if kept, ok := existing[key]; ok && kept != "" {
			lines[i] = indent + key + separator + kept
			continue
		}
		if !needsSynthesis(value) {
			continue
		}
		synthesized, synthErr := synthesizeValue(key, project)
		if synthErr != nil {
			return "", synthErr
		}
		lines[i] = indent + key + separator + synthesized
	}

	if err := os.MkdirAll(envsDir(), 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", envsDir(), err)
	}
	if err := os.WriteFile(outputPath, []byte(strings.Join(lines, "\n")), 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	l.Infof("Generated %s from %s", outputPath, examplePath)
	return outputPath, nil
}

// needsSynthesis reports whether a template value is empty or a
// placeholder marker, with surrounding quotes ignored.
func needsSynthesis(value string) bool {
	trimmed := strings.TrimSpace(value)
	trimmed = strings.Trim(trimmed, `"'`)
	return trimmed == "" || placeholderPattern.MatchString(trimmed)
}

// synthesizeValue picks a value for a key the template left open.
func synthesizeValue(key, project string) (string, error) {
	upper := strings.ToUpper(key)
	switch {
	case strings.Contains(upper, "SECRET") || strings.Contains(upper, "KEY"):
		return randomSecret(SecretLength)
	case strings.Contains(upper, "PROJECT"):
		return project, nil
	default:
		return "", nil
	}
}

func randomSecret(length int) (string, error) {
	secret := make([]byte, length)
	max := big.NewInt(int64(len(secretAlphabet)))
	for i := range secret {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate secret: %w", err)
		}
		secret[i] = secretAlphabet[n.Int64()]
	}
	return string(secret), nil
}

// Deploy pushes the project's generated env file to the remote project
// directory as .env, readable by the owner only.
func Deploy(ctx context.Context, ssh sshutils.SSHConfiger, project string) error {
	l := logger.Get()

	localPath := ProjectEnvPath(project)
	content, err := os.ReadFile(localPath)
	if err != nil {
		return fmt.Errorf(
			"failed to read %s (run 'jalusi project env generate' first): %w",
			localPath,
			err,
		)
	}

	remotePath := fmt.Sprintf("%s/%s/.env", docker.RemoteProjectsRoot, project)
	if err := ssh.PushFile(ctx, remotePath, content, false); err != nil {
		return fmt.Errorf("failed to push env file: %w", err)
	}
	if _, err := ssh.ExecuteCommand(ctx, fmt.Sprintf("chmod 600 %s", remotePath)); err != nil {
		return fmt.Errorf("failed to restrict env file permissions: %w", err)
	}
	l.Infof("Deployed %s to %s:%s", localPath, ssh.GetHost(), remotePath)
	return nil
}
