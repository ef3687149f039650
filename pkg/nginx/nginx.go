package nginx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/sshutils"
)

const (
	// RemoteConfDir is where rendered configs are deployed.
	RemoteConfDir = "/etc/nginx/conf.d"

	defaultTemplateName = "default.conf"
)

// ipv4Pattern matches dotted-quad tokens. Octet range checking happens
// in code; the pattern alone would also match 999.999.999.999.
var ipv4Pattern = regexp.MustCompile(`\b(\d{1,3})\.(\d{1,3})\.(\d{1,3})\.(\d{1,3})\b`)

// skippedAddresses are never rewritten: they point at the host itself
// wherever the config runs.
var skippedAddresses = map[string]bool{
	"127.0.0.1": true,
	"0.0.0.0":   true,
}

// RenderResult reports what a render changed.
type RenderResult struct {
	TemplatePath string
	Output       string
	Replaced     map[string]int
}

// TotalReplacements counts every rewritten occurrence.
func (r *RenderResult) TotalReplacements() int {
	total := 0
	for _, count := range r.Replaced {
		total += count
	}
	return total
}

// TemplatePath returns the config template for a project: the
// project-named file when it exists, otherwise the shared default.
func TemplatePath(project string) (string, error) {
	nginxDir := viper.GetString("paths.nginx")
	if nginxDir == "" {
		nginxDir = "nginx.conf"
	}

	candidates := []string{
		filepath.Join(nginxDir, project+".conf"),
		filepath.Join(nginxDir, defaultTemplateName),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf(
		"no nginx template for project %s: tried %s",
		project,
		strings.Join(candidates, ", "),
	)
}

// Render rewrites every IPv4 literal in the template to targetIP,
// except 127.0.0.1 and 0.0.0.0 (and `localhost`, which the pattern
// never matches). The substitution deliberately applies to any
// non-loopback IPv4 token anywhere in the file, not only proxy_pass
// lines; templates that embed addresses in comments get those rewritten
// too.
func Render(template string, targetIP string) *RenderResult {
	result := &RenderResult{
		Replaced: map[string]int{},
	}

	result.Output = ipv4Pattern.ReplaceAllStringFunc(template, func(match string) string {
		if !isValidIPv4(match) {
			return match
		}
		if skippedAddresses[match] || match == targetIP {
			return match
		}
		result.Replaced[match]++
		return targetIP
	})
	return result
}

// RenderProject loads the project's template, rewrites it for targetIP,
// and writes <project>.rendered.conf next to the template.
func RenderProject(project, targetIP string) (*RenderResult, error) {
	l := logger.Get()

	templatePath, err := TemplatePath(project)
	if err != nil {
		return nil, err
	}
	template, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", templatePath, err)
	}

	result := Render(string(template), targetIP)
	result.TemplatePath = templatePath

	renderedPath := filepath.Join(filepath.Dir(templatePath), project+".rendered.conf")
	if err := os.WriteFile(renderedPath, []byte(result.Output), 0644); err != nil {
		return nil, fmt.Errorf("failed to write rendered config %s: %w", renderedPath, err)
	}

	l.Infof(
		"Rendered %s -> %s (%d addresses rewritten to %s)",
		templatePath,
		renderedPath,
		result.TotalReplacements(),
		targetIP,
	)
	return result, nil
}

// Deploy renders the project's config for targetIP, pushes it to the
// host, validates it with nginx -t, and reloads nginx. A failed
// validation aborts before the reload, leaving the previous config
// untouched (the staged file in conf.d is rolled back).
func Deploy(
	ctx context.Context,
	ssh sshutils.SSHConfiger,
	project string,
	targetIP string,
) error {
	l := logger.Get()

	result, err := RenderProject(project, targetIP)
	if err != nil {
		return err
	}

	stagingPath := fmt.Sprintf("/tmp/%s.conf", project)
	remotePath := fmt.Sprintf("%s/%s.conf", RemoteConfDir, project)

	if err := ssh.PushFile(ctx, stagingPath, []byte(result.Output), false); err != nil {
		return fmt.Errorf("failed to push nginx config: %w", err)
	}
	backupAndMove := fmt.Sprintf(
		"sudo cp -f %s %s.bak 2>/dev/null; sudo mv %s %s",
		remotePath, remotePath, stagingPath, remotePath,
	)
	if out, err := ssh.ExecuteCommand(ctx, backupAndMove); err != nil {
		return fmt.Errorf("failed to install nginx config: %w\n%s", err, out)
	}

	if out, err := ssh.ExecuteCommand(ctx, "sudo nginx -t"); err != nil {
		restore := fmt.Sprintf(
			"test -f %s.bak && sudo mv %s.bak %s || sudo rm -f %s",
			remotePath, remotePath, remotePath, remotePath,
		)
		if _, restoreErr := ssh.ExecuteCommand(ctx, restore); restoreErr != nil {
			l.Warnf("Failed to roll back %s: %v", remotePath, restoreErr)
		}
		return fmt.Errorf("nginx config validation failed, not reloading: %w\n%s", err, out)
	}

	if out, err := ssh.ExecuteCommand(ctx, "sudo systemctl reload nginx"); err != nil {
		return fmt.Errorf("failed to reload nginx: %w\n%s", err, out)
	}
	l.Infof("Deployed %s and reloaded nginx on %s", remotePath, ssh.GetHost())
	return nil
}

func isValidIPv4(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}
