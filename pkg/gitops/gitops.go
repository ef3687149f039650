package gitops

import (
	"context"
	"fmt"
	"strings"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/docker"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/sshutils"
)

// FallbackBranch is checked out when the requested branch does not
// exist on the remote.
const FallbackBranch = "master"

// Driver runs git operations for one project on one remote host.
type Driver struct {
	ssh     sshutils.SSHConfiger
	owner   string
	project string
}

func NewDriver(ssh sshutils.SSHConfiger, owner, project string) *Driver {
	return &Driver{ssh: ssh, owner: owner, project: project}
}

func (d *Driver) projectDir() string {
	return fmt.Sprintf("%s/%s", docker.RemoteProjectsRoot, d.project)
}

// git runs a git command inside the project directory with prompts
// disabled, so a bad token fails fast instead of hanging on stdin.
func (d *Driver) git(ctx context.Context, subcommand string) (string, error) {
	return d.ssh.ExecuteCommand(
		ctx,
		fmt.Sprintf("cd %s && GIT_TERMINAL_PROMPT=0 git %s", d.projectDir(), subcommand),
	)
}

// Clone clones the project repository onto the host using the resolved
// PAC token. An existing checkout is pulled instead. branch may be
// empty, in which case the remote default is kept.
func (d *Driver) Clone(ctx context.Context, branch string) error {
	l := logger.Get()

	token, err := ResolveToken(d.project)
	if err != nil {
		return err
	}

	out, err := d.ssh.ExecuteCommand(
		ctx,
		fmt.Sprintf("test -d %s/.git && echo present || echo absent", d.projectDir()),
	)
	if err != nil {
		return fmt.Errorf("failed to check for existing checkout: %w", err)
	}
	if strings.TrimSpace(out) == "present" {
		l.Infof("Repository %s already cloned on %s, pulling instead", d.project, d.ssh.GetHost())
		return d.Pull(ctx, branch)
	}

	l.Infof("Cloning %s/%s onto %s", d.owner, d.project, d.ssh.GetHost())
	command := fmt.Sprintf(
		"mkdir -p %s && GIT_TERMINAL_PROMPT=0 git clone %s %s",
		docker.RemoteProjectsRoot,
		CloneURL(token, d.owner, d.project),
		d.projectDir(),
	)
	if cloneOut, cloneErr := d.ssh.ExecuteCommand(ctx, command); cloneErr != nil {
		return fmt.Errorf("git clone failed: %s", Redact(cloneOut, token))
	}

	if branch != "" {
		if err := d.checkoutWithFallback(ctx, branch); err != nil {
			return err
		}
	}
	return nil
}

// checkoutWithFallback checks out branch, falling back to master when
// the branch does not exist on the remote.
func (d *Driver) checkoutWithFallback(ctx context.Context, branch string) error {
	l := logger.Get()

	if _, err := d.git(ctx, fmt.Sprintf("checkout %s", branch)); err != nil {
		if branch == FallbackBranch {
			return fmt.Errorf("failed to checkout %s: %w", branch, err)
		}
		l.Warnf("Branch %s not found, falling back to %s", branch, FallbackBranch)
		if _, fallbackErr := d.git(ctx, fmt.Sprintf("checkout %s", FallbackBranch)); fallbackErr != nil {
			return fmt.Errorf(
				"failed to checkout %s and fallback %s: %w",
				branch,
				FallbackBranch,
				fallbackErr,
			)
		}
	}
	return nil
}

// Pull fetches and pulls the checkout, reporting whether new commits
// arrived by comparing HEAD before and after.
func (d *Driver) Pull(ctx context.Context, branch string) error {
	_, err := d.PullDetectingChange(ctx, branch)
	return err
}

// PullDetectingChange returns true when the pull moved HEAD.
func (d *Driver) PullDetectingChange(ctx context.Context, branch string) (bool, error) {
	l := logger.Get()

	if _, err := d.git(ctx, "fetch --all --prune"); err != nil {
		return false, fmt.Errorf("git fetch failed: %w", err)
	}
	if branch != "" {
		if err := d.checkoutWithFallback(ctx, branch); err != nil {
			return false, err
		}
	}

	before, err := d.git(ctx, "rev-parse HEAD")
	if err != nil {
		return false, fmt.Errorf("failed to read HEAD: %w", err)
	}
	if _, err := d.git(ctx, "pull"); err != nil {
		return false, fmt.Errorf("git pull failed: %w", err)
	}
	after, err := d.git(ctx, "rev-parse HEAD")
	if err != nil {
		return false, fmt.Errorf("failed to read HEAD: %w", err)
	}

	changed := strings.TrimSpace(before) != strings.TrimSpace(after)
	if changed {
		l.Infof(
			"Pulled new commits for %s (%s -> %s)",
			d.project,
			shortRev(before),
			shortRev(after),
		)
	} else {
		l.Infof("%s is already up to date", d.project)
	}
	return changed, nil
}

// Update pulls the checkout and, when restart is set and new commits
// arrived, restarts the project's compose services.
func (d *Driver) Update(ctx context.Context, branch string, restart bool) error {
	changed, err := d.PullDetectingChange(ctx, branch)
	if err != nil {
		return err
	}
	if changed && restart {
		logger.Get().Infof("Restarting %s after update", d.project)
		return docker.NewDriver(d.ssh, d.project).Restart(ctx, "")
	}
	return nil
}

func shortRev(rev string) string {
	rev = strings.TrimSpace(rev)
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}
