package docker

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/internal/clouds/general"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/sshutils"
)

const (
	// RemoteProjectsRoot is where project checkouts live on the instance.
	RemoteProjectsRoot = "/home/ec2-user/projects"

	installScriptPath = "/tmp/install-docker.sh"

	// DefaultLogTail bounds non-follow log output.
	DefaultLogTail = 100
)

// Driver issues Docker and Compose operations against one remote host.
// Every operation is a stateless one-shot command set; nothing is
// remembered between calls.
type Driver struct {
	ssh     sshutils.SSHConfiger
	project string
}

// NewDriver builds a driver for the given connection. project may be
// empty for host-level operations (install, cleanup, info).
func NewDriver(ssh sshutils.SSHConfiger, project string) *Driver {
	return &Driver{ssh: ssh, project: project}
}

// ProjectDir is the remote compose working directory.
func (d *Driver) ProjectDir() string {
	return fmt.Sprintf("%s/%s", RemoteProjectsRoot, d.project)
}

// requireProject guards compose operations: they are meaningless without
// a project directory to run in.
func (d *Driver) requireProject(ctx context.Context) error {
	if d.project == "" {
		return fmt.Errorf("no project name given")
	}
	out, err := d.ssh.ExecuteCommand(
		ctx,
		fmt.Sprintf("test -d %s && echo present || echo absent", d.ProjectDir()),
	)
	if err != nil {
		return fmt.Errorf("failed to check project directory %s: %w", d.ProjectDir(), err)
	}
	if strings.TrimSpace(out) != "present" {
		return fmt.Errorf(
			"project directory %s does not exist on %s; run 'jalusi project create' first",
			d.ProjectDir(),
			d.ssh.GetHost(),
		)
	}
	return nil
}

// compose runs a docker compose subcommand inside the project directory.
func (d *Driver) compose(ctx context.Context, subcommand string) (string, error) {
	return d.ssh.ExecuteCommand(
		ctx,
		fmt.Sprintf("cd %s && docker compose %s", d.ProjectDir(), subcommand),
	)
}

// Install pushes the embedded installer script and runs it with sudo.
// The script is re-runnable, so installing on a prepared host is a no-op.
func (d *Driver) Install(ctx context.Context) error {
	l := logger.Get()

	script, err := general.GetInstallDockerScript()
	if err != nil {
		return fmt.Errorf("failed to load install script: %w", err)
	}
	if err := d.ssh.PushFile(ctx, installScriptPath, script, true); err != nil {
		return fmt.Errorf("failed to push install script: %w", err)
	}

	l.Infof("Installing Docker on %s", d.ssh.GetHost())
	out, err := d.ssh.ExecuteCommand(ctx, fmt.Sprintf("sudo bash %s", installScriptPath))
	if err != nil {
		return fmt.Errorf("docker install failed: %w", err)
	}
	l.Debugf("Install output:\n%s", out)
	return nil
}

// Up starts the project's services, optionally rebuilding images or
// limiting to one service.
func (d *Driver) Up(ctx context.Context, build bool, service string) error {
	if err := d.requireProject(ctx); err != nil {
		return err
	}
	subcommand := "up -d"
	if build {
		subcommand += " --build"
	}
	if service != "" {
		subcommand += " " + service
	}
	if _, err := d.compose(ctx, subcommand); err != nil {
		return fmt.Errorf("compose up failed: %w", err)
	}
	return nil
}

// Down stops and removes the project's services.
func (d *Driver) Down(ctx context.Context) error {
	if err := d.requireProject(ctx); err != nil {
		return err
	}
	if _, err := d.compose(ctx, "down"); err != nil {
		return fmt.Errorf("compose down failed: %w", err)
	}
	return nil
}

// Restart restarts the project's services, or one service.
func (d *Driver) Restart(ctx context.Context, service string) error {
	if err := d.requireProject(ctx); err != nil {
		return err
	}
	subcommand := "restart"
	if service != "" {
		subcommand += " " + service
	}
	if _, err := d.compose(ctx, subcommand); err != nil {
		return fmt.Errorf("compose restart failed: %w", err)
	}
	return nil
}

// Status returns the compose ps output.
func (d *Driver) Status(ctx context.Context) (string, error) {
	if err := d.requireProject(ctx); err != nil {
		return "", err
	}
	out, err := d.compose(ctx, "ps")
	if err != nil {
		return "", fmt.Errorf("compose ps failed: %w", err)
	}
	return out, nil
}

// Logs fetches the last tail lines of service logs, or streams them to
// out until ctx is cancelled when follow is set. An interrupted follow
// is a normal ending, not an error.
func (d *Driver) Logs(
	ctx context.Context,
	service string,
	tail int,
	follow bool,
	out io.Writer,
) error {
	if err := d.requireProject(ctx); err != nil {
		return err
	}
	if tail <= 0 {
		tail = DefaultLogTail
	}

	subcommand := fmt.Sprintf("logs --tail %d", tail)
	if follow {
		subcommand += " --follow"
	}
	if service != "" {
		subcommand += " " + service
	}
	command := fmt.Sprintf("cd %s && docker compose %s", d.ProjectDir(), subcommand)

	if follow {
		return d.ssh.ExecuteCommandStream(ctx, command, out)
	}
	output, err := d.ssh.ExecuteCommand(ctx, command)
	if err != nil {
		return fmt.Errorf("compose logs failed: %w", err)
	}
	if _, err := io.WriteString(out, output); err != nil {
		return err
	}
	return nil
}

// Info returns a short docker version and engine summary.
func (d *Driver) Info(ctx context.Context) (string, error) {
	out, err := d.ssh.ExecuteCommand(
		ctx,
		"docker --version && docker compose version && docker info --format '{{.ServerVersion}} ({{.OperatingSystem}})'",
	)
	if err != nil {
		return "", fmt.Errorf("docker info failed: %w", err)
	}
	return out, nil
}

// DiskUsage returns the verbose docker disk usage report.
func (d *Driver) DiskUsage(ctx context.Context) (string, error) {
	out, err := d.ssh.ExecuteCommand(ctx, "docker system df -v")
	if err != nil {
		return "", fmt.Errorf("docker system df failed: %w", err)
	}
	return out, nil
}

// Cleanup reclaims Docker disk space. Per-command failures are logged
// and tolerated so one stuck resource does not block the rest of the
// sweep.
func (d *Driver) Cleanup(ctx context.Context, aggressive bool) error {
	l := logger.Get()

	commands := CleanupCommands(aggressive)
	mode := "standard"
	if aggressive {
		mode = "aggressive"
	}
	l.Infof("Running %s Docker cleanup on %s (%d commands)", mode, d.ssh.GetHost(), len(commands))

	for _, command := range commands {
		if out, err := d.ssh.ExecuteCommand(ctx, command); err != nil {
			l.Warnf("Cleanup command %q failed (continuing): %v\n%s", command, err, out)
		}
	}
	return nil
}
