package docker

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/sshutils"
)

const projectCheck = "test -d /home/ec2-user/projects/app && echo present || echo absent"

func newMockSSH() *sshutils.MockSSHConfig {
	mockSSH := &sshutils.MockSSHConfig{}
	mockSSH.On("GetHost").Return("203.0.113.1").Maybe()
	return mockSSH
}

func TestProjectDir(t *testing.T) {
	driver := NewDriver(newMockSSH(), "app")
	assert.Equal(t, "/home/ec2-user/projects/app", driver.ProjectDir())
}

func TestUpBuildsComposeCommand(t *testing.T) {
	mockSSH := newMockSSH()
	mockSSH.On("ExecuteCommand", mock.Anything, projectCheck).
		Return("present\n", nil)
	mockSSH.On("ExecuteCommand", mock.Anything,
		"cd /home/ec2-user/projects/app && docker compose up -d --build web").
		Return("", nil)

	driver := NewDriver(mockSSH, "app")
	require.NoError(t, driver.Up(context.Background(), true, "web"))
	mockSSH.AssertExpectations(t)
}

func TestUpRequiresProjectDirectory(t *testing.T) {
	mockSSH := newMockSSH()
	mockSSH.On("ExecuteCommand", mock.Anything, projectCheck).
		Return("absent\n", nil)

	driver := NewDriver(mockSSH, "app")
	err := driver.Up(context.Background(), false, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project create")
}

func TestUpRequiresProjectName(t *testing.T) {
	driver := NewDriver(newMockSSH(), "")
	err := driver.Up(context.Background(), false, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no project name")
}

func TestDown(t *testing.T) {
	mockSSH := newMockSSH()
	mockSSH.On("ExecuteCommand", mock.Anything, projectCheck).
		Return("present\n", nil)
	mockSSH.On("ExecuteCommand", mock.Anything,
		"cd /home/ec2-user/projects/app && docker compose down").
		Return("", nil)

	driver := NewDriver(mockSSH, "app")
	require.NoError(t, driver.Down(context.Background()))
	mockSSH.AssertExpectations(t)
}

func TestStatus(t *testing.T) {
	mockSSH := newMockSSH()
	mockSSH.On("ExecuteCommand", mock.Anything, projectCheck).
		Return("present\n", nil)
	mockSSH.On("ExecuteCommand", mock.Anything,
		"cd /home/ec2-user/projects/app && docker compose ps").
		Return("NAME  STATUS\napp-web-1  running\n", nil)

	driver := NewDriver(mockSSH, "app")
	out, err := driver.Status(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out, "app-web-1")
}

func TestLogsTail(t *testing.T) {
	mockSSH := newMockSSH()
	mockSSH.On("ExecuteCommand", mock.Anything, projectCheck).
		Return("present\n", nil)
	mockSSH.On("ExecuteCommand", mock.Anything,
		"cd /home/ec2-user/projects/app && docker compose logs --tail 50 web").
		Return("web-1  | ready\n", nil)

	var buf bytes.Buffer
	driver := NewDriver(mockSSH, "app")
	require.NoError(t, driver.Logs(context.Background(), "web", 50, false, &buf))
	assert.Contains(t, buf.String(), "ready")
}

func TestLogsDefaultTail(t *testing.T) {
	mockSSH := newMockSSH()
	mockSSH.On("ExecuteCommand", mock.Anything, projectCheck).
		Return("present\n", nil)
	mockSSH.On("ExecuteCommand", mock.Anything,
		"cd /home/ec2-user/projects/app && docker compose logs --tail 100").
		Return("", nil)

	driver := NewDriver(mockSSH, "app")
	require.NoError(t, driver.Logs(context.Background(), "", 0, false, io.Discard))
	mockSSH.AssertExpectations(t)
}

func TestLogsFollowStreams(t *testing.T) {
	mockSSH := newMockSSH()
	mockSSH.On("ExecuteCommand", mock.Anything, projectCheck).
		Return("present\n", nil)
	mockSSH.On("ExecuteCommandStream", mock.Anything,
		"cd /home/ec2-user/projects/app && docker compose logs --tail 100 --follow",
		mock.Anything).
		Return(nil)

	driver := NewDriver(mockSSH, "app")
	require.NoError(t, driver.Logs(context.Background(), "", 0, true, io.Discard))
	mockSSH.AssertExpectations(t)
}

func TestInstallPushesScriptAndRunsIt(t *testing.T) {
	mockSSH := newMockSSH()
	mockSSH.On("PushFile", mock.Anything, "/tmp/install-docker.sh", mock.Anything, true).
		Return(nil)
	mockSSH.On("ExecuteCommand", mock.Anything, "sudo bash /tmp/install-docker.sh").
		Return("Docker installed\n", nil)

	driver := NewDriver(mockSSH, "")
	require.NoError(t, driver.Install(context.Background()))
	mockSSH.AssertExpectations(t)
}

func TestCleanupContinuesOnFailure(t *testing.T) {
	mockSSH := newMockSSH()
	mockSSH.On("ExecuteCommand", mock.Anything, mock.Anything).
		Return("", errors.New("daemon busy"))

	driver := NewDriver(mockSSH, "")
	require.NoError(t, driver.Cleanup(context.Background(), false))
	mockSSH.AssertNumberOfCalls(t, "ExecuteCommand", len(CleanupCommands(false)))
}
