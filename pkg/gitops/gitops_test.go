package gitops

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/sshutils"
)

const (
	checkoutPresence = "test -d /home/ec2-user/projects/app/.git && echo present || echo absent"
	gitPrefix        = "cd /home/ec2-user/projects/app && GIT_TERMINAL_PROMPT=0 git "
)

func newMockSSH() *sshutils.MockSSHConfig {
	mockSSH := &sshutils.MockSSHConfig{}
	mockSSH.On("GetHost").Return("203.0.113.1").Maybe()
	return mockSSH
}

func TestCloneFreshCheckout(t *testing.T) {
	dir := usePacsDir(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "github-pac.txt"), []byte("ghp_sharedtoken\n"), 0600))

	mockSSH := newMockSSH()
	mockSSH.On("ExecuteCommand", mock.Anything, checkoutPresence).
		Return("absent\n", nil)
	mockSSH.On("ExecuteCommand", mock.Anything,
		"mkdir -p /home/ec2-user/projects && GIT_TERMINAL_PROMPT=0 git clone "+
			"https://ghp_sharedtoken@github.com/siwele/app.git /home/ec2-user/projects/app").
		Return("", nil)

	driver := NewDriver(mockSSH, "siwele", "app")
	require.NoError(t, driver.Clone(context.Background(), ""))
	mockSSH.AssertExpectations(t)
}

func TestCloneExistingCheckoutPullsInstead(t *testing.T) {
	dir := usePacsDir(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "github-pac.txt"), []byte("ghp_sharedtoken\n"), 0600))

	mockSSH := newMockSSH()
	mockSSH.On("ExecuteCommand", mock.Anything, checkoutPresence).
		Return("present\n", nil)
	mockSSH.On("ExecuteCommand", mock.Anything, gitPrefix+"fetch --all --prune").
		Return("", nil)
	mockSSH.On("ExecuteCommand", mock.Anything, gitPrefix+"rev-parse HEAD").
		Return("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n", nil)
	mockSSH.On("ExecuteCommand", mock.Anything, gitPrefix+"pull").
		Return("Already up to date.\n", nil)

	driver := NewDriver(mockSSH, "siwele", "app")
	require.NoError(t, driver.Clone(context.Background(), ""))
	mockSSH.AssertNotCalled(t, "ExecuteCommand", mock.Anything,
		mock.MatchedBy(func(command string) bool {
			return len(command) > 9 && command[:9] == "mkdir -p "
		}))
}

func TestCloneFailureRedactsToken(t *testing.T) {
	dir := usePacsDir(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "github-pac.txt"), []byte("ghp_secrettoken\n"), 0600))

	mockSSH := newMockSSH()
	mockSSH.On("ExecuteCommand", mock.Anything, checkoutPresence).
		Return("absent\n", nil)
	mockSSH.On("ExecuteCommand", mock.Anything, mock.Anything).
		Return("fatal: https://ghp_secrettoken@github.com/siwele/app.git not found",
			errors.New("exit status 128"))

	driver := NewDriver(mockSSH, "siwele", "app")
	err := driver.Clone(context.Background(), "")
	require.Error(t, err)
	require.NotContains(t, err.Error(), "ghp_secrettoken")
	require.Contains(t, err.Error(), "[REDACTED]")
}

func TestCheckoutFallsBackToMaster(t *testing.T) {
	mockSSH := newMockSSH()
	mockSSH.On("ExecuteCommand", mock.Anything, gitPrefix+"checkout feature").
		Return("error: pathspec 'feature' did not match", errors.New("exit status 1"))
	mockSSH.On("ExecuteCommand", mock.Anything, gitPrefix+"checkout master").
		Return("Switched to branch 'master'\n", nil)

	driver := NewDriver(mockSSH, "siwele", "app")
	require.NoError(t, driver.checkoutWithFallback(context.Background(), "feature"))
	mockSSH.AssertExpectations(t)
}

func TestCheckoutMasterFailureIsFatal(t *testing.T) {
	mockSSH := newMockSSH()
	mockSSH.On("ExecuteCommand", mock.Anything, gitPrefix+"checkout master").
		Return("", errors.New("exit status 1"))

	driver := NewDriver(mockSSH, "siwele", "app")
	err := driver.checkoutWithFallback(context.Background(), "master")
	require.Error(t, err)
	mockSSH.AssertNumberOfCalls(t, "ExecuteCommand", 1)
}

func TestPullDetectingChange(t *testing.T) {
	mockSSH := newMockSSH()
	mockSSH.On("ExecuteCommand", mock.Anything, gitPrefix+"fetch --all --prune").
		Return("", nil)
	mockSSH.On("ExecuteCommand", mock.Anything, gitPrefix+"rev-parse HEAD").
		Return("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n", nil).Once()
	mockSSH.On("ExecuteCommand", mock.Anything, gitPrefix+"pull").
		Return("Updating aaaaaaa..bbbbbbb\n", nil)
	mockSSH.On("ExecuteCommand", mock.Anything, gitPrefix+"rev-parse HEAD").
		Return("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb\n", nil).Once()

	driver := NewDriver(mockSSH, "siwele", "app")
	changed, err := driver.PullDetectingChange(context.Background(), "")
	require.NoError(t, err)
	require.True(t, changed)
}

func TestUpdateRestartsOnlyWhenChanged(t *testing.T) {
	mockSSH := newMockSSH()
	mockSSH.On("ExecuteCommand", mock.Anything, gitPrefix+"fetch --all --prune").
		Return("", nil)
	mockSSH.On("ExecuteCommand", mock.Anything, gitPrefix+"rev-parse HEAD").
		Return("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n", nil)
	mockSSH.On("ExecuteCommand", mock.Anything, gitPrefix+"pull").
		Return("Already up to date.\n", nil)

	driver := NewDriver(mockSSH, "siwele", "app")
	require.NoError(t, driver.Update(context.Background(), "", true))
	// HEAD did not move: no compose restart happened
	mockSSH.AssertNotCalled(t, "ExecuteCommand", mock.Anything,
		"cd /home/ec2-user/projects/app && docker compose restart")
}

func TestUpdateRestartsAfterNewCommits(t *testing.T) {
	mockSSH := newMockSSH()
	mockSSH.On("ExecuteCommand", mock.Anything, gitPrefix+"fetch --all --prune").
		Return("", nil)
	mockSSH.On("ExecuteCommand", mock.Anything, gitPrefix+"rev-parse HEAD").
		Return("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n", nil).Once()
	mockSSH.On("ExecuteCommand", mock.Anything, gitPrefix+"pull").
		Return("Updating aaaaaaa..bbbbbbb\n", nil)
	mockSSH.On("ExecuteCommand", mock.Anything, gitPrefix+"rev-parse HEAD").
		Return("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb\n", nil).Once()
	mockSSH.On("ExecuteCommand", mock.Anything,
		"test -d /home/ec2-user/projects/app && echo present || echo absent").
		Return("present\n", nil)
	mockSSH.On("ExecuteCommand", mock.Anything,
		"cd /home/ec2-user/projects/app && docker compose restart").
		Return("", nil)

	driver := NewDriver(mockSSH, "siwele", "app")
	require.NoError(t, driver.Update(context.Background(), "", true))
	mockSSH.AssertExpectations(t)
}
