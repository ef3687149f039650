package awsprovider

import (
	"context"
	"testing"

	ec2_types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/internal/testdata"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/internal/testutil"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/models"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/sshutils"
)

func TestConnectByNameRequiresRunningInstance(t *testing.T) {
	mockEC2 := &MockEC2Client{}
	mockEC2.On("DescribeInstances", mock.Anything, mock.Anything).
		Return(testdata.FakeDescribeInstancesOutput(
			testdata.FakeInstance("web-server", ec2_types.InstanceStateNameStopped),
		), nil)

	provider := newTestProvider(mockEC2)
	_, _, err := provider.ConnectByName(context.Background(), "web-server")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not running")
	assert.Contains(t, err.Error(), "instances start")
}

func TestSSHConfigForInstanceRequiresPublicIP(t *testing.T) {
	provider := newTestProvider(&MockEC2Client{})
	_, err := provider.SSHConfigForInstance(&models.Instance{
		Name:  "web-server",
		State: "running",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no public IP")
}

func TestSSHConfigForInstanceBuildsConfig(t *testing.T) {
	testutil.LoadFixtureConfig(t)
	pemsDir := usePemsDir(t)
	keyPath := testutil.WriteInstanceKey(t, pemsDir, "web-server")

	provider := newTestProvider(&MockEC2Client{})
	config, err := provider.SSHConfigForInstance(&models.Instance{
		Name:     "web-server",
		State:    "running",
		PublicIP: "203.0.113.1",
	})
	require.NoError(t, err)

	sshConfig, ok := config.(*sshutils.SSHConfig)
	require.True(t, ok)
	assert.Equal(t, "203.0.113.1", sshConfig.Host)
	assert.Equal(t, sshutils.SSHDefaultPort, sshConfig.Port)
	assert.Equal(t, "ec2-user", sshConfig.User)
	assert.Equal(t, keyPath, sshConfig.PrivateKeyPath)
}

func TestSSHConfigForInstanceRequiresKeyFile(t *testing.T) {
	usePemsDir(t)

	provider := newTestProvider(&MockEC2Client{})
	_, err := provider.SSHConfigForInstance(&models.Instance{
		Name:     "web-server",
		State:    "running",
		PublicIP: "203.0.113.1",
	})
	require.ErrorIs(t, err, ErrKeyFileNotFound)
}
