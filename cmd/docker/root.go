package docker

import (
	"context"

	"github.com/spf13/cobra"

	dockerdriver "github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/docker"
	awsprovider "github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/providers/aws"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/sshutils"
)

var (
	instanceName string
	projectName  string
)

var dockerCmd = &cobra.Command{
	Use:   "docker",
	Short: "Run Docker and Compose operations on an instance over SSH",
}

// GetDockerCmd builds the docker command group. --instance-name and
// --project are shared by every subcommand.
func GetDockerCmd() *cobra.Command {
	dockerCmd.PersistentFlags().
		StringVarP(&instanceName, "instance-name", "i", "", "instance Name tag")
	dockerCmd.PersistentFlags().
		StringVarP(&projectName, "project", "p", "", "project (compose directory) name")
	_ = dockerCmd.MarkPersistentFlagRequired("instance-name")

	dockerCmd.AddCommand(getInstallCmd())
	dockerCmd.AddCommand(getUpCmd())
	dockerCmd.AddCommand(getDownCmd())
	dockerCmd.AddCommand(getRestartCmd())
	dockerCmd.AddCommand(getStatusCmd())
	dockerCmd.AddCommand(getLogsCmd())
	dockerCmd.AddCommand(getCleanupCmd())
	dockerCmd.AddCommand(getInfoCmd())
	dockerCmd.AddCommand(getDiskUsageCmd())
	dockerCmd.AddCommand(getBuildEnvCmd())
	return dockerCmd
}

// connect locates the running instance and waits for SSH.
func connect(ctx context.Context) (sshutils.SSHConfiger, error) {
	provider, err := awsprovider.NewAWSProviderFunc(ctx, "")
	if err != nil {
		return nil, err
	}
	sshConfig, _, err := provider.ConnectByName(ctx, instanceName)
	if err != nil {
		return nil, err
	}
	return sshConfig, nil
}

// connectDriver wraps the connection in a docker driver.
func connectDriver(ctx context.Context) (*dockerdriver.Driver, error) {
	sshConfig, err := connect(ctx)
	if err != nil {
		return nil, err
	}
	return dockerdriver.NewDriver(sshConfig, projectName), nil
}
