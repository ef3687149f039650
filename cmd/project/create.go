package project

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/display"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/gitops"
	awsprovider "github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/providers/aws"
)

var createInstanceName string

func getCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Clone the project repository onto an instance",
		Long: `Clones https://github.com/<owner>/<project>.git into the remote
projects directory using the PAC token from pacs/. An existing checkout
is pulled instead. The token never appears in output.`,
		RunE: runCreate,
	}
	cmd.Flags().StringVarP(&createInstanceName, "instance-name", "i", "", "instance Name tag")
	_ = cmd.MarkFlagRequired("instance-name")
	return cmd
}

func resolveOwner() (string, error) {
	owner := repoOwner
	if owner == "" {
		owner = viper.GetString("github.owner")
	}
	if owner == "" {
		return "", fmt.Errorf("no repository owner: pass --owner or set github.owner in config")
	}
	return owner, nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	owner, err := resolveOwner()
	if err != nil {
		return err
	}

	provider, err := awsprovider.NewAWSProviderFunc(cmd.Context(), "")
	if err != nil {
		return err
	}
	sshConfig, _, err := provider.ConnectByName(cmd.Context(), createInstanceName)
	if err != nil {
		return err
	}

	driver := gitops.NewDriver(sshConfig, owner, projectName)
	if err := driver.Clone(cmd.Context(), branchName); err != nil {
		return err
	}
	display.Okf(os.Stdout, "Project %s is cloned on %s", projectName, createInstanceName)
	return nil
}
