package project

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/display"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/envfile"
	awsprovider "github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/providers/aws"
)

var envInstanceName string

func getEnvCmd() *cobra.Command {
	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Generate and deploy project env files",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Build envs/.env.<project> from envs/.env.example",
		Long: `Fills in the template: secret-looking keys get a random
50-character value, project-looking keys get the project name. Values
already present in an existing .env.<project> are kept, so regeneration
never rotates a secret that is in use.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := envfile.Generate(projectName)
			if err != nil {
				return err
			}
			display.Okf(os.Stdout, "Generated %s", path)
			return nil
		},
	}

	deployCmd := &cobra.Command{
		Use:   "deploy",
		Short: "Push the generated env file to the instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := awsprovider.NewAWSProviderFunc(cmd.Context(), "")
			if err != nil {
				return err
			}
			sshConfig, _, err := provider.ConnectByName(cmd.Context(), envInstanceName)
			if err != nil {
				return err
			}
			if err := envfile.Deploy(cmd.Context(), sshConfig, projectName); err != nil {
				return err
			}
			display.Okf(os.Stdout, "Env file for %s deployed to %s", projectName, envInstanceName)
			return nil
		},
	}
	deployCmd.Flags().StringVarP(&envInstanceName, "instance-name", "i", "", "instance Name tag")
	_ = deployCmd.MarkFlagRequired("instance-name")

	envCmd.AddCommand(generateCmd)
	envCmd.AddCommand(deployCmd)
	return envCmd
}
