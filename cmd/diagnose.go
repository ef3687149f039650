package cmd

import (
	"os"

	"github.com/spf13/cobra"

	awsprovider "github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/providers/aws"
)

func getDiagnoseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose",
		Short: "Check credentials, connectivity, and the local workspace",
		Long: `Prints the AWS environment variables (secrets redacted), the
resolved caller identity, S3 and SSM reachability, and whether the local
pems/, pacs/, envs/, and nginx.conf/ directories exist. Nothing is
mutated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := awsprovider.NewAWSProviderFunc(cmd.Context(), "")
			if err != nil {
				return err
			}
			return provider.PrintDiagnostics(cmd.Context(), os.Stdout)
		},
	}
}
