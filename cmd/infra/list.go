package infra

import (
	"os"

	"github.com/spf13/cobra"

	awsprovider "github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/providers/aws"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/table"
)

var listInstanceName string

func getListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the found/missing status of every resource in a bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := awsprovider.NewAWSProviderFunc(cmd.Context(), "")
			if err != nil {
				return err
			}
			bundle := provider.DescribeBundle(cmd.Context(), listInstanceName)
			table.RenderBundle(os.Stdout, bundle)
			return nil
		},
	}
	cmd.Flags().StringVarP(&listInstanceName, "instance-name", "i", "", "bundle name (Name tag)")
	_ = cmd.MarkFlagRequired("instance-name")
	return cmd
}
