package volumes

import (
	"os"

	"github.com/spf13/cobra"

	awsprovider "github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/providers/aws"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/table"
)

var listNameFilter string

func getListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List EBS volumes in the region",
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := awsprovider.NewAWSProviderFunc(cmd.Context(), "")
			if err != nil {
				return err
			}
			volumes, err := provider.ListVolumes(cmd.Context(), listNameFilter)
			if err != nil {
				return err
			}
			table.RenderVolumes(os.Stdout, volumes)
			return nil
		},
	}
	cmd.Flags().StringVar(&listNameFilter, "filter", "", "keep only volumes whose Name tag contains this")
	return cmd
}
