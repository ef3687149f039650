package instances

import (
	"os"

	"github.com/spf13/cobra"

	awsprovider "github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/providers/aws"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/table"
)

var (
	listStateFilter string
	listNameFilter  string
)

func getListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List EC2 instances in the region",
		RunE:  runList,
	}
	cmd.Flags().StringVar(&listStateFilter, "state", "all", "filter by state (all, running, stopped)")
	cmd.Flags().StringVar(&listNameFilter, "filter", "", "keep only instances whose Name tag contains this")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := awsprovider.NewAWSProviderFunc(cmd.Context(), "")
	if err != nil {
		return err
	}
	instances, err := provider.ListInstances(cmd.Context(), listStateFilter, listNameFilter)
	if err != nil {
		return err
	}
	table.RenderInstances(os.Stdout, instances)
	return nil
}
