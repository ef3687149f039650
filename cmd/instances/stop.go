package instances

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/display"
	awsprovider "github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/providers/aws"
)

var stopInstanceName string

func getStopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop a running instance and wait for it to stop",
		RunE:  runStop,
	}
	cmd.Flags().StringVarP(&stopInstanceName, "instance-name", "i", "", "instance Name tag")
	_ = cmd.MarkFlagRequired("instance-name")
	return cmd
}

func runStop(cmd *cobra.Command, args []string) error {
	provider, err := awsprovider.NewAWSProviderFunc(cmd.Context(), "")
	if err != nil {
		return err
	}

	s := display.NewSpinner(fmt.Sprintf("Stopping %s...", stopInstanceName))
	instance, err := provider.StopInstance(cmd.Context(), stopInstanceName)
	s.Stop()
	if err != nil {
		return err
	}

	display.Okf(os.Stdout, "Instance %s is %s", instance.Name, instance.State)
	return nil
}
