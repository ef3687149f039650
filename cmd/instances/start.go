package instances

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/display"
	awsprovider "github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/providers/aws"
)

var startInstanceName string

func getStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a stopped instance and wait for it to run",
		RunE:  runStart,
	}
	cmd.Flags().StringVarP(&startInstanceName, "instance-name", "i", "", "instance Name tag")
	_ = cmd.MarkFlagRequired("instance-name")
	return cmd
}

func runStart(cmd *cobra.Command, args []string) error {
	provider, err := awsprovider.NewAWSProviderFunc(cmd.Context(), "")
	if err != nil {
		return err
	}

	s := display.NewSpinner(fmt.Sprintf("Starting %s...", startInstanceName))
	instance, err := provider.StartInstance(cmd.Context(), startInstanceName)
	s.Stop()
	if err != nil {
		return err
	}

	display.Okf(os.Stdout, "Instance %s is %s", instance.Name, instance.State)
	if instance.PublicIP != "" {
		fmt.Printf("Public IP:  %s\n", instance.PublicIP)
	}
	if instance.PrivateIP != "" {
		fmt.Printf("Private IP: %s\n", instance.PrivateIP)
	}
	return nil
}
