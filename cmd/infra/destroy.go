package infra

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/display"
	awsprovider "github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/providers/aws"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/table"
)

var (
	destroyInstanceName string
	destroySkipConfirm  bool
)

func getDestroyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Tear down a bundle in reverse dependency order",
		Long: `Terminates the instance, then releases the Elastic IP, deletes
the data volume, empties and deletes the S3 bucket, removes the key pair
(remote and local), deletes the security group, and unwinds the IAM
profile/role/policy. Failed steps are reported and skipped, so a partial
teardown can be re-run until it converges.`,
		RunE: runDestroy,
	}
	cmd.Flags().StringVarP(&destroyInstanceName, "instance-name", "i", "", "bundle name (Name tag)")
	cmd.Flags().BoolVarP(&destroySkipConfirm, "yes", "y", false, "skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("instance-name")
	return cmd
}

func runDestroy(cmd *cobra.Command, args []string) error {
	if !destroySkipConfirm {
		fmt.Printf(
			"This deletes EVERY resource named %s, including its data. Type the name to confirm: ",
			destroyInstanceName,
		)
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if strings.TrimSpace(answer) != destroyInstanceName {
			return fmt.Errorf("confirmation did not match, aborting")
		}
	}

	provider, err := awsprovider.NewAWSProviderFunc(cmd.Context(), "")
	if err != nil {
		return err
	}

	s := display.NewSpinner(fmt.Sprintf("Destroying bundle %s...", destroyInstanceName))
	report := provider.DestroyInfrastructure(cmd.Context(), destroyInstanceName)
	s.Stop()

	table.RenderTeardownReport(os.Stdout, report)
	if !report.Ok() {
		display.Warnf(os.Stdout, "%d teardown steps failed; re-run to retry them", len(report.Failed()))
		return fmt.Errorf("teardown of %s is incomplete", destroyInstanceName)
	}
	display.Okf(os.Stdout, "Bundle %s destroyed", destroyInstanceName)
	return nil
}
