package infra

import (
	"github.com/spf13/cobra"
)

var infraCmd = &cobra.Command{
	Use:   "infra",
	Short: "Provision and tear down full resource bundles",
	Long: `A bundle is every resource sharing one Name tag: key pair, S3
bucket, security group, IAM policy/role/instance profile, EC2 instance,
EBS data volume, and optionally an Elastic IP.`,
}

// GetInfraCmd builds the infra command group.
func GetInfraCmd() *cobra.Command {
	infraCmd.AddCommand(getCreateCmd())
	infraCmd.AddCommand(getDestroyCmd())
	infraCmd.AddCommand(getListCmd())
	return infraCmd
}
