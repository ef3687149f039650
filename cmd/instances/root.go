package instances

import (
	"github.com/spf13/cobra"
)

var instancesCmd = &cobra.Command{
	Use:   "instances",
	Short: "List, start, and stop EC2 instances",
}

// GetInstancesCmd builds the instances command group.
func GetInstancesCmd() *cobra.Command {
	instancesCmd.AddCommand(getListCmd())
	instancesCmd.AddCommand(getStartCmd())
	instancesCmd.AddCommand(getStopCmd())
	return instancesCmd
}
