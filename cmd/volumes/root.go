package volumes

import (
	"github.com/spf13/cobra"
)

var volumesCmd = &cobra.Command{
	Use:   "volumes",
	Short: "List and destroy EBS volumes",
}

// GetVolumesCmd builds the volumes command group.
func GetVolumesCmd() *cobra.Command {
	volumesCmd.AddCommand(getListCmd())
	volumesCmd.AddCommand(getDestroyCmd())
	return volumesCmd
}
