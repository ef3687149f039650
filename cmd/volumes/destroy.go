package volumes

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/display"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/models"
	awsprovider "github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/providers/aws"
)

var (
	destroyVolumeName string
	destroyVolumeID   string
)

func getDestroyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Detach (if needed) and delete a volume by name or ID",
		RunE:  runDestroy,
	}
	cmd.Flags().StringVar(&destroyVolumeName, "name", "", "volume Name tag")
	cmd.Flags().StringVar(&destroyVolumeID, "volume-id", "", "volume ID")
	cmd.MarkFlagsOneRequired("name", "volume-id")
	cmd.MarkFlagsMutuallyExclusive("name", "volume-id")
	return cmd
}

func runDestroy(cmd *cobra.Command, args []string) error {
	provider, err := awsprovider.NewAWSProviderFunc(cmd.Context(), "")
	if err != nil {
		return err
	}

	var volume *models.Volume
	if destroyVolumeID != "" {
		volume, err = provider.GetVolumeByID(cmd.Context(), destroyVolumeID)
	} else {
		volume, err = provider.FindVolumeByName(cmd.Context(), destroyVolumeName)
	}
	if err != nil {
		return err
	}

	s := display.NewSpinner(fmt.Sprintf("Destroying volume %s...", volume.ID))
	err = provider.DestroyVolume(cmd.Context(), volume)
	s.Stop()
	if err != nil {
		return err
	}
	display.Okf(os.Stdout, "Volume %s deleted", volume.ID)
	return nil
}
