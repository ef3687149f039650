package infra

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	internal_aws "github.com/charlessiwelejalusi/jalusi-aws-handler/internal/clouds/aws"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/display"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/models"
	awsprovider "github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/providers/aws"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/table"
)

var (
	createInstanceName string
	createInstanceType string
	createVolumeSize   int32
	createVolumeType   string
	createElasticIP    bool
	createManifest     string
	createNextName     bool
)

func getCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Provision the full resource bundle for a name",
		Long: `Runs the fixed provisioning sequence: key pair, S3 bucket,
security group (22/80/443 open), IAM policy/role/instance profile, EC2
instance from the latest Amazon Linux 2023 AMI, EBS data volume, and
optionally an Elastic IP. Every step reuses an existing resource with
the same name, so re-running after a failure picks up where it left
off. Nothing is rolled back on failure.`,
		RunE: runCreate,
	}
	cmd.Flags().StringVarP(&createInstanceName, "instance-name", "i", "", "bundle name (Name tag)")
	cmd.Flags().StringVar(&createInstanceType, "instance-type", "", "EC2 instance type")
	cmd.Flags().Int32Var(&createVolumeSize, "volume-size", 0, "data volume size in GiB")
	cmd.Flags().StringVar(&createVolumeType, "volume-type", "", "data volume type")
	cmd.Flags().BoolVar(&createElasticIP, "elastic-ip", false, "allocate and associate an Elastic IP")
	cmd.Flags().StringVar(&createManifest, "manifest", "", "YAML manifest with bundle parameters")
	cmd.Flags().BoolVar(&createNextName, "next", false,
		"use the next free <name>-<n> suffix instead of the name as given")
	_ = cmd.MarkFlagRequired("instance-name")
	return cmd
}

// buildRequest layers the parameter sources: defaults, then manifest,
// then flags.
func buildRequest() (*models.InfraRequest, error) {
	req := models.NewInfraRequest(createInstanceName)

	if createManifest != "" {
		manifest, err := models.LoadInfraManifest(createManifest)
		if err != nil {
			return nil, err
		}
		manifest.Apply(req)
	}
	if createInstanceType != "" {
		req.InstanceType = createInstanceType
	}
	if createVolumeSize > 0 {
		req.VolumeSizeGiB = createVolumeSize
	}
	if createVolumeType != "" {
		req.VolumeType = createVolumeType
	}
	if createElasticIP {
		req.AssignElasticIP = true
	}
	return req, nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	req, err := buildRequest()
	if err != nil {
		return err
	}

	region := viper.GetString("aws.region")
	if !internal_aws.IsValidAWSRegion(region) {
		return fmt.Errorf("unknown AWS region %q", region)
	}
	if !internal_aws.IsValidAWSInstanceType(region, req.InstanceType) {
		return fmt.Errorf("instance type %q is not offered in %s", req.InstanceType, region)
	}

	provider, err := awsprovider.NewAWSProviderFunc(cmd.Context(), region)
	if err != nil {
		return err
	}

	if createNextName {
		name, nameErr := provider.NextAvailableName(cmd.Context(), req.Name)
		if nameErr != nil {
			return nameErr
		}
		display.Okf(os.Stdout, "Using name %s", name)
		req.Name = name
	}

	s := display.NewSpinner(fmt.Sprintf("Provisioning bundle %s...", req.Name))
	bundle, err := provider.CreateInfrastructure(cmd.Context(), req)
	s.Stop()
	if err != nil {
		return err
	}

	display.Okf(os.Stdout, "Bundle %s is ready", req.Name)
	table.RenderBundle(os.Stdout, bundle)
	return nil
}
