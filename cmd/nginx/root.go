package nginx

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/display"
	nginxdriver "github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/nginx"
	awsprovider "github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/providers/aws"
)

var (
	instanceName string
	projectName  string
)

var nginxCmd = &cobra.Command{
	Use:   "nginx",
	Short: "Render and deploy nginx configs pointed at an instance",
}

// GetNginxCmd builds the nginx command group.
func GetNginxCmd() *cobra.Command {
	nginxCmd.PersistentFlags().
		StringVarP(&instanceName, "instance-name", "i", "", "instance Name tag")
	nginxCmd.PersistentFlags().
		StringVarP(&projectName, "project", "p", "", "project name")
	_ = nginxCmd.MarkPersistentFlagRequired("instance-name")
	_ = nginxCmd.MarkPersistentFlagRequired("project")

	nginxCmd.AddCommand(getRenderCmd())
	nginxCmd.AddCommand(getDeployCmd())
	return nginxCmd
}

func getRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Rewrite the project's config template for the instance IP",
		Long: `Reads nginx.conf/<project>.conf (or nginx.conf/default.conf),
replaces every IPv4 address except 127.0.0.1 and 0.0.0.0 with the
instance's public IP, and writes <project>.rendered.conf locally.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := awsprovider.NewAWSProviderFunc(cmd.Context(), "")
			if err != nil {
				return err
			}
			instance, err := provider.FindInstanceByName(cmd.Context(), instanceName)
			if err != nil {
				return err
			}
			if instance.PublicIP == "" {
				return fmt.Errorf("instance %s has no public IP (state %s)", instanceName, instance.State)
			}
			result, err := nginxdriver.RenderProject(projectName, instance.PublicIP)
			if err != nil {
				return err
			}
			display.Okf(
				os.Stdout,
				"Rendered %s: %d addresses rewritten to %s",
				result.TemplatePath,
				result.TotalReplacements(),
				instance.PublicIP,
			)
			for address, count := range result.Replaced {
				fmt.Printf("  %s -> %s (%d occurrences)\n", address, instance.PublicIP, count)
			}
			return nil
		},
	}
}

func getDeployCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy",
		Short: "Render, validate (nginx -t), and reload on the instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := awsprovider.NewAWSProviderFunc(cmd.Context(), "")
			if err != nil {
				return err
			}
			sshConfig, instance, err := provider.ConnectByName(cmd.Context(), instanceName)
			if err != nil {
				return err
			}
			if err := nginxdriver.Deploy(cmd.Context(), sshConfig, projectName, instance.PublicIP); err != nil {
				return err
			}
			display.Okf(os.Stdout, "nginx config for %s deployed to %s", projectName, instanceName)
			return nil
		},
	}
}
