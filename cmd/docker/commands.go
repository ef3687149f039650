package docker

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/display"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/envfile"
)

var (
	upBuild     bool
	upService   string
	restartSvc  string
	logsService string
	logsTail    int
	logsFollow  bool
	aggressive  bool
)

func getInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install Docker Engine and the Compose plugin on the instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			driver, err := connectDriver(cmd.Context())
			if err != nil {
				return err
			}
			if err := driver.Install(cmd.Context()); err != nil {
				return err
			}
			display.Okf(os.Stdout, "Docker installed on %s", instanceName)
			return nil
		},
	}
}

func getUpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Start the project's services (docker compose up -d)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProjectFlag(); err != nil {
				return err
			}
			driver, err := connectDriver(cmd.Context())
			if err != nil {
				return err
			}
			if err := driver.Up(cmd.Context(), upBuild, upService); err != nil {
				return err
			}
			display.Okf(os.Stdout, "Services for %s are up on %s", projectName, instanceName)
			return nil
		},
	}
	cmd.Flags().BoolVar(&upBuild, "build", false, "rebuild images before starting")
	cmd.Flags().StringVar(&upService, "service", "", "limit to one service")
	return cmd
}

func getDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Stop and remove the project's services",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProjectFlag(); err != nil {
				return err
			}
			driver, err := connectDriver(cmd.Context())
			if err != nil {
				return err
			}
			if err := driver.Down(cmd.Context()); err != nil {
				return err
			}
			display.Okf(os.Stdout, "Services for %s are down on %s", projectName, instanceName)
			return nil
		},
	}
}

func getRestartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restart",
		Short: "Restart the project's services",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProjectFlag(); err != nil {
				return err
			}
			driver, err := connectDriver(cmd.Context())
			if err != nil {
				return err
			}
			if err := driver.Restart(cmd.Context(), restartSvc); err != nil {
				return err
			}
			display.Okf(os.Stdout, "Services for %s restarted on %s", projectName, instanceName)
			return nil
		},
	}
	cmd.Flags().StringVar(&restartSvc, "service", "", "limit to one service")
	return cmd
}

func getStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show compose service status (docker compose ps)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProjectFlag(); err != nil {
				return err
			}
			driver, err := connectDriver(cmd.Context())
			if err != nil {
				return err
			}
			out, err := driver.Status(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}

func getLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Fetch or follow service logs",
		Long: `Without --follow, prints the last --tail lines and exits. With
--follow, streams until interrupted; Ctrl-C ends the stream and exits 0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProjectFlag(); err != nil {
				return err
			}
			driver, err := connectDriver(cmd.Context())
			if err != nil {
				return err
			}
			return driver.Logs(cmd.Context(), logsService, logsTail, logsFollow, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&logsService, "service", "", "limit to one service")
	cmd.Flags().IntVar(&logsTail, "tail", 100, "number of lines to show")
	cmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "stream logs until interrupted")
	return cmd
}

func getCleanupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Reclaim Docker disk space on the instance",
		Long: `Standard mode prunes stopped containers, dangling images, unused
volumes and networks. --aggressive first force-removes ALL containers,
images, volumes, and non-default networks, then prunes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			driver, err := connectDriver(cmd.Context())
			if err != nil {
				return err
			}
			if err := driver.Cleanup(cmd.Context(), aggressive); err != nil {
				return err
			}
			display.Okf(os.Stdout, "Docker cleanup finished on %s", instanceName)
			return nil
		},
	}
	cmd.Flags().BoolVar(&aggressive, "aggressive", false, "force-remove everything first")
	return cmd
}

func getInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show Docker engine and Compose versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			driver, err := connectDriver(cmd.Context())
			if err != nil {
				return err
			}
			out, err := driver.Info(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}

func getDiskUsageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disk-usage",
		Short: "Show Docker disk usage (docker system df -v)",
		RunE: func(cmd *cobra.Command, args []string) error {
			driver, err := connectDriver(cmd.Context())
			if err != nil {
				return err
			}
			out, err := driver.DiskUsage(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}

func getBuildEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build-env",
		Short: "Generate the project env file locally and push it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireProjectFlag(); err != nil {
				return err
			}
			if _, err := envfile.Generate(projectName); err != nil {
				return err
			}
			sshConfig, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			if err := envfile.Deploy(cmd.Context(), sshConfig, projectName); err != nil {
				return err
			}
			display.Okf(os.Stdout, "Env file for %s deployed to %s", projectName, instanceName)
			return nil
		},
	}
}

func requireProjectFlag() error {
	if projectName == "" {
		return fmt.Errorf("--project is required for compose operations")
	}
	return nil
}
