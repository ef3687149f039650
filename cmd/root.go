package cmd

import (
	"context"
	"fmt"
	"os"
	"sync"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	dockercmd "github.com/charlessiwelejalusi/jalusi-aws-handler/cmd/docker"
	infracmd "github.com/charlessiwelejalusi/jalusi-aws-handler/cmd/infra"
	instancescmd "github.com/charlessiwelejalusi/jalusi-aws-handler/cmd/instances"
	nginxcmd "github.com/charlessiwelejalusi/jalusi-aws-handler/cmd/nginx"
	projectcmd "github.com/charlessiwelejalusi/jalusi-aws-handler/cmd/project"
	volumescmd "github.com/charlessiwelejalusi/jalusi-aws-handler/cmd/volumes"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/display"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
)

var (
	cfgFile     string
	verboseMode bool
	awsRegion   string
)

var rootCmd = &cobra.Command{
	Use:   "jalusi",
	Short: "Manage EC2 deployments and the services running on them",
	Long: `jalusi provisions and tears down AWS infrastructure bundles (EC2
instance, EBS volume, key pair, S3 bucket, security group, IAM role and
instance profile, optional Elastic IP) under one name tag, and drives
Docker Compose, git, env-file, and nginx operations on the instances
over SSH.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// registerOnce guards subcommand registration; the Get*Cmd
// constructors add flags to package-level commands, so running them
// twice would panic on duplicate flag names.
var registerOnce sync.Once

// Execute runs the command tree under ctx, which main cancels on
// SIGINT or SIGTERM. Any failure exits 1 after a single styled error
// line; commands never os.Exit on their own.
func Execute(ctx context.Context) error {
	registerOnce.Do(func() {
		rootCmd.AddCommand(instancescmd.GetInstancesCmd())
		rootCmd.AddCommand(volumescmd.GetVolumesCmd())
		rootCmd.AddCommand(infracmd.GetInfraCmd())
		rootCmd.AddCommand(dockercmd.GetDockerCmd())
		rootCmd.AddCommand(projectcmd.GetProjectCmd())
		rootCmd.AddCommand(nginxcmd.GetNginxCmd())
		rootCmd.AddCommand(getDiagnoseCmd())
	})

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		display.Failf(os.Stderr, "%v", err)
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.jalusi.yaml)")
	rootCmd.PersistentFlags().
		BoolVarP(&verboseMode, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().
		StringVar(&awsRegion, "region", "", "AWS region (overrides config)")
}

// initConfig loads the config file, environment overrides, and defaults
// before any command runs.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".jalusi")
	}

	viper.SetEnvPrefix("JALUSI")
	viper.AutomaticEnv()

	viper.SetDefault("aws.region", "af-south-1")
	viper.SetDefault("aws.remote_user", "ec2-user")
	viper.SetDefault("paths.pems", "pems")
	viper.SetDefault("paths.pacs", "pacs")
	viper.SetDefault("paths.envs", "envs")
	viper.SetDefault("paths.nginx", "nginx.conf")
	viper.SetDefault("paths.access_key_file", "aws_access_key_id/aws-handler.txt")
	viper.SetDefault("paths.secret_key_file", "aws_secret_access_key/aws-handler.txt")
	viper.SetDefault("general.log_level", "info")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if awsRegion != "" {
		viper.Set("aws.region", awsRegion)
	}
	if verboseMode {
		viper.Set("general.log_level", "debug")
	}

	logger.InitLoggerOutputs()
	logger.InitProduction()
}
