package project

import (
	"github.com/spf13/cobra"
)

var (
	projectName string
	branchName  string
	repoOwner   string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Clone, update, and configure project checkouts on instances",
}

// GetProjectCmd builds the project command group.
func GetProjectCmd() *cobra.Command {
	projectCmd.PersistentFlags().
		StringVarP(&projectName, "project", "p", "", "project (repository) name")
	projectCmd.PersistentFlags().
		StringVarP(&branchName, "branch", "b", "", "branch to check out (falls back to master)")
	projectCmd.PersistentFlags().
		StringVar(&repoOwner, "owner", "", "GitHub owner (defaults to config github.owner)")
	_ = projectCmd.MarkPersistentFlagRequired("project")

	projectCmd.AddCommand(getCreateCmd())
	projectCmd.AddCommand(getUpdateCmd())
	projectCmd.AddCommand(getEnvCmd())
	return projectCmd
}
