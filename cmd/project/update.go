package project

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/display"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/gitops"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/models"
	awsprovider "github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/providers/aws"
)

const updateConcurrency = 4

var (
	updateInstanceName string
	updateAll          bool
	updateRestart      bool
)

func getUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Pull the project checkout, optionally restarting services",
		Long: `Fetches and pulls the checkout (checking out --branch with a
master fallback). With --restart, compose services restart only when new
commits actually arrived. --all updates every running instance.`,
		RunE: runUpdate,
	}
	cmd.Flags().StringVarP(&updateInstanceName, "instance-name", "i", "", "instance Name tag")
	cmd.Flags().BoolVar(&updateAll, "all", false, "update every running instance")
	cmd.Flags().BoolVar(&updateRestart, "restart", false, "restart services when commits arrived")
	cmd.MarkFlagsOneRequired("instance-name", "all")
	cmd.MarkFlagsMutuallyExclusive("instance-name", "all")
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	owner, err := resolveOwner()
	if err != nil {
		return err
	}
	provider, err := awsprovider.NewAWSProviderFunc(cmd.Context(), "")
	if err != nil {
		return err
	}

	if !updateAll {
		if err := updateOne(cmd, provider, owner, updateInstanceName); err != nil {
			return err
		}
		display.Okf(os.Stdout, "Project %s updated on %s", projectName, updateInstanceName)
		return nil
	}

	running, err := provider.ListInstances(cmd.Context(), "running", "")
	if err != nil {
		return err
	}
	if len(running) == 0 {
		return fmt.Errorf("no running instances to update")
	}

	// Bounded fan-out; one slow host must not serialize the rest, and
	// one failed host must not stop them.
	var mu sync.Mutex
	failures := map[string]error{}

	group, ctx := errgroup.WithContext(cmd.Context())
	group.SetLimit(updateConcurrency)
	for _, instance := range running {
		if instance.Name == "" {
			continue
		}
		group.Go(func() error {
			if err := updateOneCtx(ctx, provider, owner, instance); err != nil {
				mu.Lock()
				failures[instance.Name] = err
				mu.Unlock()
				logger.Get().Warnf("Update of %s failed: %v", instance.Name, err)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	updated := 0
	for _, instance := range running {
		if instance.Name == "" {
			continue
		}
		if failErr, failed := failures[instance.Name]; failed {
			display.Failf(os.Stdout, "%s: %v", instance.Name, failErr)
		} else {
			display.Okf(os.Stdout, "%s: updated", instance.Name)
			updated++
		}
	}
	if len(failures) > 0 {
		return fmt.Errorf("%d of %d instances failed to update", len(failures), updated+len(failures))
	}
	return nil
}

func updateOne(
	cmd *cobra.Command,
	provider *awsprovider.AWSProvider,
	owner, name string,
) error {
	sshConfig, _, err := provider.ConnectByName(cmd.Context(), name)
	if err != nil {
		return err
	}
	return gitops.NewDriver(sshConfig, owner, projectName).
		Update(cmd.Context(), branchName, updateRestart)
}

func updateOneCtx(
	ctx context.Context,
	provider *awsprovider.AWSProvider,
	owner string,
	instance models.Instance,
) error {
	sshConfig, _, err := provider.ConnectByName(ctx, instance.Name)
	if err != nil {
		return err
	}
	return gitops.NewDriver(sshConfig, owner, projectName).
		Update(ctx, branchName, updateRestart)
}
