package awsprovider

import (
	"context"
	"fmt"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/models"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/sshutils"
)

// ConnectByName locates a running instance, builds its SSH surface from
// the pems key, and waits until sshd answers. This is the front door for
// every remote driver command.
func (p *AWSProvider) ConnectByName(
	ctx context.Context,
	name string,
) (sshutils.SSHConfiger, *models.Instance, error) {
	instance, err := p.FindInstanceByName(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	if !instance.IsRunning() {
		return nil, nil, fmt.Errorf(
			"instance %s is %s, not running; start it with 'jalusi instances start -i %s'",
			name,
			instance.State,
			name,
		)
	}

	sshConfig, err := p.SSHConfigForInstance(instance)
	if err != nil {
		return nil, nil, err
	}
	if err := sshConfig.WaitForSSH(
		ctx,
		sshutils.SSHRetryAttempts,
		sshutils.SSHRetryDelay,
	); err != nil {
		return nil, nil, err
	}
	return sshConfig, instance, nil
}
