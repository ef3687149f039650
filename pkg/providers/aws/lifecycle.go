package awsprovider

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/models"
)

// StartInstance starts the named instance and waits for it to reach
// running. Starting an already-running instance is a logged no-op.
func (p *AWSProvider) StartInstance(ctx context.Context, name string) (*models.Instance, error) {
	l := logger.Get()

	instance, err := p.FindInstanceByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if instance.IsRunning() {
		l.Infof("Instance %s (%s) is already running", name, instance.ID)
		return instance, nil
	}

	l.Infof("Starting instance %s (%s)", name, instance.ID)
	if _, err := p.EC2Client.StartInstances(ctx, &ec2.StartInstancesInput{
		InstanceIds: []string{instance.ID},
	}); err != nil {
		return nil, fmt.Errorf("failed to start instance %s: %w", name, err)
	}

	if err := p.WaitForInstanceRunning(ctx, instance.ID); err != nil {
		return nil, err
	}
	return p.FindInstanceByName(ctx, name)
}

// StopInstance stops the named instance and waits for it to reach
// stopped. Stopping an already-stopped instance is a logged no-op.
func (p *AWSProvider) StopInstance(ctx context.Context, name string) (*models.Instance, error) {
	l := logger.Get()

	instance, err := p.FindInstanceByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if instance.IsStopped() {
		l.Infof("Instance %s (%s) is already stopped", name, instance.ID)
		return instance, nil
	}

	l.Infof("Stopping instance %s (%s)", name, instance.ID)
	if _, err := p.EC2Client.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: []string{instance.ID},
	}); err != nil {
		return nil, fmt.Errorf("failed to stop instance %s: %w", name, err)
	}

	if err := p.WaitForInstanceStopped(ctx, instance.ID); err != nil {
		return nil, err
	}
	return p.FindInstanceByName(ctx, name)
}

// The SDK waiters take any DescribeInstances/DescribeVolumes-shaped
// client, so EC2Clienter (and its mock) satisfies them. Each waiter sits
// behind an override var so tests can make waits instant.

var waitInstanceRunningFunc = func(
	ctx context.Context,
	client ec2.DescribeInstancesAPIClient,
	input *ec2.DescribeInstancesInput,
	maxWait time.Duration,
) error {
	return ec2.NewInstanceRunningWaiter(client).Wait(ctx, input, maxWait)
}

var waitInstanceStoppedFunc = func(
	ctx context.Context,
	client ec2.DescribeInstancesAPIClient,
	input *ec2.DescribeInstancesInput,
	maxWait time.Duration,
) error {
	return ec2.NewInstanceStoppedWaiter(client).Wait(ctx, input, maxWait)
}

var waitInstanceTerminatedFunc = func(
	ctx context.Context,
	client ec2.DescribeInstancesAPIClient,
	input *ec2.DescribeInstancesInput,
	maxWait time.Duration,
) error {
	return ec2.NewInstanceTerminatedWaiter(client).Wait(ctx, input, maxWait)
}

var waitVolumeAvailableFunc = func(
	ctx context.Context,
	client ec2.DescribeVolumesAPIClient,
	input *ec2.DescribeVolumesInput,
	maxWait time.Duration,
) error {
	return ec2.NewVolumeAvailableWaiter(client).Wait(ctx, input, maxWait)
}

var waitVolumeInUseFunc = func(
	ctx context.Context,
	client ec2.DescribeVolumesAPIClient,
	input *ec2.DescribeVolumesInput,
	maxWait time.Duration,
) error {
	return ec2.NewVolumeInUseWaiter(client).Wait(ctx, input, maxWait)
}

func (p *AWSProvider) WaitForInstanceRunning(ctx context.Context, instanceID string) error {
	if err := waitInstanceRunningFunc(ctx, p.EC2Client, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	}, InstanceStateTimeout); err != nil {
		return fmt.Errorf("instance %s did not reach running: %w", instanceID, err)
	}
	return nil
}

func (p *AWSProvider) WaitForInstanceStopped(ctx context.Context, instanceID string) error {
	if err := waitInstanceStoppedFunc(ctx, p.EC2Client, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	}, InstanceStateTimeout); err != nil {
		return fmt.Errorf("instance %s did not reach stopped: %w", instanceID, err)
	}
	return nil
}

func (p *AWSProvider) WaitForInstanceTerminated(ctx context.Context, instanceID string) error {
	if err := waitInstanceTerminatedFunc(ctx, p.EC2Client, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	}, TerminateStateTimeout); err != nil {
		return fmt.Errorf("instance %s did not reach terminated: %w", instanceID, err)
	}
	return nil
}

func (p *AWSProvider) WaitForVolumeAvailable(ctx context.Context, volumeID string) error {
	if err := waitVolumeAvailableFunc(ctx, p.EC2Client, &ec2.DescribeVolumesInput{
		VolumeIds: []string{volumeID},
	}, VolumeStateTimeout); err != nil {
		return fmt.Errorf("volume %s did not become available: %w", volumeID, err)
	}
	return nil
}

func (p *AWSProvider) WaitForVolumeInUse(ctx context.Context, volumeID string) error {
	if err := waitVolumeInUseFunc(ctx, p.EC2Client, &ec2.DescribeVolumesInput{
		VolumeIds: []string{volumeID},
	}, VolumeStateTimeout); err != nil {
		return fmt.Errorf("volume %s did not become in-use: %w", volumeID, err)
	}
	return nil
}
