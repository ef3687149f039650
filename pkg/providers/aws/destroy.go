package awsprovider

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2_types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/cenkalti/backoff/v4"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/models"
)

const (
	sgDeleteInitialInterval = 5 * time.Second
	sgDeleteMaxInterval     = 20 * time.Second
	sgDeleteMaxElapsed      = 3 * time.Minute
)

// DestroyInfrastructure tears down the bundle named name in reverse
// dependency order. Each step logs its failure and the run continues, so
// a partially deleted bundle converges over repeated invocations. The
// instance is always terminated before the volume and bucket go.
func (p *AWSProvider) DestroyInfrastructure(
	ctx context.Context,
	name string,
) *models.TeardownReport {
	l := logger.Get()
	report := &models.TeardownReport{}

	l.Infof("Destroying infrastructure bundle %s in %s", name, p.Region)

	report.Add("terminate instance", p.terminateInstances(ctx, name))
	report.Add("release Elastic IP", p.releaseElasticIP(ctx, name))
	report.Add("delete volume", p.deleteVolumeByName(ctx, name))
	report.Add("delete S3 bucket", p.deleteBucketStep(ctx, name))
	report.Add("delete key pair", p.deleteKeyPair(ctx, name))
	report.Add("delete security group", p.deleteSecurityGroup(ctx, name))
	report.Add("delete instance profile", p.deleteInstanceProfileStep(ctx, name))
	report.Add("delete IAM role", p.deleteRoleStep(ctx, name))
	report.Add("delete IAM policy", p.deletePolicyStep(ctx, name))

	if report.Ok() {
		l.Infof("Infrastructure bundle %s destroyed", name)
	} else {
		for _, step := range report.Failed() {
			l.Warnf("Teardown step %q failed: %v", step.Step, step.Err)
		}
	}
	return report
}

// terminateInstances terminates every live instance named name and waits
// for each to reach terminated. Volume and bucket deletion depend on
// this completing first.
func (p *AWSProvider) terminateInstances(ctx context.Context, name string) error {
	l := logger.Get()

	matches, err := p.findInstancesByName(ctx, name)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		l.Infof("No live instances named %s", name)
		return nil
	}

	ids := make([]string, len(matches))
	for i, instance := range matches {
		ids[i] = aws.ToString(instance.InstanceId)
	}
	l.Infof("Terminating instances %v", ids)
	if _, err := p.EC2Client.TerminateInstances(ctx, &ec2.TerminateInstancesInput{
		InstanceIds: ids,
	}); err != nil {
		return fmt.Errorf("failed to terminate instances %v: %w", ids, err)
	}
	for _, id := range ids {
		if err := p.WaitForInstanceTerminated(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (p *AWSProvider) releaseElasticIP(ctx context.Context, name string) error {
	l := logger.Get()

	addresses, err := p.EC2Client.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{
		Filters: []ec2_types.Filter{
			{
				Name:   aws.String("tag:Name"),
				Values: []string{name},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to describe addresses for %s: %w", name, err)
	}
	if len(addresses.Addresses) == 0 {
		l.Infof("No Elastic IP tagged %s", name)
		return nil
	}

	for _, address := range addresses.Addresses {
		if associationID := aws.ToString(address.AssociationId); associationID != "" {
			if _, err := p.EC2Client.DisassociateAddress(ctx, &ec2.DisassociateAddressInput{
				AssociationId: aws.String(associationID),
			}); err != nil && !IsNotFoundError(err) {
				return fmt.Errorf("failed to disassociate Elastic IP %s: %w",
					aws.ToString(address.PublicIp), err)
			}
		}
		if _, err := p.EC2Client.ReleaseAddress(ctx, &ec2.ReleaseAddressInput{
			AllocationId: address.AllocationId,
		}); err != nil && !IsNotFoundError(err) {
			return fmt.Errorf("failed to release Elastic IP %s: %w",
				aws.ToString(address.PublicIp), err)
		}
		l.Infof("Released Elastic IP %s", aws.ToString(address.PublicIp))
	}
	return nil
}

func (p *AWSProvider) deleteVolumeByName(ctx context.Context, name string) error {
	volume, err := p.FindVolumeByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrVolumeNotFound) {
			logger.Get().Infof("No volume named %s", name)
			return nil
		}
		return err
	}
	return p.DestroyVolume(ctx, volume)
}

func (p *AWSProvider) deleteBucketStep(ctx context.Context, name string) error {
	exists, err := p.BucketExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		logger.Get().Infof("No S3 bucket named %s", name)
		return nil
	}
	return p.DeleteBucket(ctx, name)
}

// deleteKeyPair removes the key pair in AWS and the local pem file.
func (p *AWSProvider) deleteKeyPair(ctx context.Context, name string) error {
	l := logger.Get()

	if _, err := p.EC2Client.DeleteKeyPair(ctx, &ec2.DeleteKeyPairInput{
		KeyName: aws.String(name),
	}); err != nil && !IsNotFoundError(err) {
		return fmt.Errorf("failed to delete key pair %s: %w", name, err)
	}

	keyPath := KeyFilePath(name)
	if err := os.Remove(keyPath); err != nil {
		if os.IsNotExist(err) {
			l.Infof("Local key file %s already gone", keyPath)
			return nil
		}
		return fmt.Errorf("failed to remove local key file %s: %w", keyPath, err)
	}
	l.Infof("Deleted key pair %s and %s", name, keyPath)
	return nil
}

// deleteSecurityGroup retries on DependencyViolation: network interfaces
// of a just-terminated instance can keep the group busy for a while.
func (p *AWSProvider) deleteSecurityGroup(ctx context.Context, name string) error {
	l := logger.Get()

	groups, err := p.EC2Client.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
		Filters: []ec2_types.Filter{
			{
				Name:   aws.String("group-name"),
				Values: []string{name},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to look up security group %s: %w", name, err)
	}
	if len(groups.SecurityGroups) == 0 {
		l.Infof("No security group named %s", name)
		return nil
	}
	groupID := aws.ToString(groups.SecurityGroups[0].GroupId)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = sgDeleteInitialInterval
	b.MaxInterval = sgDeleteMaxInterval
	b.MaxElapsedTime = sgDeleteMaxElapsed

	operation := func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		_, err := p.EC2Client.DeleteSecurityGroup(ctx, &ec2.DeleteSecurityGroupInput{
			GroupId: aws.String(groupID),
		})
		if err == nil || IsNotFoundError(err) {
			return nil
		}
		if IsAWSErrorCode(err, "DependencyViolation") {
			l.Debugf("Security group %s still in use, retrying", groupID)
			return err
		}
		return backoff.Permanent(err)
	}
	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return fmt.Errorf("failed to delete security group %s: %w", name, err)
	}
	l.Infof("Deleted security group %s (%s)", name, groupID)
	return nil
}

func (p *AWSProvider) deleteInstanceProfileStep(ctx context.Context, name string) error {
	return p.DeleteInstanceProfile(ctx, name)
}

func (p *AWSProvider) deleteRoleStep(ctx context.Context, name string) error {
	return p.DeleteRole(ctx, name)
}

func (p *AWSProvider) deletePolicyStep(ctx context.Context, name string) error {
	return p.DeletePolicy(ctx, name)
}
