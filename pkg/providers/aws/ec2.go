package awsprovider

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// LiveEC2Client wraps the EC2 client to implement EC2Clienter.
type LiveEC2Client struct {
	client *ec2.Client
}

func (c *LiveEC2Client) DescribeInstances(
	ctx context.Context,
	params *ec2.DescribeInstancesInput,
	optFns ...func(*ec2.Options),
) (*ec2.DescribeInstancesOutput, error) {
	return c.client.DescribeInstances(ctx, params, optFns...)
}

func (c *LiveEC2Client) RunInstances(
	ctx context.Context,
	params *ec2.RunInstancesInput,
	optFns ...func(*ec2.Options),
) (*ec2.RunInstancesOutput, error) {
	return c.client.RunInstances(ctx, params, optFns...)
}

func (c *LiveEC2Client) StartInstances(
	ctx context.Context,
	params *ec2.StartInstancesInput,
	optFns ...func(*ec2.Options),
) (*ec2.StartInstancesOutput, error) {
	return c.client.StartInstances(ctx, params, optFns...)
}

func (c *LiveEC2Client) StopInstances(
	ctx context.Context,
	params *ec2.StopInstancesInput,
	optFns ...func(*ec2.Options),
) (*ec2.StopInstancesOutput, error) {
	return c.client.StopInstances(ctx, params, optFns...)
}

func (c *LiveEC2Client) TerminateInstances(
	ctx context.Context,
	params *ec2.TerminateInstancesInput,
	optFns ...func(*ec2.Options),
) (*ec2.TerminateInstancesOutput, error) {
	return c.client.TerminateInstances(ctx, params, optFns...)
}

func (c *LiveEC2Client) DescribeImages(
	ctx context.Context,
	params *ec2.DescribeImagesInput,
	optFns ...func(*ec2.Options),
) (*ec2.DescribeImagesOutput, error) {
	return c.client.DescribeImages(ctx, params, optFns...)
}

func (c *LiveEC2Client) CreateKeyPair(
	ctx context.Context,
	params *ec2.CreateKeyPairInput,
	optFns ...func(*ec2.Options),
) (*ec2.CreateKeyPairOutput, error) {
	return c.client.CreateKeyPair(ctx, params, optFns...)
}

func (c *LiveEC2Client) DescribeKeyPairs(
	ctx context.Context,
	params *ec2.DescribeKeyPairsInput,
	optFns ...func(*ec2.Options),
) (*ec2.DescribeKeyPairsOutput, error) {
	return c.client.DescribeKeyPairs(ctx, params, optFns...)
}

func (c *LiveEC2Client) DeleteKeyPair(
	ctx context.Context,
	params *ec2.DeleteKeyPairInput,
	optFns ...func(*ec2.Options),
) (*ec2.DeleteKeyPairOutput, error) {
	return c.client.DeleteKeyPair(ctx, params, optFns...)
}

func (c *LiveEC2Client) CreateSecurityGroup(
	ctx context.Context,
	params *ec2.CreateSecurityGroupInput,
	optFns ...func(*ec2.Options),
) (*ec2.CreateSecurityGroupOutput, error) {
	return c.client.CreateSecurityGroup(ctx, params, optFns...)
}

func (c *LiveEC2Client) DescribeSecurityGroups(
	ctx context.Context,
	params *ec2.DescribeSecurityGroupsInput,
	optFns ...func(*ec2.Options),
) (*ec2.DescribeSecurityGroupsOutput, error) {
	return c.client.DescribeSecurityGroups(ctx, params, optFns...)
}

func (c *LiveEC2Client) AuthorizeSecurityGroupIngress(
	ctx context.Context,
	params *ec2.AuthorizeSecurityGroupIngressInput,
	optFns ...func(*ec2.Options),
) (*ec2.AuthorizeSecurityGroupIngressOutput, error) {
	return c.client.AuthorizeSecurityGroupIngress(ctx, params, optFns...)
}

func (c *LiveEC2Client) DeleteSecurityGroup(
	ctx context.Context,
	params *ec2.DeleteSecurityGroupInput,
	optFns ...func(*ec2.Options),
) (*ec2.DeleteSecurityGroupOutput, error) {
	return c.client.DeleteSecurityGroup(ctx, params, optFns...)
}

func (c *LiveEC2Client) CreateVolume(
	ctx context.Context,
	params *ec2.CreateVolumeInput,
	optFns ...func(*ec2.Options),
) (*ec2.CreateVolumeOutput, error) {
	return c.client.CreateVolume(ctx, params, optFns...)
}

func (c *LiveEC2Client) DescribeVolumes(
	ctx context.Context,
	params *ec2.DescribeVolumesInput,
	optFns ...func(*ec2.Options),
) (*ec2.DescribeVolumesOutput, error) {
	return c.client.DescribeVolumes(ctx, params, optFns...)
}

func (c *LiveEC2Client) AttachVolume(
	ctx context.Context,
	params *ec2.AttachVolumeInput,
	optFns ...func(*ec2.Options),
) (*ec2.AttachVolumeOutput, error) {
	return c.client.AttachVolume(ctx, params, optFns...)
}

func (c *LiveEC2Client) DetachVolume(
	ctx context.Context,
	params *ec2.DetachVolumeInput,
	optFns ...func(*ec2.Options),
) (*ec2.DetachVolumeOutput, error) {
	return c.client.DetachVolume(ctx, params, optFns...)
}

func (c *LiveEC2Client) DeleteVolume(
	ctx context.Context,
	params *ec2.DeleteVolumeInput,
	optFns ...func(*ec2.Options),
) (*ec2.DeleteVolumeOutput, error) {
	return c.client.DeleteVolume(ctx, params, optFns...)
}

func (c *LiveEC2Client) AllocateAddress(
	ctx context.Context,
	params *ec2.AllocateAddressInput,
	optFns ...func(*ec2.Options),
) (*ec2.AllocateAddressOutput, error) {
	return c.client.AllocateAddress(ctx, params, optFns...)
}

func (c *LiveEC2Client) DescribeAddresses(
	ctx context.Context,
	params *ec2.DescribeAddressesInput,
	optFns ...func(*ec2.Options),
) (*ec2.DescribeAddressesOutput, error) {
	return c.client.DescribeAddresses(ctx, params, optFns...)
}

func (c *LiveEC2Client) AssociateAddress(
	ctx context.Context,
	params *ec2.AssociateAddressInput,
	optFns ...func(*ec2.Options),
) (*ec2.AssociateAddressOutput, error) {
	return c.client.AssociateAddress(ctx, params, optFns...)
}

func (c *LiveEC2Client) DisassociateAddress(
	ctx context.Context,
	params *ec2.DisassociateAddressInput,
	optFns ...func(*ec2.Options),
) (*ec2.DisassociateAddressOutput, error) {
	return c.client.DisassociateAddress(ctx, params, optFns...)
}

func (c *LiveEC2Client) ReleaseAddress(
	ctx context.Context,
	params *ec2.ReleaseAddressInput,
	optFns ...func(*ec2.Options),
) (*ec2.ReleaseAddressOutput, error) {
	return c.client.ReleaseAddress(ctx, params, optFns...)
}

func (c *LiveEC2Client) DescribeVpcs(
	ctx context.Context,
	params *ec2.DescribeVpcsInput,
	optFns ...func(*ec2.Options),
) (*ec2.DescribeVpcsOutput, error) {
	return c.client.DescribeVpcs(ctx, params, optFns...)
}

func (c *LiveEC2Client) CreateTags(
	ctx context.Context,
	params *ec2.CreateTagsInput,
	optFns ...func(*ec2.Options),
) (*ec2.CreateTagsOutput, error) {
	return c.client.CreateTags(ctx, params, optFns...)
}
