//nolint:lll
package awsprovider

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// EC2Clienter is the slice of the EC2 API this tool drives. The live
// implementation is a pass-through wrapper; tests substitute a mock.
// DescribeInstances and DescribeVolumes keep the SDK signatures, so the
// interface also satisfies the SDK's paginator and waiter client types.
type EC2Clienter interface {
	DescribeInstances(
		ctx context.Context,
		params *ec2.DescribeInstancesInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DescribeInstancesOutput, error)
	RunInstances(
		ctx context.Context,
		params *ec2.RunInstancesInput,
		optFns ...func(*ec2.Options),
	) (*ec2.RunInstancesOutput, error)
	StartInstances(
		ctx context.Context,
		params *ec2.StartInstancesInput,
		optFns ...func(*ec2.Options),
	) (*ec2.StartInstancesOutput, error)
	StopInstances(
		ctx context.Context,
		params *ec2.StopInstancesInput,
		optFns ...func(*ec2.Options),
	) (*ec2.StopInstancesOutput, error)
	TerminateInstances(
		ctx context.Context,
		params *ec2.TerminateInstancesInput,
		optFns ...func(*ec2.Options),
	) (*ec2.TerminateInstancesOutput, error)
	DescribeImages(
		ctx context.Context,
		params *ec2.DescribeImagesInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DescribeImagesOutput, error)
	CreateKeyPair(
		ctx context.Context,
		params *ec2.CreateKeyPairInput,
		optFns ...func(*ec2.Options),
	) (*ec2.CreateKeyPairOutput, error)
	DescribeKeyPairs(
		ctx context.Context,
		params *ec2.DescribeKeyPairsInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DescribeKeyPairsOutput, error)
	DeleteKeyPair(
		ctx context.Context,
		params *ec2.DeleteKeyPairInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DeleteKeyPairOutput, error)
	CreateSecurityGroup(
		ctx context.Context,
		params *ec2.CreateSecurityGroupInput,
		optFns ...func(*ec2.Options),
	) (*ec2.CreateSecurityGroupOutput, error)
	DescribeSecurityGroups(
		ctx context.Context,
		params *ec2.DescribeSecurityGroupsInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DescribeSecurityGroupsOutput, error)
	AuthorizeSecurityGroupIngress(
		ctx context.Context,
		params *ec2.AuthorizeSecurityGroupIngressInput,
		optFns ...func(*ec2.Options),
	) (*ec2.AuthorizeSecurityGroupIngressOutput, error)
	DeleteSecurityGroup(
		ctx context.Context,
		params *ec2.DeleteSecurityGroupInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DeleteSecurityGroupOutput, error)
	CreateVolume(
		ctx context.Context,
		params *ec2.CreateVolumeInput,
		optFns ...func(*ec2.Options),
	) (*ec2.CreateVolumeOutput, error)
	DescribeVolumes(
		ctx context.Context,
		params *ec2.DescribeVolumesInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DescribeVolumesOutput, error)
	AttachVolume(
		ctx context.Context,
		params *ec2.AttachVolumeInput,
		optFns ...func(*ec2.Options),
	) (*ec2.AttachVolumeOutput, error)
	DetachVolume(
		ctx context.Context,
		params *ec2.DetachVolumeInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DetachVolumeOutput, error)
	DeleteVolume(
		ctx context.Context,
		params *ec2.DeleteVolumeInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DeleteVolumeOutput, error)
	AllocateAddress(
		ctx context.Context,
		params *ec2.AllocateAddressInput,
		optFns ...func(*ec2.Options),
	) (*ec2.AllocateAddressOutput, error)
	DescribeAddresses(
		ctx context.Context,
		params *ec2.DescribeAddressesInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DescribeAddressesOutput, error)
	AssociateAddress(
		ctx context.Context,
		params *ec2.AssociateAddressInput,
		optFns ...func(*ec2.Options),
	) (*ec2.AssociateAddressOutput, error)
	DisassociateAddress(
		ctx context.Context,
		params *ec2.DisassociateAddressInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DisassociateAddressOutput, error)
	ReleaseAddress(
		ctx context.Context,
		params *ec2.ReleaseAddressInput,
		optFns ...func(*ec2.Options),
	) (*ec2.ReleaseAddressOutput, error)
	DescribeVpcs(
		ctx context.Context,
		params *ec2.DescribeVpcsInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DescribeVpcsOutput, error)
	CreateTags(
		ctx context.Context,
		params *ec2.CreateTagsInput,
		optFns ...func(*ec2.Options),
	) (*ec2.CreateTagsOutput, error)
}

// IAMClienter covers the role/policy/instance-profile bundle.
type IAMClienter interface {
	GetRole(
		ctx context.Context,
		params *iam.GetRoleInput,
		optFns ...func(*iam.Options),
	) (*iam.GetRoleOutput, error)
	CreateRole(
		ctx context.Context,
		params *iam.CreateRoleInput,
		optFns ...func(*iam.Options),
	) (*iam.CreateRoleOutput, error)
	DeleteRole(
		ctx context.Context,
		params *iam.DeleteRoleInput,
		optFns ...func(*iam.Options),
	) (*iam.DeleteRoleOutput, error)
	GetPolicy(
		ctx context.Context,
		params *iam.GetPolicyInput,
		optFns ...func(*iam.Options),
	) (*iam.GetPolicyOutput, error)
	CreatePolicy(
		ctx context.Context,
		params *iam.CreatePolicyInput,
		optFns ...func(*iam.Options),
	) (*iam.CreatePolicyOutput, error)
	DeletePolicy(
		ctx context.Context,
		params *iam.DeletePolicyInput,
		optFns ...func(*iam.Options),
	) (*iam.DeletePolicyOutput, error)
	AttachRolePolicy(
		ctx context.Context,
		params *iam.AttachRolePolicyInput,
		optFns ...func(*iam.Options),
	) (*iam.AttachRolePolicyOutput, error)
	DetachRolePolicy(
		ctx context.Context,
		params *iam.DetachRolePolicyInput,
		optFns ...func(*iam.Options),
	) (*iam.DetachRolePolicyOutput, error)
	GetInstanceProfile(
		ctx context.Context,
		params *iam.GetInstanceProfileInput,
		optFns ...func(*iam.Options),
	) (*iam.GetInstanceProfileOutput, error)
	CreateInstanceProfile(
		ctx context.Context,
		params *iam.CreateInstanceProfileInput,
		optFns ...func(*iam.Options),
	) (*iam.CreateInstanceProfileOutput, error)
	DeleteInstanceProfile(
		ctx context.Context,
		params *iam.DeleteInstanceProfileInput,
		optFns ...func(*iam.Options),
	) (*iam.DeleteInstanceProfileOutput, error)
	AddRoleToInstanceProfile(
		ctx context.Context,
		params *iam.AddRoleToInstanceProfileInput,
		optFns ...func(*iam.Options),
	) (*iam.AddRoleToInstanceProfileOutput, error)
	RemoveRoleFromInstanceProfile(
		ctx context.Context,
		params *iam.RemoveRoleFromInstanceProfileInput,
		optFns ...func(*iam.Options),
	) (*iam.RemoveRoleFromInstanceProfileOutput, error)
}

// S3Clienter covers bucket lifecycle and emptying.
type S3Clienter interface {
	HeadBucket(
		ctx context.Context,
		params *s3.HeadBucketInput,
		optFns ...func(*s3.Options),
	) (*s3.HeadBucketOutput, error)
	CreateBucket(
		ctx context.Context,
		params *s3.CreateBucketInput,
		optFns ...func(*s3.Options),
	) (*s3.CreateBucketOutput, error)
	PutBucketVersioning(
		ctx context.Context,
		params *s3.PutBucketVersioningInput,
		optFns ...func(*s3.Options),
	) (*s3.PutBucketVersioningOutput, error)
	DeleteBucket(
		ctx context.Context,
		params *s3.DeleteBucketInput,
		optFns ...func(*s3.Options),
	) (*s3.DeleteBucketOutput, error)
	ListBuckets(
		ctx context.Context,
		params *s3.ListBucketsInput,
		optFns ...func(*s3.Options),
	) (*s3.ListBucketsOutput, error)
	ListObjectsV2(
		ctx context.Context,
		params *s3.ListObjectsV2Input,
		optFns ...func(*s3.Options),
	) (*s3.ListObjectsV2Output, error)
	DeleteObjects(
		ctx context.Context,
		params *s3.DeleteObjectsInput,
		optFns ...func(*s3.Options),
	) (*s3.DeleteObjectsOutput, error)
}

type SSMClienter interface {
	GetParameter(
		ctx context.Context,
		params *ssm.GetParameterInput,
		optFns ...func(*ssm.Options),
	) (*ssm.GetParameterOutput, error)
}

type STSClienter interface {
	GetCallerIdentity(
		ctx context.Context,
		params *sts.GetCallerIdentityInput,
		optFns ...func(*sts.Options),
	) (*sts.GetCallerIdentityOutput, error)
}
