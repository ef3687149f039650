package awsprovider

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/mock"
)

// Testify mocks for the service client seams. They live in the package
// (not a _test.go file) so command packages can drive them too.

type MockEC2Client struct {
	mock.Mock
}

var _ EC2Clienter = (*MockEC2Client)(nil)

func (m *MockEC2Client) DescribeInstances(
	ctx context.Context,
	params *ec2.DescribeInstancesInput,
	optFns ...func(*ec2.Options),
) (*ec2.DescribeInstancesOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.DescribeInstancesOutput), args.Error(1)
}

func (m *MockEC2Client) RunInstances(
	ctx context.Context,
	params *ec2.RunInstancesInput,
	optFns ...func(*ec2.Options),
) (*ec2.RunInstancesOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.RunInstancesOutput), args.Error(1)
}

func (m *MockEC2Client) StartInstances(
	ctx context.Context,
	params *ec2.StartInstancesInput,
	optFns ...func(*ec2.Options),
) (*ec2.StartInstancesOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.StartInstancesOutput), args.Error(1)
}

func (m *MockEC2Client) StopInstances(
	ctx context.Context,
	params *ec2.StopInstancesInput,
	optFns ...func(*ec2.Options),
) (*ec2.StopInstancesOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.StopInstancesOutput), args.Error(1)
}

func (m *MockEC2Client) TerminateInstances(
	ctx context.Context,
	params *ec2.TerminateInstancesInput,
	optFns ...func(*ec2.Options),
) (*ec2.TerminateInstancesOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.TerminateInstancesOutput), args.Error(1)
}

func (m *MockEC2Client) DescribeImages(
	ctx context.Context,
	params *ec2.DescribeImagesInput,
	optFns ...func(*ec2.Options),
) (*ec2.DescribeImagesOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.DescribeImagesOutput), args.Error(1)
}

func (m *MockEC2Client) CreateKeyPair(
	ctx context.Context,
	params *ec2.CreateKeyPairInput,
	optFns ...func(*ec2.Options),
) (*ec2.CreateKeyPairOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.CreateKeyPairOutput), args.Error(1)
}

func (m *MockEC2Client) DescribeKeyPairs(
	ctx context.Context,
	params *ec2.DescribeKeyPairsInput,
	optFns ...func(*ec2.Options),
) (*ec2.DescribeKeyPairsOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.DescribeKeyPairsOutput), args.Error(1)
}

func (m *MockEC2Client) DeleteKeyPair(
	ctx context.Context,
	params *ec2.DeleteKeyPairInput,
	optFns ...func(*ec2.Options),
) (*ec2.DeleteKeyPairOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.DeleteKeyPairOutput), args.Error(1)
}

func (m *MockEC2Client) CreateSecurityGroup(
	ctx context.Context,
	params *ec2.CreateSecurityGroupInput,
	optFns ...func(*ec2.Options),
) (*ec2.CreateSecurityGroupOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.CreateSecurityGroupOutput), args.Error(1)
}

func (m *MockEC2Client) DescribeSecurityGroups(
	ctx context.Context,
	params *ec2.DescribeSecurityGroupsInput,
	optFns ...func(*ec2.Options),
) (*ec2.DescribeSecurityGroupsOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.DescribeSecurityGroupsOutput), args.Error(1)
}

func (m *MockEC2Client) AuthorizeSecurityGroupIngress(
	ctx context.Context,
	params *ec2.AuthorizeSecurityGroupIngressInput,
	optFns ...func(*ec2.Options),
) (*ec2.AuthorizeSecurityGroupIngressOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.AuthorizeSecurityGroupIngressOutput), args.Error(1)
}

func (m *MockEC2Client) DeleteSecurityGroup(
	ctx context.Context,
	params *ec2.DeleteSecurityGroupInput,
	optFns ...func(*ec2.Options),
) (*ec2.DeleteSecurityGroupOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.DeleteSecurityGroupOutput), args.Error(1)
}

func (m *MockEC2Client) CreateVolume(
	ctx context.Context,
	params *ec2.CreateVolumeInput,
	optFns ...func(*ec2.Options),
) (*ec2.CreateVolumeOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.CreateVolumeOutput), args.Error(1)
}

func (m *MockEC2Client) DescribeVolumes(
	ctx context.Context,
	params *ec2.DescribeVolumesInput,
	optFns ...func(*ec2.Options),
) (*ec2.DescribeVolumesOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.DescribeVolumesOutput), args.Error(1)
}

func (m *MockEC2Client) AttachVolume(
	ctx context.Context,
	params *ec2.AttachVolumeInput,
	optFns ...func(*ec2.Options),
) (*ec2.AttachVolumeOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.AttachVolumeOutput), args.Error(1)
}

func (m *MockEC2Client) DetachVolume(
	ctx context.Context,
	params *ec2.DetachVolumeInput,
	optFns ...func(*ec2.Options),
) (*ec2.DetachVolumeOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.DetachVolumeOutput), args.Error(1)
}

func (m *MockEC2Client) DeleteVolume(
	ctx context.Context,
	params *ec2.DeleteVolumeInput,
	optFns ...func(*ec2.Options),
) (*ec2.DeleteVolumeOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.DeleteVolumeOutput), args.Error(1)
}

func (m *MockEC2Client) AllocateAddress(
	ctx context.Context,
	params *ec2.AllocateAddressInput,
	optFns ...func(*ec2.Options),
) (*ec2.AllocateAddressOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.AllocateAddressOutput), args.Error(1)
}

func (m *MockEC2Client) DescribeAddresses(
	ctx context.Context,
	params *ec2.DescribeAddressesInput,
	optFns ...func(*ec2.Options),
) (*ec2.DescribeAddressesOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.DescribeAddressesOutput), args.Error(1)
}

func (m *MockEC2Client) AssociateAddress(
	ctx context.Context,
	params *ec2.AssociateAddressInput,
	optFns ...func(*ec2.Options),
) (*ec2.AssociateAddressOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.AssociateAddressOutput), args.Error(1)
}

func (m *MockEC2Client) DisassociateAddress(
	ctx context.Context,
	params *ec2.DisassociateAddressInput,
	optFns ...func(*ec2.Options),
) (*ec2.DisassociateAddressOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.DisassociateAddressOutput), args.Error(1)
}

func (m *MockEC2Client) ReleaseAddress(
	ctx context.Context,
	params *ec2.ReleaseAddressInput,
	optFns ...func(*ec2.Options),
) (*ec2.ReleaseAddressOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.ReleaseAddressOutput), args.Error(1)
}

func (m *MockEC2Client) DescribeVpcs(
	ctx context.Context,
	params *ec2.DescribeVpcsInput,
	optFns ...func(*ec2.Options),
) (*ec2.DescribeVpcsOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.DescribeVpcsOutput), args.Error(1)
}

func (m *MockEC2Client) CreateTags(
	ctx context.Context,
	params *ec2.CreateTagsInput,
	optFns ...func(*ec2.Options),
) (*ec2.CreateTagsOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.CreateTagsOutput), args.Error(1)
}
type MockIAMClient struct {
	mock.Mock
}

var _ IAMClienter = (*MockIAMClient)(nil)

func (m *MockIAMClient) GetRole(
	ctx context.Context,
	params *iam.GetRoleInput,
	optFns ...func(*iam.Options),
) (*iam.GetRoleOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iam.GetRoleOutput), args.Error(1)
}

func (m *MockIAMClient) CreateRole(
	ctx context.Context,
	params *iam.CreateRoleInput,
	optFns ...func(*iam.Options),
) (*iam.CreateRoleOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iam.CreateRoleOutput), args.Error(1)
}

func (m *MockIAMClient) DeleteRole(
	ctx context.Context,
	params *iam.DeleteRoleInput,
	optFns ...func(*iam.Options),
) (*iam.DeleteRoleOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iam.DeleteRoleOutput), args.Error(1)
}

func (m *MockIAMClient) GetPolicy(
	ctx context.Context,
	params *iam.GetPolicyInput,
	optFns ...func(*iam.Options),
) (*iam.GetPolicyOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iam.GetPolicyOutput), args.Error(1)
}

func (m *MockIAMClient) CreatePolicy(
	ctx context.Context,
	params *iam.CreatePolicyInput,
	optFns ...func(*iam.Options),
) (*iam.CreatePolicyOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iam.CreatePolicyOutput), args.Error(1)
}

func (m *MockIAMClient) DeletePolicy(
	ctx context.Context,
	params *iam.DeletePolicyInput,
	optFns ...func(*iam.Options),
) (*iam.DeletePolicyOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iam.DeletePolicyOutput), args.Error(1)
}

func (m *MockIAMClient) AttachRolePolicy(
	ctx context.Context,
	params *iam.AttachRolePolicyInput,
	optFns ...func(*iam.Options),
) (*iam.AttachRolePolicyOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iam.AttachRolePolicyOutput), args.Error(1)
}

func (m *MockIAMClient) DetachRolePolicy(
	ctx context.Context,
	params *iam.DetachRolePolicyInput,
	optFns ...func(*iam.Options),
) (*iam.DetachRolePolicyOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iam.DetachRolePolicyOutput), args.Error(1)
}

func (m *MockIAMClient) GetInstanceProfile(
	ctx context.Context,
	params *iam.GetInstanceProfileInput,
	optFns ...func(*iam.Options),
) (*iam.GetInstanceProfileOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iam.GetInstanceProfileOutput), args.Error(1)
}

func (m *MockIAMClient) CreateInstanceProfile(
	ctx context.Context,
	params *iam.CreateInstanceProfileInput,
	optFns ...func(*iam.Options),
) (*iam.CreateInstanceProfileOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iam.CreateInstanceProfileOutput), args.Error(1)
}

func (m *MockIAMClient) DeleteInstanceProfile(
	ctx context.Context,
	params *iam.DeleteInstanceProfileInput,
	optFns ...func(*iam.Options),
) (*iam.DeleteInstanceProfileOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iam.DeleteInstanceProfileOutput), args.Error(1)
}

func (m *MockIAMClient) AddRoleToInstanceProfile(
	ctx context.Context,
	params *iam.AddRoleToInstanceProfileInput,
	optFns ...func(*iam.Options),
) (*iam.AddRoleToInstanceProfileOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iam.AddRoleToInstanceProfileOutput), args.Error(1)
}

func (m *MockIAMClient) RemoveRoleFromInstanceProfile(
	ctx context.Context,
	params *iam.RemoveRoleFromInstanceProfileInput,
	optFns ...func(*iam.Options),
) (*iam.RemoveRoleFromInstanceProfileOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*iam.RemoveRoleFromInstanceProfileOutput), args.Error(1)
}
type MockS3Client struct {
	mock.Mock
}

var _ S3Clienter = (*MockS3Client)(nil)

func (m *MockS3Client) HeadBucket(
	ctx context.Context,
	params *s3.HeadBucketInput,
	optFns ...func(*s3.Options),
) (*s3.HeadBucketOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.HeadBucketOutput), args.Error(1)
}

func (m *MockS3Client) CreateBucket(
	ctx context.Context,
	params *s3.CreateBucketInput,
	optFns ...func(*s3.Options),
) (*s3.CreateBucketOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.CreateBucketOutput), args.Error(1)
}

func (m *MockS3Client) PutBucketVersioning(
	ctx context.Context,
	params *s3.PutBucketVersioningInput,
	optFns ...func(*s3.Options),
) (*s3.PutBucketVersioningOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutBucketVersioningOutput), args.Error(1)
}

func (m *MockS3Client) DeleteBucket(
	ctx context.Context,
	params *s3.DeleteBucketInput,
	optFns ...func(*s3.Options),
) (*s3.DeleteBucketOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.DeleteBucketOutput), args.Error(1)
}

func (m *MockS3Client) ListBuckets(
	ctx context.Context,
	params *s3.ListBucketsInput,
	optFns ...func(*s3.Options),
) (*s3.ListBucketsOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.ListBucketsOutput), args.Error(1)
}

func (m *MockS3Client) ListObjectsV2(
	ctx context.Context,
	params *s3.ListObjectsV2Input,
	optFns ...func(*s3.Options),
) (*s3.ListObjectsV2Output, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.ListObjectsV2Output), args.Error(1)
}

func (m *MockS3Client) DeleteObjects(
	ctx context.Context,
	params *s3.DeleteObjectsInput,
	optFns ...func(*s3.Options),
) (*s3.DeleteObjectsOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.DeleteObjectsOutput), args.Error(1)
}
type MockSSMClient struct {
	mock.Mock
}

var _ SSMClienter = (*MockSSMClient)(nil)

func (m *MockSSMClient) GetParameter(
	ctx context.Context,
	params *ssm.GetParameterInput,
	optFns ...func(*ssm.Options),
) (*ssm.GetParameterOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ssm.GetParameterOutput), args.Error(1)
}
type MockSTSClient struct {
	mock.Mock
}

var _ STSClienter = (*MockSTSClient)(nil)

func (m *MockSTSClient) GetCallerIdentity(
	ctx context.Context,
	params *sts.GetCallerIdentityInput,
	optFns ...func(*sts.Options),
) (*sts.GetCallerIdentityOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sts.GetCallerIdentityOutput), args.Error(1)
}
