package awsprovider

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Pass-through wrappers for the remaining service clients, mirroring
// LiveEC2Client so every AWS call crosses a mockable seam.

type LiveIAMClient struct {
	client *iam.Client
}

func (c *LiveIAMClient) GetRole(
	ctx context.Context,
	params *iam.GetRoleInput,
	optFns ...func(*iam.Options),
) (*iam.GetRoleOutput, error) {
	return c.client.GetRole(ctx, params, optFns...)
}

func (c *LiveIAMClient) CreateRole(
	ctx context.Context,
	params *iam.CreateRoleInput,
	optFns ...func(*iam.Options),
) (*iam.CreateRoleOutput, error) {
	return c.client.CreateRole(ctx, params, optFns...)
}

func (c *LiveIAMClient) DeleteRole(
	ctx context.Context,
	params *iam.DeleteRoleInput,
	optFns ...func(*iam.Options),
) (*iam.DeleteRoleOutput, error) {
	return c.client.DeleteRole(ctx, params, optFns...)
}

func (c *LiveIAMClient) GetPolicy(
	ctx context.Context,
	params *iam.GetPolicyInput,
	optFns ...func(*iam.Options),
) (*iam.GetPolicyOutput, error) {
	return c.client.GetPolicy(ctx, params, optFns...)
}

func (c *LiveIAMClient) CreatePolicy(
	ctx context.Context,
	params *iam.CreatePolicyInput,
	optFns ...func(*iam.Options),
) (*iam.CreatePolicyOutput, error) {
	return c.client.CreatePolicy(ctx, params, optFns...)
}

func (c *LiveIAMClient) DeletePolicy(
	ctx context.Context,
	params *iam.DeletePolicyInput,
	optFns ...func(*iam.Options),
) (*iam.DeletePolicyOutput, error) {
	return c.client.DeletePolicy(ctx, params, optFns...)
}

func (c *LiveIAMClient) AttachRolePolicy(
	ctx context.Context,
	params *iam.AttachRolePolicyInput,
	optFns ...func(*iam.Options),
) (*iam.AttachRolePolicyOutput, error) {
	return c.client.AttachRolePolicy(ctx, params, optFns...)
}

func (c *LiveIAMClient) DetachRolePolicy(
	ctx context.Context,
	params *iam.DetachRolePolicyInput,
	optFns ...func(*iam.Options),
) (*iam.DetachRolePolicyOutput, error) {
	return c.client.DetachRolePolicy(ctx, params, optFns...)
}

func (c *LiveIAMClient) GetInstanceProfile(
	ctx context.Context,
	params *iam.GetInstanceProfileInput,
	optFns ...func(*iam.Options),
) (*iam.GetInstanceProfileOutput, error) {
	return c.client.GetInstanceProfile(ctx, params, optFns...)
}

func (c *LiveIAMClient) CreateInstanceProfile(
	ctx context.Context,
	params *iam.CreateInstanceProfileInput,
	optFns ...func(*iam.Options),
) (*iam.CreateInstanceProfileOutput, error) {
	return c.client.CreateInstanceProfile(ctx, params, optFns...)
}

func (c *LiveIAMClient) DeleteInstanceProfile(
	ctx context.Context,
	params *iam.DeleteInstanceProfileInput,
	optFns ...func(*iam.Options),
) (*iam.DeleteInstanceProfileOutput, error) {
	return c.client.DeleteInstanceProfile(ctx, params, optFns...)
}

func (c *LiveIAMClient) AddRoleToInstanceProfile(
	ctx context.Context,
	params *iam.AddRoleToInstanceProfileInput,
	optFns ...func(*iam.Options),
) (*iam.AddRoleToInstanceProfileOutput, error) {
	return c.client.AddRoleToInstanceProfile(ctx, params, optFns...)
}

func (c *LiveIAMClient) RemoveRoleFromInstanceProfile(
	ctx context.Context,
	params *iam.RemoveRoleFromInstanceProfileInput,
	optFns ...func(*iam.Options),
) (*iam.RemoveRoleFromInstanceProfileOutput, error) {
	return c.client.RemoveRoleFromInstanceProfile(ctx, params, optFns...)
}

type LiveS3Client struct {
	client *s3.Client
}

func (c *LiveS3Client) HeadBucket(
	ctx context.Context,
	params *s3.HeadBucketInput,
	optFns ...func(*s3.Options),
) (*s3.HeadBucketOutput, error) {
	return c.client.HeadBucket(ctx, params, optFns...)
}

func (c *LiveS3Client) CreateBucket(
	ctx context.Context,
	params *s3.CreateBucketInput,
	optFns ...func(*s3.Options),
) (*s3.CreateBucketOutput, error) {
	return c.client.CreateBucket(ctx, params, optFns...)
}

func (c *LiveS3Client) PutBucketVersioning(
	ctx context.Context,
	params *s3.PutBucketVersioningInput,
	optFns ...func(*s3.Options),
) (*s3.PutBucketVersioningOutput, error) {
	return c.client.PutBucketVersioning(ctx, params, optFns...)
}

func (c *LiveS3Client) DeleteBucket(
	ctx context.Context,
	params *s3.DeleteBucketInput,
	optFns ...func(*s3.Options),
) (*s3.DeleteBucketOutput, error) {
	return c.client.DeleteBucket(ctx, params, optFns...)
}

func (c *LiveS3Client) ListBuckets(
	ctx context.Context,
	params *s3.ListBucketsInput,
	optFns ...func(*s3.Options),
) (*s3.ListBucketsOutput, error) {
	return c.client.ListBuckets(ctx, params, optFns...)
}

func (c *LiveS3Client) ListObjectsV2(
	ctx context.Context,
	params *s3.ListObjectsV2Input,
	optFns ...func(*s3.Options),
) (*s3.ListObjectsV2Output, error) {
	return c.client.ListObjectsV2(ctx, params, optFns...)
}

func (c *LiveS3Client) DeleteObjects(
	ctx context.Context,
	params *s3.DeleteObjectsInput,
	optFns ...func(*s3.Options),
) (*s3.DeleteObjectsOutput, error) {
	return c.client.DeleteObjects(ctx, params, optFns...)
}

type LiveSSMClient struct {
	client *ssm.Client
}

func (c *LiveSSMClient) GetParameter(
	ctx context.Context,
	params *ssm.GetParameterInput,
	optFns ...func(*ssm.Options),
) (*ssm.GetParameterOutput, error) {
	return c.client.GetParameter(ctx, params, optFns...)
}

type LiveSTSClient struct {
	client *sts.Client
}

func (c *LiveSTSClient) GetCallerIdentity(
	ctx context.Context,
	params *sts.GetCallerIdentityInput,
	optFns ...func(*sts.Options),
) (*sts.GetCallerIdentityOutput, error) {
	return c.client.GetCallerIdentity(ctx, params, optFns...)
}
