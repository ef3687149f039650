package awsprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/cenkalti/backoff/v4"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
)

const (
	profilePropagationInitialInterval = 2 * time.Second
	profilePropagationMaxInterval     = 10 * time.Second
	profilePropagationMaxElapsed      = 60 * time.Second
)

// PolicyArn builds the ARN of the account-local managed policy named name.
func (p *AWSProvider) PolicyArn(name string) string {
	return fmt.Sprintf("arn:aws:iam::%s:policy/%s", p.AccountID, name)
}

// s3AccessPolicyDocument grants read/write on the bundle's bucket only.
func s3AccessPolicyDocument(bucketName string) (string, error) {
	document := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":   "Allow",
				"Action":   []string{"s3:ListBucket"},
				"Resource": []string{fmt.Sprintf("arn:aws:s3:::%s", bucketName)},
			},
			{
				"Effect": "Allow",
				"Action": []string{
					"s3:GetObject",
					"s3:PutObject",
					"s3:DeleteObject",
				},
				"Resource": []string{fmt.Sprintf("arn:aws:s3:::%s/*", bucketName)},
			},
		},
	}
	raw, err := json.Marshal(document)
	if err != nil {
		return "", fmt.Errorf("failed to marshal S3 access policy: %w", err)
	}
	return string(raw), nil
}

// ec2TrustPolicyDocument lets EC2 assume the bundle's role.
func ec2TrustPolicyDocument() (string, error) {
	document := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect": "Allow",
				"Principal": map[string]interface{}{
					"Service": "ec2.amazonaws.com",
				},
				"Action": "sts:AssumeRole",
			},
		},
	}
	raw, err := json.Marshal(document)
	if err != nil {
		return "", fmt.Errorf("failed to marshal EC2 trust policy: %w", err)
	}
	return string(raw), nil
}

// EnsurePolicy returns the ARN of the bundle's S3 access policy, creating
// it when absent.
func (p *AWSProvider) EnsurePolicy(ctx context.Context, name string) (string, error) {
	l := logger.Get()
	arn := p.PolicyArn(name)

	existing, err := p.IAMClient.GetPolicy(ctx, &iam.GetPolicyInput{
		PolicyArn: aws.String(arn),
	})
	if err == nil {
		l.Infof("IAM policy %s already exists, reusing", name)
		return aws.ToString(existing.Policy.Arn), nil
	}
	if !IsNotFoundError(err) {
		return "", fmt.Errorf("failed to look up IAM policy %s: %w", name, err)
	}

	document, err := s3AccessPolicyDocument(name)
	if err != nil {
		return "", err
	}
	created, err := p.IAMClient.CreatePolicy(ctx, &iam.CreatePolicyInput{
		PolicyName:     aws.String(name),
		PolicyDocument: aws.String(document),
		Description:    aws.String(fmt.Sprintf("S3 access for the %s bundle", name)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create IAM policy %s: %w", name, err)
	}
	l.Infof("Created IAM policy %s", name)
	return aws.ToString(created.Policy.Arn), nil
}

// EnsureRole returns the bundle's EC2 role name, creating the role and
// attaching the bundle policy when absent. Attaching an already-attached
// policy is idempotent on the AWS side.
func (p *AWSProvider) EnsureRole(ctx context.Context, name, policyArn string) (string, error) {
	l := logger.Get()

	_, err := p.IAMClient.GetRole(ctx, &iam.GetRoleInput{
		RoleName: aws.String(name),
	})
	switch {
	case err == nil:
		l.Infof("IAM role %s already exists, reusing", name)
	case IsNotFoundError(err):
		trust, trustErr := ec2TrustPolicyDocument()
		if trustErr != nil {
			return "", trustErr
		}
		if _, createErr := p.IAMClient.CreateRole(ctx, &iam.CreateRoleInput{
			RoleName:                 aws.String(name),
			AssumeRolePolicyDocument: aws.String(trust),
			Description:              aws.String(fmt.Sprintf("EC2 role for the %s bundle", name)),
		}); createErr != nil {
			return "", fmt.Errorf("failed to create IAM role %s: %w", name, createErr)
		}
		l.Infof("Created IAM role %s", name)
	default:
		return "", fmt.Errorf("failed to look up IAM role %s: %w", name, err)
	}

	if _, err := p.IAMClient.AttachRolePolicy(ctx, &iam.AttachRolePolicyInput{
		RoleName:  aws.String(name),
		PolicyArn: aws.String(policyArn),
	}); err != nil {
		return "", fmt.Errorf("failed to attach policy to role %s: %w", name, err)
	}
	return name, nil
}

// EnsureInstanceProfile returns the bundle's instance profile ARN,
// creating the profile and adding the role when absent, then waits for
// the profile to propagate so RunInstances can reference it.
func (p *AWSProvider) EnsureInstanceProfile(
	ctx context.Context,
	name, roleName string,
) (string, error) {
	l := logger.Get()

	var profileArn string
	existing, err := p.IAMClient.GetInstanceProfile(ctx, &iam.GetInstanceProfileInput{
		InstanceProfileName: aws.String(name),
	})
	switch {
	case err == nil:
		l.Infof("Instance profile %s already exists, reusing", name)
		profileArn = aws.ToString(existing.InstanceProfile.Arn)
	case IsNotFoundError(err):
		created, createErr := p.IAMClient.CreateInstanceProfile(ctx, &iam.CreateInstanceProfileInput{
			InstanceProfileName: aws.String(name),
		})
		if createErr != nil {
			return "", fmt.Errorf("failed to create instance profile %s: %w", name, createErr)
		}
		l.Infof("Created instance profile %s", name)
		profileArn = aws.ToString(created.InstanceProfile.Arn)
	default:
		return "", fmt.Errorf("failed to look up instance profile %s: %w", name, err)
	}

	if _, err := p.IAMClient.AddRoleToInstanceProfile(ctx, &iam.AddRoleToInstanceProfileInput{
		InstanceProfileName: aws.String(name),
		RoleName:            aws.String(roleName),
	}); err != nil && !IsAlreadyExistsError(err) && !IsAWSErrorCode(err, "LimitExceeded") {
		return "", fmt.Errorf("failed to add role to instance profile %s: %w", name, err)
	}

	if err := p.waitForInstanceProfile(ctx, name); err != nil {
		return "", err
	}
	return profileArn, nil
}

// waitForInstanceProfile polls until GetInstanceProfile shows the role
// inside the profile. A freshly created profile takes a few seconds to
// become referenceable from RunInstances.
func (p *AWSProvider) waitForInstanceProfile(ctx context.Context, name string) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = profilePropagationInitialInterval
	b.MaxInterval = profilePropagationMaxInterval
	b.MaxElapsedTime = profilePropagationMaxElapsed

	operation := func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		profile, err := p.IAMClient.GetInstanceProfile(ctx, &iam.GetInstanceProfileInput{
			InstanceProfileName: aws.String(name),
		})
		if err != nil {
			return err
		}
		if len(profile.InstanceProfile.Roles) == 0 {
			return fmt.Errorf("instance profile %s has no role yet", name)
		}
		return nil
	}
	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return fmt.Errorf("instance profile %s did not propagate: %w", name, err)
	}
	return nil
}

// DeleteInstanceProfile removes the role from the profile and deletes it.
func (p *AWSProvider) DeleteInstanceProfile(ctx context.Context, name string) error {
	l := logger.Get()

	if _, err := p.IAMClient.RemoveRoleFromInstanceProfile(ctx, &iam.RemoveRoleFromInstanceProfileInput{
		InstanceProfileName: aws.String(name),
		RoleName:            aws.String(name),
	}); err != nil && !IsNotFoundError(err) {
		return fmt.Errorf("failed to remove role from instance profile %s: %w", name, err)
	}

	if _, err := p.IAMClient.DeleteInstanceProfile(ctx, &iam.DeleteInstanceProfileInput{
		InstanceProfileName: aws.String(name),
	}); err != nil {
		if IsNotFoundError(err) {
			l.Infof("Instance profile %s already gone", name)
			return nil
		}
		return fmt.Errorf("failed to delete instance profile %s: %w", name, err)
	}
	l.Infof("Deleted instance profile %s", name)
	return nil
}

// DeleteRole detaches the bundle policy from the role and deletes it.
func (p *AWSProvider) DeleteRole(ctx context.Context, name string) error {
	l := logger.Get()

	if _, err := p.IAMClient.DetachRolePolicy(ctx, &iam.DetachRolePolicyInput{
		RoleName:  aws.String(name),
		PolicyArn: aws.String(p.PolicyArn(name)),
	}); err != nil && !IsNotFoundError(err) {
		return fmt.Errorf("failed to detach policy from role %s: %w", name, err)
	}

	if _, err := p.IAMClient.DeleteRole(ctx, &iam.DeleteRoleInput{
		RoleName: aws.String(name),
	}); err != nil {
		if IsNotFoundError(err) {
			l.Infof("IAM role %s already gone", name)
			return nil
		}
		return fmt.Errorf("failed to delete IAM role %s: %w", name, err)
	}
	l.Infof("Deleted IAM role %s", name)
	return nil
}

// DeletePolicy deletes the bundle's managed policy.
func (p *AWSProvider) DeletePolicy(ctx context.Context, name string) error {
	l := logger.Get()

	if _, err := p.IAMClient.DeletePolicy(ctx, &iam.DeletePolicyInput{
		PolicyArn: aws.String(p.PolicyArn(name)),
	}); err != nil {
		if IsNotFoundError(err) {
			l.Infof("IAM policy %s already gone", name)
			return nil
		}
		return fmt.Errorf("failed to delete IAM policy %s: %w", name, err)
	}
	l.Infof("Deleted IAM policy %s", name)
	return nil
}
