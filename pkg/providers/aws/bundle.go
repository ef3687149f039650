package awsprovider

import (
	"context"
	"errors"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2_types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/iam"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/models"
)

// DescribeBundle collects the found/missing status of every resource
// sharing the name tag. Lookup failures beyond "not found" are logged
// and leave the member empty, so one broken service does not hide the
// rest of the view.
func (p *AWSProvider) DescribeBundle(ctx context.Context, name string) *models.ResourceBundle {
	l := logger.Get()
	bundle := &models.ResourceBundle{Name: name}

	if instance, err := p.FindInstanceByName(ctx, name); err == nil {
		bundle.Instance = instance
	} else if !errors.Is(err, ErrInstanceNotFound) {
		l.Warnf("Instance lookup for %s failed: %v", name, err)
	}

	if volume, err := p.FindVolumeByName(ctx, name); err == nil {
		bundle.Volume = volume
	} else if !errors.Is(err, ErrVolumeNotFound) {
		l.Warnf("Volume lookup for %s failed: %v", name, err)
	}

	if keys, err := p.EC2Client.DescribeKeyPairs(ctx, &ec2.DescribeKeyPairsInput{
		KeyNames: []string{name},
	}); err == nil && len(keys.KeyPairs) > 0 {
		bundle.KeyPairID = aws.ToString(keys.KeyPairs[0].KeyPairId)
	} else if err != nil && !IsNotFoundError(err) {
		l.Warnf("Key pair lookup for %s failed: %v", name, err)
	}
	if keyPath := KeyFilePath(name); fileExists(keyPath) {
		bundle.KeyFilePath = keyPath
	}

	if exists, err := p.BucketExists(ctx, name); err == nil && exists {
		bundle.BucketName = name
	} else if err != nil {
		l.Warnf("Bucket lookup for %s failed: %v", name, err)
	}

	if groups, err := p.EC2Client.DescribeSecurityGroups(ctx, &ec2.DescribeSecurityGroupsInput{
		Filters: []ec2_types.Filter{
			{
				Name:   aws.String("group-name"),
				Values: []string{name},
			},
		},
	}); err == nil && len(groups.SecurityGroups) > 0 {
		bundle.SecurityGroupID = aws.ToString(groups.SecurityGroups[0].GroupId)
	} else if err != nil {
		l.Warnf("Security group lookup for %s failed: %v", name, err)
	}

	if policy, err := p.IAMClient.GetPolicy(ctx, &iam.GetPolicyInput{
		PolicyArn: aws.String(p.PolicyArn(name)),
	}); err == nil {
		bundle.PolicyArn = aws.ToString(policy.Policy.Arn)
	} else if !IsNotFoundError(err) {
		l.Warnf("Policy lookup for %s failed: %v", name, err)
	}

	if _, err := p.IAMClient.GetRole(ctx, &iam.GetRoleInput{
		RoleName: aws.String(name),
	}); err == nil {
		bundle.RoleName = name
	} else if !IsNotFoundError(err) {
		l.Warnf("Role lookup for %s failed: %v", name, err)
	}

	if profile, err := p.IAMClient.GetInstanceProfile(ctx, &iam.GetInstanceProfileInput{
		InstanceProfileName: aws.String(name),
	}); err == nil {
		bundle.InstanceProfileArn = aws.ToString(profile.InstanceProfile.Arn)
	} else if !IsNotFoundError(err) {
		l.Warnf("Instance profile lookup for %s failed: %v", name, err)
	}

	if addresses, err := p.EC2Client.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{
		Filters: []ec2_types.Filter{
			{
				Name:   aws.String("tag:Name"),
				Values: []string{name},
			},
		},
	}); err == nil && len(addresses.Addresses) > 0 {
		bundle.ElasticIP = aws.ToString(addresses.Addresses[0].PublicIp)
		bundle.AllocationID = aws.ToString(addresses.Addresses[0].AllocationId)
	} else if err != nil {
		l.Warnf("Elastic IP lookup for %s failed: %v", name, err)
	}

	return bundle
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
