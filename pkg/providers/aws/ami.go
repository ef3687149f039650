package awsprovider

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2_types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
)

// AL2023AMIParameter is the SSM public parameter that always points at
// the latest Amazon Linux 2023 x86_64 image in the current region.
const AL2023AMIParameter = "/aws/service/ami-amazon-linux-latest/al2023-ami-kernel-default-x86_64"

// ResolveLatestAMI returns the newest Amazon Linux 2023 x86_64 AMI ID.
// The SSM public parameter is authoritative and cheap; DescribeImages
// sorted by creation date is the fallback when SSM is unreachable or the
// account blocks the parameter path.
func (p *AWSProvider) ResolveLatestAMI(ctx context.Context) (string, error) {
	l := logger.Get()

	param, err := p.SSMClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name: aws.String(AL2023AMIParameter),
	})
	if err == nil && param.Parameter != nil && aws.ToString(param.Parameter.Value) != "" {
		amiID := aws.ToString(param.Parameter.Value)
		l.Debugf("Resolved latest AL2023 AMI via SSM: %s", amiID)
		return amiID, nil
	}
	if err != nil {
		l.Debugf("SSM AMI lookup failed, falling back to DescribeImages: %v", err)
	}

	return p.findLatestAMIByDescribe(ctx)
}

func (p *AWSProvider) findLatestAMIByDescribe(ctx context.Context) (string, error) {
	output, err := p.EC2Client.DescribeImages(ctx, &ec2.DescribeImagesInput{
		Owners: []string{"amazon"},
		Filters: []ec2_types.Filter{
			{
				Name:   aws.String("name"),
				Values: []string{"al2023-ami-*-x86_64"},
			},
			{
				Name:   aws.String("architecture"),
				Values: []string{"x86_64"},
			},
			{
				Name:   aws.String("state"),
				Values: []string{"available"},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe Amazon Linux 2023 images: %w", err)
	}
	if len(output.Images) == 0 {
		return "", fmt.Errorf("no Amazon Linux 2023 x86_64 images found in %s", p.Region)
	}

	images := output.Images
	sort.Slice(images, func(i, j int) bool {
		return aws.ToString(images[i].CreationDate) > aws.ToString(images[j].CreationDate)
	})

	amiID := aws.ToString(images[0].ImageId)
	logger.Get().Debugf(
		"Resolved latest AL2023 AMI via DescribeImages: %s (%s)",
		amiID,
		aws.ToString(images[0].Name),
	)
	return amiID, nil
}
