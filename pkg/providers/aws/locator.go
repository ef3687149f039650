package awsprovider

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2_types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/models"
)

// liveInstanceStates are the states in which an instance still counts as
// "the instance named N". Terminated instances keep their tags for a
// while, so an unfiltered lookup would resolve ghosts.
var liveInstanceStates = []string{"pending", "running", "stopping", "stopped"}

// FindInstanceByName resolves name to exactly one live instance.
func (p *AWSProvider) FindInstanceByName(
	ctx context.Context,
	name string,
) (*models.Instance, error) {
	matches, err := p.findInstancesByName(ctx, name)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrInstanceNotFound, name)
	case 1:
		instance := toInstance(matches[0])
		return &instance, nil
	default:
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = aws.ToString(m.InstanceId)
		}
		return nil, fmt.Errorf(
			"multiple live instances named %s: %s",
			name,
			strings.Join(ids, ", "),
		)
	}
}

func (p *AWSProvider) findInstancesByName(
	ctx context.Context,
	name string,
) ([]ec2_types.Instance, error) {
	output, err := p.EC2Client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		Filters: []ec2_types.Filter{
			{
				Name:   aws.String("tag:Name"),
				Values: []string{name},
			},
			{
				Name:   aws.String("instance-state-name"),
				Values: liveInstanceStates,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe instances named %s: %w", name, err)
	}

	var matches []ec2_types.Instance
	for _, reservation := range output.Reservations {
		matches = append(matches, reservation.Instances...)
	}
	return matches, nil
}

// ListInstances returns the region's instances, optionally narrowed to
// one state. stateFilter is "all", "running", or "stopped". A non-empty
// namePattern keeps only instances whose Name tag contains it,
// case-insensitively.
func (p *AWSProvider) ListInstances(
	ctx context.Context,
	stateFilter string,
	namePattern string,
) ([]models.Instance, error) {
	input := &ec2.DescribeInstancesInput{}
	switch stateFilter {
	case "", "all":
	case "running", "stopped":
		input.Filters = []ec2_types.Filter{
			{
				Name:   aws.String("instance-state-name"),
				Values: []string{stateFilter},
			},
		}
	default:
		return nil, fmt.Errorf(
			"unsupported state filter %q (use all, running, or stopped)",
			stateFilter,
		)
	}

	var instances []models.Instance
	paginator := ec2.NewDescribeInstancesPaginator(p.EC2Client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe instances: %w", err)
		}
		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				candidate := toInstance(instance)
				if !matchesNamePattern(candidate.Name, namePattern) {
					continue
				}
				instances = append(instances, candidate)
			}
		}
	}

	sort.Slice(instances, func(i, j int) bool {
		if instances[i].Name != instances[j].Name {
			return instances[i].Name < instances[j].Name
		}
		return instances[i].ID < instances[j].ID
	})
	return instances, nil
}

// matchesNamePattern does the substring match used by the list
// commands. Tag filters on the EC2 API are case-sensitive, so the
// comparison happens here instead.
func matchesNamePattern(name, pattern string) bool {
	if pattern == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(pattern))
}

// NextAvailableName scans live instances for names matching base-<n> and
// returns the next free one, starting at base-1.
func (p *AWSProvider) NextAvailableName(ctx context.Context, base string) (string, error) {
	pattern := regexp.MustCompile(fmt.Sprintf(`^%s-(\d+)$`, regexp.QuoteMeta(base)))

	input := &ec2.DescribeInstancesInput{
		Filters: []ec2_types.Filter{
			{
				Name:   aws.String("instance-state-name"),
				Values: liveInstanceStates,
			},
		},
	}

	highest := 0
	paginator := ec2.NewDescribeInstancesPaginator(p.EC2Client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to describe instances: %w", err)
		}
		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				match := pattern.FindStringSubmatch(nameFromTags(instance.Tags))
				if match == nil {
					continue
				}
				if n, err := strconv.Atoi(match[1]); err == nil && n > highest {
					highest = n
				}
			}
		}
	}
	return fmt.Sprintf("%s-%d", base, highest+1), nil
}

func nameFromTags(tags []ec2_types.Tag) string {
	for _, tag := range tags {
		if aws.ToString(tag.Key) == "Name" {
			return aws.ToString(tag.Value)
		}
	}
	return ""
}

func toInstance(instance ec2_types.Instance) models.Instance {
	result := models.Instance{
		ID:        aws.ToString(instance.InstanceId),
		Name:      nameFromTags(instance.Tags),
		Type:      string(instance.InstanceType),
		PublicIP:  aws.ToString(instance.PublicIpAddress),
		PrivateIP: aws.ToString(instance.PrivateIpAddress),
		KeyName:   aws.ToString(instance.KeyName),
	}
	if instance.State != nil {
		result.State = string(instance.State.Name)
	}
	if instance.Placement != nil {
		result.AvailabilityZone = aws.ToString(instance.Placement.AvailabilityZone)
	}
	if instance.LaunchTime != nil {
		result.LaunchTime = aws.ToTime(instance.LaunchTime)
	}
	return result
}
