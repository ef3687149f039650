package awsprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2_types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/models"
)

// ListVolumes returns every EBS volume in the region. A non-empty
// namePattern keeps only volumes whose Name tag contains it,
// case-insensitively.
func (p *AWSProvider) ListVolumes(ctx context.Context, namePattern string) ([]models.Volume, error) {
	var volumes []models.Volume
	paginator := ec2.NewDescribeVolumesPaginator(p.EC2Client, &ec2.DescribeVolumesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe volumes: %w", err)
		}
		for _, volume := range page.Volumes {
			candidate := toVolume(volume)
			if !matchesNamePattern(candidate.Name, namePattern) {
				continue
			}
			volumes = append(volumes, candidate)
		}
	}

	sort.Slice(volumes, func(i, j int) bool {
		if volumes[i].Name != volumes[j].Name {
			return volumes[i].Name < volumes[j].Name
		}
		return volumes[i].ID < volumes[j].ID
	})
	return volumes, nil
}

// FindVolumeByName resolves name to exactly one volume by its Name tag.
func (p *AWSProvider) FindVolumeByName(ctx context.Context, name string) (*models.Volume, error) {
	output, err := p.EC2Client.DescribeVolumes(ctx, &ec2.DescribeVolumesInput{
		Filters: []ec2_types.Filter{
			{
				Name:   aws.String("tag:Name"),
				Values: []string{name},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe volumes named %s: %w", name, err)
	}

	switch len(output.Volumes) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrVolumeNotFound, name)
	case 1:
		volume := toVolume(output.Volumes[0])
		return &volume, nil
	default:
		ids := make([]string, len(output.Volumes))
		for i, v := range output.Volumes {
			ids[i] = aws.ToString(v.VolumeId)
		}
		return nil, fmt.Errorf("multiple volumes named %s: %s", name, strings.Join(ids, ", "))
	}
}

// GetVolumeByID fetches one volume by its ID.
func (p *AWSProvider) GetVolumeByID(ctx context.Context, volumeID string) (*models.Volume, error) {
	output, err := p.EC2Client.DescribeVolumes(ctx, &ec2.DescribeVolumesInput{
		VolumeIds: []string{volumeID},
	})
	if err != nil {
		if IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s", ErrVolumeNotFound, volumeID)
		}
		return nil, fmt.Errorf("failed to describe volume %s: %w", volumeID, err)
	}
	if len(output.Volumes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrVolumeNotFound, volumeID)
	}
	volume := toVolume(output.Volumes[0])
	return &volume, nil
}

// DestroyVolume detaches the volume from any instance, waits for it to
// become available, and deletes it.
func (p *AWSProvider) DestroyVolume(ctx context.Context, volume *models.Volume) error {
	l := logger.Get()

	if volume.IsAttached() {
		l.Infof("Detaching volume %s from %s", volume.ID, strings.Join(volume.AttachedTo, ", "))
		if _, err := p.EC2Client.DetachVolume(ctx, &ec2.DetachVolumeInput{
			VolumeId: aws.String(volume.ID),
		}); err != nil {
			return fmt.Errorf("failed to detach volume %s: %w", volume.ID, err)
		}
		if err := p.WaitForVolumeAvailable(ctx, volume.ID); err != nil {
			return err
		}
	}

	l.Infof("Deleting volume %s", volume.ID)
	if _, err := p.EC2Client.DeleteVolume(ctx, &ec2.DeleteVolumeInput{
		VolumeId: aws.String(volume.ID),
	}); err != nil {
		return fmt.Errorf("failed to delete volume %s: %w", volume.ID, err)
	}
	return nil
}

func toVolume(volume ec2_types.Volume) models.Volume {
	result := models.Volume{
		ID:               aws.ToString(volume.VolumeId),
		Name:             nameFromTags(volume.Tags),
		State:            string(volume.State),
		SizeGiB:          aws.ToInt32(volume.Size),
		Type:             string(volume.VolumeType),
		AvailabilityZone: aws.ToString(volume.AvailabilityZone),
		Encrypted:        aws.ToBool(volume.Encrypted),
		CreateTime:       aws.ToTime(volume.CreateTime),
	}
	for _, attachment := range volume.Attachments {
		result.AttachedTo = append(result.AttachedTo, aws.ToString(attachment.InstanceId))
		if result.Device == "" {
			result.Device = aws.ToString(attachment.Device)
		}
	}
	return result
}
