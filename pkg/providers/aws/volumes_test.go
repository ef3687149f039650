package awsprovider

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2_types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/internal/testdata"
)

func TestListVolumesFiltersByNamePattern(t *testing.T) {
	attached := testdata.FakeVolume(
		"vol-0123456789abcdef0",
		ec2_types.VolumeStateInUse,
		"i-1234567890abcdef0",
	)
	spare := testdata.FakeVolume("vol-0aaaaaaaaaaaaaaaa", ec2_types.VolumeStateAvailable, "")
	spare.Tags = []ec2_types.Tag{
		{Key: aws.String("Name"), Value: aws.String("backup-archive")},
	}

	mockEC2 := &MockEC2Client{}
	mockEC2.On("DescribeVolumes", mock.Anything, mock.Anything).
		Return(testdata.FakeDescribeVolumesOutput(attached, spare), nil)

	provider := newTestProvider(mockEC2)
	volumes, err := provider.ListVolumes(context.Background(), "ARCHIVE")
	require.NoError(t, err)
	require.Len(t, volumes, 1)
	assert.Equal(t, "backup-archive", volumes[0].Name)

	all, err := provider.ListVolumes(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFindVolumeByName(t *testing.T) {
	mockEC2 := &MockEC2Client{}
	mockEC2.On("DescribeVolumes", mock.Anything, mock.Anything).
		Return(testdata.FakeDescribeVolumesOutput(
			testdata.FakeVolume("vol-0123456789abcdef0", ec2_types.VolumeStateInUse, "i-1234567890abcdef0"),
		), nil)

	provider := newTestProvider(mockEC2)
	volume, err := provider.FindVolumeByName(context.Background(), "web-server")
	require.NoError(t, err)
	assert.Equal(t, "vol-0123456789abcdef0", volume.ID)
	assert.Equal(t, int32(30), volume.SizeGiB)
	assert.Equal(t, "gp3", volume.Type)
	assert.True(t, volume.Encrypted)
	assert.Equal(t, []string{"i-1234567890abcdef0"}, volume.AttachedTo)
	assert.Equal(t, "/dev/sdf", volume.Device)
}

func TestFindVolumeByNameNotFound(t *testing.T) {
	mockEC2 := &MockEC2Client{}
	mockEC2.On("DescribeVolumes", mock.Anything, mock.Anything).
		Return(testdata.FakeDescribeVolumesOutput(), nil)

	provider := newTestProvider(mockEC2)
	_, err := provider.FindVolumeByName(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrVolumeNotFound)
}

func TestFindVolumeByNameDuplicates(t *testing.T) {
	mockEC2 := &MockEC2Client{}
	mockEC2.On("DescribeVolumes", mock.Anything, mock.Anything).
		Return(testdata.FakeDescribeVolumesOutput(
			testdata.FakeVolume("vol-0aaaaaaaaaaaaaaaa", ec2_types.VolumeStateAvailable, ""),
			testdata.FakeVolume("vol-0bbbbbbbbbbbbbbbb", ec2_types.VolumeStateAvailable, ""),
		), nil)

	provider := newTestProvider(mockEC2)
	_, err := provider.FindVolumeByName(context.Background(), "web-server")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple volumes named web-server")
}

func TestDestroyVolumeDetachesFirst(t *testing.T) {
	stubWaiters(t)

	var calls []string
	mockEC2 := &MockEC2Client{}
	mockEC2.On("DetachVolume", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { calls = append(calls, "detach") }).
		Return(&ec2.DetachVolumeOutput{}, nil)
	mockEC2.On("DeleteVolume", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { calls = append(calls, "delete") }).
		Return(&ec2.DeleteVolumeOutput{}, nil)

	provider := newTestProvider(mockEC2)
	volume := toVolume(testdata.FakeVolume(
		"vol-0123456789abcdef0",
		ec2_types.VolumeStateInUse,
		"i-1234567890abcdef0",
	))
	require.NoError(t, provider.DestroyVolume(context.Background(), &volume))
	assert.Equal(t, []string{"detach", "delete"}, calls)
}

func TestDestroyVolumeUnattachedSkipsDetach(t *testing.T) {
	mockEC2 := &MockEC2Client{}
	mockEC2.On("DeleteVolume", mock.Anything, mock.Anything).
		Return(&ec2.DeleteVolumeOutput{}, nil)

	provider := newTestProvider(mockEC2)
	volume := toVolume(testdata.FakeVolume(
		"vol-0123456789abcdef0",
		ec2_types.VolumeStateAvailable,
		"",
	))
	require.NoError(t, provider.DestroyVolume(context.Background(), &volume))
	mockEC2.AssertNotCalled(t, "DetachVolume", mock.Anything, mock.Anything)
}
