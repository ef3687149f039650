package awsprovider

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2_types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/internal/testdata"
)

func TestDescribeBundleNothingFound(t *testing.T) {
	usePemsDir(t)

	mockEC2 := &MockEC2Client{}
	mockEC2.On("DescribeInstances", mock.Anything, mock.Anything).
		Return(testdata.FakeDescribeInstancesOutput(), nil)
	mockEC2.On("DescribeVolumes", mock.Anything, mock.Anything).
		Return(testdata.FakeDescribeVolumesOutput(), nil)
	mockEC2.On("DescribeKeyPairs", mock.Anything, mock.Anything).
		Return(nil, apiError("InvalidKeyPair.NotFound"))
	mockEC2.On("DescribeSecurityGroups", mock.Anything, mock.Anything).
		Return(&ec2.DescribeSecurityGroupsOutput{}, nil)
	mockEC2.On("DescribeAddresses", mock.Anything, mock.Anything).
		Return(&ec2.DescribeAddressesOutput{}, nil)

	mockS3 := &MockS3Client{}
	mockS3.On("HeadBucket", mock.Anything, mock.Anything).
		Return(nil, apiError("NotFound"))

	mockIAM := &MockIAMClient{}
	mockIAM.On("GetPolicy", mock.Anything, mock.Anything).
		Return(nil, apiError("NoSuchEntity"))
	mockIAM.On("GetRole", mock.Anything, mock.Anything).
		Return(nil, apiError("NoSuchEntity"))
	mockIAM.On("GetInstanceProfile", mock.Anything, mock.Anything).
		Return(nil, apiError("NoSuchEntity"))

	provider := newTestProvider(mockEC2)
	provider.S3Client = mockS3
	provider.IAMClient = mockIAM

	bundle := provider.DescribeBundle(context.Background(), "ghost")
	assert.Equal(t, "ghost", bundle.Name)
	assert.Nil(t, bundle.Instance)
	assert.Nil(t, bundle.Volume)
	assert.Empty(t, bundle.KeyPairID)
	assert.Empty(t, bundle.KeyFilePath)
	assert.Empty(t, bundle.BucketName)
	assert.Empty(t, bundle.SecurityGroupID)
	assert.Empty(t, bundle.PolicyArn)
	assert.Empty(t, bundle.RoleName)
	assert.Empty(t, bundle.InstanceProfileArn)
	assert.Empty(t, bundle.ElasticIP)
}

func TestDescribeBundlePartialFindings(t *testing.T) {
	usePemsDir(t)

	mockEC2 := &MockEC2Client{}
	mockEC2.On("DescribeInstances", mock.Anything, mock.Anything).
		Return(testdata.FakeDescribeInstancesOutput(
			testdata.FakeInstance("web-server", ec2_types.InstanceStateNameRunning),
		), nil)
	mockEC2.On("DescribeVolumes", mock.Anything, mock.Anything).
		Return(testdata.FakeDescribeVolumesOutput(), nil)
	mockEC2.On("DescribeKeyPairs", mock.Anything, mock.Anything).
		Return(&ec2.DescribeKeyPairsOutput{
			KeyPairs: []ec2_types.KeyPairInfo{
				{KeyPairId: aws.String("key-0123456789abcdef0")},
			},
		}, nil)
	mockEC2.On("DescribeSecurityGroups", mock.Anything, mock.Anything).
		Return(&ec2.DescribeSecurityGroupsOutput{
			SecurityGroups: []ec2_types.SecurityGroup{
				{GroupId: aws.String("sg-0123456789abcdef0")},
			},
		}, nil)
	mockEC2.On("DescribeAddresses", mock.Anything, mock.Anything).
		Return(&ec2.DescribeAddressesOutput{}, nil)

	mockS3 := &MockS3Client{}
	mockS3.On("HeadBucket", mock.Anything, mock.Anything).
		Return(nil, apiError("NotFound"))

	mockIAM := &MockIAMClient{}
	mockIAM.On("GetPolicy", mock.Anything, mock.Anything).
		Return(nil, apiError("NoSuchEntity"))
	mockIAM.On("GetRole", mock.Anything, mock.Anything).
		Return(nil, apiError("NoSuchEntity"))
	mockIAM.On("GetInstanceProfile", mock.Anything, mock.Anything).
		Return(nil, apiError("NoSuchEntity"))

	provider := newTestProvider(mockEC2)
	provider.S3Client = mockS3
	provider.IAMClient = mockIAM

	bundle := provider.DescribeBundle(context.Background(), "web-server")
	assert.NotNil(t, bundle.Instance)
	assert.Equal(t, "key-0123456789abcdef0", bundle.KeyPairID)
	assert.Equal(t, "sg-0123456789abcdef0", bundle.SecurityGroupID)
	assert.Nil(t, bundle.Volume)
	assert.Empty(t, bundle.BucketName)
}
