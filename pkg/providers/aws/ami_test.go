package awsprovider

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssm_types "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/internal/testdata"
)

func TestResolveLatestAMIViaSSM(t *testing.T) {
	mockSSM := &MockSSMClient{}
	mockSSM.On("GetParameter", mock.Anything, mock.Anything).
		Return(&ssm.GetParameterOutput{
			Parameter: &ssm_types.Parameter{
				Value: aws.String("ami-0cccccccccccccccc"),
			},
		}, nil)

	provider := newTestProvider(&MockEC2Client{})
	provider.SSMClient = mockSSM

	amiID, err := provider.ResolveLatestAMI(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ami-0cccccccccccccccc", amiID)
}

func TestResolveLatestAMIFallsBackToDescribeImages(t *testing.T) {
	mockSSM := &MockSSMClient{}
	mockSSM.On("GetParameter", mock.Anything, mock.Anything).
		Return(nil, errors.New("AccessDeniedException"))

	mockEC2 := &MockEC2Client{}
	mockEC2.On("DescribeImages", mock.Anything, mock.Anything).
		Return(testdata.FakeDescribeImagesOutput(), nil)

	provider := newTestProvider(mockEC2)
	provider.SSMClient = mockSSM

	amiID, err := provider.ResolveLatestAMI(context.Background())
	require.NoError(t, err)
	// the fixture lists the newer image second; sorting must pick it
	assert.Equal(t, "ami-0bbbbbbbbbbbbbbbb", amiID)
}

func TestFindLatestAMINoImages(t *testing.T) {
	mockSSM := &MockSSMClient{}
	mockSSM.On("GetParameter", mock.Anything, mock.Anything).
		Return(nil, errors.New("ParameterNotFound"))

	mockEC2 := &MockEC2Client{}
	mockEC2.On("DescribeImages", mock.Anything, mock.Anything).
		Return(&ec2.DescribeImagesOutput{}, nil)

	provider := newTestProvider(mockEC2)
	provider.SSMClient = mockSSM

	_, err := provider.ResolveLatestAMI(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no Amazon Linux 2023")
}
