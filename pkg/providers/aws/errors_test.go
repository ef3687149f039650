package awsprovider

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func apiError(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: code}
}

func TestIsAWSErrorCode(t *testing.T) {
	err := apiError("DependencyViolation")
	assert.True(t, IsAWSErrorCode(err, "DependencyViolation"))
	assert.False(t, IsAWSErrorCode(err, "Throttling"))

	wrapped := fmt.Errorf("failed to delete security group: %w", err)
	assert.True(t, IsAWSErrorCode(wrapped, "DependencyViolation"))

	assert.False(t, IsAWSErrorCode(errors.New("plain error"), "DependencyViolation"))
}

func TestIsNotFoundError(t *testing.T) {
	for _, code := range []string{
		"NoSuchEntity",
		"NoSuchBucket",
		"NotFound",
		"ParameterNotFound",
		"InvalidGroup.NotFound",
		"InvalidKeyPair.NotFound",
		"InvalidVolume.NotFound",
		"InvalidInstanceID.NotFound",
	} {
		assert.True(t, IsNotFoundError(apiError(code)), code)
	}
	assert.False(t, IsNotFoundError(apiError("AccessDenied")))
	assert.False(t, IsNotFoundError(errors.New("not found")))
}

func TestIsAlreadyExistsError(t *testing.T) {
	for _, code := range []string{
		"EntityAlreadyExists",
		"BucketAlreadyOwnedByYou",
		"InvalidGroup.Duplicate",
		"InvalidPermission.Duplicate",
	} {
		assert.True(t, IsAlreadyExistsError(apiError(code)), code)
	}
	assert.False(t, IsAlreadyExistsError(apiError("AccessDenied")))
	assert.False(t, IsAlreadyExistsError(nil))
}
