package awsprovider

import (
	"errors"

	"github.com/aws/smithy-go"
)

var (
	ErrInstanceNotFound = errors.New("instance not found")
	ErrVolumeNotFound   = errors.New("volume not found")
	ErrKeyFileNotFound  = errors.New("key file not found")
	ErrNoCredentials    = errors.New("no AWS credentials found")
)

// IsAWSErrorCode reports whether err is an AWS API error with the given code.
func IsAWSErrorCode(err error, code string) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == code
	}
	return false
}

// IsNotFoundError covers the per-service spellings of "does not exist".
func IsNotFoundError(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "NoSuchEntity", // IAM
		"NoSuchBucket", "NotFound", // S3
		"ParameterNotFound", // SSM
		"InvalidGroup.NotFound",
		"InvalidKeyPair.NotFound",
		"InvalidVolume.NotFound",
		"InvalidInstanceID.NotFound",
		"InvalidAllocationID.NotFound",
		"InvalidAddress.NotFound":
		return true
	}
	return false
}

// IsAlreadyExistsError covers the codes AWS returns when a create call
// races a resource that is already there.
func IsAlreadyExistsError(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "EntityAlreadyExists", // IAM
		"BucketAlreadyOwnedByYou", // S3
		"InvalidGroup.Duplicate",
		"InvalidKeyPair.Duplicate",
		"InvalidPermission.Duplicate":
		return true
	}
	return false
}
