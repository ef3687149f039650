package awsprovider

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3_types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
)

// EnsureBucket creates the bundle's S3 bucket when HeadBucket misses.
// Regions other than us-east-1 need an explicit location constraint.
// Versioning is enabled on every pass, reused buckets included, so a
// bucket created before this tool managed it ends up versioned too.
func (p *AWSProvider) EnsureBucket(ctx context.Context, name string) error {
	l := logger.Get()

	_, err := p.S3Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(name),
	})
	if err == nil {
		l.Infof("S3 bucket %s already exists, reusing", name)
		return p.enableBucketVersioning(ctx, name)
	}
	if !IsNotFoundError(err) {
		return fmt.Errorf("failed to check S3 bucket %s: %w", name, err)
	}

	input := &s3.CreateBucketInput{
		Bucket: aws.String(name),
	}
	if p.Region != "us-east-1" {
		input.CreateBucketConfiguration = &s3_types.CreateBucketConfiguration{
			LocationConstraint: s3_types.BucketLocationConstraint(p.Region),
		}
	}
	if _, err := p.S3Client.CreateBucket(ctx, input); err != nil {
		if IsAlreadyExistsError(err) {
			l.Infof("S3 bucket %s already exists, reusing", name)
			return p.enableBucketVersioning(ctx, name)
		}
		return fmt.Errorf("failed to create S3 bucket %s: %w", name, err)
	}
	l.Infof("Created S3 bucket %s", name)
	return p.enableBucketVersioning(ctx, name)
}

func (p *AWSProvider) enableBucketVersioning(ctx context.Context, name string) error {
	_, err := p.S3Client.PutBucketVersioning(ctx, &s3.PutBucketVersioningInput{
		Bucket: aws.String(name),
		VersioningConfiguration: &s3_types.VersioningConfiguration{
			Status: s3_types.BucketVersioningStatusEnabled,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to enable versioning on S3 bucket %s: %w", name, err)
	}
	return nil
}

// BucketExists reports whether the named bucket is reachable.
func (p *AWSProvider) BucketExists(ctx context.Context, name string) (bool, error) {
	_, err := p.S3Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(name),
	})
	if err == nil {
		return true, nil
	}
	if IsNotFoundError(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check S3 bucket %s: %w", name, err)
}

// EmptyBucket deletes every object in the bucket, page by page. Buckets
// must be empty before DeleteBucket succeeds.
func (p *AWSProvider) EmptyBucket(ctx context.Context, name string) error {
	l := logger.Get()

	var deleted int
	var continuationToken *string
	for {
		page, err := p.S3Client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(name),
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return fmt.Errorf("failed to list objects in %s: %w", name, err)
		}
		if len(page.Contents) > 0 {
			objects := make([]s3_types.ObjectIdentifier, len(page.Contents))
			for i, object := range page.Contents {
				objects[i] = s3_types.ObjectIdentifier{Key: object.Key}
			}
			if _, err := p.S3Client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
				Bucket: aws.String(name),
				Delete: &s3_types.Delete{
					Objects: objects,
					Quiet:   aws.Bool(true),
				},
			}); err != nil {
				return fmt.Errorf("failed to delete objects in %s: %w", name, err)
			}
			deleted += len(objects)
		}
		if !aws.ToBool(page.IsTruncated) {
			break
		}
		continuationToken = page.NextContinuationToken
	}

	if deleted > 0 {
		l.Infof("Deleted %d objects from bucket %s", deleted, name)
	}
	return nil
}

// DeleteBucket empties and deletes the bundle's bucket.
func (p *AWSProvider) DeleteBucket(ctx context.Context, name string) error {
	l := logger.Get()

	if err := p.EmptyBucket(ctx, name); err != nil {
		if IsNotFoundError(err) {
			l.Infof("S3 bucket %s already gone", name)
			return nil
		}
		return err
	}
	if _, err := p.S3Client.DeleteBucket(ctx, &s3.DeleteBucketInput{
		Bucket: aws.String(name),
	}); err != nil {
		if IsNotFoundError(err) {
			l.Infof("S3 bucket %s already gone", name)
			return nil
		}
		return fmt.Errorf("failed to delete S3 bucket %s: %w", name, err)
	}
	l.Infof("Deleted S3 bucket %s", name)
	return nil
}
