package awsprovider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/spf13/viper"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/models"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/sshutils"
)

const (
	InstanceStateTimeout  = 5 * time.Minute
	TerminateStateTimeout = 10 * time.Minute
	VolumeStateTimeout    = 3 * time.Minute

	DefaultRemoteUser = "ec2-user"
)

// AWSProvider carries one region's authenticated service clients. All
// drivers and commands go through it.
type AWSProvider struct {
	AccountID  string
	Region     string
	RemoteUser string
	Config     *aws.Config

	EC2Client EC2Clienter
	IAMClient IAMClienter
	S3Client  S3Clienter
	SSMClient SSMClienter
	STSClient STSClienter
}

var NewAWSProviderFunc = NewAWSProvider

// NewAWSProvider resolves credentials, builds the SDK config, and
// validates the session with one STS call. The caller identity's account
// ID is retained for constructing ARNs.
func NewAWSProvider(ctx context.Context, region string) (*AWSProvider, error) {
	l := logger.Get()

	if region == "" {
		region = viper.GetString("aws.region")
	}
	if region == "" {
		return nil, fmt.Errorf("AWS region is required")
	}

	creds, err := ResolveCredentials()
	if err != nil {
		return nil, err
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if creds.Source == CredentialSourceFile {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				creds.AccessKeyID,
				creds.SecretAccessKey,
				creds.SessionToken,
			),
		))
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	remoteUser := viper.GetString("aws.remote_user")
	if remoteUser == "" {
		remoteUser = DefaultRemoteUser
	}

	provider := &AWSProvider{
		Region:     region,
		RemoteUser: remoteUser,
		Config:     &awsConfig,
		EC2Client:  &LiveEC2Client{client: ec2.NewFromConfig(awsConfig)},
		IAMClient:  &LiveIAMClient{client: iam.NewFromConfig(awsConfig)},
		S3Client:   &LiveS3Client{client: s3.NewFromConfig(awsConfig)},
		SSMClient:  &LiveSSMClient{client: ssm.NewFromConfig(awsConfig)},
		STSClient:  &LiveSTSClient{client: sts.NewFromConfig(awsConfig)},
	}

	identity, err := provider.STSClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to validate AWS credentials: %w", err)
	}
	provider.AccountID = aws.ToString(identity.Account)
	l.Debugf(
		"Authenticated as %s (account %s, region %s)",
		aws.ToString(identity.Arn),
		provider.AccountID,
		region,
	)

	return provider, nil
}

func (p *AWSProvider) SetEC2Client(client EC2Clienter) { p.EC2Client = client }
func (p *AWSProvider) SetIAMClient(client IAMClienter) { p.IAMClient = client }
func (p *AWSProvider) SetS3Client(client S3Clienter)   { p.S3Client = client }
func (p *AWSProvider) SetSSMClient(client SSMClienter) { p.SSMClient = client }
func (p *AWSProvider) SetSTSClient(client STSClienter) { p.STSClient = client }

func (p *AWSProvider) GetEC2Client() EC2Clienter { return p.EC2Client }

// KeyFilePath is where the private key for a named instance lives locally.
func KeyFilePath(name string) string {
	pemsDir := viper.GetString("paths.pems")
	if pemsDir == "" {
		pemsDir = "pems"
	}
	return filepath.Join(pemsDir, name+".pem")
}

// ResolveKeyFile verifies the key file exists before anything tries to
// dial with it.
func ResolveKeyFile(name string) (string, error) {
	path := KeyFilePath(name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrKeyFileNotFound, path)
		}
		return "", fmt.Errorf("failed to stat key file %s: %w", path, err)
	}
	return path, nil
}

// SSHConfigForInstance builds the SSH surface for a located instance
// using its pems key and the configured remote user.
func (p *AWSProvider) SSHConfigForInstance(
	instance *models.Instance,
) (sshutils.SSHConfiger, error) {
	if instance.PublicIP == "" {
		return nil, fmt.Errorf(
			"instance %s has no public IP address (state %s)",
			instance.Name,
			instance.State,
		)
	}
	keyPath, err := ResolveKeyFile(instance.Name)
	if err != nil {
		return nil, err
	}
	user := p.RemoteUser
	if user == "" {
		user = DefaultRemoteUser
	}
	return sshutils.NewSSHConfigFunc(instance.PublicIP, sshutils.SSHDefaultPort, user, keyPath)
}
