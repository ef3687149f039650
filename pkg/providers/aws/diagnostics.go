package awsprovider

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/spf13/viper"
)

// PrintDiagnostics reports the credential and connectivity picture to w
// without mutating anything: environment variables (secrets redacted),
// the caller identity, S3 and SSM reachability, and the local workspace
// directories this tool reads from.
func (p *AWSProvider) PrintDiagnostics(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "=== AWS Configuration Diagnostics ===")

	fmt.Fprintln(w, "Environment variables:")
	envVars := []string{
		"AWS_ACCESS_KEY_ID",
		"AWS_SECRET_ACCESS_KEY",
		"AWS_SESSION_TOKEN",
		"AWS_REGION",
		"AWS_DEFAULT_REGION",
		"AWS_PROFILE",
	}
	for _, env := range envVars {
		value := os.Getenv(env)
		if value == "" {
			fmt.Fprintf(w, "  %s: (not set)\n", env)
			continue
		}
		lower := strings.ToLower(env)
		if strings.Contains(lower, "secret") || strings.Contains(lower, "token") {
			value = "[REDACTED]"
		} else if strings.Contains(lower, "key") {
			value = maskString(value)
		}
		fmt.Fprintf(w, "  %s: %s\n", env, value)
	}

	fmt.Fprintln(w, "\nProvider configuration:")
	fmt.Fprintf(w, "  Account ID: %s\n", p.AccountID)
	fmt.Fprintf(w, "  Region:     %s\n", p.Region)
	fmt.Fprintf(w, "  Remote user: %s\n", p.RemoteUser)
	if p.Config != nil {
		creds, err := p.Config.Credentials.Retrieve(ctx)
		if err != nil {
			fmt.Fprintf(w, "  Credentials: failed to retrieve: %v\n", err)
		} else {
			fmt.Fprintf(w, "  Credential source: %s\n", creds.Source)
			fmt.Fprintf(w, "  Access key ID: %s\n", maskString(creds.AccessKeyID))
		}
	}

	fmt.Fprintln(w, "\nCaller identity:")
	identity, err := p.STSClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		fmt.Fprintf(w, "  FAILED: %v\n", err)
	} else {
		fmt.Fprintf(w, "  Account: %s\n", aws.ToString(identity.Account))
		fmt.Fprintf(w, "  ARN:     %s\n", aws.ToString(identity.Arn))
	}

	fmt.Fprintln(w, "\nService reachability:")
	if buckets, s3Err := p.S3Client.ListBuckets(ctx, &s3.ListBucketsInput{}); s3Err != nil {
		fmt.Fprintf(w, "  S3:  FAILED: %v\n", s3Err)
	} else {
		fmt.Fprintf(w, "  S3:  ok (%d buckets visible)\n", len(buckets.Buckets))
	}
	if _, ssmErr := p.SSMClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name: aws.String(AL2023AMIParameter),
	}); ssmErr != nil {
		fmt.Fprintf(w, "  SSM: FAILED: %v\n", ssmErr)
	} else {
		fmt.Fprintln(w, "  SSM: ok (latest AL2023 AMI parameter readable)")
	}

	fmt.Fprintln(w, "\nLocal workspace:")
	for _, key := range []string{"paths.pems", "paths.pacs", "paths.envs", "paths.nginx"} {
		dir := viper.GetString(key)
		if dir == "" {
			fmt.Fprintf(w, "  %s: (not configured)\n", key)
			continue
		}
		if info, statErr := os.Stat(dir); statErr == nil && info.IsDir() {
			fmt.Fprintf(w, "  %s: %s (present)\n", key, dir)
		} else {
			fmt.Fprintf(w, "  %s: %s (missing)\n", key, dir)
		}
	}

	return nil
}

// maskString keeps the first and last four characters of a credential
// visible, enough to tell keys apart without exposing them.
func maskString(s string) string {
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + strings.Repeat("*", len(s)-8) + s[len(s)-4:]
}
