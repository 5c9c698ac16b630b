package mainconfig

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/portosolutions/tv-mounting/internal/config"
)

func TestLoadAWSConfigStaticCredentials(t *testing.T) {
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
	cfg := &appconfig.Config{
		AWSRegion:          "us-west-2",
		AWSAccessKeyID:     "test",
		AWSSecretAccessKey: "secret",
	}

	awsCfg, err := LoadAWSConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", awsCfg.Region)

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}

func TestClientsHonorEndpointOverride(t *testing.T) {
	cfg := &appconfig.Config{AWSRegion: "us-east-1", AWSEndpointOverride: "http://localstack:4566"}
	awsCfg := aws.Config{Region: "us-east-1"}

	sqsClient := NewSQSClient(awsCfg, cfg)
	assert.Equal(t, "http://localstack:4566", aws.ToString(sqsClient.Options().BaseEndpoint))

	sesClient := NewSESClient(awsCfg, cfg)
	assert.Equal(t, "http://localstack:4566", aws.ToString(sesClient.Options().BaseEndpoint))

	cfg.AWSEndpointOverride = ""
	assert.Nil(t, NewSQSClient(awsCfg, cfg).Options().BaseEndpoint)
}
