// Package awsconfig builds the shared AWS SDK configuration.
package awsconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/pkg/errors"

	appconfig "github.com/Ivanvillan/front-820hd-sub000/internal/config"
)

// Load returns an aws.Config for the configured region with static
// credentials. Endpoints are overridden per client.
func Load(ctx context.Context, cfg appconfig.AWSConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "failed to load aws config")
	}
	return awsCfg, nil
}
