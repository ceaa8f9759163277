package storage

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "github.com/Ivanvillan/front-820hd-sub000/internal/config"
)

// NewS3Client creates the S3 client used for order documents. A custom
// EXPORT_ENDPOINT (MinIO, LocalStack) switches to path-style addressing.
func NewS3Client(awsCfg aws.Config, cfg appconfig.ExportConfig) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
}
