package database

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	appconfig "github.com/Ivanvillan/front-820hd-sub000/internal/config"
)

// NewDynamoDBClient creates the DynamoDB client. DYNAMODB_ENDPOINT points it
// at a local instance (e.g. http://dynamodb:8000).
func NewDynamoDBClient(awsCfg aws.Config, cfg appconfig.DynamoConfig) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
}
