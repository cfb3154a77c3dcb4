package aws

import (
	"context"
	"fmt"

	"peerswap-api/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"
)

// SecretsAPI is the subset of the Secrets Manager API used here.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc SecretsAPI
}

// NewSecretsManagerClient creates and initializes a new Secrets Manager client.
// It uses the default AWS configuration chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg)), nil
}

// NewSecretsManagerClientWithAPI wraps an existing Secrets Manager API implementation.
func NewSecretsManagerClientWithAPI(svc SecretsAPI) *SecretsManagerClient {
	return &SecretsManagerClient{svc: svc}
}

// GetSecretString fetches the secret stored under secretArn. When secretArn is
// empty or the lookup fails it falls back to fallbackValue. An error is
// returned only if neither source yields a value.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArn string, fallbackValue string) (string, error) {
	if secretArn != "" {
		logger.Debug("Attempting to fetch secret from Secrets Manager", zap.String("secretArn", secretArn))

		result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		})
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			logger.Info("Fetched secret from Secrets Manager", zap.String("secretArn", secretArn))
			return *result.SecretString, nil
		}

		logger.Warn("Failed to retrieve secret from Secrets Manager, falling back to configured value",
			zap.String("secretArn", secretArn),
			zap.Error(err),
		)
	}

	if fallbackValue != "" {
		return fallbackValue, nil
	}

	return "", fmt.Errorf("secret not found using ARN %q and no fallback value configured", secretArn)
}
