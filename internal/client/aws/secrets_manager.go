package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gas-estimator/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"
)

//go:generate mockgen -source=secrets_manager.go -destination=../../mocks/mock_secrets_manager.go -package=mocks

// SecretsManagerAPI is the subset of the Secrets Manager client in use
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc SecretsManagerAPI
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

// NewSecretsManagerClientWithAPI wraps an existing Secrets Manager API
func NewSecretsManagerClientWithAPI(svc SecretsManagerAPI) *SecretsManagerClient {
	return &SecretsManagerClient{svc: svc}
}

// GetSecretString fetches the plain string value of secretArn
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArn string) (string, error) {
	logger.Log.Debug("Fetching secret from Secrets Manager", zap.String("secretArn", secretArn))

	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get secret %s: %w", secretArn, err)
	}
	if result.SecretString == nil || *result.SecretString == "" {
		return "", fmt.Errorf("secret %s has no string value", secretArn)
	}

	logger.Log.Info("Fetched secret from Secrets Manager", zap.String("secretArn", secretArn))
	return *result.SecretString, nil
}

// GetSecretField fetches secretArn and returns field from it. A secret that
// is not a JSON object is returned whole.
func (c *SecretsManagerClient) GetSecretField(ctx context.Context, secretArn, field string) (string, error) {
	raw, err := c.GetSecretString(ctx, secretArn)
	if err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return trimmed, nil
	}

	var fields map[string]string
	if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
		return "", fmt.Errorf("failed to parse JSON secret %s: %w", secretArn, err)
	}

	value, ok := fields[field]
	if !ok || value == "" {
		return "", fmt.Errorf("secret %s has no field %q", secretArn, field)
	}
	return value, nil
}
