package aws_handler

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

// secretsAPI is the part of the Secrets Manager client the connector uses.
type secretsAPI interface {
	GetSecretValueWithContext(ctx aws.Context, input *secretsmanager.GetSecretValueInput, opts ...request.Option) (*secretsmanager.GetSecretValueOutput, error)
}

type SecretManager struct {
	svc secretsAPI
}

func NewSecretManager(svc secretsAPI) *SecretManager {
	return &SecretManager{svc: svc}
}

func (s *SecretManager) GetSecretValue(ctx context.Context, secretID string) (string, error) {
	result, err := s.svc.GetSecretValueWithContext(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return "", err
	}
	if result.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", secretID)
	}
	return *result.SecretString, nil
}

// DatabaseURL resolves the connection string stored under secretID. The
// secret is either the bare URL or a JSON object with a DATABASE_URL key.
func (s *SecretManager) DatabaseURL(ctx context.Context, secretID string) (string, error) {
	value, err := s.GetSecretValue(ctx, secretID)
	if err != nil {
		return "", err
	}

	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "{") {
		return value, nil
	}

	var payload map[string]string
	if err := json.Unmarshal([]byte(value), &payload); err != nil {
		return "", fmt.Errorf("secret %s is not valid JSON: %w", secretID, err)
	}
	url, ok := payload["DATABASE_URL"]
	if !ok || url == "" {
		return "", fmt.Errorf("secret %s has no DATABASE_URL key", secretID)
	}
	return url, nil
}
