package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// AuthGateIdentity identity returned by the hosted auth provider.
type AuthGateIdentity struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type authGateResponse struct {
	Status int              `json:"status"`
	Msg    string           `json:"msg"`
	Data   AuthGateIdentity `json:"data"`
}

// AuthGateClient API client for the hosted backend-as-a-service auth
// provider. Used instead of the local session store when the deployment
// delegates authentication.
type AuthGateClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func NewAuthGateClient(baseURL, apiKey string, logger *zap.Logger) *AuthGateClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("apikey", apiKey)

	return &AuthGateClient{httpClient: client, logger: logger}
}

// VerifyToken resolves a bearer token into the hosted provider's
// identity for it.
func (c *AuthGateClient) VerifyToken(ctx context.Context, token string) (*AuthGateIdentity, error) {
	var out authGateResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetResult(&out).
		Get("/auth/v1/user")
	if err != nil {
		return nil, fmt.Errorf("auth gateway unreachable: %w", err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return nil, fmt.Errorf("auth gateway rejected token")
	}
	if resp.StatusCode() != http.StatusOK {
		c.logger.Warn("auth gateway error",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("msg", out.Msg),
		)
		return nil, fmt.Errorf("auth gateway returned status %d", resp.StatusCode())
	}
	if out.Data.UserID == "" {
		return nil, fmt.Errorf("auth gateway returned empty identity")
	}
	return &out.Data, nil
}
