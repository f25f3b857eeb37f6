package client

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kelvinjuma/airtime-recharge-service/internal/config"
	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
)

// AirtimeClient talks to the telecom provisioning API over HTTP: an OAuth
// client-credentials token exchange followed by a recharge submission.
type AirtimeClient struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	httpClient     *http.Client
}

func NewAirtimeClient(cfg *config.AirtimeProvider) *AirtimeClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AirtimeClient{
		baseURL:        cfg.BaseURL,
		consumerKey:    cfg.ConsumerKey,
		consumerSecret: cfg.ConsumerSecret,
		httpClient:     &http.Client{Timeout: timeout},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type rechargeRequest struct {
	SenderMsisdn   string  `json:"senderMsisdn"`
	ReceiverMsisdn string  `json:"receiverMsisdn"`
	Amount         float64 `json:"amount"`
	ServicePin     string  `json:"servicePin"`
}

type rechargeResponse struct {
	ResponseID     string `json:"responseId"`
	ResponseStatus string `json:"responseStatus"`
	TransID        string `json:"transId"`
	ResponseDesc   string `json:"responseDesc"`
	Error          string `json:"error"`
}

// Authenticate exchanges the configured consumer key/secret for a bearer
// token. Tokens are not cached; every submission re-authenticates.
func (c *AirtimeClient) Authenticate() (string, error) {
	endpoint := fmt.Sprintf("%s/oauth2/v1/generate?grant_type=client_credentials", c.baseURL)

	req, err := http.NewRequest(http.MethodPost, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	credentials := base64.StdEncoding.EncodeToString([]byte(c.consumerKey + ":" + c.consumerSecret))
	req.Header.Set("Authorization", "Basic "+credentials)
	req.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token endpoint unreachable: %w", domain.ErrUpstreamUnreachable)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading token response: %v", domain.ErrUpstreamAuthFailure, err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return "", fmt.Errorf("%w: token endpoint returned %d", domain.ErrUpstreamAuthFailure, response.StatusCode)
	}

	var token tokenResponse
	if err := json.Unmarshal(responseBodyBytes, &token); err != nil {
		return "", fmt.Errorf("%w: decoding token response: %v", domain.ErrUpstreamAuthFailure, err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", domain.ErrUpstreamAuthFailure)
	}

	return token.AccessToken, nil
}

// Submit sends one recharge instruction. The service PIN is base64-encoded
// on the wire; this is a pass-through encoding, not a security control.
func (c *AirtimeClient) Submit(senderMsisdn, receiverMsisdn string, amount float64, servicePin, token string) (*domain.ProviderResult, error) {
	requestBodyBytes, err := json.Marshal(rechargeRequest{
		SenderMsisdn:   senderMsisdn,
		ReceiverMsisdn: receiverMsisdn,
		Amount:         amount,
		ServicePin:     base64.StdEncoding.EncodeToString([]byte(servicePin)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recharge request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/pretups/api/recharge", c.baseURL)
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to build recharge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recharge endpoint unreachable: %w", domain.ErrUpstreamUnreachable)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("reading recharge response: %w", domain.ErrUpstreamUnreachable)
	}

	var providerResponse rechargeResponse
	if err := json.Unmarshal(responseBodyBytes, &providerResponse); err != nil && response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil, fmt.Errorf("decoding recharge response: %w", domain.ErrUpstreamError)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		providerErr := &domain.ProviderError{
			Status:      providerResponse.ResponseStatus,
			Description: providerResponse.ResponseDesc,
		}
		if providerErr.Status == "" {
			providerErr.Status = fmt.Sprintf("%d", response.StatusCode)
		}
		if providerErr.Description == "" {
			providerErr.Description = providerResponse.Error
		}
		return nil, providerErr
	}

	return &domain.ProviderResult{
		ResponseID:     providerResponse.ResponseID,
		ResponseStatus: providerResponse.ResponseStatus,
		TransID:        providerResponse.TransID,
		ResponseDesc:   providerResponse.ResponseDesc,
	}, nil
}
