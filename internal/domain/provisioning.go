package domain

import "fmt"

// ProviderResult is the provider's answer to a single recharge submission.
type ProviderResult struct {
	ResponseID     string
	ResponseStatus string
	TransID        string
	ResponseDesc   string
}

// ProvisioningPort is the outbound contract against the telecom
// airtime-provisioning API. Each submission exchanges credentials for a
// short-lived token; callers pass the token back into Submit.
type ProvisioningPort interface {
	Authenticate() (string, error)
	Submit(senderMsisdn, receiverMsisdn string, amount float64, servicePin, token string) (*ProviderResult, error)
}

// ProviderError carries the provider's own status and description for a
// rejected recharge. Unwraps to ErrUpstreamError.
type ProviderError struct {
	Status      string
	Description string
}

func (e *ProviderError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("provider rejected recharge: %s (%s)", e.Description, e.Status)
	}
	return fmt.Sprintf("provider rejected recharge with status %s", e.Status)
}

func (e *ProviderError) Unwrap() error {
	return ErrUpstreamError
}
