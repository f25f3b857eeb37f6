package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/kafka"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/logger"
	"github.com/kelvinjuma/airtime-recharge-service/internal/infrastructure/metrics"
	"github.com/kelvinjuma/airtime-recharge-service/internal/txid"
)

// Prometheus collectors register globally, so the package shares one set.
var testMetrics = metrics.NewRechargeMetrics()

type mockRechargeRepo struct {
	mu          sync.Mutex
	records     map[string]*domain.Recharge
	createErr   error
	updateErr   error
	updateCalls int
	listResult  []*domain.Recharge
	listTotal   int64
	listFilters domain.RechargeFilters
	listPage    int64
	listLimit   int64
	stats       *domain.RechargeStatistics
}

func newMockRechargeRepo() *mockRechargeRepo {
	return &mockRechargeRepo{records: make(map[string]*domain.Recharge)}
}

func (m *mockRechargeRepo) CreateRecharge(recharge *domain.Recharge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if _, exists := m.records[recharge.TransactionID]; exists {
		return fmt.Errorf("transaction %s: %w", recharge.TransactionID, domain.ErrDuplicateTransaction)
	}
	stored := *recharge
	stored.CreatedAt = time.Now()
	m.records[recharge.TransactionID] = &stored
	return nil
}

func (m *mockRechargeRepo) GetRechargeByTransactionID(transactionID string) (*domain.Recharge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	recharge, ok := m.records[transactionID]
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, domain.ErrNotFound)
	}
	copied := *recharge
	return &copied, nil
}

func (m *mockRechargeRepo) UpdateRechargeStatus(transactionID string, newStatus domain.RechargeStatus, errorMessage string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	if recharge, ok := m.records[transactionID]; ok && !recharge.Status.IsTerminal() {
		recharge.Status = newStatus
		recharge.ErrorMessage = errorMessage
	}
	return nil
}

func (m *mockRechargeRepo) GetRechargesByOwnerID(filters domain.RechargeFilters, page, limit int64) ([]*domain.Recharge, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listFilters = filters
	m.listPage = page
	m.listLimit = limit
	return m.listResult, m.listTotal, nil
}

func (m *mockRechargeRepo) GetRechargeStatistics(ownerID string, monthStart, yearStart time.Time) (*domain.RechargeStatistics, error) {
	if m.stats != nil {
		return m.stats, nil
	}
	return &domain.RechargeStatistics{}, nil
}

func (m *mockRechargeRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

type mockProvisioning struct {
	mu          sync.Mutex
	authErr     error
	submitErr   error
	result      domain.ProviderResult
	authCalls   int
	submitCalls int
	lastSender  string
	lastRecv    string
	lastAmount  float64
	lastPin     string
	lastToken   string
}

func (m *mockProvisioning) Authenticate() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.authCalls++
	if m.authErr != nil {
		return "", m.authErr
	}
	return "test-token", nil
}

func (m *mockProvisioning) Submit(senderMsisdn, receiverMsisdn string, amount float64, servicePin, token string) (*domain.ProviderResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitCalls++
	m.lastSender = senderMsisdn
	m.lastRecv = receiverMsisdn
	m.lastAmount = amount
	m.lastPin = servicePin
	m.lastToken = token
	if m.submitErr != nil {
		return nil, m.submitErr
	}
	result := m.result
	if result.ResponseStatus == "" {
		result = domain.ProviderResult{
			ResponseID:     "rsp-1",
			ResponseStatus: "200",
			TransID:        "prov-1",
			ResponseDesc:   "Recharge successful",
		}
	}
	return &result, nil
}

type mockPublisher struct {
	mu     sync.Mutex
	events []kafka.RechargeEvent
}

func (m *mockPublisher) PublishRecharge(event kafka.RechargeEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

type mockEventLogger struct {
	mu      sync.Mutex
	created []logger.RechargeCreatedEvent
	failed  []logger.RechargeFailedEvent
}

func (m *mockEventLogger) LogRechargeCreated(ctx context.Context, event logger.RechargeCreatedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, event)
	return nil
}

func (m *mockEventLogger) LogRechargeFailed(ctx context.Context, event logger.RechargeFailedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed = append(m.failed, event)
	return nil
}

type testEnv struct {
	uc        *DefaultRechargeUsecase
	repo      *mockRechargeRepo
	provider  *mockProvisioning
	publisher *mockPublisher
	events    *mockEventLogger
}

func newTestEnv() *testEnv {
	gen, err := txid.NewGenerator()
	if err != nil {
		panic(err)
	}
	env := &testEnv{
		repo:      newMockRechargeRepo(),
		provider:  &mockProvisioning{},
		publisher: &mockPublisher{},
		events:    &mockEventLogger{},
	}
	env.uc = NewDefaultRechargeUsecase(
		env.repo,
		env.provider,
		gen,
		env.publisher,
		env.events,
		testMetrics,
		"safaricom",
		2,
	)
	return env
}
