package usecase

import (
	"time"

	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
	rechargedto "github.com/kelvinjuma/airtime-recharge-service/internal/usecase/dto/recharge"
)

func (uc *DefaultRechargeUsecase) ListTransactions(input *rechargedto.ListTransactionsInput) (*rechargedto.ListTransactionsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	filters := domain.RechargeFilters{
		OwnerID:  input.Caller.ID,
		Search:   input.Search,
		DateFrom: rangeStart(input.Range, time.Now()),
	}

	transactions, total, err := uc.RechargeRepo.GetRechargesByOwnerID(filters, page, pageSize)
	if err != nil {
		return nil, err
	}

	pages := total / pageSize
	if total%pageSize > 0 {
		pages++
	}

	return &rechargedto.ListTransactionsOutput{
		Transactions: transactions,
		Total:        total,
		Pages:        pages,
	}, nil
}

func (uc *DefaultRechargeUsecase) GetStatistics(ownerID string) (*domain.RechargeStatistics, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	yearStart := monthStart.AddDate(0, -11, 0)

	stats, err := uc.RechargeRepo.GetRechargeStatistics(ownerID, monthStart, yearStart)
	if err != nil {
		return nil, err
	}

	stats.MonthlyTimeSeries = fillMonthlySeries(stats.MonthlyTimeSeries, yearStart)
	return stats, nil
}

func rangeStart(rangeName string, now time.Time) time.Time {
	switch rangeName {
	case "month":
		return now.AddDate(0, -1, 0)
	case "quarter":
		return now.AddDate(0, -3, 0)
	case "year":
		return now.AddDate(-1, 0, 0)
	default:
		return time.Time{}
	}
}

// fillMonthlySeries expands sparse per-month sums into 12 entries, one per
// month of the trailing year, zero-filled where no volume exists.
func fillMonthlySeries(sparse []domain.MonthlyVolume, yearStart time.Time) []domain.MonthlyVolume {
	totals := make(map[string]float64, len(sparse))
	for _, entry := range sparse {
		totals[entry.Month] = entry.Total
	}

	series := make([]domain.MonthlyVolume, 0, 12)
	for i := 0; i < 12; i++ {
		month := yearStart.AddDate(0, i, 0).Format("2006-01")
		series = append(series, domain.MonthlyVolume{
			Month: month,
			Total: totals[month],
		})
	}
	return series
}
