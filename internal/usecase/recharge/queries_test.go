package usecase

import (
	"testing"
	"time"

	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
	rechargedto "github.com/kelvinjuma/airtime-recharge-service/internal/usecase/dto/recharge"
)

func TestListTransactions(t *testing.T) {
	t.Run("applies pagination defaults and caps", func(t *testing.T) {
		env := newTestEnv()
		env.repo.listTotal = 45

		output, err := env.uc.ListTransactions(&rechargedto.ListTransactionsInput{
			Caller: domain.AuthUser{ID: "owner-1"},
		})
		if err != nil {
			t.Fatalf("ListTransactions failed: %v", err)
		}
		if env.repo.listPage != 1 || env.repo.listLimit != 20 {
			t.Errorf("defaults = page %d size %d, want 1/20", env.repo.listPage, env.repo.listLimit)
		}
		if output.Pages != 3 {
			t.Errorf("pages = %d, want 3", output.Pages)
		}

		if _, err := env.uc.ListTransactions(&rechargedto.ListTransactionsInput{
			Caller:   domain.AuthUser{ID: "owner-1"},
			PageSize: 1000,
		}); err != nil {
			t.Fatalf("ListTransactions failed: %v", err)
		}
		if env.repo.listLimit != 100 {
			t.Errorf("pageSize cap = %d, want 100", env.repo.listLimit)
		}
	})

	t.Run("scopes the query to the caller", func(t *testing.T) {
		env := newTestEnv()
		if _, err := env.uc.ListTransactions(&rechargedto.ListTransactionsInput{
			Caller: domain.AuthUser{ID: "owner-42"},
			Search: "2547",
			Range:  "quarter",
		}); err != nil {
			t.Fatalf("ListTransactions failed: %v", err)
		}
		if env.repo.listFilters.OwnerID != "owner-42" {
			t.Errorf("owner filter = %q", env.repo.listFilters.OwnerID)
		}
		if env.repo.listFilters.Search != "2547" {
			t.Errorf("search filter = %q", env.repo.listFilters.Search)
		}
		if env.repo.listFilters.DateFrom.IsZero() {
			t.Error("range filter was not translated to a date bound")
		}
	})
}

func TestRangeStart(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		want time.Time
	}{
		{"month", now.AddDate(0, -1, 0)},
		{"quarter", now.AddDate(0, -3, 0)},
		{"year", now.AddDate(-1, 0, 0)},
	}
	for _, tc := range cases {
		if got := rangeStart(tc.name, now); !got.Equal(tc.want) {
			t.Errorf("rangeStart(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}

	if !rangeStart("", now).IsZero() {
		t.Error("unknown range must not bound the query")
	}
}

func TestGetStatistics_FillsMonthlySeries(t *testing.T) {
	env := newTestEnv()
	now := time.Now()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01")
	env.repo.stats = &domain.RechargeStatistics{
		MonthlyTotal:    500,
		NewClientsCount: 3,
		MonthlyTimeSeries: []domain.MonthlyVolume{
			{Month: currentMonth, Total: 500},
		},
	}

	stats, err := env.uc.GetStatistics("owner-1")
	if err != nil {
		t.Fatalf("GetStatistics failed: %v", err)
	}

	if len(stats.MonthlyTimeSeries) != 12 {
		t.Fatalf("series length = %d, want 12", len(stats.MonthlyTimeSeries))
	}
	last := stats.MonthlyTimeSeries[11]
	if last.Month != currentMonth || last.Total != 500 {
		t.Errorf("latest entry = %+v, want %s/500", last, currentMonth)
	}
	for _, entry := range stats.MonthlyTimeSeries[:11] {
		if entry.Total != 0 {
			t.Errorf("month %s should be zero-filled, got %f", entry.Month, entry.Total)
		}
	}
}
