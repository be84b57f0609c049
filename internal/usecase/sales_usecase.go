package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// salesWindow bounds how many payment records the aggregation reads.
// The figures cover the most recent page the processor returns, not
// all time.
const salesWindow = 100

// SalesUseCase derives dashboard revenue figures from the payment
// processor's records instead of local order state.
type SalesUseCase struct {
	payments PaymentGateway
}

func NewSalesUseCase(payments PaymentGateway) *SalesUseCase {
	return &SalesUseCase{payments: payments}
}

// TotalSales sums the captured amounts of succeeded payments,
// converted from minor to major units.
func (uc *SalesUseCase) TotalSales(ctx context.Context) (float64, error) {
	records, err := uc.payments.ListPayments(ctx, salesWindow)
	if err != nil {
		return 0, fmt.Errorf("failed to list payments: %w", err)
	}

	total := int64(0)
	for _, record := range records {
		if record.Status == PaymentStatusSucceeded {
			total += record.AmountReceived
		}
	}

	return decimal.NewFromInt(total).Div(decimal.NewFromInt(100)).InexactFloat64(), nil
}

// DailySales is one calendar day's captured revenue. Date carries the
// display label ("DD.MM"); the slice is sorted by the underlying ISO
// date.
type DailySales struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"totalSales"`
}

func (uc *SalesUseCase) SalesByDate(ctx context.Context) ([]DailySales, error) {
	records, err := uc.payments.ListPayments(ctx, salesWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	byDay := make(map[string]int64)
	for _, record := range records {
		if record.Status != PaymentStatusSucceeded {
			continue
		}
		day := record.Created.UTC().Format("2006-01-02")
		byDay[day] += record.AmountReceived
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]DailySales, len(days))
	for i, day := range days {
		result[i] = DailySales{
			Date:       day[8:10] + "." + day[5:7],
			TotalSales: decimal.NewFromInt(byDay[day]).Div(decimal.NewFromInt(100)).InexactFloat64(),
		}
	}
	return result, nil
}
