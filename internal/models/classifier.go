package models

import (
	"github.com/pocket-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// DefaultDueSoonDays is the width of the due soon window in days.
const DefaultDueSoonDays = 3

// BillBucket is a group of recurring bills and the sum of their amounts.
type BillBucket struct {
	Bills []RecurringBill `json:"bills"`
	Total decimal.Decimal `json:"total" example:"950"`
}

func (b *BillBucket) add(bill RecurringBill) {
	b.Bills = append(b.Bills, bill)
	b.Total = b.Total.Add(bill.Amount.Abs())
}

// BillSummary groups recurring bills by how soon they are due.
type BillSummary struct {
	Overdue      BillBucket      `json:"overdue"`
	DueSoon      BillBucket      `json:"dueSoon"`
	Upcoming     BillBucket      `json:"upcoming"`
	MonthlyTotal decimal.Decimal `json:"monthlyTotal" example:"1420.99"`
}

// ClassifyBills sorts the bills into overdue, due soon and upcoming relative to today.
//
// A bill is overdue when its due date is before today and due soon when it
// is due between today and today plus dueSoonDays, both inclusive. All
// other bills are upcoming, including bills without recurrence information.
// Bills in the result carry their computed next due date.
//
// The result only depends on the arguments, the classifier never reads the clock.
func ClassifyBills(bills []RecurringBill, today types.Date, dueSoonDays int) BillSummary {
	today = types.DateOf(today.Time())
	soon := today.AddDays(dueSoonDays)

	summary := BillSummary{
		Overdue:      BillBucket{Bills: []RecurringBill{}, Total: decimal.Zero},
		DueSoon:      BillBucket{Bills: []RecurringBill{}, Total: decimal.Zero},
		Upcoming:     BillBucket{Bills: []RecurringBill{}, Total: decimal.Zero},
		MonthlyTotal: decimal.Zero,
	}

	for _, bill := range bills {
		summary.MonthlyTotal = summary.MonthlyTotal.Add(bill.Amount.Abs())

		due, err := bill.DueDate()
		if err != nil {
			summary.Upcoming.add(bill)
			continue
		}
		bill.NextDueDate = &due

		switch {
		case due.Before(today):
			summary.Overdue.add(bill)
		case !due.After(soon):
			summary.DueSoon.add(bill)
		default:
			summary.Upcoming.add(bill)
		}
	}

	return summary
}
