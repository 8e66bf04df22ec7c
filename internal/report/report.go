// Package report aggregates delivered order lines into weekly, monthly and
// annual sales buckets. Build is a pure function: it is deterministic, has
// no side effects and is cheap enough to recompute on every request.
package report

import (
	"fmt"
	"time"

	"farmtotable-be/internal/order"
)

// Field names follow the established API contract consumed by the
// storefront's sales report page.

type ProductSummary struct {
	ProductName  string  `json:"productName"`
	TotalQtySold int     `json:"totalQtySold"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type Bucket struct {
	TotalSales  float64                    `json:"totalSales"`
	TotalOrders int                        `json:"totalOrders"`
	Products    map[string]*ProductSummary `json:"products"`
}

type Report struct {
	Weekly  map[string]*Bucket `json:"weeklyReport"`
	Monthly map[string]*Bucket `json:"monthlyReport"`
	Annual  map[string]*Bucket `json:"annualReport"`
}

// Build produces the three period groupings from the given order lines.
// Only delivered lines count toward sales.
func Build(lines []order.OrderLine) *Report {
	r := &Report{
		Weekly:  make(map[string]*Bucket),
		Monthly: make(map[string]*Bucket),
		Annual:  make(map[string]*Bucket),
	}

	for _, line := range lines {
		if line.Status != order.StatusDelivered {
			continue
		}

		accumulate(r.Weekly, WeeklyKey(line.OrderedAt), line)
		accumulate(r.Monthly, MonthlyKey(line.OrderedAt), line)
		accumulate(r.Annual, AnnualKey(line.OrderedAt), line)
	}

	return r
}

func accumulate(buckets map[string]*Bucket, key string, line order.OrderLine) {
	bucket, ok := buckets[key]
	if !ok {
		bucket = &Bucket{Products: make(map[string]*ProductSummary)}
		buckets[key] = bucket
	}

	bucket.TotalSales += line.Total
	bucket.TotalOrders++

	productKey := fmt.Sprint(line.ProductID)
	summary, ok := bucket.Products[productKey]
	if !ok {
		summary = &ProductSummary{ProductName: line.ProductName}
		bucket.Products[productKey] = summary
	}
	summary.TotalQtySold += line.Quantity
	summary.TotalRevenue += line.Total
}

// WeekOfMonth computes the 1-based week number of t within its month.
// The 1st always belongs to week 1; week boundaries fall on the Sunday
// following the 1st, so week 2 starts on the first Sunday after day one
// (unless the month itself starts on a Sunday).
func WeekOfMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())

	offset := 0
	if wd := int(first.Weekday()); wd != int(time.Sunday) {
		offset = 7 - wd
	}

	adjusted := t.Day() + offset
	return (adjusted + 6) / 7
}

// WeeklyKey formats the weekly bucket key, e.g. "w2-2024-03".
func WeeklyKey(t time.Time) string {
	return fmt.Sprintf("w%d-%d-%02d", WeekOfMonth(t), t.Year(), int(t.Month()))
}

// MonthlyKey formats the monthly bucket key, e.g. "2024-03".
func MonthlyKey(t time.Time) string {
	return fmt.Sprintf("%d-%02d", t.Year(), int(t.Month()))
}

// AnnualKey formats the annual bucket key, e.g. "2024".
func AnnualKey(t time.Time) string {
	return fmt.Sprintf("%d", t.Year())
}
