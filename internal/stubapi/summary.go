package stubapi

import (
	"strconv"

	"printduka-admin/internal/resource"
)

// summarize builds the aggregate strip for resources that have one.
// The real backend serializes money as strings, so amounts here are
// rendered back to strings too.
func summarize(res string, filtered []Record) any {
	switch res {
	case resource.Payments:
		return moneySummary(filtered, "amount", map[string]string{
			"pending":   "pending",
			"confirmed": "confirmed",
		})
	case resource.LPOs:
		return moneySummary(filtered, "total", map[string]string{
			"pending":  "pending",
			"approved": "approved",
		})
	case resource.Quotes:
		return moneySummary(filtered, "total", map[string]string{
			"draft":    "draft",
			"sent":     "sent",
			"approved": "approved",
		})
	default:
		return nil
	}
}

// moneySummary totals an amount field over the filtered set and counts
// records per status bucket.
func moneySummary(recs []Record, amountField string, buckets map[string]string) Record {
	var total float64
	counts := make(map[string]int64, len(buckets))
	for key := range buckets {
		counts[key] = 0
	}

	for _, rec := range recs {
		total += amountOf(rec, amountField)
		status := fieldString(rec, "status")
		for key, want := range buckets {
			if status == want {
				counts[key]++
			}
		}
	}

	out := Record{
		"total":        int64(len(recs)),
		"total_amount": strconv.FormatFloat(total, 'f', 2, 64),
	}
	for key, n := range counts {
		out[key] = n
	}
	return out
}

// amountOf reads a money field that may be a JSON number or a string.
func amountOf(rec Record, field string) float64 {
	s := fieldString(rec, field)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
