// Package summary computes spending statistics over a set of receipts.
package summary

import (
	"strings"

	"github.com/pietersz/kassabon/constants"
	"github.com/pietersz/kassabon/internal/entity"
)

func ReceiptCount(receipts []*entity.Receipt) int {
	return len(receipts)
}

func TotalSpent(receipts []*entity.Receipt) float64 {
	var sum float64
	for _, rec := range receipts {
		sum += rec.Total
	}
	return sum
}

func AveragePerReceipt(receipts []*entity.Receipt) float64 {
	if len(receipts) == 0 {
		return 0
	}
	return TotalSpent(receipts) / float64(len(receipts))
}

// SpendingByCategory sums price times quantity per category across all
// receipts. Only categories that actually occur appear in the result.
func SpendingByCategory(receipts []*entity.Receipt) map[constants.ProductCategory]float64 {
	spending := map[constants.ProductCategory]float64{}
	for _, rec := range receipts {
		for _, item := range rec.Items {
			spending[item.Category] += item.Price * float64(item.Quantity)
		}
	}
	return spending
}

// ItemFrequency counts how often each item was bought, keyed by the
// lowercased item name so OCR casing differences fold together.
func ItemFrequency(receipts []*entity.Receipt) map[string]int {
	frequency := map[string]int{}
	for _, rec := range receipts {
		for _, item := range rec.Items {
			frequency[strings.ToLower(item.Name)] += item.Quantity
		}
	}
	return frequency
}

// PurchasedCategories returns the set of categories seen on the receipts.
func PurchasedCategories(receipts []*entity.Receipt) map[constants.ProductCategory]bool {
	seen := map[constants.ProductCategory]bool{}
	for _, rec := range receipts {
		for _, item := range rec.Items {
			seen[item.Category] = true
		}
	}
	return seen
}
