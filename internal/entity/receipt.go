package entity

import "github.com/pietersz/kassabon/constants"

// ReceiptItem is one purchased line on a receipt. Price is the billed
// unit price for the line; for multi-unit purchases the line total is
// Price * Quantity.
type ReceiptItem struct {
	Name     string                    `json:"name"`
	Quantity int                       `json:"quantity"`
	Price    float64                   `json:"price"`
	Category constants.ProductCategory `json:"category"`
}

// LineTotal returns the amount billed for this line.
func (i ReceiptItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Receipt is the structured form of one register receipt. Items keep
// the order in which they appeared in the source text. Date is a
// calendar date in YYYY-MM-DD form.
type Receipt struct {
	ID        string        `json:"id"`
	Date      string        `json:"date"`
	Items     []ReceiptItem `json:"items"`
	Total     float64       `json:"total"`
	StoreName string        `json:"storeName"`
}

// ItemsTotal sums the line totals over all items. Used as the receipt
// total when the source text carries no extractable total.
func (r *Receipt) ItemsTotal() float64 {
	var sum float64
	for _, item := range r.Items {
		sum += item.LineTotal()
	}
	return sum
}
