package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pietersz/kassabon/constants"
	"github.com/pietersz/kassabon/internal/entity"
)

func makeReceipt() *entity.Receipt {
	return &entity.Receipt{
		ID:        "r1",
		Date:      "2026-02-09",
		StoreName: "Albert Heijn",
		Total:     5.50,
		Items: []entity.ReceiptItem{
			{Name: "AH Melk", Price: 1.29, Quantity: 1, Category: constants.Zuivel},
			{Name: "Bananen", Price: 2.38, Quantity: 2, Category: constants.Fruit},
		},
	}
}

func TestEscapeCSVField(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain value passes through", "hello", "hello"},
		{"comma forces quoting", "hello, world", `"hello, world"`},
		{"embedded quotes are doubled", `say "hi"`, `"say ""hi"""`},
		{"newline forces quoting", "line1\nline2", "\"line1\nline2\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeCSVField(tt.in))
		})
	}
}

func TestToCSV(t *testing.T) {
	t.Run("empty input yields header only", func(t *testing.T) {
		assert.Equal(t, csvHeader, ToCSV(nil))
	})

	t.Run("one row per item with receipt fields repeated", func(t *testing.T) {
		lines := strings.Split(ToCSV([]*entity.Receipt{makeReceipt()}), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, csvHeader, lines[0])
		assert.Equal(t, "2026-02-09,Albert Heijn,5.50,AH Melk,1,1.29,zuivel", lines[1])
		assert.Equal(t, "2026-02-09,Albert Heijn,5.50,Bananen,2,2.38,fruit", lines[2])
	})

	t.Run("special characters are escaped", func(t *testing.T) {
		rec := makeReceipt()
		rec.StoreName = `Albert "AH" Heijn`
		rec.Items = []entity.ReceiptItem{
			{Name: "Komkommer, groot", Price: 0.99, Quantity: 1, Category: constants.Groente},
		}
		lines := strings.Split(ToCSV([]*entity.Receipt{rec}), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[1], `"Albert ""AH"" Heijn"`)
		assert.Contains(t, lines[1], `"Komkommer, groot"`)
	})

	t.Run("multiple receipts concatenate", func(t *testing.T) {
		second := makeReceipt()
		second.ID = "r2"
		second.Items = []entity.ReceiptItem{
			{Name: "Brood", Price: 2.49, Quantity: 1, Category: constants.Brood},
		}
		lines := strings.Split(ToCSV([]*entity.Receipt{makeReceipt(), second}), "\n")
		assert.Len(t, lines, 4)
	})
}

func TestToJSON(t *testing.T) {
	t.Run("round trips all receipt fields", func(t *testing.T) {
		out, err := ToJSON([]*entity.Receipt{makeReceipt()})
		require.NoError(t, err)

		var parsed []*entity.Receipt
		require.NoError(t, json.Unmarshal(out, &parsed))
		require.Len(t, parsed, 1)
		assert.Equal(t, "r1", parsed[0].ID)
		assert.Equal(t, "2026-02-09", parsed[0].Date)
		assert.Equal(t, "Albert Heijn", parsed[0].StoreName)
		assert.InDelta(t, 5.50, parsed[0].Total, 1e-9)
		require.Len(t, parsed[0].Items, 2)
		assert.Equal(t, constants.Zuivel, parsed[0].Items[0].Category)
	})

	t.Run("empty input yields an empty array", func(t *testing.T) {
		out, err := ToJSON([]*entity.Receipt{})
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(out))
	})
}

func TestToXLSX(t *testing.T) {
	out, err := ToXLSX([]*entity.Receipt{makeReceipt()})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Receipts")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Store", "Receipt Total", "Item", "Quantity", "Price", "Category"}, rows[0])
	assert.Equal(t, "2026-02-09", rows[1][0])
	assert.Equal(t, "Albert Heijn", rows[1][1])
	assert.Equal(t, "AH Melk", rows[1][3])
	assert.Equal(t, "zuivel", rows[1][6])
	assert.Equal(t, "Bananen", rows[2][3])
}
