package export

// BuildReceiptsJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the array-of-receipts shape that ToJSON produces.
// Imports are validated against it before anything touches the database.
func BuildReceiptsJSONSchema(allowedCategories []string) map[string]any {
	itemProps := map[string]any{
		"name":     map[string]any{"type": "string", "minLength": 1},
		"quantity": map[string]any{"type": "integer", "minimum": 1},
		"price":    map[string]any{"type": "number", "minimum": 0},
		"category": map[string]any{"type": "string"},
	}
	if len(allowedCategories) > 0 {
		itemProps["category"] = map[string]any{
			"type": "string",
			"enum": allowedCategories,
		}
	}

	receiptProps := map[string]any{
		"id":        map[string]any{"type": "string", "minLength": 1},
		"date":      map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"storeName": map[string]any{"type": "string", "minLength": 1},
		"total":     map[string]any{"type": "number", "minimum": 0},
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           itemProps,
				"required":             []string{"name", "quantity", "price", "category"},
			},
		},
	}

	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties":           receiptProps,
			"required":             []string{"id", "date", "storeName", "total", "items"},
		},
	}
}
