package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pietersz/kassabon/constants"
	"github.com/pietersz/kassabon/internal/common"
	"github.com/pietersz/kassabon/internal/entity"
)

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("receipts.schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("receipts.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// ImportJSON validates and stores receipts previously produced by ToJSON.
// It returns the number of receipts saved. Validation failures surface as
// ErrValidation wrapped in an AppError before anything is written.
func (s *Service) ImportJSON(ctx context.Context, data []byte) (int, error) {
	schema := BuildReceiptsJSONSchema(constants.AsStringSlice())
	if err := ValidateJSONAgainstSchema(schema, data); err != nil {
		return 0, common.NewAppError("IMPORT_VALIDATION", "import payload rejected", fmt.Errorf("%w: %v", common.ErrValidation, err))
	}

	var receipts []*entity.Receipt
	if err := json.Unmarshal(data, &receipts); err != nil {
		return 0, fmt.Errorf("unmarshal receipts: %w", err)
	}

	saved := 0
	for _, rec := range receipts {
		if err := s.receipts.Save(ctx, rec); err != nil {
			return saved, fmt.Errorf("save receipt %s: %w", rec.ID, err)
		}
		saved++
	}
	s.logger.Info("import", "format", "json", "receipts", saved)
	return saved, nil
}
