package usecase

import (
	"cmp"
	"context"
	"slices"

	"github.com/bnema/fontpicker/internal/application/port"
	"github.com/bnema/fontpicker/internal/domain/entity"
)

// GetConfigSchemaUseCase retrieves configuration schema information.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaInput contains input parameters for schema retrieval.
type GetConfigSchemaInput struct {
	// Section limits the output to one section; empty returns every key.
	Section string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys []entity.ConfigKeyInfo
}

// Execute retrieves configuration keys with their metadata, grouped by
// section in provider order and sorted by key within each section.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	all := uc.provider.GetSchema()

	sectionOrder := make(map[string]int)
	keys := make([]entity.ConfigKeyInfo, 0, len(all))
	for _, k := range all {
		if _, ok := sectionOrder[k.Section]; !ok {
			sectionOrder[k.Section] = len(sectionOrder)
		}
		if input.Section != "" && k.Section != input.Section {
			continue
		}
		keys = append(keys, k)
	}

	slices.SortStableFunc(keys, func(a, b entity.ConfigKeyInfo) int {
		if c := cmp.Compare(sectionOrder[a.Section], sectionOrder[b.Section]); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})

	return &GetConfigSchemaOutput{
		Keys: keys,
	}, nil
}
