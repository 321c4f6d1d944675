package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontpicker/internal/application/port/mocks"
	"github.com/bnema/fontpicker/internal/application/usecase"
	"github.com/bnema/fontpicker/internal/domain/entity"
)

func schemaKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{Key: "include_italic", Type: "bool", Default: "true", Section: "Selection"},
		{Key: "cache_ttl", Type: "int", Default: "10080", Range: ">=0", Section: "Selection"},
		{Key: "catalog.timeout_seconds", Type: "int", Default: "5", Section: "Catalog"},
		{Key: "cache.driver", Type: "string", Default: "sqlite", Values: []string{"memory", "sqlite", "postgres", "none"}, Section: "Cache"},
		{Key: "catalog.remote_url", Type: "string", Section: "Catalog"},
	}
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	t.Run("groups by section and sorts keys", func(t *testing.T) {
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		got := make([]string, 0, len(result.Keys))
		for _, k := range result.Keys {
			got = append(got, k.Key)
		}
		assert.Equal(t, []string{
			"cache_ttl",
			"include_italic",
			"catalog.remote_url",
			"catalog.timeout_seconds",
			"cache.driver",
		}, got)
	})

	t.Run("filters by section", func(t *testing.T) {
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "Cache"})

		require.NoError(t, err)
		require.Len(t, result.Keys, 1)
		assert.Equal(t, "cache.driver", result.Keys[0].Key)
	})

	t.Run("returns empty slice when no keys", func(t *testing.T) {
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return([]entity.ConfigKeyInfo{})

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		assert.Empty(t, result.Keys)
	})
}
