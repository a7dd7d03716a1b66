//go:build !integration

package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeServices_WithoutDatabase(t *testing.T) {
	cfg := testConfig(writeCatalogFile(t, soapProducts()))
	cfg.Packing.PromoSeries = "FREE"

	services, err := InitializeServices(cfg, nil)
	require.NoError(t, err)

	assert.Nil(t, services.Proformas)
	assert.Equal(t, "FREE", services.Calculator.PromotionalSeries())

	catalog, err := services.Catalog.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())

	olive, ok := catalog.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, "Olive Soap", olive.Name)
	assert.Equal(t, 12, olive.PiecesPerCase)
}

func TestInitializeServices_DefaultUnit(t *testing.T) {
	cfg := testConfig("")
	cfg.Packing.DefaultUnit = "adet"

	services, err := InitializeServices(cfg, nil)
	require.NoError(t, err)

	packing := services.Calculator.Calculate(model.PackingInput{})
	assert.Equal(t, model.UnitPiece, packing.Unit)
}

func TestDefaultUnit(t *testing.T) {
	tests := []struct {
		input string
		want  model.CountingUnit
	}{
		{"case", model.UnitCase},
		{"koli", model.UnitCase},
		{"piece", model.UnitPiece},
		{"PCS", model.UnitPiece},
		{"", model.UnitCase},
		{"pallet", model.UnitCase},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultUnit(tt.input))
		})
	}
}

func TestLoadCatalogFile(t *testing.T) {
	t.Run("empty path yields no products", func(t *testing.T) {
		products, err := loadCatalogFile("")
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("reads an xlsx catalog", func(t *testing.T) {
		products, err := loadCatalogFile(writeCatalogFile(t, soapProducts()))
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadCatalogFile(filepath.Join(t.TempDir(), "nope.xlsx"))
		assert.ErrorContains(t, err, "open catalog file")
	})

	t.Run("not a spreadsheet", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.xlsx")
		require.NoError(t, os.WriteFile(path, []byte("id,name\nA,Olive Soap\n"), 0o600))

		_, err := loadCatalogFile(path)
		assert.ErrorContains(t, err, "parse catalog file")
	})
}
