package datastore

import (
	"testing"

	"github.com/aleister1102/springlift/internal/common/errorwrapper"
	"github.com/aleister1102/springlift/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanResultStore(t *testing.T) {
	store := NewScanResultStore()

	require.NoError(t, store.Save(&models.ScanResult{ID: "a", ProjectName: "first"}))
	require.NoError(t, store.Save(&models.ScanResult{ID: "b", ProjectName: "second"}))
	assert.Equal(t, 2, store.Count())

	result, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "first", result.ProjectName)

	_, err = store.Get("missing")
	assert.ErrorIs(t, err, errorwrapper.ErrNotFound)

	// saving under an existing ID replaces without duplicating order
	require.NoError(t, store.Save(&models.ScanResult{ID: "a", ProjectName: "first-again"}))
	listed := store.List()
	require.Len(t, listed, 2)
	assert.Equal(t, "first-again", listed[0].ProjectName)
	assert.Equal(t, "second", listed[1].ProjectName)

	store.Clear()
	assert.Equal(t, 0, store.Count())
	assert.Empty(t, store.List())
}

func TestScanResultStore_RejectsEmptyID(t *testing.T) {
	store := NewScanResultStore()
	err := store.Save(&models.ScanResult{})
	assert.ErrorIs(t, err, errorwrapper.ErrInvalidInput)
	assert.Error(t, store.Save(nil))
}
