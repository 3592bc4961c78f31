package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"campustimetable/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataOccupation.js")
	writer := NewOccupancyWriter()

	err := writer.Write(path, []domain.RoomOccupancy{
		{Room: "B103", Percentage: 80},
		{Room: "C201", Percentage: 40.5},
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)

	assert.True(t, strings.HasPrefix(content, "var dataOccupation = ["))
	assert.True(t, strings.HasSuffix(content, "];\n"))
	assert.Contains(t, content, `"nom_salle": "B103"`)
	assert.Contains(t, content, `"taux_occupation": 80`)
	assert.Contains(t, content, `"nom_salle": "C201"`)
	assert.Contains(t, content, `"taux_occupation": 40.5`)
}

func TestWrite_EmptyRates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataOccupation.js")
	err := NewOccupancyWriter().Write(path, nil)
	require.ErrorIs(t, err, domain.ErrEmptyDataset)
	assert.NoFileExists(t, path)
}

func TestWrite_BadPath(t *testing.T) {
	err := NewOccupancyWriter().Write(filepath.Join(t.TempDir(), "missing", "dataOccupation.js"), []domain.RoomOccupancy{
		{Room: "C201", Percentage: 40},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write occupancy data")
}
