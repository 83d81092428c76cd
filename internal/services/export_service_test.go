package services

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exportRow struct {
	Name  string            `json:"name"`
	Tags  []string          `json:"tags,omitempty"`
	Meta  map[string]string `json:"meta,omitempty"`
	Price float64           `json:"price"`
	Note  *string           `json:"note"`
}

func TestWriteCSV(t *testing.T) {
	note := `said "hi", left`
	rows := []exportRow{
		{Name: "Sea View", Price: 1200},
		{Name: "Fort, Inn", Tags: []string{"wifi", "pool"}, Meta: map[string]string{"k": "v"}, Price: 99.5, Note: &note},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	want := "name,price,note,tags,meta\n" +
		"Sea View,1200,,,\n" +
		`"Fort, Inn",99.5,"said ""hi"", left",wifi;pool,"{""k"":""v""}"` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []exportRow{}))
	assert.Empty(t, buf.String())
}

func TestExportAll(t *testing.T) {
	dir := t.TempDir()
	data := NewDataService(&fakeWeatherRepo{}, &fakeCrowdRepo{}, &fakeCurrencyRepo{}, &fakeHotelRepo{}, &fakePOIRepo{})

	paths, err := NewExportService(data).ExportAll(context.Background(), dir)

	require.NoError(t, err)
	require.Len(t, paths, 5)
	for _, name := range []string{"weather", "crowd", "currency", "hotels", "pois"} {
		_, err := os.Stat(filepath.Join(dir, name+".csv"))
		assert.NoError(t, err)
	}
}
