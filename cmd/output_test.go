package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func sampleDF() dataframe.DataFrame {
	return dataframe.New(
		series.New([]string{"01/01/2020", "01/02/2020"}, series.String, "data"),
		series.New([]float64{0.21, 0.25}, series.Float, "valor"),
	)
}

func TestRenderTo_Table(t *testing.T) {
	var buf bytes.Buffer
	err := renderTo(&buf, sampleDF(), "table")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "data")
	assert.Contains(t, out, "valor")
	assert.Contains(t, out, "01/01/2020")
	assert.Contains(t, out, "----")
}

func TestRenderTo_CSV(t *testing.T) {
	var buf bytes.Buffer
	err := renderTo(&buf, sampleDF(), "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "data,valor", lines[0])
	assert.Contains(t, lines[1], "01/01/2020")
	assert.Contains(t, lines[1], "0.21")
}

func TestRenderTo_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := renderTo(&buf, sampleDF(), "json")
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "01/01/2020", records[0]["data"])
	assert.InDelta(t, 0.21, records[0]["valor"], 0.0001)
}

func TestRenderTo_XLSX(t *testing.T) {
	var buf bytes.Buffer
	err := renderTo(&buf, sampleDF(), "xlsx")
	require.NoError(t, err)

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)

	sheet, ok := file.Sheet["dados"]
	require.True(t, ok, "workbook should have a 'dados' sheet")
	// Header plus two data rows.
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "data", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, "01/01/2020", sheet.Rows[1].Cells[0].String())
}

func TestRenderTo_FormatAliases(t *testing.T) {
	// Default and case-insensitive names resolve to the same renderer.
	for _, format := range []string{"", "TABLE", " table "} {
		var buf bytes.Buffer
		err := renderTo(&buf, sampleDF(), format)
		require.NoError(t, err, "format: %q", format)
		assert.Contains(t, buf.String(), "data")
	}
}

func TestRenderTo_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := renderTo(&buf, sampleDF(), "parquet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"parquet"`)
	assert.Contains(t, err.Error(), "valid: table, csv, json, xlsx")
}

func TestRenderDataFrame_XLSXRequiresOutput(t *testing.T) {
	err := renderDataFrame(sampleDF(), "xlsx", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output")
}

func TestRenderDataFrame_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	err := renderDataFrame(sampleDF(), "csv", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "data,valor")
}

func TestRenderDataFrame_XLSXFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	err := renderDataFrame(sampleDF(), "xlsx", path)
	require.NoError(t, err)

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, file.Sheets)
	assert.Len(t, file.Sheets[0].Rows, 3)
}
