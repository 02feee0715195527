package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brasildados/dadosbr/internal/config"
	"github.com/brasildados/dadosbr/internal/fontes"
)

func withConfig(t *testing.T, c *config.Config) {
	t.Helper()
	old := cfg
	cfg = c
	t.Cleanup(func() { cfg = old })
}

func TestProbeTargets_ProductionDefaults(t *testing.T) {
	withConfig(t, &config.Config{})

	targets := probeTargets()
	require.Len(t, targets, 4)

	byName := map[string]string{}
	for _, f := range targets {
		byName[f.Nome] = f.URL
	}

	assert.Equal(t, "https://api.bcb.gov.br/dados/serie/bcdata.sgs.433/dados/ultimos/1?formato=json", byName["bacen-sgs"])
	assert.Equal(t, "http://www.ipeadata.gov.br/api/odata4/", byName["ipeadata"])
	assert.Equal(t, "http://legis.senado.gov.br/dadosabertos/senador/partidos", byName["senado"])
	assert.True(t, strings.HasSuffix(byName["catalogo"], "catalogos.csv"), "catalogo: %q", byName["catalogo"])
}

func TestProbeTargets_HonorsOverrides(t *testing.T) {
	withConfig(t, &config.Config{Fontes: config.FontesConfig{
		SGS:    "http://localhost:9001/sgs/",
		Senado: "http://localhost:9002",
	}})

	byName := map[string]string{}
	for _, f := range probeTargets() {
		byName[f.Nome] = f.URL
	}

	assert.Equal(t, "http://localhost:9001/sgs/bcdata.sgs.433/dados/ultimos/1?formato=json", byName["bacen-sgs"])
	assert.Equal(t, "http://localhost:9002/senador/partidos", byName["senado"])
}

func TestFormatFontes(t *testing.T) {
	var buf strings.Builder
	formatFontes(&buf, &fontes.Snapshot{
		Resultados: []fontes.Resultado{
			{Fonte: "bacen-sgs", URL: "https://api.bcb.gov.br/x", OK: true, Status: 200, LatenciaMS: 12},
			{Fonte: "senado", URL: "http://legis.senado.gov.br/x", OK: false, LatenciaMS: 5000, Erro: "connection refused"},
		},
		Saudaveis:  1,
		Total:      2,
		ColetadoEm: time.Now(),
	})

	out := buf.String()
	assert.Contains(t, out, "FONTE")
	assert.Contains(t, out, "bacen-sgs")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "12ms")
	assert.Contains(t, out, "https://api.bcb.gov.br/x")
	assert.Contains(t, out, "indisponivel")
	assert.Contains(t, out, "connection refused")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
}
