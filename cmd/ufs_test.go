package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brasildados/dadosbr/pkg/uf"
)

func TestFormatUFs(t *testing.T) {
	var buf bytes.Buffer
	formatUFs(&buf, uf.Todas(false))

	out := buf.String()
	assert.Contains(t, out, "SIGLA")
	assert.Contains(t, out, "São Paulo")
	assert.Contains(t, out, "Sudeste")
	assert.NotContains(t, out, "Guanabara")

	// Header, separator and one line per unit.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2+len(uf.Todas(false)))
}

func TestFormatUFs_Extintas(t *testing.T) {
	var buf bytes.Buffer
	formatUFs(&buf, uf.Todas(true))

	out := buf.String()
	assert.Contains(t, out, "Guanabara")
	assert.Contains(t, out, "Fernando de Noronha")
	assert.Contains(t, out, "sim")
}
