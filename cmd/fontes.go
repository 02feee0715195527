package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/brasildados/dadosbr/internal/fontes"
)

var fontesCmd = &cobra.Command{
	Use:   "fontes",
	Short: "Probe the upstream data sources",
	Long:  "Sends one request to each upstream (Banco Central, Ipeadata, Senado, static catalogs) and reports status and latency. Exits non-zero when any source is unavailable.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		snap := newChecker().Verificar(cmd.Context())
		formatFontes(os.Stdout, snap)
		if snap.Saudaveis < snap.Total {
			return eris.Errorf("fontes: %d of %d sources unavailable", snap.Total-snap.Saudaveis, snap.Total)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fontesCmd)
}

// formatFontes writes the probe results to w.
func formatFontes(out io.Writer, snap *fontes.Snapshot) {
	w := newTabWriter(out)
	_, _ = fmt.Fprintln(w, "FONTE\tSTATUS\tLATENCIA\tDETALHE")
	_, _ = fmt.Fprintln(w, "-----\t------\t--------\t-------")

	for _, r := range snap.Resultados {
		status := "ok"
		detalhe := r.URL
		if !r.OK {
			status = "indisponivel"
			detalhe = r.Erro
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%dms\t%s\n", r.Fonte, status, r.LatenciaMS, detalhe)
	}
	_ = w.Flush()
}
