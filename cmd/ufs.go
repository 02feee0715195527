package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/brasildados/dadosbr/pkg/uf"
)

var ufsCmd = &cobra.Command{
	Use:   "ufs",
	Short: "List the federative units the resolver accepts",
	Long:  "Shows every unit with its two-letter code, full name, IBGE numeric code and region. Identifiers in any of those three forms are accepted wherever a command takes a UF.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		extintas, _ := cmd.Flags().GetBool("extintas")
		formatUFs(os.Stdout, uf.Todas(extintas))
		return nil
	},
}

func init() {
	ufsCmd.Flags().Bool("extintas", false, "include the extinct Fernando de Noronha and Guanabara")
	rootCmd.AddCommand(ufsCmd)
}

// formatUFs writes the resolver table to w.
func formatUFs(out io.Writer, codes []uf.Code) {
	w := newTabWriter(out)
	_, _ = fmt.Fprintln(w, "SIGLA\tNOME\tIBGE\tREGIAO\tEXTINTA")
	_, _ = fmt.Fprintln(w, "-----\t----\t----\t------\t-------")

	for _, c := range codes {
		extinta := ""
		if c.Extinta() {
			extinta = "sim"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			c,
			c.Nome(),
			c.IBGE(),
			c.Regiao(),
			extinta,
		)
	}
	_ = w.Flush()
}
