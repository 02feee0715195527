package main

import (
	"github.com/spf13/cobra"
)

var municipiosCmd = &cobra.Command{
	Use:   "municipios",
	Short: "Cross-reference TSE and IBGE municipality codes",
	Long:  "Fetches the municipality table keyed by both the electoral (TSE) and statistical (IBGE) code, with name, UF and capital flag.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, output := outputFlags(cmd)

		env := initClients()
		df, err := env.Favoritos.CodigosMunicipios(cmd.Context())
		if err != nil {
			return err
		}

		return renderDataFrame(df, format, output)
	},
}

func init() {
	addOutputFlags(municipiosCmd)
	rootCmd.AddCommand(municipiosCmd)
}
