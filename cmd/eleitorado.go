package main

import (
	"github.com/spf13/cobra"
)

var eleitoradoCmd = &cobra.Command{
	Use:   "eleitorado",
	Short: "Show the electorate profile by municipality",
	Long:  "Fetches the consolidated TSE electorate profile: voter counts broken down by municipality, sex, age group and schooling.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, output := outputFlags(cmd)

		env := initClients()
		df, err := env.Favoritos.PerfilEleitorado(cmd.Context())
		if err != nil {
			return err
		}

		return renderDataFrame(df, format, output)
	},
}

func init() {
	addOutputFlags(eleitoradoCmd)
	rootCmd.AddCommand(eleitoradoCmd)
}
