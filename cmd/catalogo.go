package main

import (
	"github.com/spf13/cobra"
)

var catalogoCmd = &cobra.Command{
	Use:   "catalogo",
	Short: "List Brazilian open-data catalogs",
	Long:  "Fetches the community-maintained table of official open-data catalogs: title, URL, municipality, UF, government sphere and branch, platform.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, output := outputFlags(cmd)

		env := initClients()
		df, err := env.Favoritos.Catalogo(cmd.Context())
		if err != nil {
			return err
		}

		return renderDataFrame(df, format, output)
	},
}

func init() {
	addOutputFlags(catalogoCmd)
	rootCmd.AddCommand(catalogoCmd)
}
