package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var geojsonCmd = &cobra.Command{
	Use:   "geojson <uf>",
	Short: "Download municipal boundaries for a state",
	Long:  "Fetches the GeoJSON feature collection with the municipal boundaries of the given federative unit. Accepts the two-letter code, the full name or the IBGE numeric code; BR returns the whole country.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		env := initClients()
		fc, err := env.Favoritos.GeoJSON(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		var w io.Writer = os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return eris.Wrapf(err, "geojson: create %s", output)
			}
			defer f.Close() //nolint:errcheck
			w = f
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(fc); err != nil {
			return eris.Wrap(err, "geojson: encode")
		}
		return nil
	},
}

func init() {
	geojsonCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(geojsonCmd)
}
