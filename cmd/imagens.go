package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bandeiraCmd = &cobra.Command{
	Use:   "bandeira <uf>",
	Short: "Print the URL of a state flag",
	Long:  "Resolves the Wikimedia Commons thumbnail URL for the flag of the given federative unit, including the extinct Fernando de Noronha and Guanabara.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tamanho, _ := cmd.Flags().GetInt("tamanho")

		env := initClients()
		url, err := env.Favoritos.Bandeira(args[0], tamanho)
		if err != nil {
			return err
		}

		fmt.Println(url)
		return nil
	},
}

var brasaoCmd = &cobra.Command{
	Use:   "brasao <uf>",
	Short: "Print the URL of a state coat of arms",
	Long:  "Resolves the Wikimedia Commons thumbnail URL for the coat of arms of the given federative unit, including the extinct Fernando de Noronha and Guanabara.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tamanho, _ := cmd.Flags().GetInt("tamanho")

		env := initClients()
		url, err := env.Favoritos.Brasao(args[0], tamanho)
		if err != nil {
			return err
		}

		fmt.Println(url)
		return nil
	},
}

func init() {
	bandeiraCmd.Flags().Int("tamanho", 100, "thumbnail width in pixels")
	brasaoCmd.Flags().Int("tamanho", 100, "thumbnail width in pixels")
	rootCmd.AddCommand(bandeiraCmd)
	rootCmd.AddCommand(brasaoCmd)
}
