package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/brasildados/dadosbr/pkg/senado"
)

var senadoresCmd = &cobra.Command{
	Use:   "senadores",
	Short: "List senators in office or on leave",
	RunE: func(cmd *cobra.Command, _ []string) error {
		situacao, _ := cmd.Flags().GetString("situacao")
		unidade, _ := cmd.Flags().GetString("uf")
		suplentes, _ := cmd.Flags().GetBool("suplentes")

		opts := senado.ListaOptions{
			Situacao: situacao,
			UF:       unidade,
		}
		if suplentes {
			opts.Participacao = "S"
		}

		env := initClients()
		lista, err := env.Senado.Lista(cmd.Context(), opts)
		if err != nil {
			return err
		}

		if len(lista) == 0 {
			fmt.Fprintln(os.Stderr, "No senators found.")
			return nil
		}

		formatSenadores(os.Stdout, lista)
		return nil
	},
}

var senadorCmd = &cobra.Command{
	Use:   "senador <codigo>",
	Short: "Show the base record of one senator",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codigo, err := strconv.Atoi(args[0])
		if err != nil {
			return eris.Wrapf(senado.ErrOpcaoInvalida, "senador: invalid code %q", args[0])
		}

		env := initClients()
		detalhe, err := env.Senado.Senador(cmd.Context(), codigo)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(detalhe)
	},
}

var partidosCmd = &cobra.Command{
	Use:   "partidos",
	Short: "List political parties",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env := initClients()
		partidos, err := env.Senado.Partidos(cmd.Context())
		if err != nil {
			return err
		}

		if len(partidos) == 0 {
			fmt.Fprintln(os.Stderr, "No parties found.")
			return nil
		}

		formatPartidos(os.Stdout, partidos)
		return nil
	},
}

func init() {
	senadoresCmd.Flags().String("situacao", "atual", "listing to fetch (atual, afastados)")
	senadoresCmd.Flags().String("uf", "", "keep only senators representing this federative unit")
	senadoresCmd.Flags().Bool("suplentes", false, "list substitutes instead of titulars")

	rootCmd.AddCommand(senadoresCmd)
	rootCmd.AddCommand(senadorCmd)
	rootCmd.AddCommand(partidosCmd)
}

// formatSenadores writes a tabular senator listing to w.
func formatSenadores(out io.Writer, lista []senado.Senador) {
	w := newTabWriter(out)
	_, _ = fmt.Fprintln(w, "CODIGO\tNOME\tPARTIDO\tUF\tEMAIL")
	_, _ = fmt.Fprintln(w, "------\t----\t-------\t--\t-----")

	for _, s := range lista {
		id := s.Identificacao
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			id.Codigo,
			id.Nome,
			id.Partido,
			id.UF,
			id.Email,
		)
	}
	_ = w.Flush()
}

// formatPartidos writes a tabular party listing to w.
func formatPartidos(out io.Writer, partidos []senado.Partido) {
	w := newTabWriter(out)
	_, _ = fmt.Fprintln(w, "CODIGO\tSIGLA\tNOME\tCRIACAO")
	_, _ = fmt.Fprintln(w, "------\t-----\t----\t-------")

	for _, p := range partidos {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			p.Codigo,
			p.Sigla,
			p.Nome,
			p.DataCriacao,
		)
	}
	_ = w.Flush()
}
