package main

import (
	"context"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/brasildados/dadosbr/pkg/favoritos"
	"github.com/brasildados/dadosbr/pkg/sgs"
)

var serieCmd = &cobra.Command{
	Use:   "serie",
	Short: "Fetch economic time series",
	Long:  "Commands for the most requested Bacen and Ipeadata series: inflation, interest rates, reserves, country risk and minimum wage.",
}

// serieParams carries every knob the series accept. Each series reads only
// the fields that apply to it.
type serieParams struct {
	Ultimos int
	Inicio  time.Time
	Fim     time.Time
	Periodo string
	Tipo    string
	Index   bool
}

// fetchSerie dispatches a series name to the matching accessor. The API
// server shares this dispatch with the CLI.
func fetchSerie(ctx context.Context, fav *favoritos.Client, nome string, p serieParams) (dataframe.DataFrame, error) {
	opts := sgs.SerieOptions{Ultimos: p.Ultimos, Inicio: p.Inicio, Fim: p.Fim}

	switch strings.ToLower(strings.TrimSpace(nome)) {
	case "ipca":
		return fav.IPCA(ctx, opts)
	case "selic":
		return fav.Selic(ctx, opts)
	case "tr", "taxa-referencial":
		return fav.TaxaReferencial(ctx, opts)
	case "poupanca":
		return fav.RentabilidadePoupanca(ctx, opts)
	case "reservas", "reservas-internacionais":
		return fav.ReservasInternacionais(ctx, p.Periodo, opts)
	case "risco-brasil", "embi":
		return fav.RiscoBrasil(ctx, p.Index)
	case "salario-minimo":
		return fav.SalarioMinimo(ctx, p.Tipo, p.Index)
	}

	return dataframe.DataFrame{}, eris.Wrapf(favoritos.ErrOpcaoInvalida,
		"serie: unknown series %q (valid: ipca, selic, tr, poupanca, reservas, risco-brasil, salario-minimo)", nome)
}

// parseDate accepts dates in AAAA-MM-DD form. Empty means unset.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, eris.Wrapf(favoritos.ErrOpcaoInvalida, "serie: invalid date %q (expected AAAA-MM-DD)", s)
	}
	return t, nil
}

// runSerie reads the flags the subcommand registered and renders the
// series. Flags a subcommand does not declare read as zero values.
func runSerie(cmd *cobra.Command, nome string) error {
	ultimos, _ := cmd.Flags().GetInt("ultimos")
	inicioStr, _ := cmd.Flags().GetString("inicio")
	fimStr, _ := cmd.Flags().GetString("fim")
	periodo, _ := cmd.Flags().GetString("periodo")
	tipo, _ := cmd.Flags().GetString("tipo")
	index, _ := cmd.Flags().GetBool("index")

	inicio, err := parseDate(inicioStr)
	if err != nil {
		return err
	}
	fim, err := parseDate(fimStr)
	if err != nil {
		return err
	}

	format, output := outputFlags(cmd)

	env := initClients()
	df, err := fetchSerie(cmd.Context(), env.Favoritos, nome, serieParams{
		Ultimos: ultimos,
		Inicio:  inicio,
		Fim:     fim,
		Periodo: periodo,
		Tipo:    tipo,
		Index:   index,
	})
	if err != nil {
		return err
	}

	return renderDataFrame(df, format, output)
}

var serieIPCACmd = &cobra.Command{
	Use:   "ipca",
	Short: "Monthly IPCA consumer inflation (Bacen 433)",
	RunE:  func(cmd *cobra.Command, _ []string) error { return runSerie(cmd, "ipca") },
}

var serieSelicCmd = &cobra.Command{
	Use:   "selic",
	Short: "Selic base interest rate (Bacen 432)",
	RunE:  func(cmd *cobra.Command, _ []string) error { return runSerie(cmd, "selic") },
}

var serieTRCmd = &cobra.Command{
	Use:   "tr",
	Short: "Monthly reference rate (Bacen 226)",
	RunE:  func(cmd *cobra.Command, _ []string) error { return runSerie(cmd, "tr") },
}

var seriePoupancaCmd = &cobra.Command{
	Use:   "poupanca",
	Short: "Savings account yield (Bacen 195)",
	RunE:  func(cmd *cobra.Command, _ []string) error { return runSerie(cmd, "poupanca") },
}

var serieReservasCmd = &cobra.Command{
	Use:   "reservas",
	Short: "International reserves, monthly or daily",
	RunE:  func(cmd *cobra.Command, _ []string) error { return runSerie(cmd, "reservas") },
}

var serieRiscoBrasilCmd = &cobra.Command{
	Use:   "risco-brasil",
	Short: "EMBI+ country risk spread (Ipeadata)",
	RunE:  func(cmd *cobra.Command, _ []string) error { return runSerie(cmd, "risco-brasil") },
}

var serieSalarioMinimoCmd = &cobra.Command{
	Use:   "salario-minimo",
	Short: "Minimum wage series (Ipeadata)",
	RunE:  func(cmd *cobra.Command, _ []string) error { return runSerie(cmd, "salario-minimo") },
}

func init() {
	bacenCmds := []*cobra.Command{serieIPCACmd, serieSelicCmd, serieTRCmd, seriePoupancaCmd, serieReservasCmd}
	for _, c := range bacenCmds {
		c.Flags().Int("ultimos", 0, "return only the N most recent observations")
		c.Flags().String("inicio", "", "start date (AAAA-MM-DD)")
		c.Flags().String("fim", "", "end date (AAAA-MM-DD)")
	}

	serieReservasCmd.Flags().String("periodo", "mensal", "observation frequency (mensal, diaria)")

	serieRiscoBrasilCmd.Flags().Bool("index", false, "omit the series code column")
	serieSalarioMinimoCmd.Flags().String("tipo", "nominal", "series variant (nominal, real, ppc)")
	serieSalarioMinimoCmd.Flags().Bool("index", false, "omit the series code column")

	for _, c := range append(bacenCmds, serieRiscoBrasilCmd, serieSalarioMinimoCmd) {
		addOutputFlags(c)
		serieCmd.AddCommand(c)
	}

	rootCmd.AddCommand(serieCmd)
}
