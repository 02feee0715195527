package favoritos

import (
	"context"
	"strings"
	"unicode"

	"github.com/go-gota/gota/dataframe"
	"github.com/rotisserie/eris"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/brasildados/dadosbr/pkg/sgs"
)

// Banco Central SGS codes of the curated series.
const (
	codigoIPCA           = 433
	codigoSelic          = 432
	codigoTR             = 226
	codigoPoupanca       = 195
	codigoReservasMensal = 3546
	codigoReservasDiaria = 13621
)

// Ipeadata codes of the curated series.
const (
	codigoRiscoBrasil    = "JPM366_EMBI366"
	codigoSalarioNominal = "MTE12_SALMIN12"
	codigoSalarioReal    = "GAC12_SALMINRE12"
	codigoSalarioPPC     = "GAC12_SALMINDOL12"
)

// IPCA returns the broad consumer price index series (monthly % change).
func (c *Client) IPCA(ctx context.Context, opts sgs.SerieOptions) (dataframe.DataFrame, error) {
	return c.bacenSerie(ctx, codigoIPCA, opts, "ipca")
}

// Selic returns the Selic base interest rate series.
func (c *Client) Selic(ctx context.Context, opts sgs.SerieOptions) (dataframe.DataFrame, error) {
	return c.bacenSerie(ctx, codigoSelic, opts, "selic")
}

// TaxaReferencial returns the TR reference rate series.
func (c *Client) TaxaReferencial(ctx context.Context, opts sgs.SerieOptions) (dataframe.DataFrame, error) {
	return c.bacenSerie(ctx, codigoTR, opts, "taxa referencial")
}

// RentabilidadePoupanca returns the savings account yield series.
func (c *Client) RentabilidadePoupanca(ctx context.Context, opts sgs.SerieOptions) (dataframe.DataFrame, error) {
	return c.bacenSerie(ctx, codigoPoupanca, opts, "rentabilidade poupanca")
}

// ReservasInternacionais returns the international reserves series.
// periodo selects the granularity: "mensal" (default when empty) or
// "diaria"; accent and case variants are accepted.
func (c *Client) ReservasInternacionais(ctx context.Context, periodo string, opts sgs.SerieOptions) (dataframe.DataFrame, error) {
	codigo, err := parsePeriodo(periodo)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	return c.bacenSerie(ctx, codigo, opts, "reservas internacionais")
}

// RiscoBrasil returns the EMBI+ country risk series computed by J.P.
// Morgan, via Ipeadata.
func (c *Client) RiscoBrasil(ctx context.Context, index bool) (dataframe.DataFrame, error) {
	df, err := c.ipea.Serie(ctx, codigoRiscoBrasil, index)
	if err != nil {
		return dataframe.DataFrame{}, eris.Wrap(err, "favoritos: risco brasil")
	}
	return df, nil
}

// SalarioMinimo returns the minimum wage series, via Ipeadata. tipo
// selects the variant: "nominal" (default when empty), "real"
// (deflated) or "ppc" (purchasing power parity).
func (c *Client) SalarioMinimo(ctx context.Context, tipo string, index bool) (dataframe.DataFrame, error) {
	codigo, err := parseTipo(tipo)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	df, err := c.ipea.Serie(ctx, codigo, index)
	if err != nil {
		return dataframe.DataFrame{}, eris.Wrap(err, "favoritos: salario minimo")
	}
	return df, nil
}

func (c *Client) bacenSerie(ctx context.Context, codigo int, opts sgs.SerieOptions, op string) (dataframe.DataFrame, error) {
	df, err := c.bacen.Serie(ctx, codigo, opts)
	if err != nil {
		return dataframe.DataFrame{}, eris.Wrap(err, "favoritos: "+op)
	}
	return df, nil
}

func parsePeriodo(s string) (int, error) {
	switch normalizeOption(s) {
	case "", "mensal":
		return codigoReservasMensal, nil
	case "diaria", "diario":
		return codigoReservasDiaria, nil
	}
	return 0, eris.Wrapf(ErrOpcaoInvalida, "favoritos: unknown periodo %q (valid: mensal, diaria)", s)
}

func parseTipo(s string) (string, error) {
	switch normalizeOption(s) {
	case "", "nominal":
		return codigoSalarioNominal, nil
	case "real":
		return codigoSalarioReal, nil
	case "ppc":
		return codigoSalarioPPC, nil
	}
	return "", eris.Wrapf(ErrOpcaoInvalida, "favoritos: unknown tipo %q (valid: nominal, real, ppc)", s)
}

// normalizeOption folds case and accents, so "Diária" and "diaria" select
// the same series.
func normalizeOption(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.ToLower(strings.TrimSpace(stripped))
}
