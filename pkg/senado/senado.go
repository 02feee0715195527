// Package senado retrieves senator and party records from the Senado
// Federal open-data XML API.
//
// API documentation: https://legis.senado.leg.br/dadosabertos/docs/
package senado

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/brasildados/dadosbr/internal/fetcher"
	"github.com/brasildados/dadosbr/pkg/uf"
)

// DefaultBaseURL is the production Senado endpoint.
const DefaultBaseURL = "http://legis.senado.gov.br/dadosabertos"

// ErrOpcaoInvalida marks arguments outside an operation's closed set of
// accepted options.
var ErrOpcaoInvalida = eris.New("invalid option")

// Config configures the Senado client. Zero fields fall back to
// production defaults.
type Config struct {
	BaseURL string
	Fetcher fetcher.Fetcher
}

// Client talks to the Senado open-data API.
type Client struct {
	baseURL string
	fetch   fetcher.Fetcher
}

// New creates a Senado client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Fetcher == nil {
		cfg.Fetcher = fetcher.NewHTTPFetcher(fetcher.HTTPOptions{})
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		fetch:   cfg.Fetcher,
	}
}

// Identificacao is the identity block the API attaches to every senator
// record.
type Identificacao struct {
	Codigo       int    `xml:"CodigoParlamentar"`
	Nome         string `xml:"NomeParlamentar"`
	NomeCompleto string `xml:"NomeCompletoParlamentar"`
	Sexo         string `xml:"SexoParlamentar"`
	Partido      string `xml:"SiglaPartidoParlamentar"`
	UF           string `xml:"UfParlamentar"`
	Email        string `xml:"EmailParlamentar"`
	FotoURL      string `xml:"UrlFotoParlamentar"`
}

// Senador is one entry of a senator listing.
type Senador struct {
	Identificacao Identificacao `xml:"IdentificacaoParlamentar"`
}

// DadosBasicos is the civil-record block of a senator's detail resource.
type DadosBasicos struct {
	DataNascimento string `xml:"DataNascimento"`
	Naturalidade   string `xml:"Naturalidade"`
	UFNaturalidade string `xml:"UfNaturalidade"`
}

// Detalhe is a senator's base detail record.
type Detalhe struct {
	Identificacao Identificacao `xml:"IdentificacaoParlamentar"`
	DadosBasicos  DadosBasicos  `xml:"DadosBasicosParlamentar"`
}

// Partido is one political party record.
type Partido struct {
	Codigo      int    `xml:"Codigo"`
	Sigla       string `xml:"Sigla"`
	Nome        string `xml:"Nome"`
	DataCriacao string `xml:"DataCriacao"`
}

// ListaOptions filters a senator listing.
type ListaOptions struct {
	// Situacao selects the listing: "atual" (default when empty) for
	// senators in office, "afastados" for those on leave.
	Situacao string
	// Participacao narrows the atual listing: "T" for titulars, "S" for
	// substitutes. Forwarded to the API untouched.
	Participacao string
	// UF keeps only senators representing the given federative unit,
	// resolved through pkg/uf. Only the atual listing supports it.
	UF string
}

// Lista returns senators matching the options.
func (c *Client) Lista(ctx context.Context, opts ListaOptions) ([]Senador, error) {
	situacao, err := parseSituacao(opts.Situacao)
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/senador/lista/%s", c.baseURL, situacao)
	if situacao == "atual" {
		q := url.Values{}
		if opts.Participacao != "" {
			q.Set("participacao", opts.Participacao)
		}
		if opts.UF != "" {
			code, err := uf.Parse(opts.UF)
			if err != nil {
				return nil, err
			}
			q.Set("uf", string(code))
		}
		if len(q) > 0 {
			u += "?" + q.Encode()
		}
	}

	lista, err := fetcher.DecodeXML[Senador](ctx, c.fetch, u, "Parlamentar")
	if err != nil {
		return nil, eris.Wrap(err, "senado: lista")
	}
	return lista, nil
}

// Senador returns the base detail record of one senator.
func (c *Client) Senador(ctx context.Context, codigo int) (*Detalhe, error) {
	u := fmt.Sprintf("%s/senador/%d", c.baseURL, codigo)
	detalhes, err := fetcher.DecodeXML[Detalhe](ctx, c.fetch, u, "Parlamentar")
	if err != nil {
		return nil, eris.Wrapf(err, "senado: senador %d", codigo)
	}
	if len(detalhes) == 0 {
		return nil, eris.Wrapf(fetcher.ErrUnavailable, "senado: senador %d not in response", codigo)
	}
	return &detalhes[0], nil
}

// Partidos returns the political parties the API knows about.
func (c *Client) Partidos(ctx context.Context) ([]Partido, error) {
	partidos, err := fetcher.DecodeXML[Partido](ctx, c.fetch, c.baseURL+"/senador/partidos", "Partido")
	if err != nil {
		return nil, eris.Wrap(err, "senado: partidos")
	}
	return partidos, nil
}

func parseSituacao(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "atual":
		return "atual", nil
	case "afastados":
		return "afastados", nil
	}
	return "", eris.Wrapf(ErrOpcaoInvalida, "senado: unknown situacao %q (valid: atual, afastados)", s)
}
