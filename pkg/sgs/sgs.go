// Package sgs retrieves time series from the Banco Central do Brasil SGS
// API (Sistema Gerenciador de Séries Temporais).
//
// Every series is addressed by a numeric code, e.g. 433 for IPCA. See
// https://www3.bcb.gov.br/sgspub for the catalog.
package sgs

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/brasildados/dadosbr/internal/fetcher"
)

// DefaultBaseURL is the production SGS endpoint.
const DefaultBaseURL = "https://api.bcb.gov.br/dados/serie"

// Config configures the SGS client. Zero fields fall back to production
// defaults.
type Config struct {
	BaseURL string
	Fetcher fetcher.Fetcher
}

// Client talks to the SGS API.
type Client struct {
	baseURL string
	fetch   fetcher.Fetcher
}

// New creates an SGS client.
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

// SerieOptions narrows a series request. Bounds are forwarded to the API
// untouched; the SGS service itself resolves overlapping combinations.
type SerieOptions struct {
	// Ultimos, when positive, requests only the n most recent observations.
	Ultimos int
	// Inicio and Fim bound the observation dates, inclusive.
	Inicio time.Time
	Fim    time.Time
}

// observacao is one row of the SGS JSON payload. Values arrive as strings
// in pt-BR date format.
type observacao struct {
	Data  string `json:"data"`
	Valor string `json:"valor"`
}

// Serie fetches the series identified by codigo and returns it as a
// dataframe with columns [data, valor]. Observations the API publishes
// without a value are skipped.
func (c *Client) Serie(ctx context.Context, codigo int, opts SerieOptions) (dataframe.DataFrame, error) {
	obs, err := fetcher.DecodeJSON[[]observacao](ctx, c.fetch, c.serieURL(codigo, opts))
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	datas := make([]string, 0, len(*obs))
	valores := make([]float64, 0, len(*obs))
	for _, o := range *obs {
		v, err := strconv.ParseFloat(strings.TrimSpace(o.Valor), 64)
		if err != nil {
			continue
		}
		datas = append(datas, o.Data)
		valores = append(valores, v)
	}

	df := dataframe.New(
		series.New(datas, series.String, "data"),
		series.New(valores, series.Float, "valor"),
	)
	return df, df.Error()
}

func (c *Client) serieURL(codigo int, opts SerieOptions) string {
	path := fmt.Sprintf("%s/bcdata.sgs.%d/dados", c.baseURL, codigo)
	if opts.Ultimos > 0 {
		path = fmt.Sprintf("%s/ultimos/%d", path, opts.Ultimos)
	}

	q := url.Values{"formato": []string{"json"}}
	if !opts.Inicio.IsZero() {
		q.Set("dataInicial", opts.Inicio.Format("02/01/2006"))
	}
	if !opts.Fim.IsZero() {
		q.Set("dataFinal", opts.Fim.Format("02/01/2006"))
	}
	return path + "?" + q.Encode()
}
