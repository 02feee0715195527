// Package ipeadata retrieves time series from the Ipeadata OData v4 API
// maintained by the Instituto de Pesquisa Econômica Aplicada.
//
// Series are addressed by string codes such as "JPM366_EMBI366". See
// http://www.ipeadata.gov.br/api/ for the catalog.
package ipeadata

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/brasildados/dadosbr/internal/fetcher"
)

// DefaultBaseURL is the production Ipeadata endpoint. The service is not
// published over TLS.
const DefaultBaseURL = "http://www.ipeadata.gov.br/api/odata4"

// Config configures the Ipeadata client. Zero fields fall back to
// production defaults.
type Config struct {
	BaseURL string
	Fetcher fetcher.Fetcher
}

// Client talks to the Ipeadata API.
type Client struct {
	baseURL string
	fetch   fetcher.Fetcher
}

// New creates an Ipeadata client.
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

type valoresResponse struct {
	Value []observacao `json:"value"`
}

type observacao struct {
	SerCodigo string   `json:"SERCODIGO"`
	ValData   string   `json:"VALDATA"`
	ValValor  *float64 `json:"VALVALOR"`
}

// Serie fetches the series identified by cod. With index false the frame
// carries columns [codigo, data, valor]; with index true the redundant
// code column is dropped and the dates lead as the row key, columns
// [data, valor]. Observations published without a value are skipped.
func (c *Client) Serie(ctx context.Context, cod string, index bool) (dataframe.DataFrame, error) {
	u := fmt.Sprintf("%s/ValoresSerie(SERCODIGO='%s')", c.baseURL, url.PathEscape(cod))
	resp, err := fetcher.DecodeJSON[valoresResponse](ctx, c.fetch, u)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	codigos := make([]string, 0, len(resp.Value))
	datas := make([]string, 0, len(resp.Value))
	valores := make([]float64, 0, len(resp.Value))
	for _, o := range resp.Value {
		if o.ValValor == nil {
			continue
		}
		codigos = append(codigos, o.SerCodigo)
		datas = append(datas, o.ValData)
		valores = append(valores, *o.ValValor)
	}

	cols := []series.Series{
		series.New(datas, series.String, "data"),
		series.New(valores, series.Float, "valor"),
	}
	if !index {
		cols = append([]series.Series{series.New(codigos, series.String, "codigo")}, cols...)
	}

	df := dataframe.New(cols...)
	return df, df.Error()
}
