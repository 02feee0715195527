// Package favoritos bundles convenience accessors to curated Brazilian
// public-data resources: open-data catalogs, municipal boundary files,
// municipality code cross-references, electorate profiles, state flag and
// coat-of-arms images, and frequently requested economic time series.
//
// Every accessor resolves federative-unit arguments through pkg/uf and
// builds the external resource identifier deterministically from static
// tables; nothing here mutates remote state.
package favoritos

import (
	"context"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/charmap"

	"github.com/brasildados/dadosbr/internal/fetcher"
	"github.com/brasildados/dadosbr/pkg/ipeadata"
	"github.com/brasildados/dadosbr/pkg/sgs"
)

// ErrOpcaoInvalida marks arguments outside an operation's closed set of
// accepted options (periodo, tipo, tamanho).
var ErrOpcaoInvalida = eris.New("invalid option")

// BacenSeries fetches a Banco Central SGS time series by numeric code.
type BacenSeries interface {
	Serie(ctx context.Context, codigo int, opts sgs.SerieOptions) (dataframe.DataFrame, error)
}

// IpeaSeries fetches an Ipeadata time series by string code.
type IpeaSeries interface {
	Serie(ctx context.Context, cod string, index bool) (dataframe.DataFrame, error)
}

var (
	_ BacenSeries = (*sgs.Client)(nil)
	_ IpeaSeries  = (*ipeadata.Client)(nil)
)

// URLs locates the curated static resources. Zero fields keep the
// production defaults.
type URLs struct {
	// Catalogo is the community-maintained CSV of open-data catalogs.
	Catalogo string
	// GeoJSON is the directory holding the geojs-{ibge}-mun.json files.
	GeoJSON string
	// Municipios is the TSE/IBGE municipality cross-reference JSON.
	Municipios string
	// Eleitorado is the electorate profile CSV (latin-1, ';' separated).
	Eleitorado string
	// Wikimedia is the commons thumbnail base for flags and arms.
	Wikimedia string
}

// DefaultURLs returns the production resource locations.
func DefaultURLs() URLs {
	return URLs{
		Catalogo:   "https://raw.githubusercontent.com/dadosgovbr/catalogos-dados-brasil/master/dados/catalogos.csv",
		GeoJSON:    "https://raw.githubusercontent.com/tbrugz/geodata-br/master/geojson",
		Municipios: "https://raw.githubusercontent.com/betafcc/Municipios-Brasileiros-TSE/master/municipios_brasileiros_tse.json",
		Eleitorado: "https://raw.githubusercontent.com/GusFurtado/DadosAbertosBrasil/master/data/Eleitorado.csv",
		Wikimedia:  "https://upload.wikimedia.org/wikipedia/commons/thumb/",
	}
}

func (u URLs) withDefaults() URLs {
	def := DefaultURLs()
	if u.Catalogo == "" {
		u.Catalogo = def.Catalogo
	}
	if u.GeoJSON == "" {
		u.GeoJSON = def.GeoJSON
	}
	u.GeoJSON = strings.TrimSuffix(u.GeoJSON, "/")
	if u.Municipios == "" {
		u.Municipios = def.Municipios
	}
	if u.Eleitorado == "" {
		u.Eleitorado = def.Eleitorado
	}
	if u.Wikimedia == "" {
		u.Wikimedia = def.Wikimedia
	}
	return u
}

// Config configures a Client. Zero fields fall back to the production
// collaborators.
type Config struct {
	Fetcher fetcher.Fetcher
	Bacen   BacenSeries
	Ipea    IpeaSeries
	URLs    URLs
}

// Client dispatches the curated accessors.
type Client struct {
	fetch fetcher.Fetcher
	bacen BacenSeries
	ipea  IpeaSeries
	urls  URLs
}

// New creates a Client.
func New(cfg Config) *Client {
	if cfg.Fetcher == nil {
		cfg.Fetcher = fetcher.NewHTTPFetcher(fetcher.HTTPOptions{})
	}
	if cfg.Bacen == nil {
		cfg.Bacen = sgs.New(sgs.Config{Fetcher: cfg.Fetcher})
	}
	if cfg.Ipea == nil {
		cfg.Ipea = ipeadata.New(ipeadata.Config{Fetcher: cfg.Fetcher})
	}
	return &Client{
		fetch: cfg.Fetcher,
		bacen: cfg.Bacen,
		ipea:  cfg.Ipea,
		urls:  cfg.URLs.withDefaults(),
	}
}

// Catalogo returns the table of Brazilian open-data catalogs:
// title, URL, municipality, UF, government sphere and branch, platform.
func (c *Client) Catalogo(ctx context.Context) (dataframe.DataFrame, error) {
	df, err := fetcher.ReadCSV(ctx, c.fetch, c.urls.Catalogo, fetcher.CSVOptions{})
	if err != nil {
		return dataframe.DataFrame{}, eris.Wrap(err, "favoritos: catalogo")
	}
	return df, nil
}

// municipioColunas is the published column order of CodigosMunicipios.
var municipioColunas = []string{"codigo_tse", "codigo_ibge", "nome_municipio", "uf", "capital"}

// CodigosMunicipios returns the TSE/IBGE municipality code
// cross-reference with columns [codigo_tse, codigo_ibge, nome_municipio,
// uf, capital], in that order.
func (c *Client) CodigosMunicipios(ctx context.Context) (dataframe.DataFrame, error) {
	df, err := fetcher.ReadJSON(ctx, c.fetch, c.urls.Municipios)
	if err != nil {
		return dataframe.DataFrame{}, eris.Wrap(err, "favoritos: codigos municipios")
	}
	sel := df.Select(municipioColunas)
	if sel.Error() != nil {
		return dataframe.DataFrame{}, eris.Wrapf(fetcher.ErrUnavailable,
			"favoritos: municipality table misses expected columns: %v", sel.Error())
	}
	return sel, nil
}

// PerfilEleitorado returns the electorate profile table as published by
// the TSE, with every original column.
func (c *Client) PerfilEleitorado(ctx context.Context) (dataframe.DataFrame, error) {
	df, err := fetcher.ReadCSV(ctx, c.fetch, c.urls.Eleitorado, fetcher.CSVOptions{
		Delimiter: ';',
		Encoding:  charmap.ISO8859_1,
	})
	if err != nil {
		return dataframe.DataFrame{}, eris.Wrap(err, "favoritos: perfil eleitorado")
	}
	return df, nil
}
