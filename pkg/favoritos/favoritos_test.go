package favoritos

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brasildados/dadosbr/internal/fetcher"
	"github.com/brasildados/dadosbr/pkg/uf"
)

// newTestClient serves the curated static resources from a local mux.
func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return New(Config{
		Fetcher: fetcher.NewHTTPFetcher(fetcher.HTTPOptions{Timeout: 5 * time.Second, MaxRetries: 1}),
		URLs: URLs{
			Catalogo:   srv.URL + "/catalogos.csv",
			GeoJSON:    srv.URL + "/geojson",
			Municipios: srv.URL + "/municipios.json",
			Eleitorado: srv.URL + "/eleitorado.csv",
			Wikimedia:  srv.URL + "/thumb/",
		},
	})
}

func TestCatalogo(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/catalogos.csv", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Título,URL,Município,UF,Esfera,Poder,Solução\nDados Recife,http://dados.recife.pe.gov.br,Recife,PE,Municipal,Executivo,CKAN\n"))
	})

	df, err := newTestClient(t, mux).Catalogo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, df.Nrow())
	assert.Contains(t, df.Names(), "Título")
	assert.Equal(t, "Dados Recife", df.Elem(0, 0).String())
}

func TestCatalogo_Unavailable(t *testing.T) {
	_, err := newTestClient(t, http.NewServeMux()).Catalogo(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, fetcher.ErrUnavailable))
}

func TestCodigosMunicipios(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/municipios.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
  {"codigo_tse":81051,"uf":"SC","nome_municipio":"FLORIANÓPOLIS","capital":1,"codigo_ibge":4205407},
  {"codigo_tse":80470,"uf":"SC","nome_municipio":"BLUMENAU","capital":0,"codigo_ibge":4202404}
]`))
	})

	df, err := newTestClient(t, mux).CodigosMunicipios(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"codigo_tse", "codigo_ibge", "nome_municipio", "uf", "capital"}, df.Names())
	assert.Equal(t, 2, df.Nrow())
}

func TestCodigosMunicipios_MissingColumns(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/municipios.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"codigo_tse":81051,"uf":"SC"}]`))
	})

	_, err := newTestClient(t, mux).CodigosMunicipios(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, fetcher.ErrUnavailable))
}

func TestPerfilEleitorado(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/eleitorado.csv", func(w http.ResponseWriter, r *http.Request) {
		// latin-1 payload: "NM_MUNICIPIO" column holds "SÃO PAULO".
		w.Write([]byte("NR_ANO_ELEICAO;SG_UF;NM_MUNICIPIO;QT_ELEITORES\n2020;SP;S\xc3O PAULO;9314259\n"))
	})

	df, err := newTestClient(t, mux).PerfilEleitorado(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, df.Nrow())
	assert.Equal(t, []string{"NR_ANO_ELEICAO", "SG_UF", "NM_MUNICIPIO", "QT_ELEITORES"}, df.Names())
	assert.Equal(t, "SÃO PAULO", df.Elem(0, 2).String())
}

func TestGeoJSON(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/geojson/geojs-42-mun.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"id":"4205407","name":"Florianópolis"},"geometry":{"type":"Polygon","coordinates":[[[-48.6,-27.6],[-48.4,-27.6],[-48.4,-27.4],[-48.6,-27.6]]]}}]}`))
	})
	c := newTestClient(t, mux)

	fc, err := c.GeoJSON(context.Background(), "sc")
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "Florianópolis", fc.Features[0].Properties["name"])
	assert.NotNil(t, fc.Features[0].Geometry)
}

func TestGeoJSON_CountryAggregate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/geojson/geojs-100-mun.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type":"FeatureCollection","features":[]}`))
	})

	fc, err := newTestClient(t, mux).GeoJSON(context.Background(), "BR")
	require.NoError(t, err)
	assert.Empty(t, fc.Features)
}

func TestGeoJSON_RejectsExtinct(t *testing.T) {
	c := newTestClient(t, http.NewServeMux())

	for _, unidade := range []string{"GB", "FN", "guanabara"} {
		_, err := c.GeoJSON(context.Background(), unidade)
		require.Error(t, err, "unidade: %q", unidade)
		assert.True(t, errors.Is(err, uf.ErrInvalid), "unidade: %q", unidade)
	}
}

func TestGeoJSON_InvalidUnit(t *testing.T) {
	_, err := newTestClient(t, http.NewServeMux()).GeoJSON(context.Background(), "XX")
	require.Error(t, err)
	assert.True(t, errors.Is(err, uf.ErrInvalid))
}

func TestGeoJSON_Unavailable(t *testing.T) {
	_, err := newTestClient(t, http.NewServeMux()).GeoJSON(context.Background(), "SP")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fetcher.ErrUnavailable))
}
