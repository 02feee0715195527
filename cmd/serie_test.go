package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brasildados/dadosbr/pkg/favoritos"
	"github.com/brasildados/dadosbr/pkg/sgs"
)

// fakeBacen records the last requested SGS series.
type fakeBacen struct {
	codigo int
	opts   sgs.SerieOptions
	err    error
}

func (f *fakeBacen) Serie(_ context.Context, codigo int, opts sgs.SerieOptions) (dataframe.DataFrame, error) {
	f.codigo = codigo
	f.opts = opts
	if f.err != nil {
		return dataframe.DataFrame{}, f.err
	}
	return dataframe.New(
		series.New([]string{"01/01/2020"}, series.String, "data"),
		series.New([]float64{0.21}, series.Float, "valor"),
	), nil
}

// fakeIpea records the last requested Ipeadata series.
type fakeIpea struct {
	cod   string
	index bool
	err   error
}

func (f *fakeIpea) Serie(_ context.Context, cod string, index bool) (dataframe.DataFrame, error) {
	f.cod = cod
	f.index = index
	if f.err != nil {
		return dataframe.DataFrame{}, f.err
	}
	return dataframe.New(
		series.New([]string{"2020-01-01T00:00:00-03:00"}, series.String, "data"),
		series.New([]float64{214}, series.Float, "valor"),
	), nil
}

func newFakeFavoritos() (*favoritos.Client, *fakeBacen, *fakeIpea) {
	bacen := &fakeBacen{}
	ipea := &fakeIpea{}
	fav := favoritos.New(favoritos.Config{Bacen: bacen, Ipea: ipea})
	return fav, bacen, ipea
}

func TestFetchSerie_BacenDispatch(t *testing.T) {
	tests := []struct {
		nome       string
		wantCodigo int
	}{
		{"ipca", 433},
		{"IPCA", 433},
		{"selic", 432},
		{"tr", 226},
		{"taxa-referencial", 226},
		{"poupanca", 195},
	}

	for _, tt := range tests {
		fav, bacen, _ := newFakeFavoritos()

		df, err := fetchSerie(context.Background(), fav, tt.nome, serieParams{Ultimos: 12})
		require.NoError(t, err, "nome: %q", tt.nome)
		assert.Equal(t, tt.wantCodigo, bacen.codigo, "nome: %q", tt.nome)
		assert.Equal(t, 12, bacen.opts.Ultimos, "nome: %q", tt.nome)
		assert.Equal(t, 1, df.Nrow())
	}
}

func TestFetchSerie_DateBounds(t *testing.T) {
	fav, bacen, _ := newFakeFavoritos()

	inicio := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)

	_, err := fetchSerie(context.Background(), fav, "selic", serieParams{Inicio: inicio, Fim: fim})
	require.NoError(t, err)
	assert.True(t, bacen.opts.Inicio.Equal(inicio))
	assert.True(t, bacen.opts.Fim.Equal(fim))
}

func TestFetchSerie_Reservas(t *testing.T) {
	tests := []struct {
		periodo    string
		wantCodigo int
	}{
		{"", 3546},
		{"mensal", 3546},
		{"diaria", 13621},
		{"Diária", 13621},
	}

	for _, tt := range tests {
		fav, bacen, _ := newFakeFavoritos()

		_, err := fetchSerie(context.Background(), fav, "reservas", serieParams{Periodo: tt.periodo})
		require.NoError(t, err, "periodo: %q", tt.periodo)
		assert.Equal(t, tt.wantCodigo, bacen.codigo, "periodo: %q", tt.periodo)
	}
}

func TestFetchSerie_ReservasInvalidPeriodo(t *testing.T) {
	fav, _, _ := newFakeFavoritos()

	_, err := fetchSerie(context.Background(), fav, "reservas", serieParams{Periodo: "quinzenal"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, favoritos.ErrOpcaoInvalida))
	assert.Contains(t, err.Error(), "mensal, diaria")
}

func TestFetchSerie_IpeaDispatch(t *testing.T) {
	tests := []struct {
		nome    string
		params  serieParams
		wantCod string
	}{
		{"risco-brasil", serieParams{}, "JPM366_EMBI366"},
		{"embi", serieParams{Index: true}, "JPM366_EMBI366"},
		{"salario-minimo", serieParams{}, "MTE12_SALMIN12"},
		{"salario-minimo", serieParams{Tipo: "real"}, "GAC12_SALMINRE12"},
		{"salario-minimo", serieParams{Tipo: "ppc", Index: true}, "GAC12_SALMINDOL12"},
	}

	for _, tt := range tests {
		fav, _, ipea := newFakeFavoritos()

		_, err := fetchSerie(context.Background(), fav, tt.nome, tt.params)
		require.NoError(t, err, "nome: %q tipo: %q", tt.nome, tt.params.Tipo)
		assert.Equal(t, tt.wantCod, ipea.cod)
		assert.Equal(t, tt.params.Index, ipea.index)
	}
}

func TestFetchSerie_UnknownName(t *testing.T) {
	fav, _, _ := newFakeFavoritos()

	_, err := fetchSerie(context.Background(), fav, "cambio", serieParams{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, favoritos.ErrOpcaoInvalida))
	assert.Contains(t, err.Error(), `"cambio"`)
	assert.Contains(t, err.Error(), "valid: ipca, selic")
}

func TestFetchSerie_PropagatesUpstreamError(t *testing.T) {
	bacen := &fakeBacen{err: errors.New("boom")}
	fav := favoritos.New(favoritos.Config{Bacen: bacen, Ipea: &fakeIpea{}})

	_, err := fetchSerie(context.Background(), fav, "ipca", serieParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2020-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC), d)

	d, err = parseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = parseDate("31/01/2020")
	require.Error(t, err)
	assert.True(t, errors.Is(err, favoritos.ErrOpcaoInvalida))
	assert.Contains(t, err.Error(), "AAAA-MM-DD")
}
