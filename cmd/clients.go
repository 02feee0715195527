package main

import (
	"strings"
	"time"

	"github.com/brasildados/dadosbr/internal/fetcher"
	"github.com/brasildados/dadosbr/internal/fontes"
	"github.com/brasildados/dadosbr/pkg/favoritos"
	"github.com/brasildados/dadosbr/pkg/ipeadata"
	"github.com/brasildados/dadosbr/pkg/senado"
	"github.com/brasildados/dadosbr/pkg/sgs"
)

// clientEnv holds the initialized upstream clients shared by the data
// commands and the API server.
type clientEnv struct {
	Fetcher   fetcher.Fetcher
	Favoritos *favoritos.Client
	Senado    *senado.Client
}

// initClients builds the HTTP fetcher and the upstream clients from the
// loaded configuration. Empty source URLs keep each client's production
// default.
func initClients() *clientEnv {
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:  cfg.HTTP.UserAgent,
		Timeout:    time.Duration(cfg.HTTP.TimeoutSecs) * time.Second,
		MaxRetries: cfg.HTTP.MaxRetries,
	})

	bacen := sgs.New(sgs.Config{BaseURL: cfg.Fontes.SGS, Fetcher: f})
	ipea := ipeadata.New(ipeadata.Config{BaseURL: cfg.Fontes.Ipeadata, Fetcher: f})

	fav := favoritos.New(favoritos.Config{
		Fetcher: f,
		Bacen:   bacen,
		Ipea:    ipea,
		URLs: favoritos.URLs{
			Catalogo:   cfg.Fontes.Catalogo,
			GeoJSON:    cfg.Fontes.GeoJSON,
			Municipios: cfg.Fontes.Municipios,
			Eleitorado: cfg.Fontes.Eleitorado,
			Wikimedia:  cfg.Fontes.Wikimedia,
		},
	})

	sen := senado.New(senado.Config{BaseURL: cfg.Fontes.Senado, Fetcher: f})

	return &clientEnv{
		Fetcher:   f,
		Favoritos: fav,
		Senado:    sen,
	}
}

// probeTargets lists one cheap request per upstream the accessors talk
// to, honoring any source overrides from the configuration.
func probeTargets() []fontes.Fonte {
	sgsBase := strings.TrimSuffix(firstNonEmpty(cfg.Fontes.SGS, sgs.DefaultBaseURL), "/")
	ipeaBase := strings.TrimSuffix(firstNonEmpty(cfg.Fontes.Ipeadata, ipeadata.DefaultBaseURL), "/")
	senBase := strings.TrimSuffix(firstNonEmpty(cfg.Fontes.Senado, senado.DefaultBaseURL), "/")
	catalogo := firstNonEmpty(cfg.Fontes.Catalogo, favoritos.DefaultURLs().Catalogo)

	return []fontes.Fonte{
		{Nome: "bacen-sgs", URL: sgsBase + "/bcdata.sgs.433/dados/ultimos/1?formato=json"},
		{Nome: "ipeadata", URL: ipeaBase + "/"},
		{Nome: "senado", URL: senBase + "/senador/partidos"},
		{Nome: "catalogo", URL: catalogo},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func newChecker() *fontes.Checker {
	return fontes.NewChecker(fontes.Config{
		Fontes:  probeTargets(),
		Timeout: time.Duration(cfg.HTTP.TimeoutSecs) * time.Second,
	})
}
