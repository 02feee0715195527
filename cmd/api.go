package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"

	"github.com/brasildados/dadosbr/internal/fetcher"
	"github.com/brasildados/dadosbr/internal/fontes"
	"github.com/brasildados/dadosbr/pkg/favoritos"
	"github.com/brasildados/dadosbr/pkg/senado"
	"github.com/brasildados/dadosbr/pkg/uf"
)

// apiServer exposes the dataset accessors over HTTP.
type apiServer struct {
	env     *clientEnv
	checker *fontes.Checker
}

// buildRouter mounts the API routes on a chi router.
func buildRouter(env *clientEnv, checker *fontes.Checker) http.Handler {
	s := &apiServer{env: env, checker: checker}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/catalogo", s.handleCatalogo)
		r.Get("/municipios", s.handleMunicipios)
		r.Get("/eleitorado", s.handleEleitorado)
		r.Get("/geojson/{uf}", s.handleGeoJSON)
		r.Get("/bandeira/{uf}", s.handleBandeira)
		r.Get("/brasao/{uf}", s.handleBrasao)
		r.Get("/series/{nome}", s.handleSerie)
		r.Get("/senadores", s.handleSenadores)
	})

	return r
}

// requestLogger logs one line per request through the global zap logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		zap.L().Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *apiServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleStatus reports upstream source health from the background
// checker, probing on demand before the first scheduled pass.
func (s *apiServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.checker.Ultimo()
	if snap == nil {
		snap = s.checker.Verificar(r.Context())
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *apiServer) handleCatalogo(w http.ResponseWriter, r *http.Request) {
	df, err := s.env.Favoritos.Catalogo(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeDataFrame(w, df)
}

func (s *apiServer) handleMunicipios(w http.ResponseWriter, r *http.Request) {
	df, err := s.env.Favoritos.CodigosMunicipios(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeDataFrame(w, df)
}

func (s *apiServer) handleEleitorado(w http.ResponseWriter, r *http.Request) {
	df, err := s.env.Favoritos.PerfilEleitorado(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeDataFrame(w, df)
}

func (s *apiServer) handleGeoJSON(w http.ResponseWriter, r *http.Request) {
	fc, err := s.env.Favoritos.GeoJSON(r.Context(), chi.URLParam(r, "uf"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fc)
}

func (s *apiServer) handleBandeira(w http.ResponseWriter, r *http.Request) {
	s.handleImagem(w, r, s.env.Favoritos.Bandeira)
}

func (s *apiServer) handleBrasao(w http.ResponseWriter, r *http.Request) {
	s.handleImagem(w, r, s.env.Favoritos.Brasao)
}

func (s *apiServer) handleImagem(w http.ResponseWriter, r *http.Request, resolve func(string, int) (string, error)) {
	tamanho := 100
	if v := r.URL.Query().Get("tamanho"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("invalid tamanho %q", v))
			return
		}
		tamanho = n
	}

	url, err := resolve(chi.URLParam(r, "uf"), tamanho)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (s *apiServer) handleSerie(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var p serieParams
	if v := q.Get("ultimos"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("invalid ultimos %q", v))
			return
		}
		p.Ultimos = n
	}

	inicio, err := parseDate(q.Get("inicio"))
	if err != nil {
		writeError(w, err)
		return
	}
	p.Inicio = inicio

	fim, err := parseDate(q.Get("fim"))
	if err != nil {
		writeError(w, err)
		return
	}
	p.Fim = fim

	p.Periodo = q.Get("periodo")
	p.Tipo = q.Get("tipo")
	p.Index = q.Get("index") == "true" || q.Get("index") == "1"

	df, err := fetchSerie(r.Context(), s.env.Favoritos, chi.URLParam(r, "nome"), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeDataFrame(w, df)
}

func (s *apiServer) handleSenadores(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := senado.ListaOptions{
		Situacao:     q.Get("situacao"),
		Participacao: q.Get("participacao"),
		UF:           q.Get("uf"),
	}

	lista, err := s.env.Senado.Lista(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lista)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeDataFrame renders df as a JSON array of records.
func writeDataFrame(w http.ResponseWriter, df dataframe.DataFrame) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := df.WriteJSON(w); err != nil {
		zap.L().Error("write dataframe response", zap.Error(err))
	}
}

// writeError maps the package sentinels onto HTTP statuses: invalid
// identifiers and options are client errors, upstream failures surface as
// bad gateway.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, uf.ErrInvalid),
		errors.Is(err, favoritos.ErrOpcaoInvalida),
		errors.Is(err, senado.ErrOpcaoInvalida):
		status = http.StatusBadRequest
	case errors.Is(err, fetcher.ErrUnavailable):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
	}
	writeJSONError(w, status, err.Error())
}
