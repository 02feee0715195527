// Package uf resolves Brazilian federative-unit identifiers.
//
// A unit may be referenced by its two-letter sigla ("SP"), its full name
// ("São Paulo", case and accent insensitive) or its numeric IBGE code
// ("35"). Parse returns the canonical sigla, which every other package in
// this module uses as the unit's identity.
package uf

import (
	"sort"
	"strconv"
)

// Code is the canonical two-letter sigla of a federative unit.
type Code string

// Current federative units, plus the BR aggregate.
const (
	AC Code = "AC"
	AL Code = "AL"
	AM Code = "AM"
	AP Code = "AP"
	BA Code = "BA"
	BR Code = "BR"
	CE Code = "CE"
	DF Code = "DF"
	ES Code = "ES"
	GO Code = "GO"
	MA Code = "MA"
	MG Code = "MG"
	MS Code = "MS"
	MT Code = "MT"
	PA Code = "PA"
	PB Code = "PB"
	PE Code = "PE"
	PI Code = "PI"
	PR Code = "PR"
	RJ Code = "RJ"
	RN Code = "RN"
	RO Code = "RO"
	RR Code = "RR"
	RS Code = "RS"
	SC Code = "SC"
	SE Code = "SE"
	SP Code = "SP"
	TO Code = "TO"
)

// Extinct units, accepted only by ParseExtintos.
const (
	FN Code = "FN" // Fernando de Noronha, merged into PE in 1988
	GB Code = "GB" // Guanabara, merged into RJ in 1975
)

type unidade struct {
	nome    string
	ibge    int
	regiao  string
	extinta bool
}

// ibge carries the official two-digit IBGE codes; BR uses 100, the
// identifier of the countrywide boundary files, and the extinct units keep
// their historical codes.
var unidades = map[Code]unidade{
	AC: {nome: "Acre", ibge: 12, regiao: "Norte"},
	AL: {nome: "Alagoas", ibge: 27, regiao: "Nordeste"},
	AM: {nome: "Amazonas", ibge: 13, regiao: "Norte"},
	AP: {nome: "Amapá", ibge: 16, regiao: "Norte"},
	BA: {nome: "Bahia", ibge: 29, regiao: "Nordeste"},
	BR: {nome: "Brasil", ibge: 100},
	CE: {nome: "Ceará", ibge: 23, regiao: "Nordeste"},
	DF: {nome: "Distrito Federal", ibge: 53, regiao: "Centro-Oeste"},
	ES: {nome: "Espírito Santo", ibge: 32, regiao: "Sudeste"},
	GO: {nome: "Goiás", ibge: 52, regiao: "Centro-Oeste"},
	MA: {nome: "Maranhão", ibge: 21, regiao: "Nordeste"},
	MG: {nome: "Minas Gerais", ibge: 31, regiao: "Sudeste"},
	MS: {nome: "Mato Grosso do Sul", ibge: 50, regiao: "Centro-Oeste"},
	MT: {nome: "Mato Grosso", ibge: 51, regiao: "Centro-Oeste"},
	PA: {nome: "Pará", ibge: 15, regiao: "Norte"},
	PB: {nome: "Paraíba", ibge: 25, regiao: "Nordeste"},
	PE: {nome: "Pernambuco", ibge: 26, regiao: "Nordeste"},
	PI: {nome: "Piauí", ibge: 22, regiao: "Nordeste"},
	PR: {nome: "Paraná", ibge: 41, regiao: "Sul"},
	RJ: {nome: "Rio de Janeiro", ibge: 33, regiao: "Sudeste"},
	RN: {nome: "Rio Grande do Norte", ibge: 24, regiao: "Nordeste"},
	RO: {nome: "Rondônia", ibge: 11, regiao: "Norte"},
	RR: {nome: "Roraima", ibge: 14, regiao: "Norte"},
	RS: {nome: "Rio Grande do Sul", ibge: 43, regiao: "Sul"},
	SC: {nome: "Santa Catarina", ibge: 42, regiao: "Sul"},
	SE: {nome: "Sergipe", ibge: 28, regiao: "Nordeste"},
	SP: {nome: "São Paulo", ibge: 35, regiao: "Sudeste"},
	TO: {nome: "Tocantins", ibge: 17, regiao: "Norte"},

	FN: {nome: "Fernando de Noronha", ibge: 20, regiao: "Nordeste", extinta: true},
	GB: {nome: "Guanabara", ibge: 34, regiao: "Sudeste", extinta: true},
}

// Nome returns the unit's official name, or "" for an unknown code.
func (c Code) Nome() string { return unidades[c].nome }

// IBGE returns the unit's numeric IBGE code, or 0 for an unknown code.
func (c Code) IBGE() int { return unidades[c].ibge }

// Regiao returns the macro-region the unit belongs to. The BR aggregate
// has no region.
func (c Code) Regiao() string { return unidades[c].regiao }

// Extinta reports whether the unit no longer exists.
func (c Code) Extinta() bool { return unidades[c].extinta }

func (c Code) String() string { return string(c) }

// Siglas returns the known siglas in alphabetical order. Extinct units are
// included only when requested.
func Siglas(incluirExtintas bool) []string {
	out := make([]string, 0, len(unidades))
	for c, u := range unidades {
		if u.extinta && !incluirExtintas {
			continue
		}
		out = append(out, string(c))
	}
	sort.Strings(out)
	return out
}

// Todas returns the known codes in alphabetical order. Extinct units are
// included only when requested.
func Todas(incluirExtintas bool) []Code {
	siglas := Siglas(incluirExtintas)
	out := make([]Code, len(siglas))
	for i, s := range siglas {
		out[i] = Code(s)
	}
	return out
}

func buildLookup() map[string]Code {
	m := make(map[string]Code, 3*len(unidades))
	for c, u := range unidades {
		m[normalize(string(c))] = c
		m[normalize(u.nome)] = c
		m[strconv.Itoa(u.ibge)] = c
	}
	return m
}

var lookup = buildLookup()
