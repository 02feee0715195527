package favoritos

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/brasildados/dadosbr/internal/fetcher"
	"github.com/brasildados/dadosbr/pkg/uf"
)

// GeoJSON fetches the municipal boundary collection of a federative unit.
// The BR aggregate yields the countrywide file. Extinct units have no
// boundary files and are rejected by the resolver.
func (c *Client) GeoJSON(ctx context.Context, unidade string) (*geojson.FeatureCollection, error) {
	code, err := uf.Parse(unidade)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/geojs-%d-mun.json", c.urls.GeoJSON, code.IBGE())
	fc, err := fetcher.DecodeJSON[geojson.FeatureCollection](ctx, c.fetch, url)
	if err != nil {
		return nil, eris.Wrapf(err, "favoritos: geojson %s", code)
	}
	return fc, nil
}
