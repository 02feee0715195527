package fetcher

import (
	"context"
	"encoding/json"

	"github.com/go-gota/gota/dataframe"
	"github.com/rotisserie/eris"
)

// ReadJSON downloads a JSON array of flat records and loads it into a
// dataframe.
func ReadJSON(ctx context.Context, f Fetcher, url string) (dataframe.DataFrame, error) {
	body, err := f.Download(ctx, url)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	defer body.Close() //nolint:errcheck

	df := dataframe.ReadJSON(body)
	if df.Error() != nil {
		return dataframe.DataFrame{}, eris.Wrapf(ErrUnavailable, "fetcher: parse json from %s: %v", url, df.Error())
	}
	return df, nil
}

// DecodeJSON downloads a JSON document and decodes it into T.
func DecodeJSON[T any](ctx context.Context, f Fetcher, url string) (*T, error) {
	body, err := f.Download(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close() //nolint:errcheck

	var obj T
	if err := json.NewDecoder(body).Decode(&obj); err != nil {
		return nil, eris.Wrapf(ErrUnavailable, "fetcher: decode json from %s: %v", url, err)
	}
	return &obj, nil
}
