package fetcher

import (
	"context"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding"
)

// CSVOptions configures ReadCSV.
type CSVOptions struct {
	Delimiter rune              // default ','
	Encoding  encoding.Encoding // source charset; nil means UTF-8
}

// ReadCSV downloads a CSV resource and loads it into a dataframe. The
// first row is taken as the header. Payloads in legacy charsets (several
// government files ship as latin-1) are transcoded before parsing.
func ReadCSV(ctx context.Context, f Fetcher, url string, opts CSVOptions) (dataframe.DataFrame, error) {
	body, err := f.Download(ctx, url)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	defer body.Close() //nolint:errcheck

	var r io.Reader = body
	if opts.Encoding != nil {
		r = opts.Encoding.NewDecoder().Reader(body)
	}

	loadOpts := []dataframe.LoadOption{dataframe.WithLazyQuotes(true)}
	if opts.Delimiter != 0 {
		loadOpts = append(loadOpts, dataframe.WithDelimiter(opts.Delimiter))
	}

	df := dataframe.ReadCSV(r, loadOpts...)
	if df.Error() != nil {
		return dataframe.DataFrame{}, eris.Wrapf(ErrUnavailable, "fetcher: parse csv from %s: %v", url, df.Error())
	}
	return df, nil
}
