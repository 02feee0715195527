package fetcher

import (
	"context"
	"encoding/xml"
	"io"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"
)

// DecodeXML downloads an XML document and collects every element whose
// local name matches elementName into a slice. T must carry xml tags.
// Documents in legacy charsets are handled through their declared encoding.
func DecodeXML[T any](ctx context.Context, f Fetcher, url string, elementName string) ([]T, error) {
	body, err := f.Download(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close() //nolint:errcheck

	decoder := xml.NewDecoder(body)
	decoder.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		enc, err := htmlindex.Get(charset)
		if err != nil {
			return nil, eris.Wrapf(err, "xml: unsupported charset %q", charset)
		}
		return enc.NewDecoder().Reader(input), nil
	}

	var out []T
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, eris.Wrapf(ErrUnavailable, "fetcher: parse xml from %s: %v", url, err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != elementName {
			continue
		}

		var item T
		if err := decoder.DecodeElement(&item, &se); err != nil {
			return nil, eris.Wrapf(ErrUnavailable, "fetcher: decode xml element from %s: %v", url, err)
		}
		out = append(out, item)
	}
}
