package http

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/doofinder-client/pkg/doofinder"
)

// EncodeQuery encodes params as a query string. Nested maps and lists use
// bracket notation: {"filter": {"brand": ["acme"]}} becomes
// filter[brand][]=acme. Keys are sorted; nil values are skipped.
func EncodeQuery(params map[string]any) string {
	values := url.Values{}

	for key, value := range params {
		addQueryValue(values, key, value)
	}

	return values.Encode()
}

// encodeBody JSON-encodes params, or only the doofinder.RawBodyParam value
// when one is present.
func encodeBody(params map[string]any) ([]byte, error) {
	var value any = params
	if raw, ok := params[doofinder.RawBodyParam]; ok {
		value = raw
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	return payload, nil
}

func addQueryValue(values url.Values, key string, value any) {
	switch typed := value.(type) {
	case nil:
	case map[string]any:
		for name, nested := range typed {
			addQueryValue(values, key+"["+name+"]", nested)
		}
	case []any:
		for _, nested := range typed {
			addQueryValue(values, key+"[]", nested)
		}
	case []string:
		for _, nested := range typed {
			values.Add(key+"[]", nested)
		}
	case bool:
		values.Add(key, strconv.FormatBool(typed))
	case string:
		values.Add(key, typed)
	default:
		values.Add(key, fmt.Sprint(typed))
	}
}
