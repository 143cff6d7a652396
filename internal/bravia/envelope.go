package bravia

import (
	"encoding/json"
	"fmt"
)

const defaultVersion = "1.0"

// requestBody is the JSON-RPC envelope sent to the device. The protocol
// requires params to be array-wrapped even when a single object is sent.
type requestBody struct {
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Version string `json:"version"`
	Params  []any  `json:"params"`
}

// newRequestBody builds an envelope. An empty version selects "1.0" and
// nil params produce an empty array.
func newRequestBody(id int, method, version string, params any) requestBody {
	if version == "" {
		version = defaultVersion
	}
	wrapped := []any{}
	if params != nil {
		wrapped = []any{params}
	}
	return requestBody{
		ID:      id,
		Method:  method,
		Version: version,
		Params:  wrapped,
	}
}

// responseBody is the envelope returned by the device. Exactly one of
// Result and Error is expected to be present.
type responseBody struct {
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
}

// resultSelector locates the value a call site wants inside the result
// array, either by position or by field name inside the first element.
// The zero value selects index 0.
type resultSelector struct {
	field string
	index int
}

func byIndex(i int) resultSelector {
	return resultSelector{index: i}
}

func byField(name string) resultSelector {
	return resultSelector{field: name}
}

func (s resultSelector) extract(result []json.RawMessage) (json.RawMessage, error) {
	if s.field != "" {
		if len(result) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingValue, s.field)
		}
		var first map[string]json.RawMessage
		if err := json.Unmarshal(result[0], &first); err != nil {
			return nil, fmt.Errorf("decode result element: %w", err)
		}
		value, ok := first[s.field]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingValue, s.field)
		}
		return value, nil
	}
	if s.index >= len(result) {
		return nil, fmt.Errorf("%w: index %d", ErrMissingValue, s.index)
	}
	return result[s.index], nil
}
