package crawl

import (
	"encoding/json"
	"strings"

	"github.com/fwojciec/goose"
)

// ParseJSONLD parses a JSON-LD payload. Payloads that fail to parse are
// repaired once by separating adjacent double quotes with a comma and
// parsed again; a payload still invalid after that returns a
// *goose.JSONLDParseError.
func ParseJSONLD(text string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err == nil {
		return v, nil
	}

	repaired := strings.ReplaceAll(text, `""`, `", "`)
	v = nil
	if err := json.Unmarshal([]byte(repaired), &v); err != nil {
		return nil, &goose.JSONLDParseError{Repaired: true, Err: err}
	}
	return v, nil
}
