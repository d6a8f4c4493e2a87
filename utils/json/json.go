package json

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/pretty"
)

func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalPretty marshals v and indents the result.
func MarshalPretty(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return pretty.PrettyOptions(b, &pretty.Options{
		Width:  80,
		Prefix: "",
		Indent: "  ",
	}), nil
}

func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// TrimJsonString strips a markdown code fence around a json document.
func TrimJsonString(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
