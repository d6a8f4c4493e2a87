package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalPretty(t *testing.T) {
	t.Parallel()
	b, err := MarshalPretty(map[string]any{"words": []string{"计算机"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"words": ["计算机"]}`, string(b))

	var out map[string][]string
	require.NoError(t, Unmarshal(b, &out))
	assert.Equal(t, []string{"计算机"}, out["words"])
}

func TestTrimJsonString(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"{\"a\":1}":                 "{\"a\":1}",
		"```json\n{\"a\":1}\n```":   "{\"a\":1}",
		"  ```\n{\"a\":1}\n```  \n": "{\"a\":1}",
	}
	for in, want := range tests {
		assert.Equal(t, want, TrimJsonString(in))
	}
}
