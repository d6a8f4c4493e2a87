// Package tool defines the callable tools the segmenter exposes to agents.
package tool

import "context"

const (
	TypeJson   = "object"
	TypeArr    = "array"
	TypeString = "string"
	TypeInt    = "integer"
)

// Tool is a named operation called with a json encoded input.
type Tool interface {
	Name() string
	Description() string
	Schema() *PropertiesSchema
	// Strict reports whether the input must match Schema exactly.
	Strict() bool
	Call(ctx context.Context, input string) (string, error)
}

type PropertiesSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]PropertySchema `json:"properties"`
	Required   []string                  `json:"required,omitempty"`
}

type PropertySchema struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}
