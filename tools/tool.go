package tools

import (
	"context"

	"foodscout/openfoodfacts"
	"foodscout/sampling"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

// Tool is one callable tool. Run receives the sampling gateway per call
// because the sampling channel is bound to the client session that invoked
// the tool; tools that never sample ignore it.
type Tool interface {
	Name() string
	Title() string
	Description() string
	InputSchema() *jsonschema.Schema
	Run(ctx context.Context, sampler sampling.Gateway, input map[string]any) (Result, error)
}

// Result is the single user-visible outcome of a tool call: one text payload
// plus an error flag. Error objects never cross the tool boundary; a non-nil
// Run error is reserved for internal failures and is converted to an error
// result by the transport adapter.
type Result struct {
	Text    string
	IsError bool
}

func errorResult(text string) Result { return Result{Text: text, IsError: true} }

// ProductResolver turns a free-form identifier into a full product record.
// A nil return means no product could be identified.
type ProductResolver interface {
	Resolve(ctx context.Context, identifier string) openfoodfacts.Product
}

func strArg(input map[string]any, key string) string {
	s, _ := input[key].(string)
	return s
}

// intArg reads an integer argument. JSON numbers arrive as float64.
func intArg(input map[string]any, key string, def int) int {
	switch v := input[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}
