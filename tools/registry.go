package tools

import (
	"fmt"

	"foodscout/openfoodfacts"
	"foodscout/sampling"
)

// Registry maps tool names to implementations
type Registry map[string]Tool

// NewRegistry creates the tool registry over the given catalog, resolver,
// and request builder.
func NewRegistry(catalog openfoodfacts.Catalog, resolver ProductResolver, builder *sampling.Builder) (*Registry, error) {
	if catalog == nil || resolver == nil || builder == nil {
		return nil, fmt.Errorf("registry requires a catalog, a resolver, and a builder")
	}

	all := map[string]Tool{}
	for _, tool := range []Tool{
		NewSearchProducts(catalog),
		NewGetProduct(catalog),
		NewAnalyzeProduct(resolver, builder),
		NewCompareProducts(resolver, builder),
		NewSuggestRecipes(resolver, builder),
	} {
		all[tool.Name()] = tool
	}

	registry := Registry(all)
	return &registry, nil
}

// GetTools returns all tools in the registry as a slice
func (r *Registry) GetTools() []Tool {
	tools := make([]Tool, 0, len(*r))
	for _, tool := range *r {
		tools = append(tools, tool)
	}
	return tools
}

// GetTool retrieves a tool by name from the registry
func (r Registry) GetTool(name string) (Tool, error) {
	tool, exists := r[name]
	if !exists {
		return nil, fmt.Errorf("tool %q not found in registry", name)
	}
	return tool, nil
}
