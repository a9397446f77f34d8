package main

import (
	"context"
	"log"
	"log/slog"

	"foodscout"
	"foodscout/openfoodfacts"
	"foodscout/resolver"
	"foodscout/sampling"
	"foodscout/sampling/session"
	"foodscout/storage"
	"foodscout/tools"

	"github.com/joeshaw/envdecode"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	ctx := context.Background()

	var agentConfig foodscout.AgentConfig
	if err := envdecode.Decode(&agentConfig); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}

	var samplingConfig foodscout.SamplingConfig
	if err := envdecode.Decode(&samplingConfig); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}

	catalog := openfoodfacts.NewClient(openfoodfacts.ClientOpts{
		BaseURL: agentConfig.ProductAPIBase,
		Timeout: agentConfig.ProductAPITimeout,
	})

	var productResolver tools.ProductResolver = resolver.New(catalog)

	if agentConfig.OtelEnabled {
		tracerProvider, meterProvider, otelShutdown, err := foodscout.InitOtel(ctx)
		if err != nil {
			slog.Error("SETUP: Failed to initialize OpenTelemetry", "error", err)
			return
		}
		defer func() {
			if err := otelShutdown(ctx); err != nil {
				slog.Error("SETUP: Failed to shutdown OpenTelemetry", "error", err)
			}
		}()
		productResolver = resolver.NewInstrumented(
			resolver.New(catalog),
			tracerProvider.Tracer(foodscout.TracerNameResolver),
			meterProvider.Meter(foodscout.TracerNameResolver),
		)
		slog.Info("SETUP: OpenTelemetry instrumentation enabled")
	}

	builder := sampling.NewBuilder(sampling.Config{
		ModelHint:            samplingConfig.ModelHint,
		IntelligencePriority: samplingConfig.IntelligencePriority,
	})

	registry, err := tools.NewRegistry(catalog, productResolver, builder)
	if err != nil {
		slog.Error("SETUP: Failed to create tool registry", "error", err)
		return
	}

	audit := foodscout.NewBufferedSamplingLogger(
		storage.NewFileStore(agentConfig.AuditLogDir),
		foodscout.NewSamplingLogKey(samplingConfig.ModelHint),
	)
	defer func() {
		if err := audit.Flush(ctx); err != nil {
			slog.Error("SERVER: Failed to flush sampling audit log", "error", err)
		}
	}()

	srv := mcp.NewServer(&mcp.Implementation{Name: "foodscout", Version: "0.1.0"}, nil)
	registerTools(srv, registry, audit)

	slog.Info("SERVER: Serving tools over stdio", "tools", len(registry.GetTools()))
	if err := srv.Run(ctx, mcp.NewStdioTransport()); err != nil {
		slog.Error("SERVER: Stopped with error", "error", err)
	}
}

// registerTools adapts every registry tool to an MCP tool handler. The
// sampling gateway is built per call, bound to the session the call arrived
// on, so sampling requests go back to the client that asked.
func registerTools(srv *mcp.Server, tp foodscout.ToolProvider, audit foodscout.SamplingLogger) {
	for _, tool := range tp.GetTools() {
		srv.AddTool(&mcp.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.InputSchema(),
		}, makeHandler(tool, audit))
	}
}

func makeHandler(tool tools.Tool, audit foodscout.SamplingLogger) mcp.ToolHandler {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[map[string]any]) (*mcp.CallToolResult, error) {
		slog.Info("SERVER: Tool call", "tool", tool.Name())

		result, err := tool.Run(ctx, session.New(ss, audit), params.Arguments)
		if err != nil {
			// No error object crosses the tool boundary; convert to an
			// error-flagged text response.
			slog.Error("SERVER: Tool failed", "tool", tool.Name(), "error", err)
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
				IsError: true,
			}, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: result.Text}},
			IsError: result.IsError,
		}, nil
	}
}
