// Package session delivers sampling requests through the MCP sampling
// channel of a connected client session.
package session

import (
	"context"
	"log/slog"
	"time"

	"foodscout"
	"foodscout/sampling"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// messageCreator is the slice of the MCP server session this gateway needs.
type messageCreator interface {
	CreateMessage(ctx context.Context, params *mcp.CreateMessageParams) (*mcp.CreateMessageResult, error)
}

// Gateway maps sampling requests onto ServerSession.CreateMessage. One
// gateway is built per tool call, bound to the session that made the call.
type Gateway struct {
	session messageCreator
	audit   foodscout.SamplingLogger
}

func New(session messageCreator, audit foodscout.SamplingLogger) *Gateway {
	if audit == nil {
		audit = foodscout.NewNoOpSamplingLogger()
	}
	return &Gateway{session: session, audit: audit}
}

// RequestSampling sends the request to the connected client and returns the
// text of the model response. A response without text content yields an
// empty string, not an error.
func (g *Gateway) RequestSampling(ctx context.Context, req sampling.Request) (string, error) {
	msgs := make([]*mcp.SamplingMessage, 0, len(req.Messages))
	promptBytes := len(req.SystemPrompt)
	for _, m := range req.Messages {
		promptBytes += len(m.Content)
		msgs = append(msgs, &mcp.SamplingMessage{
			Role:    mcp.Role(m.Role),
			Content: &mcp.TextContent{Text: m.Content},
		})
	}

	params := &mcp.CreateMessageParams{
		Messages:     msgs,
		SystemPrompt: req.SystemPrompt,
		ModelPreferences: &mcp.ModelPreferences{
			Hints:                []*mcp.ModelHint{{Name: req.ModelHint}},
			IntelligencePriority: req.IntelligencePriority,
		},
		IncludeContext: req.IncludeContext,
		Temperature:    req.Temperature,
		MaxTokens:      int64(req.MaxTokens),
	}

	sample := foodscout.SampleLog{
		Timestamp:   time.Now(),
		ModelHint:   req.ModelHint,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		PromptBytes: promptBytes,
	}

	res, err := g.session.CreateMessage(ctx, params)
	if err != nil {
		sample.Error = err.Error()
		g.logSample(sample)
		return "", err
	}

	text := extractText(res)
	sample.Model = res.Model
	sample.ResponseBytes = len(text)
	g.logSample(sample)

	slog.Info("SAMPLING: Response received", "model", res.Model, "response_len", len(text))
	return text, nil
}

func extractText(res *mcp.CreateMessageResult) string {
	if tc, ok := res.Content.(*mcp.TextContent); ok {
		return tc.Text
	}
	return ""
}

func (g *Gateway) logSample(sample foodscout.SampleLog) {
	if err := g.audit.LogSample(sample); err != nil {
		slog.Error("SAMPLING: Failed to record audit sample", "error", err)
	}
}
