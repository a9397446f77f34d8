// Package bedrock delivers sampling requests through the Bedrock Converse
// API, for entrypoints that run without an attached MCP client.
package bedrock

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"foodscout"
	"foodscout/sampling"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

const (
	// defaultModelID is an inference profile ID, not the foundation model's ID.
	// See https://docs.aws.amazon.com/bedrock/latest/userguide/inference-profiles.html.
	defaultModelID = "us.anthropic.claude-3-7-sonnet-20250219-v1:0"

	// top_p is fixed per gateway; temperature varies per request.
	defaultTopP = 0.9
)

type bedrockRuntimeClient interface {
	Converse(context.Context, *bedrockruntime.ConverseInput, ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

type GatewayOptions struct {
	ModelID string
	TopP    float32
}

// Gateway maps sampling requests onto Bedrock Converse calls. The request's
// model hint is advisory and ignored here: Bedrock model choice is pinned by
// the configured model ID.
type Gateway struct {
	brc   bedrockRuntimeClient
	opts  GatewayOptions
	audit foodscout.SamplingLogger
}

func New(brc bedrockRuntimeClient, opts GatewayOptions, audit foodscout.SamplingLogger) *Gateway {
	if opts.ModelID == "" {
		opts.ModelID = defaultModelID
	}
	if opts.TopP == 0 {
		opts.TopP = defaultTopP
	}
	if audit == nil {
		audit = foodscout.NewNoOpSamplingLogger()
	}
	return &Gateway{brc: brc, opts: opts, audit: audit}
}

// RequestSampling sends the request to Bedrock and returns the joined text
// blocks of the response.
func (g *Gateway) RequestSampling(ctx context.Context, req sampling.Request) (string, error) {
	var sys []types.SystemContentBlock
	if req.SystemPrompt != "" {
		sys = append(sys, &types.SystemContentBlockMemberText{Value: req.SystemPrompt})
	}

	msgs := make([]types.Message, 0, len(req.Messages))
	promptBytes := len(req.SystemPrompt)
	for _, m := range req.Messages {
		promptBytes += len(m.Content)
		msgs = append(msgs, types.Message{
			Role:    types.ConversationRole(m.Role),
			Content: []types.ContentBlock{&types.ContentBlockMemberText{Value: m.Content}},
		})
	}

	in := &bedrockruntime.ConverseInput{
		ModelId:  aws.String(g.opts.ModelID),
		System:   sys,
		Messages: msgs,
		InferenceConfig: &types.InferenceConfiguration{
			MaxTokens:   aws.Int32(int32(req.MaxTokens)),
			Temperature: aws.Float32(float32(req.Temperature)),
			TopP:        aws.Float32(g.opts.TopP),
		},
	}

	sample := foodscout.SampleLog{
		Timestamp:   time.Now(),
		ModelHint:   req.ModelHint,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		PromptBytes: promptBytes,
		Model:       g.opts.ModelID,
	}

	out, err := g.brc.Converse(ctx, in)
	if err != nil {
		slog.Error("BEDROCK_GATEWAY: Converse failed", "error", err, "model_id", g.opts.ModelID)
		sample.Error = err.Error()
		g.logSample(sample)
		return "", err
	}

	text := extractText(out)
	sample.ResponseBytes = len(text)
	g.logSample(sample)

	slog.Info("BEDROCK_GATEWAY: Converse succeeded",
		"stop_reason", out.StopReason,
		"response_len", len(text),
	)
	return text, nil
}

func extractText(out *bedrockruntime.ConverseOutput) string {
	msg, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return ""
	}
	var sb strings.Builder
	for _, block := range msg.Value.Content {
		if t, ok := block.(*types.ContentBlockMemberText); ok {
			sb.WriteString(t.Value)
		}
	}
	return sb.String()
}

func (g *Gateway) logSample(sample foodscout.SampleLog) {
	if err := g.audit.LogSample(sample); err != nil {
		slog.Error("BEDROCK_GATEWAY: Failed to record audit sample", "error", err)
	}
}
