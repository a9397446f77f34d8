package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"foodscout"
	"foodscout/openfoodfacts"
	"foodscout/resolver"
	"foodscout/sampling"
	"foodscout/sampling/bedrock"
	"foodscout/slack"
	"foodscout/storage"
	"foodscout/tools"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joeshaw/envdecode"
)

type Params struct {
	Identifier string `json:"identifier"`
	Channel    string `json:"channel,omitempty"`
}

type Results struct {
	Report string `json:"report"`
}

func main() {
	fn := func(ctx context.Context, params Params) (Results, error) {
		var modelConfig foodscout.ModelConfig
		if err := envdecode.Decode(&modelConfig); err != nil {
			log.Fatalf("Failed to decode: %s", err)
		}

		var samplingConfig foodscout.SamplingConfig
		if err := envdecode.Decode(&samplingConfig); err != nil {
			log.Fatalf("Failed to decode: %s", err)
		}

		var agentConfig foodscout.AgentConfig
		if err := envdecode.Decode(&agentConfig); err != nil {
			log.Fatalf("Failed to decode: %s", err)
		}

		audit, flush, err := newAuditLogger(ctx, samplingConfig.ModelHint)
		if err != nil {
			slog.Error("SETUP: Failed to create audit logger", "error", err)
			return Results{}, err
		}
		defer flush()

		brc, err := newBedrockRuntimeClient(ctx)
		if err != nil {
			slog.Error("SETUP: Failed to create Bedrock client", "error", err)
			return Results{}, err
		}
		gateway := bedrock.New(brc, bedrock.GatewayOptions{
			ModelID: modelConfig.ModelID,
			TopP:    modelConfig.TopP,
		}, audit)

		catalog := openfoodfacts.NewClient(openfoodfacts.ClientOpts{
			BaseURL: agentConfig.ProductAPIBase,
			Timeout: agentConfig.ProductAPITimeout,
		})
		builder := sampling.NewBuilder(sampling.Config{
			ModelHint:            samplingConfig.ModelHint,
			IntelligencePriority: samplingConfig.IntelligencePriority,
		})

		analyze := tools.NewAnalyzeProduct(resolver.New(catalog), builder)
		result, err := analyze.Run(ctx, gateway, map[string]any{"nameOrBarcode": params.Identifier})
		if err != nil {
			slog.Error("RESULT: Analysis failed", "error", err)
			return Results{}, err
		}
		if result.IsError {
			return Results{}, fmt.Errorf("analysis failed: %s", result.Text)
		}

		if webhook := os.Getenv("SLACK_WEBHOOK_URL"); webhook != "" && params.Channel != "" {
			var notifier foodscout.SlackClient = slack.NewClient(webhook, http.DefaultClient)
			if err := notifier.PostMessage(ctx, params.Channel, result.Text); err != nil {
				slog.Error("RESULT: Failed to post report to Slack", "error", err, "channel", params.Channel)
				return Results{}, err
			}
		}

		return Results{Report: result.Text}, nil
	}

	lambda.Start(fn)
}

func newBedrockRuntimeClient(ctx context.Context) (*bedrockruntime.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRetryMaxAttempts(5))
	if err != nil {
		return nil, err
	}
	return bedrockruntime.NewFromConfig(awsCfg), nil
}

// newAuditLogger writes JSON lines to stdout for CloudWatch; when an S3
// bucket is configured, it buffers the session and flushes it there instead.
func newAuditLogger(ctx context.Context, modelHint string) (foodscout.SamplingLogger, func(), error) {
	bucket := os.Getenv("AUDIT_S3_BUCKET")
	if bucket == "" {
		return foodscout.NewStdoutSamplingLogger(), func() {}, nil
	}

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	store := storage.NewS3Store(s3.NewFromConfig(awsCfg), bucket, os.Getenv("AUDIT_S3_PREFIX"))

	buffered := foodscout.NewBufferedSamplingLogger(store, foodscout.NewSamplingLogKey(modelHint))
	flush := func() {
		if err := buffered.Flush(ctx); err != nil {
			slog.Error("RESULT: Failed to flush sampling audit log", "error", err)
		}
	}
	return buffered, flush, nil
}
