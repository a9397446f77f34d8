package foodscout

import "time"

// SamplingConfig carries the model preferences shared by every sampling
// request shape.
type SamplingConfig struct {
	ModelHint            string  `env:"SAMPLING_MODEL_HINT,default=claude"`
	IntelligencePriority float64 `env:"SAMPLING_INTELLIGENCE_PRIORITY,default=0.9"`
}

// ModelConfig configures the Bedrock sampling backend. Only entrypoints that
// run without an attached MCP client need it.
type ModelConfig struct {
	ModelID string  `env:"MODEL_ID,default=us.anthropic.claude-3-7-sonnet-20250219-v1:0"`
	TopP    float32 `env:"TOP_P,default=0.9"`
}

// AgentConfig configures the product catalog and the audit log.
type AgentConfig struct {
	ProductAPIBase    string        `env:"PRODUCT_API_BASE,default=https://world.openfoodfacts.org"`
	ProductAPITimeout time.Duration `env:"PRODUCT_API_TIMEOUT,default=30s"`
	AuditLogDir       string        `env:"AUDIT_LOG_DIR,default=./logs"`
	OtelEnabled       bool          `env:"OTEL_ENABLED,default=false"`
}
