// Package sampling builds model-sampling requests and defines the gateway
// contract their delivery goes through.
package sampling

import "context"

// IncludeContextThisServer restricts sampling context to this server; no
// external context ever leaves through a sampling request.
const IncludeContextThisServer = "thisServer"

// Message is one role-tagged message in a sampling request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a fully-shaped sampling request. It is built fresh per tool call
// and not mutated afterwards.
type Request struct {
	Messages             []Message `json:"messages"`
	SystemPrompt         string    `json:"system_prompt"`
	ModelHint            string    `json:"model_hint"`
	IntelligencePriority float64   `json:"intelligence_priority"`
	IncludeContext       string    `json:"include_context"`
	Temperature          float64   `json:"temperature"`
	MaxTokens            int       `json:"max_tokens"`
}

// Gateway delivers a Request to a model and returns the extracted text of the
// response. A response with no extractable text is a valid outcome and comes
// back as an empty string, not an error.
type Gateway interface {
	RequestSampling(ctx context.Context, req Request) (string, error)
}

// Config carries the model preferences shared by every request shape.
type Config struct {
	ModelHint            string
	IntelligencePriority float64
}

// Builder constructs the fixed request shapes. The preference hints are
// configuration rather than literals so deployments can steer model choice
// without a rebuild.
type Builder struct {
	cfg Config
}

func NewBuilder(cfg Config) *Builder {
	if cfg.ModelHint == "" {
		cfg.ModelHint = "claude"
	}
	if cfg.IntelligencePriority == 0 {
		cfg.IntelligencePriority = 0.9
	}
	return &Builder{cfg: cfg}
}

func (b *Builder) request(system, user string, temperature float64, maxTokens int) Request {
	return Request{
		Messages:             []Message{{Role: "user", Content: user}},
		SystemPrompt:         system,
		ModelHint:            b.cfg.ModelHint,
		IntelligencePriority: b.cfg.IntelligencePriority,
		IncludeContext:       IncludeContextThisServer,
		Temperature:          temperature,
		MaxTokens:            maxTokens,
	}
}
