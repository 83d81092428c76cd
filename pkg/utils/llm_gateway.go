package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
)

// LLMProvider enumerates the text-generation backends the gateway can talk to.
type LLMProvider int

const (
	LLMProviderOff LLMProvider = iota
	LLMProviderOpenAI
	LLMProviderGoogle
)

func (p LLMProvider) String() string {
	switch p {
	case LLMProviderOpenAI:
		return "openai"
	case LLMProviderGoogle:
		return "google"
	default:
		return "off"
	}
}

// ParseLLMProvider maps a configured provider name onto a supported variant.
// An empty name and "off" both select LLMProviderOff.
func ParseLLMProvider(name string) (LLMProvider, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "off":
		return LLMProviderOff, true
	case "openai":
		return LLMProviderOpenAI, true
	case "google", "gemini":
		return LLMProviderGoogle, true
	default:
		return LLMProviderOff, false
	}
}

const (
	ReasonProviderOff     = "provider_off"
	ReasonNoAPIKey        = "no_api_key"
	ReasonUnknownProvider = "unknown_provider"
	ReasonException       = "exception"
)

const (
	DefaultOpenAIModel = openai.GPT4oMini
	DefaultGeminiModel = "gemini-1.5-flash"
)

// LLMConfig selects and authenticates the provider. BaseURL overrides the
// provider endpoint (OpenAI-compatible proxies, tests).
type LLMConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// LLMResult is the outcome of a single gateway call. Failures are values:
// Reason is set and OK is false.
type LLMResult struct {
	OK       bool
	Content  string
	Reason   string
	Details  string
	Provider LLMProvider
}

func HTTPReason(status int) string {
	return fmt.Sprintf("http_%d", status)
}

type LLMGatewayInterface interface {
	Call(ctx context.Context, prompt, systemPrompt string) LLMResult
	Provider() LLMProvider
}

type LLMGateway struct {
	config LLMConfig
}

func NewLLMGateway(config LLMConfig) LLMGatewayInterface {
	return &LLMGateway{config: config}
}

func (g *LLMGateway) Provider() LLMProvider {
	p, _ := ParseLLMProvider(g.config.Provider)
	return p
}

// Call sends one prompt to the configured provider. It never returns an
// error and never panics; every failure is folded into the result.
func (g *LLMGateway) Call(ctx context.Context, prompt, systemPrompt string) (result LLMResult) {
	provider, ok := ParseLLMProvider(g.config.Provider)
	if !ok {
		return LLMResult{Reason: ReasonUnknownProvider, Details: g.config.Provider}
	}
	if provider == LLMProviderOff {
		return LLMResult{Reason: ReasonProviderOff}
	}
	if g.config.APIKey == "" {
		return LLMResult{Reason: ReasonNoAPIKey, Provider: provider}
	}

	defer func() {
		if r := recover(); r != nil {
			result = LLMResult{Reason: ReasonException, Details: fmt.Sprint(r), Provider: provider}
		}
	}()

	var (
		content string
		err     error
	)
	switch provider {
	case LLMProviderOpenAI:
		content, err = callOpenAIChat(ctx, g.config, prompt, systemPrompt)
	case LLMProviderGoogle:
		content, err = callGeminiGenerate(ctx, g.config, prompt, systemPrompt)
	}
	if err != nil {
		return failureResult(provider, err)
	}
	return LLMResult{OK: true, Content: content, Provider: provider}
}

func failureResult(provider LLMProvider, err error) LLMResult {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode > 0 {
		return LLMResult{Reason: HTTPReason(apiErr.HTTPStatusCode), Details: apiErr.Message, Provider: provider}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode > 0 {
		return LLMResult{Reason: HTTPReason(reqErr.HTTPStatusCode), Details: string(reqErr.Body), Provider: provider}
	}
	var gErr *googleapi.Error
	if errors.As(err, &gErr) && gErr.Code > 0 {
		return LLMResult{Reason: HTTPReason(gErr.Code), Details: gErr.Message, Provider: provider}
	}
	return LLMResult{Reason: ReasonException, Details: err.Error(), Provider: provider}
}
