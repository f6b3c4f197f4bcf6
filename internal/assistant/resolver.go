package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"hostel-assistant-backend/internal/metrics"
)

const answerUpstreamDown = "I'm having trouble reaching the AI right now. Please try again in a moment."

// Generator is the single capability the resolver needs from a language
// model: prompt in, text out. Injected so tests can substitute canned
// replies for the network call.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// OpenAIGenerator backs Generator with a chat completion call.
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func NewOpenAIGenerator(client *openai.Client, model string, spec IntentSpec) *OpenAIGenerator {
	t := spec.Style.Temperature
	if t <= 0 {
		t = 0.1
	}
	maxTok := spec.Style.MaxTokens
	if maxTok <= 0 {
		maxTok = 400
	}
	return &OpenAIGenerator{client: client, model: model, temperature: t, maxTokens: maxTok}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Resolver classifies a user message against the hostel context and returns
// a complete IntentResult. Resolve is total: upstream failures and malformed
// model output degrade to valid results, never errors.
type Resolver struct {
	gen  Generator
	spec IntentSpec
}

func NewResolver(gen Generator, spec IntentSpec) *Resolver {
	return &Resolver{gen: gen, spec: spec}
}

func (r *Resolver) Resolve(ctx context.Context, message string, hostelCtx Context) IntentResult {
	raw, err := r.gen.Generate(ctx, r.buildPrompt(message, hostelCtx))
	if err != nil || strings.TrimSpace(raw) == "" {
		if err != nil {
			log.Warn().Err(err).Msg("model call failed, returning fallback")
		}
		metrics.LLMFailures.Inc()
		return IntentResult{Intent: IntentGeneric, Answer: answerUpstreamDown, Slots: map[string]string{}}
	}
	return parseModelReply(raw)
}

func (r *Resolver) buildPrompt(message string, hostelCtx Context) string {
	ctxJSON, _ := json.Marshal(hostelCtx)
	var b strings.Builder
	b.WriteString("SYSTEM\n")
	b.WriteString(r.spec.System)
	b.WriteString("\n\nINTENT_SCHEMA\n")
	b.WriteString(r.spec.SchemaJSON())
	b.WriteString("\n\nCONTEXT (JSON)\n")
	b.Write(ctxJSON)
	b.WriteString("\n\nUSER_MESSAGE\n")
	b.WriteString(message)
	b.WriteString("\n\nRespond ONLY with valid JSON. Do not include any markdown, code blocks, or extra text.")
	return b.String()
}
