package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"expense-explorer/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

var (
	// ErrLLMDisabled is returned by NewChatModel when no provider is configured.
	ErrLLMDisabled = errors.New("llm provider disabled")
	ErrGeneration  = errors.New("answer generation failed")
)

const llmTemperature = 0.3

// ChatModel answers a single prompt under a system instruction.
type ChatModel interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
	Close() error
}

// NewChatModel builds the model selected by cfg.Provider.
func NewChatModel(ctx context.Context, cfg *config.LLMConfig, logger *zap.Logger) (ChatModel, error) {
	switch cfg.Provider {
	case config.ProviderGigaChat:
		return NewGigaChatModel(ctx, &cfg.GigaChat, logger)
	case config.ProviderGemini:
		return NewGeminiModel(ctx, &cfg.Gemini, logger)
	case config.ProviderNone, "":
		return nil, ErrLLMDisabled
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

type GigaChatModel struct {
	client *gigago.Client
	name   string
	logger *zap.Logger
}

func NewGigaChatModel(ctx context.Context, cfg *config.GigaChatConfig, logger *zap.Logger) (*GigaChatModel, error) {
	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	logger.Info("Using GigaChat model", zap.String("model", cfg.Model))
	return &GigaChatModel{client: client, name: cfg.Model, logger: logger}, nil
}

func (m *GigaChatModel) Generate(ctx context.Context, system, prompt string) (string, error) {
	// GenerativeModel carries the system instruction, so each call gets its own.
	model := m.client.GenerativeModel(m.name)
	model.SystemInstruction = system
	model.Temperature = llmTemperature

	resp, err := model.Generate(ctx, []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	m.logger.Debug("GigaChat answered", zap.Int("length", len(content)))
	return content, nil
}

func (m *GigaChatModel) Close() error {
	if m.client != nil {
		m.client.Close()
	}
	return nil
}

type GeminiModel struct {
	client *genai.Client
	name   string
	logger *zap.Logger
}

func NewGeminiModel(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (*GeminiModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Info("Using Gemini model", zap.String("model", cfg.Model))
	return &GeminiModel{client: client, name: cfg.Model, logger: logger}, nil
}

func (m *GeminiModel) Generate(ctx context.Context, system, prompt string) (string, error) {
	temperature := float32(llmTemperature)
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}

	resp, err := m.client.Models.GenerateContent(ctx, m.name, contents, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		Temperature:       &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	content := strings.TrimSpace(resp.Text())
	if content == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	m.logger.Debug("Gemini answered", zap.Int("length", len(content)))
	return content, nil
}

// Close is a no-op; the genai client holds no resources that need releasing.
func (m *GeminiModel) Close() error {
	return nil
}

// systemInstruction frames every conversational answer.
const systemInstruction = `You are a personal finance analyst helping a student understand their spending.
You receive a summary of their ledger (totals, category breakdown, monthly trends, top merchants,
spending velocity, tag overlaps) and a sample of recent transactions, followed by a question.

Rules:
- Base every number you mention on the provided data. Never invent transactions or amounts.
- Amounts are in US dollars. Regular transactions are spending and income transactions are reported separately.
- Internal transfers are neither spending nor income.
- If the data cannot answer the question, say so plainly and suggest what data would help.
- Be concise: a short direct answer first, then at most a few supporting bullet points.
- When useful, end with one concrete, actionable recommendation.`
