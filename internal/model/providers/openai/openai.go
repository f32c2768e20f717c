package openai

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/harunnryd/tenki/internal/model/contract"

	"github.com/sashabaranov/go-openai"
)

// Provider talks to the OpenAI chat-completions API. It also serves any
// OpenAI-compatible endpoint (Ollama, vLLM, ...) through a custom base URL.
type Provider struct {
	client *openai.Client
	model  string
}

func New(apiKey, baseURL, model string) *Provider {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}

	return &Provider{client: openai.NewClientWithConfig(cfg), model: model}
}

func (p *Provider) Name() string {
	return "openai"
}

func (p *Provider) Complete(ctx context.Context, req contract.CompletionRequest) (*contract.Completion, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		msg := openai.ChatCompletionMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
		}

		if len(m.ToolCalls) > 0 {
			tcs := make([]openai.ToolCall, 0, len(m.ToolCalls))
			for _, tc := range m.ToolCalls {
				tcs = append(tcs, openai.ToolCall{
					ID:   tc.ID,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      tc.Name,
						Arguments: tc.Input,
					},
				})
			}
			msg.ToolCalls = tcs
		}

		messages = append(messages, msg)
	}

	var tools []openai.Tool
	for _, t := range req.Tools {
		params := t.Parameters
		if params == nil {
			params = map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			}
		}
		tools = append(tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  params,
			},
		})
	}

	model := req.Model
	if model == "" {
		model = p.model
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
		Tools:    tools,
	})
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned")
	}

	choice := resp.Choices[0]

	message := contract.Message{
		Role:    contract.RoleAssistant,
		Content: choice.Message.Content,
	}
	for _, tc := range choice.Message.ToolCalls {
		id := tc.ID
		if id == "" {
			id = fmt.Sprintf("call_%d", len(message.ToolCalls)+1)
		}
		message.ToolCalls = append(message.ToolCalls, &contract.ToolCall{
			ID:    id,
			Name:  tc.Function.Name,
			Input: tc.Function.Arguments,
		})
	}

	return &contract.Completion{
		FinishReason: mapFinishReason(choice.FinishReason, len(message.ToolCalls)),
		Message:      message,
	}, nil
}

// mapFinishReason normalizes the wire finish reason. Some OpenAI-compatible
// servers leave it blank on tool calls, so tool-call presence decides when
// the reason itself is unrecognized.
func mapFinishReason(reason openai.FinishReason, toolCalls int) contract.FinishReason {
	switch reason {
	case openai.FinishReasonToolCalls, openai.FinishReasonFunctionCall:
		return contract.FinishToolCalls
	case openai.FinishReasonStop:
		return contract.FinishStop
	case openai.FinishReasonLength:
		return contract.FinishLength
	case openai.FinishReasonContentFilter:
		return contract.FinishContentFilter
	}
	if toolCalls > 0 {
		return contract.FinishToolCalls
	}
	return contract.FinishUnknown
}
