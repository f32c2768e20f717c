package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/harunnryd/tenki/internal/model/contract"

	"google.golang.org/genai"
)

type Provider struct {
	client *genai.Client
}

func New(apiKey string) (*Provider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	return &Provider{client: client}, nil
}

func (p *Provider) Name() string {
	return "gemini"
}

func (p *Provider) Complete(ctx context.Context, req contract.CompletionRequest) (*contract.Completion, error) {
	var system *genai.Content
	var contents []*genai.Content

	for _, m := range req.Messages {
		switch m.Role {
		case contract.RoleSystem:
			if system == nil {
				system = &genai.Content{}
			}
			system.Parts = append(system.Parts, &genai.Part{Text: m.Content})
		case contract.RoleTool:
			var obj map[string]any
			_ = json.Unmarshal([]byte(m.Content), &obj)
			// A gemini call id defaults to the function name on the way out,
			// so ToolCallID doubles as the response's Name here.
			contents = append(contents, &genai.Content{Role: "function", Parts: []*genai.Part{{
				FunctionResponse: &genai.FunctionResponse{ID: m.ToolCallID, Name: m.ToolCallID, Response: obj},
			}}})
		case contract.RoleAssistant:
			var parts []*genai.Part
			if m.Content != "" {
				parts = append(parts, &genai.Part{Text: m.Content})
			}
			for _, tc := range m.ToolCalls {
				var args map[string]any
				_ = json.Unmarshal([]byte(tc.Input), &args)
				parts = append(parts, &genai.Part{FunctionCall: &genai.FunctionCall{Name: tc.Name, Args: args}})
			}
			if len(parts) == 0 {
				parts = append(parts, &genai.Part{Text: m.Content})
			}
			contents = append(contents, &genai.Content{Role: "model", Parts: parts})
		default:
			contents = append(contents, &genai.Content{Role: "user", Parts: []*genai.Part{{Text: m.Content}}})
		}
	}

	var tools []*genai.Tool
	if len(req.Tools) > 0 {
		var decls []*genai.FunctionDeclaration
		for _, t := range req.Tools {
			b, _ := json.Marshal(t.Parameters)
			var schema genai.Schema
			_ = json.Unmarshal(b, &schema)
			decls = append(decls, &genai.FunctionDeclaration{Name: t.Name, Description: t.Description, Parameters: &schema})
		}
		tools = append(tools, &genai.Tool{FunctionDeclarations: decls})
	}

	resp, err := p.client.Models.GenerateContent(ctx, req.Model, contents, &genai.GenerateContentConfig{
		Tools:             tools,
		SystemInstruction: system,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	message := contract.Message{Role: contract.RoleAssistant}
	if resp == nil {
		return &contract.Completion{FinishReason: contract.FinishUnknown, Message: message}, nil
	}

	for _, fc := range resp.FunctionCalls() {
		argsJSON, _ := json.Marshal(fc.Args)
		id := fc.ID
		if id == "" {
			id = fc.Name
		}
		message.ToolCalls = append(message.ToolCalls, &contract.ToolCall{ID: id, Name: fc.Name, Input: string(argsJSON)})
	}

	var finish genai.FinishReason
	if len(resp.Candidates) > 0 {
		finish = resp.Candidates[0].FinishReason
		if resp.Candidates[0].Content != nil {
			for _, part := range resp.Candidates[0].Content.Parts {
				if part.Text != "" {
					message.Content += part.Text
				}
			}
		}
	}

	return &contract.Completion{
		FinishReason: mapFinishReason(finish, len(message.ToolCalls)),
		Message:      message,
	}, nil
}

// mapFinishReason normalizes gemini's candidate finish reason. Gemini
// reports STOP even when the candidate is a function call, so tool-call
// presence is checked first.
func mapFinishReason(reason genai.FinishReason, toolCalls int) contract.FinishReason {
	if toolCalls > 0 {
		return contract.FinishToolCalls
	}

	switch reason {
	case genai.FinishReasonStop:
		return contract.FinishStop
	case genai.FinishReasonMaxTokens:
		return contract.FinishLength
	case genai.FinishReasonSafety, genai.FinishReasonBlocklist, genai.FinishReasonProhibitedContent:
		return contract.FinishContentFilter
	}
	return contract.FinishUnknown
}
