package contract

// Role values used in transcript messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// FinishReason labels why a completion stopped generating.
type FinishReason string

const (
	// FinishStop is a normal completion: the message content is the answer.
	FinishStop FinishReason = "stop"
	// FinishToolCalls means the model is asking the caller to run a tool.
	FinishToolCalls FinishReason = "tool_calls"
	// FinishLength means generation hit the provider's token limit.
	FinishLength FinishReason = "length"
	// FinishContentFilter means the provider suppressed the output.
	FinishContentFilter FinishReason = "content_filter"
	// FinishUnknown covers anything a provider reports that has no mapping.
	FinishUnknown FinishReason = ""
)

type Message struct {
	Role       string      `json:"role"`
	Content    string      `json:"content"`
	ToolCallID string      `json:"tool_call_id,omitempty"`
	ToolCalls  []*ToolCall `json:"tool_calls,omitempty"`
}

type CompletionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Tools    []ToolDef `json:"tools,omitempty"`
}

type ToolDef struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
}

// Completion is the single choice a gateway returns: why generation stopped
// and the message produced. The message carries tool calls when the finish
// reason is FinishToolCalls.
type Completion struct {
	FinishReason FinishReason `json:"finish_reason"`
	Message      Message      `json:"message"`
}

type ToolCall struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Input string `json:"input"`
}
