package anthropic

import (
	"testing"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harunnryd/tenki/internal/model/contract"
)

func TestMapStopReason(t *testing.T) {
	tests := []struct {
		name      string
		reason    anthropic.StopReason
		toolCalls int
		want      contract.FinishReason
	}{
		{name: "tool use", reason: anthropic.StopReasonToolUse, want: contract.FinishToolCalls},
		{name: "end turn", reason: anthropic.StopReasonEndTurn, want: contract.FinishStop},
		{name: "stop sequence", reason: anthropic.StopReasonStopSequence, want: contract.FinishStop},
		{name: "max tokens", reason: anthropic.StopReasonMaxTokens, want: contract.FinishLength},
		{name: "refusal", reason: anthropic.StopReasonRefusal, want: contract.FinishContentFilter},
		{name: "blank with tool calls", reason: "", toolCalls: 1, want: contract.FinishToolCalls},
		{name: "blank without tool calls", reason: "", want: contract.FinishUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapStopReason(tt.reason, tt.toolCalls))
		})
	}
}

func TestAssistantBlocks_TextOnly(t *testing.T) {
	blocks := assistantBlocks(contract.Message{Role: contract.RoleAssistant, Content: "hello"})

	require.Len(t, blocks, 1)
	require.NotNil(t, blocks[0].OfText)
	assert.Equal(t, "hello", blocks[0].OfText.Text)
}

func TestAssistantBlocks_ToolUseReplay(t *testing.T) {
	blocks := assistantBlocks(contract.Message{
		Role: contract.RoleAssistant,
		ToolCalls: []*contract.ToolCall{
			{ID: "toolu_1", Name: "getCurrentWeather", Input: `{"latitude":"52.5","longitude":"13.4"}`},
		},
	})

	require.Len(t, blocks, 1)
	require.NotNil(t, blocks[0].OfToolUse)
	assert.Equal(t, "toolu_1", blocks[0].OfToolUse.ID)
	assert.Equal(t, "getCurrentWeather", blocks[0].OfToolUse.Name)
	assert.Equal(t, map[string]interface{}{"latitude": "52.5", "longitude": "13.4"}, blocks[0].OfToolUse.Input)
}

func TestAssistantBlocks_TextAndToolUse(t *testing.T) {
	blocks := assistantBlocks(contract.Message{
		Role:    contract.RoleAssistant,
		Content: "Let me check.",
		ToolCalls: []*contract.ToolCall{
			{ID: "toolu_1", Name: "getLocation", Input: "{}"},
		},
	})

	require.Len(t, blocks, 2)
	require.NotNil(t, blocks[0].OfText)
	require.NotNil(t, blocks[1].OfToolUse)
}

func TestAssistantBlocks_MalformedInputFallsBackToEmptyObject(t *testing.T) {
	blocks := assistantBlocks(contract.Message{
		Role: contract.RoleAssistant,
		ToolCalls: []*contract.ToolCall{
			{ID: "toolu_1", Name: "getLocation", Input: "{"},
		},
	})

	require.Len(t, blocks, 1)
	require.NotNil(t, blocks[0].OfToolUse)
	assert.Equal(t, map[string]interface{}{}, blocks[0].OfToolUse.Input)
}
