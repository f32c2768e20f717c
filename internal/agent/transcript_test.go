package agent

import (
	"fmt"
	"testing"

	"github.com/harunnryd/tenki/internal/model/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptRoundTrip(t *testing.T) {
	transcript := NewTranscript()

	appended := make([]contract.Message, 0, 6)
	for i := 0; i < 6; i++ {
		role := contract.RoleUser
		if i%2 == 1 {
			role = contract.RoleTool
		}
		msg := contract.Message{Role: role, Content: fmt.Sprintf("message %d", i)}
		transcript.Append(msg)
		appended = append(appended, msg)
	}

	require.Equal(t, 6, transcript.Len())
	assert.Equal(t, appended, transcript.Messages())
}

func TestTranscriptMessages_ReturnsCopy(t *testing.T) {
	transcript := NewTranscript()
	transcript.Append(contract.Message{Role: contract.RoleUser, Content: "original"})

	snapshot := transcript.Messages()
	snapshot[0].Content = "tampered"

	fresh := transcript.Messages()
	assert.Equal(t, "original", fresh[0].Content)
}

func TestNewTranscriptWithSystem(t *testing.T) {
	transcript := NewTranscriptWithSystem("be brief")
	require.Equal(t, 1, transcript.Len())

	first, ok := transcript.Last()
	require.True(t, ok)
	assert.Equal(t, contract.RoleSystem, first.Role)
	assert.Equal(t, "be brief", first.Content)
}

func TestNewTranscriptWithSystem_BlankPromptAddsNothing(t *testing.T) {
	transcript := NewTranscriptWithSystem("   ")
	assert.Equal(t, 0, transcript.Len())
}

func TestTranscriptLast(t *testing.T) {
	transcript := NewTranscript()

	_, ok := transcript.Last()
	assert.False(t, ok)

	transcript.Append(contract.Message{Role: contract.RoleUser, Content: "first"})
	transcript.Append(contract.Message{Role: contract.RoleAssistant, Content: "second"})

	last, ok := transcript.Last()
	require.True(t, ok)
	assert.Equal(t, "second", last.Content)
}
