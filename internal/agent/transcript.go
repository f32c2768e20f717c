package agent

import (
	"strings"

	"github.com/harunnryd/tenki/internal/model/contract"
)

// Transcript is the append-only conversation log for one session. The caller
// owns it and may reuse it across runs; the loop appends but never removes
// or reorders what is already there.
type Transcript struct {
	messages []contract.Message
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

// NewTranscriptWithSystem seeds a fresh transcript with a system message
// when prompt is non-blank.
func NewTranscriptWithSystem(prompt string) *Transcript {
	t := NewTranscript()
	if strings.TrimSpace(prompt) != "" {
		t.Append(contract.Message{Role: contract.RoleSystem, Content: prompt})
	}
	return t
}

// Append adds one message at the end of the log.
func (t *Transcript) Append(msg contract.Message) {
	t.messages = append(t.messages, msg)
}

// Messages returns the log in append order. The slice is a copy so callers
// cannot rewrite history behind the transcript's back.
func (t *Transcript) Messages() []contract.Message {
	out := make([]contract.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) Len() int {
	return len(t.messages)
}

// Last returns the most recently appended message.
func (t *Transcript) Last() (contract.Message, bool) {
	if len(t.messages) == 0 {
		return contract.Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}
