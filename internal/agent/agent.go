package agent

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/harunnryd/tenki/internal/config"
	tenkiErrors "github.com/harunnryd/tenki/internal/errors"
	"github.com/harunnryd/tenki/internal/logger"
	"github.com/harunnryd/tenki/internal/model/contract"
	"github.com/harunnryd/tenki/internal/tool"

	"github.com/oklog/ulid/v2"
)

// State labels where a run currently is, or how it ended.
type State string

const (
	StateAwaitingModel   State = "awaiting_model"
	StateDispatchingTool State = "dispatching_tool"
	StateDone            State = "done"
	StateExhausted       State = "exhausted"
)

// ExhaustedAdvisory is the loop's answer when the turn cap is hit without a
// final response. A soft stop, deliberately not an error.
const ExhaustedAdvisory = "The maximum number of iterations has been met without a suitable answer. Please try again with a more specific input."

// Gateway is the model endpoint the loop queries once per turn.
type Gateway interface {
	Complete(ctx context.Context, req contract.CompletionRequest) (*contract.Completion, error)
}

// Toolbox is the tool surface the loop needs: stable descriptors for the
// request and dispatch by name for the response.
type Toolbox interface {
	Describe() []contract.ToolDef
	Invoke(ctx context.Context, name string, args map[string]interface{}) (interface{}, error)
}

// Result is what one run produced.
type Result struct {
	Content string
	State   State
	Turns   int
}

// Loop drives the bounded tool-call conversation: ask the model, run the
// tool it picks, feed the result back, at most maxTurns times.
type Loop struct {
	gateway  Gateway
	tools    Toolbox
	model    string
	maxTurns int
}

func NewLoop(gateway Gateway, tools Toolbox, model string, maxTurns int) *Loop {
	if maxTurns <= 0 {
		maxTurns = config.DefaultAgentMaxTurns
	}

	return &Loop{
		gateway:  gateway,
		tools:    tools,
		model:    model,
		maxTurns: maxTurns,
	}
}

// Run appends the user input to the transcript and iterates the loop until
// the model stops, a remote call fails, or the turn cap is reached. Gateway
// and tool errors are not handled here; they propagate to the caller.
func (l *Loop) Run(ctx context.Context, transcript *Transcript, input string) (*Result, error) {
	runID := ulid.Make().String()
	ctx = logger.WithRunID(ctx, runID)

	transcript.Append(contract.Message{Role: contract.RoleUser, Content: input})

	state := StateAwaitingModel
	slog.Info("Agent loop started", "run_id", runID, "model", l.model, "max_turns", l.maxTurns)

	for turn := 0; turn < l.maxTurns; turn++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		slog.Debug("Agent loop turn", "run_id", runID, "turn", turn+1, "state", string(state))

		completion, err := l.gateway.Complete(ctx, contract.CompletionRequest{
			Model:    l.model,
			Messages: transcript.Messages(),
			Tools:    l.tools.Describe(),
		})
		if err != nil {
			return nil, err
		}

		switch completion.FinishReason {
		case contract.FinishToolCalls:
			if len(completion.Message.ToolCalls) == 0 {
				slog.Warn("Tool-call finish with no calls", "run_id", runID, "turn", turn+1)
				continue
			}

			state = StateDispatchingTool

			// Only the first requested call is honored; any extra calls in
			// the same response are dropped, not fanned out.
			call := completion.Message.ToolCalls[0]

			transcript.Append(completion.Message)

			result, err := l.dispatch(ctx, call)
			if err != nil {
				return nil, err
			}

			transcript.Append(contract.Message{
				Role:       contract.RoleTool,
				Content:    result,
				ToolCallID: call.ID,
			})

			state = StateAwaitingModel

		case contract.FinishStop:
			transcript.Append(completion.Message)
			slog.Info("Agent loop finished", "run_id", runID, "turns", turn+1)
			return &Result{Content: completion.Message.Content, State: StateDone, Turns: turn + 1}, nil

		default:
			// Unrecognized finish reasons append nothing and burn the turn.
			slog.Warn("Unhandled finish reason", "run_id", runID, "finish_reason", string(completion.FinishReason), "turn", turn+1)
		}
	}

	slog.Info("Agent loop exhausted", "run_id", runID, "turns", l.maxTurns)
	return &Result{Content: ExhaustedAdvisory, State: StateExhausted, Turns: l.maxTurns}, nil
}

func (l *Loop) dispatch(ctx context.Context, call *contract.ToolCall) (string, error) {
	args, err := tool.ParseArguments(call.Input)
	if err != nil {
		return "", err
	}

	slog.Info("Dispatching tool call", "run_id", logger.GetRunID(ctx), "tool", call.Name, "call_id", call.ID)

	out, err := l.tools.Invoke(ctx, call.Name, args)
	if err != nil {
		return "", err
	}

	serialized, err := json.Marshal(out)
	if err != nil {
		return "", tenkiErrors.Wrap(err, "serialize tool result")
	}
	return string(serialized), nil
}
