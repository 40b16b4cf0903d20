package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/ballast/internal/budget"
	"github.com/gorewood/ballast/internal/mode"
	"github.com/gorewood/ballast/internal/trigger"
)

// umbChecklist mirrors trigger.SyncChecklist for tool output.
func umbChecklist() []string {
	return trigger.SyncChecklist()
}

// --- Modes tool ---

// ModesInput is the input for the modes tool (no parameters needed).
type ModesInput struct{}

// ModeInfo is one registry entry for tool output.
type ModeInfo struct {
	Slug        string              `json:"slug"        jsonschema:"mode slug"`
	Name        string              `json:"name"        jsonschema:"display name"`
	Description string              `json:"description" jsonschema:"what the mode does"`
	Handoffs    map[string][]string `json:"handoffs,omitempty" jsonschema:"hand-off conditions keyed by target slug"`
}

// ModesOutput is the output for the modes tool.
type ModesOutput struct {
	Modes []ModeInfo `json:"modes" jsonschema:"registered modes in order"`
}

func handleModes(registry *mode.Registry) mcp.ToolHandlerFor[ModesInput, ModesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ModesInput) (*mcp.CallToolResult, ModesOutput, error) {
		var out ModesOutput
		for _, m := range registry.Modes() {
			out.Modes = append(out.Modes, ModeInfo{
				Slug:        m.Slug,
				Name:        m.Name,
				Description: m.Description,
				Handoffs:    m.Handoffs,
			})
		}
		return nil, out, nil
	}
}

// --- Handoff tool ---

// HandoffInput is the input for the handoff tool.
type HandoffInput struct {
	From string `json:"from" jsonschema:"source mode slug"`
	To   string `json:"to"   jsonschema:"target mode slug"`
}

// HandoffOutput is the output for the handoff tool.
type HandoffOutput struct {
	From       string   `json:"from"       jsonschema:"source mode slug"`
	To         string   `json:"to"         jsonschema:"target mode slug"`
	Conditions []string `json:"conditions" jsonschema:"named hand-off conditions for the pair"`
}

func handleHandoff(registry *mode.Registry) mcp.ToolHandlerFor[HandoffInput, HandoffOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input HandoffInput) (*mcp.CallToolResult, HandoffOutput, error) {
		conditions, err := registry.HandoffConditions(input.From, input.To)
		if err != nil {
			return nil, HandoffOutput{}, err
		}
		return nil, HandoffOutput{From: input.From, To: input.To, Conditions: conditions}, nil
	}
}

// --- Context check tool ---

// ContextCheckInput is the input for the context_check tool.
type ContextCheckInput struct {
	Usage int `json:"usage" jsonschema:"context window usage percentage (0-100)"`
}

// ContextCheckOutput is the output for the context_check tool.
type ContextCheckOutput struct {
	Usage     int      `json:"usage"               jsonschema:"usage percentage checked"`
	Threshold int      `json:"threshold"           jsonschema:"alert threshold percentage"`
	Alert     bool     `json:"alert"               jsonschema:"whether the wrap-up alert fired"`
	Message   string   `json:"message,omitempty"   jsonschema:"alert message when fired"`
	Checklist []string `json:"checklist,omitempty" jsonschema:"wrap-up checklist when fired"`
}

func handleContextCheck() mcp.ToolHandlerFor[ContextCheckInput, ContextCheckOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ContextCheckInput) (*mcp.CallToolResult, ContextCheckOutput, error) {
		if input.Usage < 0 || input.Usage > 100 {
			return nil, ContextCheckOutput{}, fmt.Errorf("usage must be between 0 and 100, got %d", input.Usage)
		}
		result := budget.Evaluate(input.Usage)
		out := ContextCheckOutput{
			Usage:     result.Usage,
			Threshold: result.Threshold,
			Alert:     result.Alert,
			Message:   result.Message,
			Checklist: result.Checklist,
		}
		return nil, out, nil
	}
}

// --- Triggers tool ---

// TriggersInput is the input for the triggers tool.
type TriggersInput struct {
	Event string `json:"event,omitempty" jsonschema:"event description to match against the trigger table"`
}

// UpdateRule is one update-trigger declaration for tool output.
type UpdateRule struct {
	File      string `json:"file"      jsonschema:"memory bank file the rule owns"`
	Condition string `json:"condition" jsonschema:"free-text trigger condition"`
	Action    string `json:"action"    jsonschema:"update action to take"`
	Format    string `json:"format"    jsonschema:"literal timestamp format string"`
}

// TestingRule is one testing-workflow trigger for tool output.
type TestingRule struct {
	Condition      string `json:"condition"      jsonschema:"workflow condition"`
	Recommendation string `json:"recommendation" jsonschema:"recommendation to surface"`
}

// TriggersOutput is the output for the triggers tool.
type TriggersOutput struct {
	Updates []UpdateRule  `json:"updates"           jsonschema:"update-trigger table"`
	Testing []TestingRule `json:"testing"           jsonschema:"testing-workflow triggers"`
	Matched []string      `json:"matched,omitempty" jsonschema:"files whose conditions the event satisfies"`
	IsUMB   bool          `json:"is_umb"            jsonschema:"whether the event text invokes UMB"`
}

func handleTriggers() mcp.ToolHandlerFor[TriggersInput, TriggersOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input TriggersInput) (*mcp.CallToolResult, TriggersOutput, error) {
		var out TriggersOutput
		for _, rule := range trigger.Table() {
			out.Updates = append(out.Updates, UpdateRule{
				File:      rule.File,
				Condition: rule.Condition,
				Action:    rule.Action,
				Format:    rule.Format,
			})
		}
		for _, rule := range trigger.TestingTable() {
			out.Testing = append(out.Testing, TestingRule{
				Condition:      rule.Condition,
				Recommendation: rule.Recommendation,
			})
		}
		if input.Event != "" {
			for _, rule := range trigger.MatchFiles(input.Event) {
				out.Matched = append(out.Matched, rule.File)
			}
			out.IsUMB = trigger.IsUMB(input.Event)
		}
		return nil, out, nil
	}
}
