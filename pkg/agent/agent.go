package agent

import (
	"context"
	"fmt"
	"sort"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Tool is an external capability an agent may request through a tool-call
// directive.
type Tool interface {
	Name() string
	Description() string
	Execute(ctx context.Context, args map[string]string) (string, error)
}

// Agent binds a fixed system prompt, a chat model and a set of tools. One
// Run is at most two model turns: the first answer either is the result or
// names a tool; in the latter case the tool output is folded into a single
// follow-up turn.
type Agent struct {
	name         string
	systemPrompt string
	model        model.BaseChatModel
	tools        map[string]Tool
}

func New(name, systemPrompt string, cm model.BaseChatModel) *Agent {
	return &Agent{
		name:         name,
		systemPrompt: systemPrompt,
		model:        cm,
		tools:        make(map[string]Tool),
	}
}

func (a *Agent) AddTool(t Tool) { a.tools[t.Name()] = t }

func (a *Agent) Name() string { return a.name }

// ToolNames returns the registered tool names, sorted.
func (a *Agent) ToolNames() []string {
	names := make([]string, 0, len(a.tools))
	for n := range a.tools {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Run answers query. Tool and model errors are returned as-is; the caller
// decides whether to retry or degrade.
func (a *Agent) Run(ctx context.Context, query string) (string, error) {
	msgs := []*schema.Message{
		schema.SystemMessage(a.systemPrompt),
		schema.UserMessage(query),
	}
	out, err := a.model.Generate(ctx, msgs)
	if err != nil {
		return "", fmt.Errorf("agent %s: generate: %w", a.name, err)
	}

	call, ok := ParseToolCall(out.Content)
	if !ok {
		return out.Content, nil
	}

	tool, ok := a.tools[call.Tool]
	if !ok {
		return "", fmt.Errorf("agent %s: unknown tool %q", a.name, call.Tool)
	}
	result, err := tool.Execute(ctx, call.Args)
	if err != nil {
		return "", fmt.Errorf("agent %s: tool %s: %w", a.name, call.Tool, err)
	}

	followup := append(msgs, out, schema.UserMessage(fmt.Sprintf(
		"工具 %s 返回结果:\n%s\n\n请基于以上工具返回的真实数据,整理并回答最初的问题,不要再输出工具调用。",
		call.Tool, result)))
	final, err := a.model.Generate(ctx, followup)
	if err != nil {
		return "", fmt.Errorf("agent %s: generate after tool: %w", a.name, err)
	}
	return final.Content, nil
}

// Canonical agent set. The three lookup agents share one map service; the
// planner works purely from the merged prompt.

func NewAttractionAgent(cm model.BaseChatModel, search Tool) *Agent {
	a := New("景点搜索专家", AttractionAgentPrompt, cm)
	a.AddTool(search)
	return a
}

func NewWeatherAgent(cm model.BaseChatModel, weather Tool) *Agent {
	a := New("天气查询专家", WeatherAgentPrompt, cm)
	a.AddTool(weather)
	return a
}

func NewHotelAgent(cm model.BaseChatModel, search Tool) *Agent {
	a := New("酒店推荐专家", HotelAgentPrompt, cm)
	a.AddTool(search)
	return a
}

func NewPlannerAgent(cm model.BaseChatModel) *Agent {
	return New("行程规划专家", PlannerAgentPrompt, cm)
}
