package agent

import (
	"context"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// mockModel keeps the server bootable without LLM credentials. Lookup
// agents get a placeholder answer and the planner gets no JSON, so the
// pipeline lands on the deterministic fallback plan.
type mockModel struct{}

func NewMockModel() model.BaseChatModel { return &mockModel{} }

func (m *mockModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	content := "（mock）未配置LLM,无法检索实时信息。"
	if len(input) > 0 && input[0].Role == schema.System && input[0].Content == PlannerAgentPrompt {
		content = "（mock）未配置LLM,无法生成行程计划。"
	}
	return schema.AssistantMessage(content, nil), nil
}

func (m *mockModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	out, err := m.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	sr, sw := schema.Pipe[*schema.Message](1)
	sw.Send(out, nil)
	sw.Close()
	return sr, nil
}
