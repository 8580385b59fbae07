package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripagent/pkg/trip/types"
)

func TestParseToolCall(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantTool string
		wantArgs map[string]string
		found    bool
	}{
		{
			name:     "plain directive",
			text:     "[TOOL_CALL:amap_maps_weather:city=北京]",
			wantTool: "amap_maps_weather",
			wantArgs: map[string]string{"city": "北京"},
			found:    true,
		},
		{
			name:     "directive embedded in prose",
			text:     "好的,我来搜索。\n[TOOL_CALL:amap_maps_text_search:keywords=公园,city=上海]\n请稍等。",
			wantTool: "amap_maps_text_search",
			wantArgs: map[string]string{"keywords": "公园", "city": "上海"},
			found:    true,
		},
		{
			name:     "whitespace around pairs",
			text:     "[TOOL_CALL:amap_maps_text_search:keywords= 酒店 , city= 西安 ]",
			wantTool: "amap_maps_text_search",
			wantArgs: map[string]string{"keywords": "酒店", "city": "西安"},
			found:    true,
		},
		{
			name:  "no directive",
			text:  "北京今天晴,气温25度。",
			found: false,
		},
		{
			name:  "unclosed bracket",
			text:  "[TOOL_CALL:amap_maps_weather:city=北京",
			found: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call, ok := ParseToolCall(tt.text)
			require.Equal(t, tt.found, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantTool, call.Tool)
			assert.Equal(t, tt.wantArgs, call.Args)
		})
	}
}

func TestFormatToolCall(t *testing.T) {
	got := FormatToolCall("amap_maps_text_search", "keywords", "公园", "city", "上海")
	assert.Equal(t, "[TOOL_CALL:amap_maps_text_search:keywords=公园,city=上海]", got)

	// Format output must parse back to the same call.
	call, ok := ParseToolCall(got)
	require.True(t, ok)
	assert.Equal(t, "amap_maps_text_search", call.Tool)
	assert.Equal(t, map[string]string{"keywords": "公园", "city": "上海"}, call.Args)
}

func TestBuildAttractionQueryEmbedsToolCall(t *testing.T) {
	req := types.TripRequest{City: "上海", Preferences: []string{"公园"}}
	q := BuildAttractionQuery(req)
	assert.Contains(t, q, "[TOOL_CALL:amap_maps_text_search:keywords=公园,city=上海]")
}

func TestBuildAttractionQueryDefaultKeyword(t *testing.T) {
	req := types.TripRequest{City: "北京"}
	q := BuildAttractionQuery(req)
	assert.Contains(t, q, "[TOOL_CALL:amap_maps_text_search:keywords=景点,city=北京]")
}

func TestBuildPlannerQuery(t *testing.T) {
	req := types.TripRequest{
		City:           "西安",
		StartDate:      "2025-05-01",
		EndDate:        "2025-05-03",
		TravelDays:     3,
		Transportation: "地铁",
		Accommodation:  "经济型",
		Preferences:    []string{"历史", "美食"},
		FreeTextInput:  "想去回民街",
	}
	q := BuildPlannerQuery(req, "景点A", "晴", "酒店B")
	assert.Contains(t, q, "西安的3天旅行计划")
	assert.Contains(t, q, "历史, 美食")
	assert.Contains(t, q, "景点A")
	assert.Contains(t, q, "晴")
	assert.Contains(t, q, "酒店B")
	assert.Contains(t, q, "**额外要求:** 想去回民街")
}
