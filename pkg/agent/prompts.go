package agent

import (
	"fmt"
	"strings"

	"tripagent/pkg/trip/types"
)

// System prompts force every lookup agent to answer with a tool-call
// directive rather than fabricate facts. The wording is part of the
// tool-call contract; see toolcall.go.

const AttractionAgentPrompt = `你是景点搜索专家。你的任务是根据城市和用户偏好搜索合适的景点。

**重要提示:**
你必须使用工具来搜索景点!不要自己编造景点信息!

**工具调用格式:**
使用maps_text_search工具时,必须严格按照以下格式:
` + "`[TOOL_CALL:amap_maps_text_search:keywords=景点关键词,city=城市名]`" + `

**示例:**
用户: "搜索北京的历史文化景点"
你的回复: [TOOL_CALL:amap_maps_text_search:keywords=历史文化,city=北京]

用户: "搜索上海的公园"
你的回复: [TOOL_CALL:amap_maps_text_search:keywords=公园,city=上海]

**注意:**
1. 必须使用工具,不要直接回答
2. 格式必须完全正确,包括方括号和冒号
3. 参数用逗号分隔
`

const WeatherAgentPrompt = `你是天气查询专家。你的任务是查询指定城市的天气信息。

**重要提示:**
你必须使用工具来查询天气!不要自己编造天气信息!

**工具调用格式:**
使用maps_weather工具时,必须严格按照以下格式:
` + "`[TOOL_CALL:amap_maps_weather:city=城市名]`" + `

**示例:**
用户: "查询北京天气"
你的回复: [TOOL_CALL:amap_maps_weather:city=北京]

用户: "上海的天气怎么样"
你的回复: [TOOL_CALL:amap_maps_weather:city=上海]

**注意:**
1. 必须使用工具,不要直接回答
2. 格式必须完全正确,包括方括号和冒号
`

const HotelAgentPrompt = `你是酒店推荐专家。你的任务是根据城市和景点位置推荐合适的酒店。

**重要提示:**
你必须使用工具来搜索酒店!不要自己编造酒店信息!

**工具调用格式:**
使用maps_text_search工具搜索酒店时,必须严格按照以下格式:
` + "`[TOOL_CALL:amap_maps_text_search:keywords=酒店,city=城市名]`" + `

**示例:**
用户: "搜索北京的酒店"
你的回复: [TOOL_CALL:amap_maps_text_search:keywords=酒店,city=北京]

**注意:**
1. 必须使用工具,不要直接回答
2. 格式必须完全正确,包括方括号和冒号
3. 关键词使用"酒店"或"宾馆"
`

const PlannerAgentPrompt = `你是行程规划专家。你的任务是根据景点信息和天气信息,生成详细的旅行计划。

请严格按照以下JSON格式返回旅行计划:
` + "```json" + `
{
  "city": "城市名称",
  "start_date": "YYYY-MM-DD",
  "end_date": "YYYY-MM-DD",
  "days": [
    {
      "date": "YYYY-MM-DD",
      "day_index": 0,
      "description": "第1天行程概述",
      "transportation": "交通方式",
      "accommodation": "住宿类型",
      "hotel": {
        "name": "酒店名称",
        "address": "酒店地址",
        "location": {"longitude": 116.397128, "latitude": 39.916527},
        "price_range": "300-500元",
        "rating": "4.5",
        "distance": "距离景点2公里",
        "type": "经济型酒店",
        "estimated_cost": 400
      },
      "attractions": [
        {
          "name": "景点名称",
          "address": "详细地址",
          "location": {"longitude": 116.397128, "latitude": 39.916527},
          "visit_duration": 120,
          "description": "景点详细描述",
          "category": "景点类别",
          "ticket_price": 60
        }
      ],
      "meals": [
        {"type": "breakfast", "name": "早餐推荐", "description": "早餐描述", "estimated_cost": 30},
        {"type": "lunch", "name": "午餐推荐", "description": "午餐描述", "estimated_cost": 50},
        {"type": "dinner", "name": "晚餐推荐", "description": "晚餐描述", "estimated_cost": 80}
      ]
    }
  ],
  "weather_info": [
    {
      "date": "YYYY-MM-DD",
      "day_weather": "晴",
      "night_weather": "多云",
      "day_temp": 25,
      "night_temp": 15,
      "wind_direction": "南风",
      "wind_power": "1-3级"
    }
  ],
  "overall_suggestions": "总体建议",
  "budget": {
    "total_attractions": 180,
    "total_hotels": 1200,
    "total_meals": 480,
    "total_transportation": 200,
    "total": 2060
  }
}
` + "```" + `

**重要提示:**
1. weather_info数组必须包含每一天的天气信息
2. 温度必须是纯数字(不要带°C等单位)
3. 每天安排2-3个景点
4. 考虑景点之间的距离和游览时间
5. 每天必须包含早中晚三餐
6. 提供实用的旅行建议
7. **必须包含预算信息**:
   - 景点门票价格(ticket_price)
   - 餐饮预估费用(estimated_cost)
   - 酒店预估费用(estimated_cost)
   - 预算汇总(budget)包含各项总费用
`

// BuildAttractionQuery embeds the tool call directly so the lookup runs even
// when the model ignores the instruction to emit one.
func BuildAttractionQuery(req types.TripRequest) string {
	keywords := "景点"
	if len(req.Preferences) > 0 {
		keywords = req.Preferences[0]
	}
	call := FormatToolCall("amap_maps_text_search", "keywords", keywords, "city", req.City)
	return fmt.Sprintf("请使用amap_maps_text_search工具搜索%s的%s相关景点。\n%s", req.City, keywords, call)
}

func BuildWeatherQuery(city string) string {
	return fmt.Sprintf("请查询%s的天气信息", city)
}

func BuildHotelQuery(city, accommodation string) string {
	return fmt.Sprintf("请搜索%s的%s酒店", city, accommodation)
}

// BuildPlannerQuery merges the request with the three lookup results into
// the single prompt the planner agent answers with a JSON plan.
func BuildPlannerQuery(req types.TripRequest, attractions, weather, hotels string) string {
	prefs := "无"
	if len(req.Preferences) > 0 {
		prefs = strings.Join(req.Preferences, ", ")
	}
	query := fmt.Sprintf(`请根据以下信息生成%s的%d天旅行计划:

**基本信息:**
- 城市: %s
- 日期: %s 至 %s
- 天数: %d天
- 交通方式: %s
- 住宿: %s
- 偏好: %s

**景点信息:**
%s

**天气信息:**
%s

**酒店信息:**
%s

**要求:**
1. 每天安排2-3个景点
2. 每天必须包含早中晚三餐
3. 每天推荐一个具体的酒店(从酒店信息中选择)
4. 考虑景点之间的距离和交通方式
5. 返回完整的JSON格式数据
6. 景点的经纬度坐标要真实准确
`,
		req.City, req.TravelDays,
		req.City, req.StartDate, req.EndDate, req.TravelDays,
		req.Transportation, req.Accommodation, prefs,
		attractions, weather, hotels)
	if req.FreeTextInput != "" {
		query += fmt.Sprintf("\n**额外要求:** %s", req.FreeTextInput)
	}
	return query
}
