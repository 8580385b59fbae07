package amap

import (
	"context"
	"errors"
)

// Agent-facing tool adapters. Names must match the directives the system
// prompts teach the agents to emit.

const (
	SearchToolName  = "amap_maps_text_search"
	WeatherToolName = "amap_maps_weather"
)

type SearchTool struct{ c *Client }

func NewSearchTool(c *Client) *SearchTool { return &SearchTool{c: c} }

func (t *SearchTool) Name() string        { return SearchToolName }
func (t *SearchTool) Description() string { return "高德地图关键词搜索(景点/酒店等POI)" }

func (t *SearchTool) Execute(ctx context.Context, args map[string]string) (string, error) {
	keywords, city := args["keywords"], args["city"]
	if keywords == "" || city == "" {
		return "", errors.New("amap_maps_text_search requires keywords and city")
	}
	return t.c.TextSearch(ctx, keywords, city)
}

type WeatherTool struct{ c *Client }

func NewWeatherTool(c *Client) *WeatherTool { return &WeatherTool{c: c} }

func (t *WeatherTool) Name() string        { return WeatherToolName }
func (t *WeatherTool) Description() string { return "高德地图天气预报查询" }

func (t *WeatherTool) Execute(ctx context.Context, args map[string]string) (string, error) {
	city := args["city"]
	if city == "" {
		return "", errors.New("amap_maps_weather requires city")
	}
	return t.c.Weather(ctx, city)
}
