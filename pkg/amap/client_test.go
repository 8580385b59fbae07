package amap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextSearchFormatsPOIs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/text", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "景点", r.URL.Query().Get("keywords"))
		assert.Equal(t, "北京", r.URL.Query().Get("city"))
		w.Write([]byte(`{
			"status": "1",
			"info": "OK",
			"pois": [
				{"name": "故宫博物院", "address": "东城区景山前街4号", "location": "116.397,39.918", "type": "风景名胜"},
				{"name": "景山公园", "address": "西城区景山西街44号", "location": "", "type": ""}
			]
		}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL("test-key", srv.URL)
	got, err := c.TextSearch(context.Background(), "景点", "北京")
	require.NoError(t, err)

	assert.Contains(t, got, "为您找到北京的「景点」相关地点:")
	assert.Contains(t, got, "1. **故宫博物院**\n   - 地址：东城区景山前街4号\n   - 坐标：116.397,39.918\n   - 类型：风景名胜\n")
	// Optional fields are omitted when the API returns them empty.
	assert.Contains(t, got, "2. **景山公园**\n   - 地址：西城区景山西街44号\n")
	assert.NotContains(t, got, "2. **景山公园**\n   - 地址：西城区景山西街44号\n   - 坐标：")
}

func TestTextSearchNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "1", "info": "OK", "pois": []}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL("test-key", srv.URL)
	got, err := c.TextSearch(context.Background(), "热气球", "北京")
	require.NoError(t, err)
	assert.Equal(t, "未在北京找到与「热气球」相关的地点。", got)
}

func TestTextSearchAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "0", "info": "INVALID_USER_KEY"}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL("bad-key", srv.URL)
	_, err := c.TextSearch(context.Background(), "景点", "北京")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_USER_KEY")
}

func TestTextSearchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewWithBaseURL("test-key", srv.URL)
	_, err := c.TextSearch(context.Background(), "景点", "北京")
	assert.Error(t, err)
}

func TestWeatherFormatsForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather/weatherInfo", r.URL.Path)
		assert.Equal(t, "all", r.URL.Query().Get("extensions"))
		w.Write([]byte(`{
			"status": "1",
			"info": "OK",
			"forecasts": [{
				"city": "北京市",
				"casts": [
					{"date": "2025-11-10", "week": "1", "dayweather": "晴", "nightweather": "多云",
					 "daytemp": "12", "nighttemp": "3", "daywind": "北", "daypower": "4"},
					{"date": "2025-11-11", "week": "2", "dayweather": "阴", "nightweather": "阴",
					 "daytemp": "10", "nighttemp": "2", "daywind": "西北", "daypower": "3"}
				]
			}]
		}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL("test-key", srv.URL)
	got, err := c.Weather(context.Background(), "北京")
	require.NoError(t, err)

	assert.Contains(t, got, "北京市未来几天的天气预报:")
	assert.Contains(t, got, "- **2025年11月10日**\n  - 白天：晴，气温 12°C，北风 4 级\n  - 夜间：多云，气温 3°C，北风 4 级\n")
	assert.Contains(t, got, "- **2025年11月11日**")
}

func TestWeatherNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "1", "info": "OK", "forecasts": []}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL("test-key", srv.URL)
	got, err := c.Weather(context.Background(), "北京")
	require.NoError(t, err)
	assert.Equal(t, "暂无北京的天气预报数据。", got)
}

func TestWeatherAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "0", "info": "DAILY_QUERY_OVER_LIMIT"}`))
	}))
	defer srv.Close()

	c := NewWithBaseURL("test-key", srv.URL)
	_, err := c.Weather(context.Background(), "北京")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DAILY_QUERY_OVER_LIMIT")
}

func TestSearchToolValidatesArgs(t *testing.T) {
	tool := NewSearchTool(New("key"))
	_, err := tool.Execute(context.Background(), map[string]string{"city": "北京"})
	assert.Error(t, err)
	_, err = tool.Execute(context.Background(), map[string]string{"keywords": "景点"})
	assert.Error(t, err)
}

func TestWeatherToolValidatesArgs(t *testing.T) {
	tool := NewWeatherTool(New("key"))
	_, err := tool.Execute(context.Background(), map[string]string{})
	assert.Error(t, err)
}
