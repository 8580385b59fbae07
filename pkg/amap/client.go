package amap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://restapi.amap.com/v3"

// Client talks to the Amap REST API and renders results as the markdown-ish
// text the agents pass around (numbered entries with bolded names), which is
// also what the progress digests in the planning service parse.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func New(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 25 * time.Second},
	}
}

// NewWithBaseURL is used by tests to point the client at a local server.
func NewWithBaseURL(apiKey, baseURL string) *Client {
	c := New(apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("amap: %s returned %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type poi struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Location string `json:"location"` // "lng,lat"
	Type     string `json:"type"`
}

// TextSearch runs a keyword POI search scoped to one city.
func (c *Client) TextSearch(ctx context.Context, keywords, city string) (string, error) {
	params := url.Values{}
	params.Set("keywords", keywords)
	params.Set("city", city)
	params.Set("offset", "10")
	var out struct {
		Status string `json:"status"`
		Info   string `json:"info"`
		POIs   []poi  `json:"pois"`
	}
	if err := c.get(ctx, "/place/text", params, &out); err != nil {
		return "", err
	}
	if out.Status != "1" {
		return "", fmt.Errorf("amap: text search failed: %s", out.Info)
	}
	if len(out.POIs) == 0 {
		return fmt.Sprintf("未在%s找到与「%s」相关的地点。", city, keywords), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "为您找到%s的「%s」相关地点:\n\n", city, keywords)
	for i, p := range out.POIs {
		fmt.Fprintf(&b, "%d. **%s**\n   - 地址：%s\n", i+1, p.Name, p.Address)
		if p.Location != "" {
			fmt.Fprintf(&b, "   - 坐标：%s\n", p.Location)
		}
		if p.Type != "" {
			fmt.Fprintf(&b, "   - 类型：%s\n", p.Type)
		}
	}
	return b.String(), nil
}

type cast struct {
	Date         string `json:"date"`
	Week         string `json:"week"`
	DayWeather   string `json:"dayweather"`
	NightWeather string `json:"nightweather"`
	DayTemp      string `json:"daytemp"`
	NightTemp    string `json:"nighttemp"`
	DayWind      string `json:"daywind"`
	DayPower     string `json:"daypower"`
}

// Weather fetches the multi-day forecast for a city.
func (c *Client) Weather(ctx context.Context, city string) (string, error) {
	params := url.Values{}
	params.Set("city", city)
	params.Set("extensions", "all")
	var out struct {
		Status    string `json:"status"`
		Info      string `json:"info"`
		Forecasts []struct {
			City  string `json:"city"`
			Casts []cast `json:"casts"`
		} `json:"forecasts"`
	}
	if err := c.get(ctx, "/weather/weatherInfo", params, &out); err != nil {
		return "", err
	}
	if out.Status != "1" {
		return "", fmt.Errorf("amap: weather lookup failed: %s", out.Info)
	}
	if len(out.Forecasts) == 0 || len(out.Forecasts[0].Casts) == 0 {
		return fmt.Sprintf("暂无%s的天气预报数据。", city), nil
	}

	f := out.Forecasts[0]
	var b strings.Builder
	fmt.Fprintf(&b, "%s未来几天的天气预报:\n\n", f.City)
	for _, d := range f.Casts {
		fmt.Fprintf(&b, "- **%s**\n", formatCastDate(d.Date))
		fmt.Fprintf(&b, "  - 白天：%s，气温 %s°C，%s风 %s 级\n", d.DayWeather, d.DayTemp, d.DayWind, d.DayPower)
		fmt.Fprintf(&b, "  - 夜间：%s，气温 %s°C，%s风 %s 级\n", d.NightWeather, d.NightTemp, d.DayWind, d.DayPower)
	}
	return b.String(), nil
}

// formatCastDate turns "2025-11-10" into "2025年11月10日".
func formatCastDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d年%d月%d日", t.Year(), int(t.Month()), t.Day())
}
