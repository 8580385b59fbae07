package serviceImp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"tripagent/pkg/agent"
	"tripagent/pkg/logstream"
	"tripagent/pkg/retry"
	"tripagent/pkg/trip/types"
)

// Options tune the planning pipeline.
type Options struct {
	// MaxWorkers bounds how many lookup agents run at once.
	MaxWorkers int
	// EnableCache turns on the weather/hotel lookup caches.
	EnableCache bool
	// CacheTTL expires cached lookups; 0 keeps them for the process lifetime.
	CacheTTL time.Duration
	// Verbose also streams cache-hit notices.
	Verbose bool
	// RetryOnRateLimit wraps agent calls in the rate-limit retry helper.
	// Off by default: the inner LLM client may already retry on its own.
	RetryOnRateLimit bool
}

// TripSvc orchestrates the four agents: three parallel lookups (with
// cache short-circuit), one merge call, then parse-or-fallback.
type TripSvc struct {
	attraction *agent.Agent
	weather    *agent.Agent
	hotel      *agent.Agent
	planner    *agent.Agent

	streams *logstream.Streamer

	weatherCache *gocache.Cache // city -> lookup text
	hotelCache   *gocache.Cache // city_accommodation -> lookup text
	flight       singleflight.Group

	maxWorkers int
	verbose    bool
	retryCfg   *retry.Config
}

func NewTripService(attraction, weather, hotel, planner *agent.Agent, streams *logstream.Streamer, opts Options) *TripSvc {
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = 3
	}
	s := &TripSvc{
		attraction: attraction,
		weather:    weather,
		hotel:      hotel,
		planner:    planner,
		streams:    streams,
		maxWorkers: opts.MaxWorkers,
		verbose:    opts.Verbose,
	}
	if opts.EnableCache {
		ttl := opts.CacheTTL
		cleanup := time.Duration(0)
		if ttl <= 0 {
			ttl = gocache.NoExpiration
		} else {
			cleanup = 10 * time.Minute
		}
		s.weatherCache = gocache.New(ttl, cleanup)
		s.hotelCache = gocache.New(ttl, cleanup)
	}
	if opts.RetryOnRateLimit {
		cfg := retry.DefaultConfig()
		s.retryCfg = &cfg
	}
	return s
}

// PlanTrip implements service.TripService.
func (s *TripSvc) PlanTrip(ctx context.Context, req types.TripRequest, streamID string) types.TripPlan {
	s.log(streamID, strings.Repeat("=", 60))
	s.log(streamID, "开始多智能体协作规划旅行...")
	s.log(streamID, fmt.Sprintf("目的地: %s | 日期: %s 至 %s | 天数: %d天",
		req.City, req.StartDate, req.EndDate, req.TravelDays))
	s.log(streamID, strings.Repeat("=", 60))

	s.log(streamID, "并行查询景点、天气、酒店信息...")
	var attractionText, weatherText, hotelText string
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)
	g.Go(func() error {
		t, err := s.searchAttractions(gctx, req, streamID)
		attractionText = t
		return err
	})
	g.Go(func() error {
		t, err := s.weatherCached(gctx, req.City, streamID)
		weatherText = t
		return err
	})
	g.Go(func() error {
		t, err := s.hotelsCached(gctx, req.City, req.Accommodation, streamID)
		hotelText = t
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[trip] lookup failed: %v", err)
		s.log(streamID, "生成旅行计划失败: "+err.Error())
		return FallbackPlan(req)
	}
	s.log(streamID, "信息查询完成")

	s.log(streamID, "生成行程计划...")
	query := agent.BuildPlannerQuery(req, attractionText, weatherText, hotelText)
	response, err := s.runAgent(ctx, s.planner, query)
	if err != nil {
		log.Printf("[trip] planner failed: %v", err)
		s.log(streamID, "生成旅行计划失败: "+err.Error())
		return FallbackPlan(req)
	}

	plan := s.parsePlan(response, req, streamID)
	s.log(streamID, "旅行计划生成完成!")
	return plan
}

// runAgent funnels every agent call through the optional rate-limit retry.
func (s *TripSvc) runAgent(ctx context.Context, a *agent.Agent, query string) (string, error) {
	if s.retryCfg == nil {
		return a.Run(ctx, query)
	}
	var out string
	err := retry.OnRateLimit(ctx, *s.retryCfg, func() error {
		var err error
		out, err = a.Run(ctx, query)
		return err
	})
	return out, err
}

func (s *TripSvc) searchAttractions(ctx context.Context, req types.TripRequest, streamID string) (string, error) {
	keyword := "景点"
	if len(req.Preferences) > 0 {
		keyword = req.Preferences[0]
	}
	s.log(streamID, fmt.Sprintf("开始搜索%s的景点...", req.City))
	s.log(streamID, "使用工具: "+agent.FormatToolCall("amap_maps_text_search", "keywords", keyword, "city", req.City))

	result, err := s.runAgent(ctx, s.attraction, agent.BuildAttractionQuery(req))
	if err != nil {
		return "", err
	}
	s.logPlaceDigest(streamID, result, "景点")
	return result, nil
}

// weatherCached consults the cache first; singleflight collapses concurrent
// first-time lookups for one city into a single agent call.
func (s *TripSvc) weatherCached(ctx context.Context, city, streamID string) (string, error) {
	if s.weatherCache != nil {
		if v, ok := s.weatherCache.Get(city); ok {
			if s.verbose {
				s.log(streamID, "使用缓存的天气信息")
			}
			return v.(string), nil
		}
	}
	v, err, _ := s.flight.Do("weather:"+city, func() (any, error) {
		s.log(streamID, fmt.Sprintf("查询%s的天气信息...", city))
		s.log(streamID, "使用工具: amap_maps_weather")
		result, err := s.runAgent(ctx, s.weather, agent.BuildWeatherQuery(city))
		if err != nil {
			return nil, err
		}
		s.logWeatherDigest(streamID, result)
		s.log(streamID, "天气信息查询完成")
		if s.weatherCache != nil {
			s.weatherCache.SetDefault(city, result)
		}
		return result, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (s *TripSvc) hotelsCached(ctx context.Context, city, accommodation, streamID string) (string, error) {
	key := city + "_" + accommodation
	if s.hotelCache != nil {
		if v, ok := s.hotelCache.Get(key); ok {
			if s.verbose {
				s.log(streamID, "使用缓存的酒店信息")
			}
			return v.(string), nil
		}
	}
	v, err, _ := s.flight.Do("hotels:"+key, func() (any, error) {
		s.log(streamID, fmt.Sprintf("搜索%s的%s...", city, accommodation))
		s.log(streamID, "使用工具: amap_maps_text_search")
		result, err := s.runAgent(ctx, s.hotel, agent.BuildHotelQuery(city, accommodation))
		if err != nil {
			return nil, err
		}
		s.logPlaceDigest(streamID, result, "酒店")
		s.log(streamID, "酒店信息查询完成")
		if s.hotelCache != nil {
			s.hotelCache.SetDefault(key, result)
		}
		return result, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// parsePlan extracts and validates the planner's JSON; on any failure the
// fallback plan is the answer, never an error.
func (s *TripSvc) parsePlan(response string, req types.TripRequest, streamID string) types.TripPlan {
	payload, err := ExtractJSON(response)
	if err == nil {
		var plan types.TripPlan
		if err = json.Unmarshal([]byte(payload), &plan); err == nil {
			if err = plan.Validate(); err == nil {
				return plan
			}
		}
	}
	log.Printf("[trip] parse planner response: %v", err)
	s.log(streamID, "解析响应失败,将使用备用方案生成计划")
	return FallbackPlan(req)
}

func (s *TripSvc) log(streamID, message string) {
	log.Printf("[trip] %s", message)
	if streamID != "" {
		s.streams.Emit(streamID, logstream.LogEvent(message))
	}
}
