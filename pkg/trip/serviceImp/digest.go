package serviceImp

import (
	"fmt"
	"regexp"
)

// Progress digests: the lookup agents answer in a loose markdown list
// format ("1. **名称**\n   - 地址：..."), and a few lines of it are surfaced
// on the log stream so the client sees concrete findings, not just step
// markers. Digest failures are cosmetic and never fail the lookup.

var placeEntryRE = regexp.MustCompile(`\d+\.\s*\*\*([^*]+)\*\*\s*-\s*地址[：:]\s*([^\n]+)`)

const maxDigestEntries = 5

func (s *TripSvc) logPlaceDigest(streamID, result, kind string) {
	matches := placeEntryRE.FindAllStringSubmatch(result, -1)
	if len(matches) == 0 {
		s.log(streamID, kind+"搜索完成")
		return
	}
	s.log(streamID, "找到"+kind+"信息")
	for i, m := range matches {
		if i >= maxDigestEntries {
			break
		}
		name, address := m[1], m[2]
		s.log(streamID, "  - "+name)
		if address != "" {
			if len([]rune(address)) > 50 {
				address = string([]rune(address)[:50]) + "..."
			}
			s.log(streamID, "    地址: "+address)
		}
	}
	s.log(streamID, fmt.Sprintf("共找到 %d 个%s", len(matches), kind))
}

var weatherDateRE = regexp.MustCompile(`\*\*(\d{4}年\d{1,2}月\d{1,2}日)[^*]*\*\*`)

func (s *TripSvc) logWeatherDigest(streamID, result string) {
	s.log(streamID, "获取到天气数据")
	matches := weatherDateRE.FindAllStringSubmatch(result, -1)
	for i, m := range matches {
		if i >= 3 {
			break
		}
		s.log(streamID, "  预报日期: "+m[1])
	}
	if len(matches) > 0 {
		s.log(streamID, fmt.Sprintf("已获取 %d 天天气预报", len(matches)))
	}
}
