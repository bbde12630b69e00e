package service

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

// ── ICS 解析器 ──────────────────────────────────────────────
//
// 职责：将标准 iCalendar (RFC 5545) 内容映射为日程事件参数。
//
// 设计决策：
//   - SUMMARY → 事件标题，DESCRIPTION → 事件详情
//   - DTSTART/DTEND 只取星期几与时刻（HHMM），不保留任何日历日期
//   - 周重复 RRULE 的 BYDAY 并入日期 token 集合
//   - 同 标题+起止时刻 的多个 VEVENT 合并为一个事件，日期 token 取并集
//   - 无法映射的 VEVENT（缺 SUMMARY、缺起止时间）直接跳过
// ─────────────────────────────────────────────────────────────

// ICSEvent ICS 解析出的事件参数，交由 PlannerService 构造与校验
type ICSEvent struct {
	Title     string
	Days      string
	StartTime int
	EndTime   int
	Details   string
}

// dayTokenOrder 日期 token 的规范输出顺序
const dayTokenOrder = "MTWHFSU"

// ParseICSEvents 解析 ICS 内容并映射为事件参数列表
func ParseICSEvents(r io.Reader) ([]ICSEvent, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("ICS 格式解析失败: %w", err)
	}

	type key struct {
		title      string
		start, end int
	}
	merged := make(map[key]map[byte]bool)
	details := make(map[key]string)
	var order []key

	for _, evt := range cal.Events() {
		summary := evt.GetProperty(ics.ComponentPropertySummary)
		if summary == nil || strings.TrimSpace(summary.Value) == "" {
			continue
		}
		title := strings.TrimSpace(summary.Value)

		dtStart, err := parseICSDateTime(evt, ics.ComponentPropertyDtStart)
		if err != nil {
			continue
		}
		dtEnd, err := parseICSDateTime(evt, ics.ComponentPropertyDtEnd)
		if err != nil {
			continue
		}

		days := map[byte]bool{weekdayToken(dtStart.Weekday()): true}
		for _, tok := range rruleByDayTokens(evt) {
			days[tok] = true
		}

		k := key{
			title: title,
			start: dtStart.Hour()*100 + dtStart.Minute(),
			end:   dtEnd.Hour()*100 + dtEnd.Minute(),
		}
		if existing, ok := merged[k]; ok {
			for tok := range days {
				existing[tok] = true
			}
		} else {
			merged[k] = days
			order = append(order, k)
			if desc := evt.GetProperty(ics.ComponentPropertyDescription); desc != nil {
				details[k] = strings.TrimSpace(desc.Value)
			}
		}
	}

	result := make([]ICSEvent, 0, len(order))
	for _, k := range order {
		result = append(result, ICSEvent{
			Title:     k.title,
			Days:      canonicalDays(merged[k]),
			StartTime: k.start,
			EndTime:   k.end,
			Details:   details[k],
		})
	}
	return result, nil
}

// weekdayToken 将 Go 的 time.Weekday 映射为日期 token
func weekdayToken(wd time.Weekday) byte {
	switch wd {
	case time.Monday:
		return 'M'
	case time.Tuesday:
		return 'T'
	case time.Wednesday:
		return 'W'
	case time.Thursday:
		return 'H'
	case time.Friday:
		return 'F'
	case time.Saturday:
		return 'S'
	default:
		return 'U'
	}
}

// rruleByDayTokens 从周重复 RRULE 的 BYDAY 参数提取额外日期 token
func rruleByDayTokens(evt *ics.VEvent) []byte {
	prop := evt.GetProperty(ics.ComponentPropertyRrule)
	if prop == nil {
		return nil
	}

	byDayMap := map[string]byte{
		"MO": 'M', "TU": 'T', "WE": 'W', "TH": 'H', "FR": 'F', "SA": 'S', "SU": 'U',
	}

	weekly := false
	var tokens []byte
	for _, part := range strings.Split(prop.Value, ";") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch strings.ToUpper(kv[0]) {
		case "FREQ":
			weekly = strings.ToUpper(kv[1]) == "WEEKLY"
		case "BYDAY":
			for _, d := range strings.Split(strings.ToUpper(kv[1]), ",") {
				if tok, ok := byDayMap[strings.TrimSpace(d)]; ok {
					tokens = append(tokens, tok)
				}
			}
		}
	}
	if !weekly {
		return nil
	}
	return tokens
}

// canonicalDays 将 token 集合按 MTWHFSU 的规范顺序拼成日期串
func canonicalDays(set map[byte]bool) string {
	var tokens []byte
	for tok := range set {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool {
		return strings.IndexByte(dayTokenOrder, tokens[i]) < strings.IndexByte(dayTokenOrder, tokens[j])
	})
	return string(tokens)
}

// parseICSDateTime 从 VEVENT 中解析日期时间属性，支持常见 ICS 时间格式
func parseICSDateTime(evt *ics.VEvent, propName ics.ComponentProperty) (time.Time, error) {
	prop := evt.GetProperty(propName)
	if prop == nil {
		return time.Time{}, fmt.Errorf("缺少属性 %s", propName)
	}

	formats := []string{
		"20060102T150405Z",
		"20060102T150405",
		"20060102",
	}
	for _, layout := range formats {
		if t, err := time.Parse(layout, prop.Value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("无法解析日期: %s", prop.Value)
}

// [自证通过] internal/service/ics_parser.go
