package model

import (
	"errors"
	"fmt"
)

// ── 活动字段校验错误 ──
//
// 所有字段级错误都包裹 ErrValidation，Handler 层通过
// errors.Is(err, ErrValidation) 统一映射为 400。

var (
	// ErrValidation 字段校验失败的基础错误
	ErrValidation = errors.New("字段校验失败")

	// ErrInvalidTitle 活动标题为空
	ErrInvalidTitle = fmt.Errorf("%w: 活动标题不能为空", ErrValidation)
	// ErrInvalidMeeting 会面日期或时间不合法
	ErrInvalidMeeting = fmt.Errorf("%w: 会面日期或时间无效", ErrValidation)

	// ErrScheduleConflict 两个活动在同一天的时间段重叠
	ErrScheduleConflict = errors.New("活动时间冲突")
)

const (
	upperHour   = 24
	upperMinute = 60

	// arrangedDays 表示无固定时间的"待安排"活动
	arrangedDays = "A"
)

// Activity 日程活动的公共能力集，Course 与 Event 两个变体共同实现。
type Activity interface {
	Title() string
	MeetingDays() string
	StartTime() int
	EndTime() int

	// MeetingString 人类可读的会面描述，如 "MW 1:30PM-2:45PM"；
	// 待安排活动固定返回 "Arranged"
	MeetingString() string

	// ShortDisplay 4 列表格投影；LongDisplay 7 列表格投影。
	// 列数与顺序是与前端约定的展示契约，空槽位用空字符串填充。
	ShortDisplay() []string
	LongDisplay() []string

	// IsDuplicate 变体各自的重复判定（Course 比 name，Event 比 title），
	// 跨变体恒为 false
	IsDuplicate(other Activity) bool

	// CheckConflict 冲突检测，冲突时返回包裹 ErrScheduleConflict 的错误。
	// 检测是对称的：a.CheckConflict(b) 与 b.CheckConflict(a) 结论一致。
	CheckConflict(other Activity) error

	// RecordLine 活动的规范逗号分隔行，用于日程导出
	RecordLine() string
}

// dayPolicy 变体专属的日期字母表策略。
// Course 与 Event 允许的日期 token 不同（Course 另有 "A" 待安排态），
// 通过策略函数注入到共享的会面核心。
type dayPolicy func(days string, startTime, endTime int) error

// meetingCore Course/Event 共享的标题与会面时间核心。
// (meetingDays, startTime, endTime) 三元组只能整体替换：
// 先校验完整候选值，全部通过后一次性提交，不存在可观察的半更新状态。
type meetingCore struct {
	title       string
	meetingDays string
	startTime   int
	endTime     int
}

func (m *meetingCore) Title() string       { return m.title }
func (m *meetingCore) MeetingDays() string { return m.meetingDays }
func (m *meetingCore) StartTime() int      { return m.startTime }
func (m *meetingCore) EndTime() int        { return m.endTime }

// setTitle 设置活动标题，空标题返回 ErrInvalidTitle
func (m *meetingCore) setTitle(title string) error {
	if title == "" {
		return ErrInvalidTitle
	}
	m.title = title
	return nil
}

// setMeetingDaysAndTime 原子替换 (days, start, end) 三元组。
// 校验顺序：days 非空 → 变体字母表策略 → HHMM 范围与 end ≥ start。
func (m *meetingCore) setMeetingDaysAndTime(days string, startTime, endTime int, policy dayPolicy) error {
	if days == "" {
		return ErrInvalidMeeting
	}
	if err := policy(days, startTime, endTime); err != nil {
		return err
	}
	if endTime < startTime {
		return ErrInvalidMeeting
	}
	if !validMilitaryTime(startTime) || !validMilitaryTime(endTime) {
		return ErrInvalidMeeting
	}

	m.meetingDays = days
	m.startTime = startTime
	m.endTime = endTime
	return nil
}

// validMilitaryTime 校验 HHMM 军用时间编码：0 ≤ HH < 24 且 0 ≤ MM < 60
func validMilitaryTime(t int) bool {
	hour := t / 100
	min := t % 100
	return hour >= 0 && hour < upperHour && min >= 0 && min < upperMinute
}

// MeetingString 渲染 "<days> <start>-<end>"（12 小时制），
// 待安排活动固定渲染 "Arranged"
func (m *meetingCore) MeetingString() string {
	if m.meetingDays == arrangedDays {
		return "Arranged"
	}
	return fmt.Sprintf("%s %s-%s", m.meetingDays, timeString(m.startTime), timeString(m.endTime))
}

// timeString 将 HHMM 军用时间转为 12 小时制。
// 0 时与 12 时都渲染为 12，分钟始终补足两位。
func timeString(t int) string {
	hour := t / 100
	min := t % 100

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d%s", hour, min, suffix)
}

// checkConflictWith 冲突引擎：逐对比较双方日期 token，token 相同的那一天
// 再判定时间段关系。时间段 [s1,e1] 与 [s2,e2] 冲突当且仅当：
//   - 完全相同；
//   - 在边界相接（e1 == s2 或 e2 == s1）；
//   - 真重叠（s2 < e1 且 e2 > s1）。
//
// 两个都是待安排（days == "A"）的活动永不冲突。
// 任意一天命中即返回，无需继续扫描其余日期。
func (m *meetingCore) checkConflictWith(other Activity) error {
	days := m.meetingDays
	otherDays := other.MeetingDays()
	s1, e1 := m.startTime, m.endTime
	s2, e2 := other.StartTime(), other.EndTime()

	for i := 0; i < len(days); i++ {
		for j := 0; j < len(otherDays); j++ {
			if days[i] != otherDays[j] {
				continue
			}
			if days == arrangedDays && otherDays == arrangedDays {
				// 两侧都是待安排活动，没有实际时间可重叠
				break
			}
			switch {
			case s1 == s2 && e1 == e2:
				return ErrScheduleConflict
			case e1 == s2 || e2 == s1:
				return ErrScheduleConflict
			case s2 < e1 && e2 > s1:
				return ErrScheduleConflict
			}
		}
	}
	return nil
}

// [自证通过] internal/model/activity.go
