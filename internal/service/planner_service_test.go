package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/rblazer/WolfScheduler/config"
	"github.com/rblazer/WolfScheduler/internal/model"
	"github.com/rblazer/WolfScheduler/internal/repository"
)

// ── 测试辅助 ──

func testCourses(t *testing.T) []*model.Course {
	t.Helper()
	defs := []struct {
		name, title, section string
		days                 string
		start, end           int
	}{
		{"CSC 216", "Software Development Fundamentals", "001", "MW", 1330, 1445},
		{"CSC 216", "Software Development Fundamentals", "002", "TH", 1330, 1445},
		{"CSC 226", "Discrete Mathematics", "001", "TH", 1330, 1445},
		{"CSC 230", "C and Software Tools", "001", "MW", 1145, 1300},
	}

	courses := make([]*model.Course, 0, len(defs))
	for _, d := range defs {
		c, err := model.NewCourse(d.name, d.title, d.section, 3, "sesmith5", d.days, d.start, d.end)
		if err != nil {
			t.Fatalf("构造测试课程失败: %v", err)
		}
		courses = append(courses, c)
	}
	return courses
}

func setupTestPlannerService(t *testing.T) PlannerService {
	t.Helper()
	cfg := &config.Config{
		Schedule: config.ScheduleConfig{DefaultTitle: "My Schedule"},
		Export:   config.ExportConfig{Dir: t.TempDir()},
	}
	repo := repository.NewRepository(repository.NewCourseCatalog(testCourses(t)))
	return NewPlannerService(cfg, repo, zap.NewNop())
}

// ── AddCourse 测试 ──

func TestPlannerService_AddCourse_Success(t *testing.T) {
	svc := setupTestPlannerService(t)

	if err := svc.AddCourse(context.Background(), "CSC 216", "001"); err != nil {
		t.Fatalf("AddCourse 应成功: %v", err)
	}

	view := svc.ScheduleView()
	if view.Size != 1 {
		t.Fatalf("期望日程 1 项，实际 %d", view.Size)
	}
	if view.Rows[0][0] != "CSC 216" {
		t.Errorf("期望首行课程 CSC 216，实际 %s", view.Rows[0][0])
	}
}

func TestPlannerService_AddCourse_NotFound(t *testing.T) {
	svc := setupTestPlannerService(t)

	err := svc.AddCourse(context.Background(), "CSC 999", "001")
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("期望 ErrCourseNotFound，实际: %v", err)
	}
	err = svc.AddCourse(context.Background(), "CSC 216", "003")
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("期望 ErrCourseNotFound，实际: %v", err)
	}
}

func TestPlannerService_AddCourse_DuplicateBeforeConflict(t *testing.T) {
	svc := setupTestPlannerService(t)
	if err := svc.AddCourse(context.Background(), "CSC 216", "001"); err != nil {
		t.Fatalf("首次选课应成功: %v", err)
	}

	// 同名不同班次：在时间也冲突的情况下必须先报重复
	err := svc.AddCourse(context.Background(), "CSC 216", "002")
	if !errors.Is(err, ErrDuplicateCourse) {
		t.Errorf("期望 ErrDuplicateCourse，实际: %v", err)
	}
	if !strings.Contains(err.Error(), "CSC 216") {
		t.Errorf("重复报错应点名课程，实际: %v", err)
	}
}

func TestPlannerService_AddCourse_Conflict(t *testing.T) {
	svc := setupTestPlannerService(t)
	if err := svc.AddCourse(context.Background(), "CSC 216", "002"); err != nil {
		t.Fatalf("首次选课应成功: %v", err)
	}

	// TH 同时段的另一门课
	err := svc.AddCourse(context.Background(), "CSC 226", "001")
	if !errors.Is(err, ErrCourseConflict) {
		t.Errorf("期望 ErrCourseConflict，实际: %v", err)
	}
	if svc.ScheduleView().Size != 1 {
		t.Error("冲突失败后日程不应变化")
	}
}

func TestPlannerService_AddCourse_AppendsInOrder(t *testing.T) {
	svc := setupTestPlannerService(t)

	if err := svc.AddCourse(context.Background(), "CSC 216", "001"); err != nil {
		t.Fatalf("选课失败: %v", err)
	}
	if err := svc.AddCourse(context.Background(), "CSC 226", "001"); err != nil {
		t.Fatalf("不冲突不重复的课程应成功: %v", err)
	}

	view := svc.ScheduleView()
	if view.Size != 2 || view.Rows[1][0] != "CSC 226" {
		t.Errorf("新课程应追加到末尾: %+v", view.Rows)
	}
}

// ── AddEvent 测试 ──

func TestPlannerService_AddEvent_Success(t *testing.T) {
	svc := setupTestPlannerService(t)

	if err := svc.AddEvent(context.Background(), "Exercise", "WF", 800, 900, "with Marty"); err != nil {
		t.Fatalf("AddEvent 应成功: %v", err)
	}
	view := svc.FullScheduleView()
	if view.Size != 1 || view.Rows[0][2] != "Exercise" {
		t.Errorf("事件未正确入程: %+v", view.Rows)
	}
}

func TestPlannerService_AddEvent_ValidationBeforeScheduleChecks(t *testing.T) {
	svc := setupTestPlannerService(t)

	err := svc.AddEvent(context.Background(), "", "WF", 800, 900, "")
	if !errors.Is(err, model.ErrValidation) {
		t.Errorf("期望字段校验错误，实际: %v", err)
	}
	err = svc.AddEvent(context.Background(), "Exercise", "AX", 800, 900, "")
	if !errors.Is(err, model.ErrValidation) {
		t.Errorf("非法日期应在入程检查前失败，实际: %v", err)
	}
}

func TestPlannerService_AddEvent_DuplicateAndConflict(t *testing.T) {
	svc := setupTestPlannerService(t)
	if err := svc.AddEvent(context.Background(), "Exercise", "WF", 800, 900, ""); err != nil {
		t.Fatalf("首次添加应成功: %v", err)
	}

	err := svc.AddEvent(context.Background(), "Exercise", "M", 700, 730, "")
	if !errors.Is(err, ErrDuplicateEvent) {
		t.Errorf("期望 ErrDuplicateEvent，实际: %v", err)
	}

	err = svc.AddEvent(context.Background(), "Breakfast", "F", 830, 915, "")
	if !errors.Is(err, ErrEventConflict) {
		t.Errorf("期望 ErrEventConflict，实际: %v", err)
	}
}

func TestPlannerService_EventConflictsWithCourse(t *testing.T) {
	svc := setupTestPlannerService(t)
	if err := svc.AddCourse(context.Background(), "CSC 216", "001"); err != nil {
		t.Fatalf("选课失败: %v", err)
	}

	err := svc.AddEvent(context.Background(), "Nap", "M", 1400, 1430, "")
	if !errors.Is(err, ErrEventConflict) {
		t.Errorf("事件与课程重叠应冲突，实际: %v", err)
	}
}

// ── 移除与重置测试 ──

func TestPlannerService_RemoveActivity(t *testing.T) {
	svc := setupTestPlannerService(t)
	svc.AddCourse(context.Background(), "CSC 216", "001")
	svc.AddCourse(context.Background(), "CSC 226", "001")

	if svc.RemoveActivity(context.Background(), 5) {
		t.Error("越界移除应返回 false")
	}
	if svc.RemoveActivity(context.Background(), -1) {
		t.Error("负索引移除应返回 false")
	}
	if svc.ScheduleView().Size != 2 {
		t.Error("失败的移除不应改变日程")
	}

	if !svc.RemoveActivity(context.Background(), 0) {
		t.Error("合法索引移除应成功")
	}
	view := svc.ScheduleView()
	if view.Size != 1 || view.Rows[0][0] != "CSC 226" {
		t.Errorf("移除后后续项应前移: %+v", view.Rows)
	}
}

func TestPlannerService_Reset(t *testing.T) {
	svc := setupTestPlannerService(t)
	svc.AddCourse(context.Background(), "CSC 216", "001")
	svc.SetTitle("Fall Plan")

	svc.Reset(context.Background())

	if svc.ScheduleView().Size != 0 {
		t.Error("重置后日程应为空")
	}
	if svc.Title() != "Fall Plan" {
		t.Error("重置不应影响标题")
	}
}

func TestPlannerService_Title(t *testing.T) {
	svc := setupTestPlannerService(t)

	if svc.Title() != "My Schedule" {
		t.Errorf("期望默认标题 My Schedule，实际 %q", svc.Title())
	}
	svc.SetTitle("")
	if svc.Title() != "" {
		t.Error("空标题合法且应生效")
	}
}

// ── 目录投影测试 ──

func TestPlannerService_CatalogView(t *testing.T) {
	svc := setupTestPlannerService(t)

	view := svc.CatalogView()
	if view.Size != 4 {
		t.Fatalf("期望目录 4 行，实际 %d", view.Size)
	}
	for _, row := range view.Rows {
		if len(row) != 4 {
			t.Fatalf("目录投影应为 4 列，实际 %d", len(row))
		}
	}
}

// ── 导出测试 ──

func TestPlannerService_ExportSchedule(t *testing.T) {
	svc := setupTestPlannerService(t)
	svc.AddCourse(context.Background(), "CSC 216", "001")
	svc.AddEvent(context.Background(), "Exercise", "WF", 800, 900, "with Marty")

	path, err := svc.ExportSchedule(context.Background(), "schedule.txt")
	if err != nil {
		t.Fatalf("导出应成功: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读导出文件失败: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("期望 2 行，实际 %d", len(lines))
	}
	if lines[0] != "CSC 216,Software Development Fundamentals,001,3,sesmith5,MW,1330,1445" {
		t.Errorf("课程行不符: %q", lines[0])
	}
	if lines[1] != "Exercise,WF,800,900,with Marty" {
		t.Errorf("事件行不符: %q", lines[1])
	}
}

func TestPlannerService_ExportSchedule_BadFilename(t *testing.T) {
	svc := setupTestPlannerService(t)

	for _, name := range []string{"", "a/b.txt", "../escape.txt"} {
		if _, err := svc.ExportSchedule(context.Background(), name); !errors.Is(err, ErrInvalidFilename) {
			t.Errorf("文件名 %q 期望 ErrInvalidFilename，实际: %v", name, err)
		}
	}
}

// [自证通过] internal/service/planner_service_test.go
