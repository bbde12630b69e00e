package record

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rblazer/WolfScheduler/internal/model"
)

// ── 测试辅助 ──

func writeTempRecords(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "course_records.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("写测试文件失败: %v", err)
	}
	return path
}

// ── ReadCourseRecords 测试 ──

func TestReadCourseRecords_Valid(t *testing.T) {
	path := writeTempRecords(t,
		"CSC 216,Software Development Fundamentals,001,3,sesmith5,MW,1330,1445",
		"CSC 226,Discrete Mathematics,001,3,tmbarnes,TH,910,1100",
		"CSC 491,Independent Study,001,2,sesmith5,A",
	)

	courses, err := ReadCourseRecords(path)
	if err != nil {
		t.Fatalf("读取应成功: %v", err)
	}
	if len(courses) != 3 {
		t.Fatalf("期望 3 门课程，实际 %d", len(courses))
	}
	if courses[0].Name() != "CSC 216" || courses[2].MeetingDays() != "A" {
		t.Errorf("课程内容不符: %v / %v", courses[0].Name(), courses[2].MeetingDays())
	}
}

func TestReadCourseRecords_SkipsMalformed(t *testing.T) {
	path := writeTempRecords(t,
		"CSC 216,Software Development Fundamentals,001,3,sesmith5,MW,1330,1445",
		"CSC 226,Discrete Mathematics,001,abc,tmbarnes,TH,910,1100", // 学分非数字
		"CSC 230,C and Software Tools,001,3,dbsturgi,MW",            // 缺时间对
		"CSC 491,Independent Study,001,2,sesmith5,A,900,1000",       // 待安排却带时间
		"CSC 316,Data Structures,001,3,jtking,MW,1330,1445,extra",   // 多余字段
		"CSC 217,Lab,211,1,sesmith5,M,2400,2500",                    // 时间越界
	)

	courses, err := ReadCourseRecords(path)
	if err != nil {
		t.Fatalf("读取应成功: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("仅首行合法，期望 1 门课程，实际 %d", len(courses))
	}
	if courses[0].Name() != "CSC 216" {
		t.Errorf("期望保留 CSC 216，实际 %s", courses[0].Name())
	}
}

func TestReadCourseRecords_DuplicateFirstWins(t *testing.T) {
	path := writeTempRecords(t,
		"CSC 216,Software Development Fundamentals,001,3,sesmith5,MW,1330,1445",
		"CSC 216,Another Title,001,3,other,TH,910,1100", // 同 (name, section)
		"CSC 216,Software Development Fundamentals,002,3,sesmith5,MW,1330,1445",
	)

	courses, err := ReadCourseRecords(path)
	if err != nil {
		t.Fatalf("读取应成功: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("期望 2 门课程（001 去重，002 保留），实际 %d", len(courses))
	}
	if courses[0].Title() != "Software Development Fundamentals" {
		t.Errorf("先见者胜：期望保留首行标题，实际 %q", courses[0].Title())
	}
}

func TestReadCourseRecords_FileMissing(t *testing.T) {
	_, err := ReadCourseRecords(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("文件不存在应返回错误")
	}
}

// ── WriteActivityRecords 测试 ──

func TestWriteActivityRecords_RoundTrip(t *testing.T) {
	c1, _ := model.NewCourse("CSC 216", "Software Development Fundamentals", "001", 3, "sesmith5", "MW", 1330, 1445)
	c2, _ := model.NewArrangedCourse("CSC 491", "Independent Study", "001", 2, "sesmith5")
	e, _ := model.NewEvent("Exercise", "WF", 800, 900, "with Marty")

	path := filepath.Join(t.TempDir(), "schedule.txt")
	if err := WriteActivityRecords(path, []model.Activity{c1, c2, e}); err != nil {
		t.Fatalf("导出应成功: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读回导出文件失败: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("期望 3 行，实际 %d", len(lines))
	}

	// 课程行经 Reader 重读可逐字段还原
	courses, err := ReadCourseRecords(path)
	if err != nil {
		t.Fatalf("重读应成功: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("期望还原 2 门课程，实际 %d", len(courses))
	}
	if *courses[0] != *c1 || *courses[1] != *c2 {
		t.Error("往返后课程字段不一致")
	}
}

func TestWriteActivityRecords_BadDir(t *testing.T) {
	c, _ := model.NewCourse("CSC 216", "测试", "001", 3, "sesmith5", "MW", 1330, 1445)
	err := WriteActivityRecords(filepath.Join(t.TempDir(), "missing", "schedule.txt"), []model.Activity{c})
	if err == nil {
		t.Fatal("目标目录不存在应返回错误")
	}
}

// [自证通过] internal/record/record_test.go
