package dto

// ── 日程模块请求 ──

// AddCourseRequest 按目录键选课请求
type AddCourseRequest struct {
	Name    string `json:"name"    binding:"required"`
	Section string `json:"section" binding:"required"`
}

// AddEventRequest 添加事件请求。
// EventDetails 用指针区分"缺失"与"空字符串"：缺失非法，空串合法。
type AddEventRequest struct {
	Title        string  `json:"title"`
	MeetingDays  string  `json:"meeting_days"`
	StartTime    int     `json:"start_time"`
	EndTime      int     `json:"end_time"`
	EventDetails *string `json:"event_details"`
}

// UpdateTitleRequest 修改日程标题请求。
// Title 用指针区分"缺失"与"空字符串"：缺失非法，空串合法。
type UpdateTitleRequest struct {
	Title *string `json:"title"`
}

// ExportRequest 导出日程为记录文件的请求
type ExportRequest struct {
	Filename string `json:"filename" binding:"required"`
}

// ── 日程模块响应 ──

// ScheduleResponse 日程视图响应。
// 短视图每行 4 列，完整视图每行 7 列，空槽位为 ""。
type ScheduleResponse struct {
	Title string     `json:"title"`
	Size  int        `json:"size"`
	Rows  [][]string `json:"rows"`
}

// TitleResponse 日程标题响应
type TitleResponse struct {
	Title string `json:"title"`
}

// RemoveResponse 按位置移除活动的结果
type RemoveResponse struct {
	Removed bool `json:"removed"`
}

// ExportResponse 导出结果
type ExportResponse struct {
	Path string `json:"path"`
}

// ImportICSResponse iCalendar 导入结果：
// Added 成功并入日程的事件数，Skipped 因格式、重复或冲突被跳过的事件数
type ImportICSResponse struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// [自证通过] internal/dto/schedule.go
