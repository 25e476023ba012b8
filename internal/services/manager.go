package services

import (
	"alpha-x/internal/database"
)

type ServiceManager struct {
	Report     *ReportService
	Importer   *ImporterService
	repository *database.Repository
}

func NewServiceManager(db *database.Database) *ServiceManager {
	repo := database.NewRepository(db)

	return &ServiceManager{
		Report:     NewReportService(repo),
		Importer:   NewImporterService(repo),
		repository: repo,
	}
}

func (sm *ServiceManager) SetNotificationSender(sender NotificationSender) {
	sm.Report.sender = sender
}
