package initializers

import (
	"context"

	"submissions-backend/config"
	"submissions-backend/fiberlog"
	authhandler "submissions-backend/lib/auth"
	sessioncleanupworker "submissions-backend/lib/auth/session-cleanup-worker"
	projectprovider "submissions-backend/lib/dicts/project"
	employeehandler "submissions-backend/lib/employee"
	xlsexport "submissions-backend/lib/export/xls"
	settingshandler "submissions-backend/lib/settings"
	submissionhandler "submissions-backend/lib/submission"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	projectprovider.NewHandler()
	authhandler.NewHandler()
	submissionhandler.NewHandler()
	employeehandler.NewHandler()
	settingshandler.NewHandler()
	xlsexport.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача удаления истекших сессий
	sessioncleanupworker.StartWorker(ctx)
}
