package sessioncleanupworker

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"submissions-backend/db"
	sessionstore "submissions-backend/lib/auth/session-store"
)

const handlePeriod = 1 * time.Hour

func StartWorker(ctx context.Context) {
	i := &impl{
		sessionStore: sessionstore.NewInstance(db.DB),
	}
	go i.run(ctx)
}

type impl struct {
	sessionStore sessionstore.Provider
}

func (i impl) getLogger() *log.Entry {
	return log.WithField("worker_name", "SessionCleanupJob")
}

func (i impl) run(ctx context.Context) {
	period := time.Second
	logger := i.getLogger()
	for {
		select {
		// проверяем не завершён ли ещё контекст и выходим, если завершён
		case <-ctx.Done():
			logger.Info("Задача остановлена")
			return
		case <-time.After(period):
			i.handle()
		}
		period = handlePeriod
	}
}

func (i impl) handle() {
	logger := i.getLogger()
	deleted, err := i.sessionStore.DeleteExpired(time.Now())
	if err != nil {
		logger.WithError(err).Error("ошибка удаления истекших сессий")
		return
	}
	if deleted > 0 {
		logger.WithField("count", deleted).Info("истекшие сессии удалены")
	}
}
