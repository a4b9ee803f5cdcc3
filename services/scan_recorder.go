// services/scan_recorder.go
package services

import (
	"qrmenu-backend/entity"
	"qrmenu-backend/repository"

	"go.uber.org/zap"
)

// ScanRecorder is the best-effort telemetry boundary: Record is dispatched
// from the public page path and its outcome is never allowed to affect the
// response.
type ScanRecorder interface {
	Record(restID uint, userAgent, referrer string)
}

type scanRecorder struct {
	repo *repository.ScanRepository
	log  *zap.Logger
}

func NewScanRecorder(repo *repository.ScanRepository, log *zap.Logger) ScanRecorder {
	return &scanRecorder{repo: repo, log: log}
}

// Record inserts the event asynchronously; failures are logged and dropped.
func (s *scanRecorder) Record(restID uint, userAgent, referrer string) {
	ev := &entity.ScanEvent{
		RestaurantID: restID,
		UserAgent:    userAgent,
		Referrer:     referrer,
	}
	go func() {
		if err := s.repo.Create(ev); err != nil {
			s.log.Warn("scan event insert failed",
				zap.Uint("restaurantId", restID),
				zap.Error(err))
		}
	}()
}
