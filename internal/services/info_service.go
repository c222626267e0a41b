// filepath: internal/services/info_service.go
package services

import (
	"miocouple/internal/models"
	"time"
)

type infoService struct {
	info models.Info
}

// NewInfoService creates the info service with static instance data.
func NewInfoService(version string, startTime time.Time) InfoService {
	return &infoService{
		info: models.Info{
			Version:     version,
			UptimeSince: startTime,
		},
	}
}

func (s *infoService) GetInfo() models.Info {
	return s.info
}
