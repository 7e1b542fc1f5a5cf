package service

import (
	"context"

	"github.com/MKhiriev/go-contract-guard/internal/config"
	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/models"
)

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

func NewAppInfoService(build models.AppBuildInfo, cfg config.Validation, capabilities ValidationCapabilities, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		info: models.AppInfo{
			Version:           build.BuildVersion(),
			BuildDate:         build.BuildDate(),
			BuildCommit:       build.BuildCommit(),
			StaticValidation:  !cfg.DisableStatic,
			DynamicValidation: capabilities.DynamicValidationSupported(),
		},
		logger: logger,
	}
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}
