package handler

import (
	"Instalytics/internal/api/dto"
	"Instalytics/internal/pkg/response"
	"Instalytics/internal/pkg/util"
	"Instalytics/internal/service"

	"github.com/gin-gonic/gin"
)

type SetupHandler struct {
	syncSvc service.SyncService
}

func NewSetupHandler(syncSvc service.SyncService) *SetupHandler {
	return &SetupHandler{
		syncSvc: syncSvc,
	}
}

// RefreshTokens 手动触发全账号 token 刷新
func (s *SetupHandler) RefreshTokens(c *gin.Context) {
	var refreshDTO dto.TokenRefreshDTO
	err := c.ShouldBind(&refreshDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&refreshDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.syncSvc.RefreshTokens(c.Request.Context(), &refreshDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Collect 手动触发一轮全账号采集
func (s *SetupHandler) Collect(c *gin.Context) {
	result, err := s.syncSvc.CollectAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
