package handler

import (
	"Instalytics/internal/api/dto"
	"Instalytics/internal/pkg/response"
	"Instalytics/internal/pkg/util"
	"Instalytics/internal/service"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountSvc service.AccountService
}

func NewAccountHandler(accountSvc service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountSvc: accountSvc,
	}
}

func (s *AccountHandler) CreateAccount(c *gin.Context) {
	var createDTO dto.CreateAccountDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	accountDTO, err := s.accountSvc.CreateAccount(c.Request.Context(), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, accountDTO)
}

func (s *AccountHandler) GetAccounts(c *gin.Context) {
	accounts, err := s.accountSvc.GetAccounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, accounts)
}

func (s *AccountHandler) GetAccount(c *gin.Context) {
	accountDTO, err := s.accountSvc.GetAccount(c.Request.Context(), c.Param("ig_user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, accountDTO)
}

func (s *AccountHandler) DeleteAccount(c *gin.Context) {
	err := s.accountSvc.DeleteAccount(c.Request.Context(), c.Param("ig_user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
