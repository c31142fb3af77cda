package handler

import (
	"Instalytics/internal/api/dto"
	"Instalytics/internal/pkg/response"
	"Instalytics/internal/pkg/util"
	"Instalytics/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

// GetMonthlyAnalytics GET /analytics/:ig_user_id/monthly?year=2025&month=6
func (s *AnalyticsHandler) GetMonthlyAnalytics(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.analyticsSvc.GetMonthlyAnalytics(c.Request.Context(), c.Param("ig_user_id"), year, month)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetYearlyAnalytics GET /analytics/:ig_user_id/yearly?year=2025
func (s *AnalyticsHandler) GetYearlyAnalytics(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.analyticsSvc.GetYearlyAnalytics(c.Request.Context(), c.Param("ig_user_id"), year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetPosts GET /analytics/:ig_user_id/posts
func (s *AnalyticsHandler) GetPosts(c *gin.Context) {
	var query dto.PostQueryDTO
	err := c.ShouldBindQuery(&query)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&query); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.analyticsSvc.GetPostsAnalytics(c.Request.Context(), c.Param("ig_user_id"), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
