package handler

import (
	"Lumina/internal/api/dto"
	"Lumina/internal/pkg/response"
	"Lumina/internal/service"

	"github.com/gin-gonic/gin"
)

type AssistHandler struct {
	assistSvc service.AssistService
}

func NewAssistHandler(assistSvc service.AssistService) *AssistHandler {
	return &AssistHandler{
		assistSvc: assistSvc,
	}
}

func (s *AssistHandler) GenerateIdeas(c *gin.Context) {
	var req dto.AssistIdeasDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	text, err := s.assistSvc.GenerateIdeas(c.Request.Context(), req.Topic)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.AssistResult{Text: text})
}

func (s *AssistHandler) GenerateSummary(c *gin.Context) {
	var req dto.AssistSummaryDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	text, err := s.assistSvc.GenerateSummary(c.Request.Context(), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.AssistResult{Text: text})
}

func (s *AssistHandler) ImproveWriting(c *gin.Context) {
	var req dto.AssistImproveDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	text, err := s.assistSvc.ImproveWriting(c.Request.Context(), req.Text)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.AssistResult{Text: text})
}
