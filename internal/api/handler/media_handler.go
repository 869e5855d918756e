package handler

import (
	"Lumina/internal/api/dto"
	"Lumina/internal/pkg/response"
	"Lumina/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc service.MediaService
}

func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
	}
}

func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrFileMissing)
		return
	}

	url, err := s.mediaSvc.Upload(c.Request.Context(), file)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "文件上传失败", "filename", file.Filename, "err", err)
		response.Error(c, err)
		return
	}

	response.Success(c, dto.UploadResult{URL: url})
}
