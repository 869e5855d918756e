package service

import (
	"Lumina/internal/api/config"
	"Lumina/internal/pkg/consts"
	"Lumina/internal/pkg/minio"
	"Lumina/internal/pkg/util"
	"bytes"
	"context"
	log "log/slog"
	"mime/multipart"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// thumbMaxSize 缩略图最长边
const thumbMaxSize = 640

type MediaService interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type mediaServiceImpl struct{}

func NewMediaService() MediaService {
	return &mediaServiceImpl{}
}

// Upload 按扩展名分目录存入对象存储，返回公网访问 URL
func (s *mediaServiceImpl) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	domain := strings.TrimSuffix(config.Cfg.Assets.PublicDomain, "/")
	if domain == "" {
		return "", ErrAssetDomainMissing
	}

	reader, err := file.Open()
	if err != nil {
		return "", ErrParamInvalid
	}
	defer func() { _ = reader.Close() }()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType, err = util.GetSafeContentType(reader)
		if err != nil {
			return "", ErrParamInvalid
		}
	}

	key := util.BuildObjectKey(file.Filename, time.Now().UnixMilli())

	fileKey, err := minio.UploadFile(ctx, key, reader, file.Size, contentType)
	if err != nil {
		return "", err
	}

	if util.IsImageFile(file.Filename) {
		s.uploadThumbnail(ctx, file, fileKey)
	}

	return domain + "/" + fileKey, nil
}

// uploadThumbnail 为图片生成有界缩略图，失败只告警不影响主流程
func (s *mediaServiceImpl) uploadThumbnail(ctx context.Context, file *multipart.FileHeader, fileKey string) {
	reader, err := file.Open()
	if err != nil {
		log.WarnContext(ctx, "打开上传文件生成缩略图失败", "key", fileKey, "err", err)
		return
	}
	defer func() { _ = reader.Close() }()

	img, err := imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		log.WarnContext(ctx, "缩略图解码失败", "key", fileKey, "err", err)
		return
	}

	thumb := imaging.Fit(img, thumbMaxSize, thumbMaxSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		log.WarnContext(ctx, "缩略图编码失败", "key", fileKey, "err", err)
		return
	}

	thumbKey := consts.FolderThumbs + fileKey
	if _, err = minio.UploadFile(ctx, thumbKey, &buf, int64(buf.Len()), "image/jpeg"); err != nil {
		log.WarnContext(ctx, "缩略图上传失败", "key", thumbKey, "err", err)
	}
}
