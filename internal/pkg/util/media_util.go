package util

import (
	"Lumina/internal/pkg/consts"
	"io"
	"net/http"
	"path"
	"regexp"
	"strconv"
	"strings"
)

var unsafeCharRegex = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

var imageExts = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "webp": {}, "svg": {}, "bmp": {},
}

var audioExts = map[string]struct{}{
	"mp3": {}, "wav": {}, "ogg": {}, "m4a": {}, "aac": {}, "flac": {}, "webm": {},
}

// ClassifyFolder 按扩展名白名单决定存储目录，扩展名大小写不敏感
func ClassifyFolder(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if _, ok := imageExts[ext]; ok {
		return consts.FolderImages
	}
	if _, ok := audioExts[ext]; ok {
		return consts.FolderAudios
	}
	return consts.FolderOthers
}

// IsImageFile 判断扩展名是否属于图片白名单
func IsImageFile(filename string) bool {
	return ClassifyFolder(filename) == consts.FolderImages
}

// SanitizeFilename 将白名单外的字符替换为下划线
func SanitizeFilename(name string) string {
	return unsafeCharRegex.ReplaceAllString(name, "_")
}

// BuildObjectKey 生成对象存储 Key：<目录><毫秒时间戳>-<净化后文件名>
func BuildObjectKey(filename string, nowMillis int64) string {
	return ClassifyFolder(filename) + strconv.FormatInt(nowMillis, 10) + "-" + SanitizeFilename(filename)
}

// GetSafeContentType 嗅探流的真实 Content-Type，读完后回退到流起点
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}
