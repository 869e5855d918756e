package util

import (
	"Lumina/internal/pkg/consts"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFolder(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"photo.jpg", consts.FolderImages},
		{"photo.JPG", consts.FolderImages},
		{"pic.webp", consts.FolderImages},
		{"sermon.mp3", consts.FolderAudios},
		{"sermon.FLAC", consts.FolderAudios},
		{"recording.webm", consts.FolderAudios},
		{"archive.zip", consts.FolderOthers},
		{"noext", consts.FolderOthers},
		{"weird.tar.gz", consts.FolderOthers},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyFolder(tt.filename), tt.filename)
	}
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "a_b_c.jpg", SanitizeFilename("a b/c.jpg"))
	assert.Equal(t, "___.png", SanitizeFilename("封面图.png"))
	assert.Equal(t, "plain-name.mp3", SanitizeFilename("plain-name.mp3"))
}

func TestBuildObjectKey(t *testing.T) {
	key := BuildObjectKey("my photo.JPG", 1700000000000)
	assert.Equal(t, "images/1700000000000-my_photo.JPG", key)

	key = BuildObjectKey("data.bin", 42)
	assert.True(t, strings.HasPrefix(key, "others/42-"))
}

func TestGetSafeContentTypeRewindsReader(t *testing.T) {
	payload := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
	reader := bytes.NewReader(payload)

	contentType, err := GetSafeContentType(reader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)

	// 嗅探后必须回到流起点，否则上传内容会缺头部
	rest := make([]byte, len(payload))
	n, _ := reader.Read(rest)
	assert.Equal(t, len(payload), n)
}
