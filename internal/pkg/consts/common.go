package consts

const (
	FolderImages = "images/"
	FolderAudios = "audios/"
	FolderOthers = "others/"
	FolderThumbs = "thumbs/"
)

const (
	DefaultAuthorName = "Admin"
	DefaultAvatarURL  = "default_avatar.png"
)
