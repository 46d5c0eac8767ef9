package assets

import (
	"path/filepath"
	"strings"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// IsImageExt returns true if the extension is a decodable image format.
func IsImageExt(ext string) bool {
	return imageExts[strings.ToLower(ext)]
}

// SupportedExtsList returns a human-readable list of decodable image formats.
func SupportedExtsList() string {
	return ".png, .jpg, .jpeg, .gif"
}

func isImagePath(path string) bool {
	return IsImageExt(filepath.Ext(path))
}
