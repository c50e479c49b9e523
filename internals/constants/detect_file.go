package constants

import (
	"path/filepath"
	"strings"
)

// Presentation file kinds derived from the uploaded file extension.
const (
	FileTypePDF     = 1
	FileTypeSlides  = 2
	FileTypePoster  = 3
	FileTypeUnknown = 99
)

func DetectFileTypeFromExt(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".pdf":
		return FileTypePDF
	case ".ppt", ".pptx", ".key":
		return FileTypeSlides
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileTypePoster
	default:
		return FileTypeUnknown
	}
}
