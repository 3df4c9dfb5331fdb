package constants

import "strings"

// FileFormat is the coarse input class a receipt file falls into.
type FileFormat string

const (
	PDF   FileFormat = "PDF"
	Image FileFormat = "IMAGE"
	Text  FileFormat = "TXT"
)

// AllowedExtensions holds the file extensions accepted for scanning.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"txt":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its file format.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) FileFormat {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png":
		return Image
	case "txt":
		return Text
	default:
		return ""
	}
}
