package constants

import "strings"

// Content formats the text extraction service distinguishes.
const (
	IMAGE = "IMAGE"
	PDF   = "PDF"
)

// imageMIMETypes are the content types routed to OCR.
var imageMIMETypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/jpg":  {},
	"image/webp": {},
	"image/tiff": {},
	"image/bmp":  {},
}

const MIMETypePDF = "application/pdf"

// MapMIMEToFormat classifies a content type; empty string means unsupported.
func MapMIMEToFormat(mimeType string) string {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	if mt == MIMETypePDF {
		return PDF
	}
	if _, ok := imageMIMETypes[mt]; ok {
		return IMAGE
	}
	return ""
}

// MaxUploadBytes caps document uploads accepted over the API.
const MaxUploadBytes = 20 << 20
