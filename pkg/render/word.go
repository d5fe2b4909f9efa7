package render

import (
	"regexp"
	"strings"
)

const (
	wordHeader = "<html xmlns:o='urn:schemas-microsoft-com:office:office' xmlns:w='urn:schemas-microsoft-com:office:word' xmlns='http://www.w3.org/TR/REC-html40'><head><meta charset='utf-8'><title>CV</title></head><body>"
	wordFooter = "</body></html>"
)

// WordDocument wraps a rendered fragment in the ms-word HTML envelope. The
// result is served as application/vnd.ms-word; no server-side conversion.
func WordDocument(body string) string {
	return wordHeader + body + wordFooter
}

var unsafeFilename = regexp.MustCompile(`[^\p{L}\p{N}._ -]+`)

// DocFilename builds the download name from the offer title.
func DocFilename(offerTitle string) string {
	title := strings.TrimSpace(unsafeFilename.ReplaceAllString(offerTitle, ""))
	title = strings.ReplaceAll(title, " ", "_")
	if title == "" {
		title = "Offer"
	}
	return "CV_" + title + ".doc"
}
