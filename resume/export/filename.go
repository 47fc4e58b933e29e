package export

import (
	"regexp"
	"strings"

	"resume-builder/resume/model"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Filename derives a download file name from the person's full name:
// whitespace runs collapse to underscores, and a blank name falls back to
// "resume". The extension is appended with its dot.
func Filename(fullName, ext string) string {
	base := whitespaceRe.ReplaceAllString(strings.TrimSpace(fullName), "_")
	if base == "" {
		base = "resume"
	}
	return base + "." + ext
}

// TextFilename returns the .txt download name for a resume.
func TextFilename(r model.Resume) string {
	return Filename(r.PersonalInfo.FullName, "txt")
}

// PDFFilename returns the .pdf download name for a resume.
func PDFFilename(r model.Resume) string {
	return Filename(r.PersonalInfo.FullName, "pdf")
}
