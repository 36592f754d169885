package postservice

import (
	"regexp"
	"strings"

	"github.com/caiofernandes/blogo/internal/common"
)

var letterRX = regexp.MustCompile("[a-zA-Z]")

// validateTitle checks the trimmed title but leaves the value itself
// untouched: the raw title is what gets persisted, only the slug is
// normalized.
func validateTitle(v *common.Validator, title string) {
	trimmed := strings.TrimSpace(title)
	v.Check(trimmed != "", "title", "must be provided")
	v.Check(letterRX.MatchString(trimmed), "title", "must contain at least one letter")
	v.Check(v.CheckMaxChars(trimmed, maxTitleChars), "title", "must not be more than 100 characters long")
}

// validateContent rejects only the empty string. Whitespace-only content is
// accepted and there is no length cap.
func validateContent(v *common.Validator, content string) {
	v.Check(content != "", "content", "must be provided")
}
