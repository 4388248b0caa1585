package helper

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const (
	// SlugMaxLen caps every generated slug, suffix included.
	SlugMaxLen = 50

	slugSuffixLen   = 5
	slugMaxAttempts = 20
)

var reDash = regexp.MustCompile(`-+`)

// SlugOptions points the uniqueness check at a table/column pair.
// The check runs over ALL rows, soft-deleted included: a slug stays
// reserved even after its record is gone.
type SlugOptions struct {
	Table      string
	SlugColumn string
}

// GenerateSlug normalizes a string into a URL-safe lowercase token:
// non-alphanumerics become "-", runs collapse, ends trimmed.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	return reDash.ReplaceAllString(out, "-")
}

func cutToLen(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return strings.Trim(s, "-")
	}
	return strings.Trim(s[:n], "-")
}

func slugTaken(db *gorm.DB, opts SlugOptions, candidate string) (bool, error) {
	if opts.Table == "" || opts.SlugColumn == "" {
		return false, NewInternalApplicationError("slug options: table/slug column required")
	}
	var cnt int64
	err := db.Unscoped().Table(opts.Table).
		Where(fmt.Sprintf("lower(%s) = lower(?)", opts.SlugColumn), candidate).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func randomSuffix(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// AssignSlug derives a unique slug from candidateText. Assignment is
// single-shot: a non-empty current slug is an internal error, never a
// silent regeneration. On collision the base is trimmed and a random
// 5-letter lowercase suffix is appended; attempts are bounded.
func AssignSlug(db *gorm.DB, opts SlugOptions, candidateText, currentSlug string) (string, error) {
	if strings.TrimSpace(currentSlug) != "" {
		return "", NewInternalApplicationError("slug is already set and must not be regenerated")
	}

	base := cutToLen(GenerateSlug(candidateText), SlugMaxLen)
	if base == "" {
		base = "x"
	}

	taken, err := slugTaken(db, opts, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	trimmed := cutToLen(base, SlugMaxLen-slugSuffixLen-1) // room for "-" + suffix
	if trimmed == "" {
		trimmed = "x"
	}
	for i := 0; i < slugMaxAttempts; i++ {
		candidate := trimmed + "-" + randomSuffix(slugSuffixLen)
		taken, err = slugTaken(db, opts, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", NewInternalApplicationError("failed to generate a unique slug after " + fmt.Sprint(slugMaxAttempts) + " attempts")
}
