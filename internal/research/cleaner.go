package research

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/user/broadcast-service/internal/entity"
)

// The title cleaner is a sequential pipeline: each stage operates on the
// output of the previous one, and later stages assume earlier boilerplate is
// already gone. The order is load-bearing.
var (
	amazonSuffixes = []*regexp.Regexp{
		regexp.MustCompile(`(?i):?\s*Amazon\.co\.uk:?\s*:?\s*Books?\s*$`),
		regexp.MustCompile(`(?i):?\s*Amazon\.com:?\s*:?\s*Books?\s*$`),
		regexp.MustCompile(`(?i):?\s*Amazon\.[a-z.]+.*$`),
	}

	interviewPrefix = regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)\s+on\s+(.+)$`)

	descriptorSuffixes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\s+is\s+a\s+children'?s?\s+(?:picture\s+)?book.*$`),
		regexp.MustCompile(`(?i)\s+is\s+a\s+(?:picture\s+)?book.*$`),
	}

	siteSuffixes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\s*[-|\x{2013}]\s*Amazon\.com.*$`),
		regexp.MustCompile(`(?i)\s*[-|\x{2013}]\s*Amazon\.co\.uk.*$`),
		regexp.MustCompile(`(?i)\s*[-|\x{2013}]\s*Goodreads.*$`),
		regexp.MustCompile(`(?i)\s*[-|\x{2013}]\s*Barnes\s*[&+]\s*Noble.*$`),
		regexp.MustCompile(`(?i)\s*[-|\x{2013}]\s*Google Books.*$`),
		regexp.MustCompile(`(?i)\s*[-|\x{2013}]\s*Waterstones.*$`),
		regexp.MustCompile(`(?i)\s*[-|\x{2013}]\s*Book Depository.*$`),
		regexp.MustCompile(`(?i)\s*[-|\x{2013}]\s*The\s+\w+\s+Prize.*$`),
		regexp.MustCompile(`(?i)\s*[-|\x{2013}]\s*\w+\s+Prize.*$`),
		regexp.MustCompile(`(?i)\s*\|\s*Official.*$`),
	}

	volumeInfix    = regexp.MustCompile(`:\s*\d+\s*:`)
	volumeSuffix   = regexp.MustCompile(`(?i):\s*(?:Vol\.?\s*)?\d+\s*$`)
	authorAfterCln = regexp.MustCompile(`^(.+?):\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?),\s*([A-Z][a-z]+)`)
	byAuthor       = regexp.MustCompile(`(?i)^(.+?)\s+by\s+[A-Z]`)
	segmentSplit   = regexp.MustCompile(`\s*[-\x{2013}|]\s*`)
	edgePunct      = regexp.MustCompile(`^[\s:|\-\x{2013}]+|[\s:|\-\x{2013}]+$`)

	nonAlnum = regexp.MustCompile(`[^a-z0-9]`)
)

// CleanTitle strips marketplace boilerplate, author bylines and award
// suffixes from a raw search-result title, leaving a displayable book title.
// Running it on an already-clean title is a no-op.
func CleanTitle(raw string) string {
	title := strings.TrimSpace(raw)

	for _, re := range amazonSuffixes {
		title = re.ReplaceAllString(title, "")
	}

	// "Author Name on Title" interview headlines: keep the title half.
	if m := interviewPrefix.FindStringSubmatch(title); m != nil {
		title = m[2]
	}

	for _, re := range descriptorSuffixes {
		title = re.ReplaceAllString(title, "")
	}

	for _, re := range siteSuffixes {
		title = re.ReplaceAllString(title, "")
	}

	title = volumeInfix.ReplaceAllString(title, ":")
	title = volumeSuffix.ReplaceAllString(title, "")

	// "Title: Firstname Lastname, Firstname" author listings after a colon.
	if m := authorAfterCln.FindStringSubmatch(title); m != nil {
		title = m[1]
	}

	if m := byAuthor.FindStringSubmatch(title); m != nil {
		title = m[1]
	}

	// Remaining dash/pipe segments: keep the first one, unless it is exactly
	// a two-word personal name, which would mean truncating a real title.
	if parts := segmentSplit.Split(title, -1); len(parts) > 1 {
		first := strings.TrimSpace(parts[0])
		words := strings.Fields(first)
		if len(words) >= 2 && !isTwoWordName(words) {
			title = first
		}
	}

	title = edgePunct.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}

// isTwoWordName reports whether the words look like "Firstname Lastname":
// exactly two words, each capitalized with a lowercase remainder.
func isTwoWordName(words []string) bool {
	if len(words) != 2 {
		return false
	}
	for _, w := range words {
		runes := []rune(w)
		if len(runes) < 2 || !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes[1:] {
			if !unicode.IsLower(r) {
				return false
			}
		}
	}
	return true
}

// NormalizeKey reduces a title to its deduplication key: lowercase with all
// non-alphanumeric characters removed.
func NormalizeKey(title string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(title), "")
}

// Dedupe collapses results whose titles normalize to the same key. The
// first-seen result keeps its position; a later duplicate only wins if it
// carries an image and the kept one does not, and it is swapped in place.
func Dedupe(results []entity.BookSearchResult) []entity.BookSearchResult {
	index := make(map[string]int, len(results))
	deduped := make([]entity.BookSearchResult, 0, len(results))

	for _, r := range results {
		key := NormalizeKey(r.Title)
		if at, seen := index[key]; seen {
			if r.ImageURL != "" && deduped[at].ImageURL == "" {
				deduped[at] = r
			}
			continue
		}
		index[key] = len(deduped)
		deduped = append(deduped, r)
	}

	return deduped
}
