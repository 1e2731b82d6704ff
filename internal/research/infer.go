package research

import (
	"regexp"
	"strings"
)

// publisherDomains maps known publisher site domains to display names. A
// source URL beats snippet text as publisher evidence.
var publisherDomains = map[string]string{
	"flyingeyebooks.com":   "Flying Eye Books",
	"wideeyededitions.com": "Wide Eyed Editions",
	"bigpicturepress.net":  "Big Picture Press",
	"nosycrow.com":         "Nosy Crow",
	"walker.co.uk":         "Walker Books",
	"walkerbooks.com":      "Walker Books",
	"templar.co.uk":        "Templar Publishing",
	"usborne.com":          "Usborne",
	"dk.com":               "DK Publishing",
	"scholastic.com":       "Scholastic",
	"britannica.com":       "Britannica",
	"phaidon.com":          "Phaidon",
	"chroniclebooks.com":   "Chronicle Books",
	"candlewick.com":       "Candlewick Press",
	"quartoknows.com":      "Quarto",
	"harpercollins.com":    "HarperCollins",
	"simonandschuster.com": "Simon & Schuster",
	"bloomsbury.com":       "Bloomsbury",
}

var knownPublishers = []string{
	"Usborne", "DK Publishing", "Dorling Kindersley",
	"Britannica", "National Geographic", "Scholastic",
	"Penguin", "HarperCollins", "Simon & Schuster",
	"Macmillan", "Hachette", "Oxford University Press",
	"Candlewick", "Chronicle Books", "Phaidon",
}

var (
	authorPatterns = []*regexp.Regexp{
		regexp.MustCompile(`by\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,3})`),
		regexp.MustCompile(`Author:\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,3})`),
	}
	publisherLabel = regexp.MustCompile(`Publisher:\s*([A-Za-z\s&]+)`)
)

// PublisherFromURL infers a publisher from a known source domain.
func PublisherFromURL(sourceURL string) string {
	lower := strings.ToLower(sourceURL)
	for domain, publisher := range publisherDomains {
		if strings.Contains(lower, domain) {
			return publisher
		}
	}
	return ""
}

// PublisherFromSnippet scans result snippet text for a known publisher name
// or an explicit "Publisher:" label.
func PublisherFromSnippet(snippet string) string {
	lower := strings.ToLower(snippet)
	for _, publisher := range knownPublishers {
		if strings.Contains(lower, strings.ToLower(publisher)) {
			return publisher
		}
	}
	if m := publisherLabel.FindStringSubmatch(snippet); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// AuthorFromSnippet extracts an author name from "by Author Name" or
// "Author: Name" phrasing in the snippet.
func AuthorFromSnippet(snippet string) string {
	for _, re := range authorPatterns {
		if m := re.FindStringSubmatch(snippet); m != nil {
			return m[1]
		}
	}
	return ""
}
