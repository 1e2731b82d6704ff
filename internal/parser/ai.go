package parser

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/user/broadcast-service/internal/entity"
	"github.com/user/broadcast-service/internal/repository"
	"github.com/user/broadcast-service/internal/rules"
)

// extractionPrompt asks the model for a strict JSON object with nullable
// fields. The broadcast text is spliced in where %s appears.
const extractionPrompt = `Kamu adalah parser broadcast buku. Ekstrak informasi berikut dari pesan broadcast ini.

PESAN BROADCAST:
%s

---

Ekstrak field berikut dalam format JSON:
- title: Judul buku (tanpa format/jenis binding)
- type: Jenis buku (Remainderbook, Request, Ready, dll) atau null jika tidak ada
- format: Format binding (HB=Hardcover, PB=Paperback, BB=Board Book) atau null
- pages: Jumlah halaman (integer) atau null
- price: Harga dalam integer (hapus titik/koma, contoh: 120.000 menjadi 120000)
- stock: Jumlah stok (integer) atau null
- description: Deskripsi/sinopsis buku
- tags: Array tag khusus (Award winner, New, dll)
- preview_links: Array URL preview (Instagram, YouTube, dll)
- eta: Perkiraan waktu tiba jika ada (contoh: "Mei '25") atau null
- close_date: Tanggal close order jika ada atau null
- publisher: Nama penerbit jika diketahui atau null

PENTING:
- Hanya return JSON object, tanpa penjelasan lain
- Untuk field yang tidak ditemukan, gunakan null
- Price harus integer (bukan string)
- preview_links dan tags harus array (bisa kosong [])

Return HANYA JSON:`

var (
	braceObject    = regexp.MustCompile(`(?s)\{[^{}]*\}`)
	fencedJSON     = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	categoryPrefix = regexp.MustCompile(`(?i)^\*?\[?\s*(READY|Remainderbook|Request)\s*\]?\s*[-\x{2013}:]?\s*`)
)

// formatAliases folds the binding spellings the model tends to emit into the
// closed code set. Unknown tokens are uppercased and kept as-is.
var formatAliases = map[string]string{
	"hardcover":  "HB",
	"hb":         "HB",
	"hc":         "HB",
	"paperback":  "PB",
	"pb":         "PB",
	"board book": "BB",
	"boardbook":  "BB",
	"bb":         "BB",
}

// AIFallback is the last parsing tier: it asks the generative backend to
// extract the record as JSON and repairs whatever comes back. It never
// returns an error; any backend failure degrades to a minimal best-effort
// record.
type AIFallback struct {
	generator repository.TextGenerator
	timeout   time.Duration
}

func NewAIFallback(generator repository.TextGenerator, timeout time.Duration) *AIFallback {
	return &AIFallback{generator: generator, timeout: timeout}
}

// Parse extracts fields from freeform text via the generative backend.
func (p *AIFallback) Parse(ctx context.Context, text string, mediaCount int) *entity.ParsedBroadcast {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	prompt := strings.Replace(extractionPrompt, "%s", text, 1)
	cfg := repository.GenerationConfig{
		// Low temperature: structured extraction, not creative writing.
		Temperature: 0.1,
		TopP:        0.9,
		MaxTokens:   1024,
	}

	response, err := p.generator.GenerateText(ctx, prompt, cfg)
	if err != nil {
		slog.Warn("generative extraction failed, degrading to minimal record", "error", err)
		return minimalRecord(text, mediaCount)
	}

	fields := decodeExtraction(response)
	if fields == nil {
		slog.Warn("could not recover JSON from generative response")
		return minimalRecord(text, mediaCount)
	}

	return p.toBroadcast(fields, text, mediaCount)
}

// decodeExtraction recovers a JSON object from a model response, in order of
// attempt: the full response, the first brace-delimited substring, then a
// fenced code block.
func decodeExtraction(response string) map[string]any {
	response = strings.TrimSpace(response)

	var fields map[string]any
	if err := json.Unmarshal([]byte(response), &fields); err == nil {
		return fields
	}

	if m := braceObject.FindString(response); m != "" {
		if err := json.Unmarshal([]byte(m), &fields); err == nil {
			return fields
		}
	}

	if m := fencedJSON.FindStringSubmatch(response); m != nil {
		if err := json.Unmarshal([]byte(m[1]), &fields); err == nil {
			return fields
		}
	}

	return nil
}

func (p *AIFallback) toBroadcast(fields map[string]any, rawText string, mediaCount int) *entity.ParsedBroadcast {
	b := entity.NewParsedBroadcast(rawText, mediaCount)
	b.AIFallback = true

	b.Title = asString(fields["title"])
	b.TitleLocalized = b.Title
	b.Type = asString(fields["type"])
	b.Format = NormalizeFormat(asString(fields["format"]))
	b.Description = asString(fields["description"])
	b.Eta = asString(fields["eta"])
	b.CloseDate = asString(fields["close_date"])
	b.Publisher = asString(fields["publisher"])

	b.PriceMain = asIntPtr(fields["price"])
	b.Pages = asIntPtr(fields["pages"])
	b.Stock = asIntPtr(fields["stock"])

	b.Tags = asStringSlice(fields["tags"])
	b.PreviewLinks = asStringSlice(fields["preview_links"])

	return b
}

// minimalRecord is the floor of the fallback chain: the first line of input
// as a best-effort title, with leading category markers and decoration
// stripped.
func minimalRecord(text string, mediaCount int) *entity.ParsedBroadcast {
	b := entity.NewParsedBroadcast(text, mediaCount)
	b.AIFallback = true

	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	title := truncateRunes(strings.TrimSpace(line), 100)
	title = categoryPrefix.ReplaceAllString(title, "")
	title = strings.TrimSpace(strings.Trim(title, "*"))

	b.Title = title
	b.TitleLocalized = title
	b.Description = text
	return b
}

// NormalizeFormat folds binding-code spellings into the closed set
// {HB, PB, BB}, leaving unknown tokens uppercased.
func NormalizeFormat(format string) string {
	if format == "" {
		return ""
	}
	if code, ok := formatAliases[strings.ToLower(strings.TrimSpace(format))]; ok {
		return code
	}
	return strings.ToUpper(strings.TrimSpace(format))
}

func asString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// asIntPtr coerces a JSON value to an optional integer. Models occasionally
// return prices as strings with thousands separators.
func asIntPtr(v any) *int {
	switch n := v.(type) {
	case float64:
		return entity.IntPtr(int(n))
	case string:
		if parsed, err := rules.StripThousands(n); err == nil {
			return entity.IntPtr(parsed)
		}
	}
	return nil
}

func asStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
