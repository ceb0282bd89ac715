package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	googleEndpoint   = "https://translate.googleapis.com/translate_a/single"
	myMemoryEndpoint = "https://api.mymemory.translated.net/get"

	detectionSampleLimit = 500
)

// Result is a translation outcome. Confidence is a coarse 0-100 signal of how
// much the caller should trust the text: 100 for already-English input, 95 for
// a primary translation, 70 for the fallback service, 0 when everything failed
// and the original text was returned unchanged.
type Result struct {
	Text             string
	DetectedLanguage string
	Confidence       int
}

// ITranslator translates chat messages between English and the user's
// language. Implementations never return errors: on any failure the original
// text comes back and the pipeline continues in the source language.
type ITranslator interface {
	DetectLanguage(ctx context.Context, text string) string
	TranslateToEnglish(ctx context.Context, text string) Result
	TranslateFromEnglish(ctx context.Context, text, targetLang string) string
	Translate(ctx context.Context, text, targetLang string) string
}

type translator struct {
	client *http.Client
	log    *logrus.Logger
}

func New(log *logrus.Logger) ITranslator {
	return &translator{
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

// DetectLanguage returns the ISO code of the text's language, or "en" when
// detection fails. Only the first 500 characters are sent.
func (t *translator) DetectLanguage(ctx context.Context, text string) string {
	sample := text
	if len(sample) > detectionSampleLimit {
		sample = sample[:detectionSampleLimit]
	}

	payload, err := t.googleRequest(ctx, "auto", "en", sample)
	if err != nil {
		t.log.WithField("error", err).Warn("Translator: language detection failed")
		return "en"
	}

	if len(payload) > 2 {
		var lang string
		if err := json.Unmarshal(payload[2], &lang); err == nil && lang != "" {
			return lang
		}
	}

	return "en"
}

// TranslateToEnglish detects the source language first and skips the network
// round trip entirely for English input.
func (t *translator) TranslateToEnglish(ctx context.Context, text string) Result {
	detected := t.DetectLanguage(ctx, text)
	if detected == "en" {
		return Result{Text: text, DetectedLanguage: "en", Confidence: 100}
	}

	t.log.WithField("language", detected).Info("Translator: translating message to English")

	payload, err := t.googleRequest(ctx, detected, "en", text)
	if err == nil {
		if translated := joinSegments(payload); translated != "" {
			return Result{Text: translated, DetectedLanguage: detected, Confidence: 95}
		}
		return Result{Text: text, DetectedLanguage: detected, Confidence: 50}
	}

	t.log.WithField("error", err).Warn("Translator: primary translation failed, trying fallback")

	if translated := t.myMemoryRequest(ctx, text, "autodetect|en"); translated != "" {
		return Result{Text: translated, DetectedLanguage: "unknown", Confidence: 70}
	}

	return Result{Text: text, DetectedLanguage: "unknown", Confidence: 0}
}

// TranslateFromEnglish renders an English response in the target language.
func (t *translator) TranslateFromEnglish(ctx context.Context, text, targetLang string) string {
	if targetLang == "en" || targetLang == "" {
		return text
	}

	payload, err := t.googleRequest(ctx, "en", targetLang, text)
	if err == nil {
		if translated := joinSegments(payload); translated != "" {
			return translated
		}
		return text
	}

	t.log.WithField("error", err).Warn("Translator: primary translation failed, trying fallback")

	if translated := t.myMemoryRequest(ctx, text, "en|"+targetLang); translated != "" {
		return translated
	}

	return text
}

// Translate auto-detects the source language and translates to targetLang.
func (t *translator) Translate(ctx context.Context, text, targetLang string) string {
	payload, err := t.googleRequest(ctx, "auto", targetLang, text)
	if err != nil {
		t.log.WithField("error", err).Warn("Translator: translation failed")
		return text
	}

	if translated := joinSegments(payload); translated != "" {
		return translated
	}
	return text
}

// googleRequest calls the unofficial web translate endpoint. The response is a
// nested JSON array: index 0 holds the translated segments, index 2 the
// detected source language.
func (t *translator) googleRequest(ctx context.Context, source, target, text string) ([]json.RawMessage, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", source)
	params.Set("tl", target)
	params.Set("dt", "t")
	params.Set("q", text)

	body, err := t.get(ctx, googleEndpoint+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("unexpected translate response: %w", err)
	}

	return payload, nil
}

func (t *translator) myMemoryRequest(ctx context.Context, text, langPair string) string {
	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", langPair)

	body, err := t.get(ctx, myMemoryEndpoint+"?"+params.Encode())
	if err != nil {
		t.log.WithField("error", err).Warn("Translator: fallback translation failed")
		return ""
	}

	var payload struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	return payload.ResponseData.TranslatedText
}

func (t *translator) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.log.WithField("error", err).Warn("Translator: failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translate endpoint returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// joinSegments concatenates the translated sentence segments from a google
// translate payload. Each segment is itself an array whose first element is
// the translated text.
func joinSegments(payload []json.RawMessage) string {
	if len(payload) == 0 {
		return ""
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return ""
	}

	var sb strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(segment[0], &part); err != nil {
			continue
		}
		sb.WriteString(part)
	}

	return sb.String()
}

// LanguageName maps an ISO language code to a display name, falling back to
// the upper-cased code.
func LanguageName(code string) string {
	names := map[string]string{
		"ml": "Malayalam",
		"hi": "Hindi",
		"ta": "Tamil",
		"te": "Telugu",
		"kn": "Kannada",
		"bn": "Bengali",
		"gu": "Gujarati",
		"mr": "Marathi",
		"pa": "Punjabi",
		"en": "English",
		"es": "Spanish",
		"fr": "French",
		"de": "German",
		"ar": "Arabic",
		"zh": "Chinese",
	}
	if name, ok := names[code]; ok {
		return name
	}
	return strings.ToUpper(code)
}
