package translator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func googlePayload(t *testing.T, raw string) []json.RawMessage {
	t.Helper()

	var payload []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestJoinSegments(t *testing.T) {
	payload := googlePayload(t, `[[["Hello ","नमस्ते ",null,null],["world","दुनिया",null,null]],null,"hi"]`)
	assert.Equal(t, "Hello world", joinSegments(payload))
}

func TestJoinSegmentsSingleSegment(t *testing.T) {
	payload := googlePayload(t, `[[["spent 200 on food","खाने पर 200 खर्च किए"]],null,"hi"]`)
	assert.Equal(t, "spent 200 on food", joinSegments(payload))
}

func TestJoinSegmentsEmptyPayload(t *testing.T) {
	assert.Equal(t, "", joinSegments(nil))
	assert.Equal(t, "", joinSegments(googlePayload(t, `[null,null,"en"]`)))
	assert.Equal(t, "", joinSegments(googlePayload(t, `[[],null,"en"]`)))
}

func TestJoinSegmentsSkipsMalformedSegments(t *testing.T) {
	payload := googlePayload(t, `[[[42],["ok","ok"],[]],null,"en"]`)
	assert.Equal(t, "ok", joinSegments(payload))
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Malayalam", LanguageName("ml"))
	assert.Equal(t, "Hindi", LanguageName("hi"))
	assert.Equal(t, "English", LanguageName("en"))
	assert.Equal(t, "XX", LanguageName("xx"))
}
