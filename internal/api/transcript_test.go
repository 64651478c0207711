package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranscriptServer(t *testing.T, player string) *TranscriptFetcher {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		body := fmt.Sprintf(player, srv.URL)
		fmt.Fprintf(w, `<html><script>var ytInitialPlayerResponse = %s;var other = {};</script></html>`, body)
	})
	mux.HandleFunc("/timedtext/en", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0"?><transcript><text start="0">Hello &amp;amp; welcome</text><text start="1">  </text><text start="2">it&amp;#39;s great</text></transcript>`)
	})
	mux.HandleFunc("/timedtext/de", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<transcript><text>Hallo</text></transcript>`)
	})

	f := NewTranscriptFetcher(srv.Client())
	f.watchURL = srv.URL + "/watch?v="
	return f
}

func TestTranscriptFetchPrefersEnglish(t *testing.T) {
	f := newTranscriptServer(t, `{"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[
		{"baseUrl":"%[1]s/timedtext/de","languageCode":"de"},
		{"baseUrl":"%[1]s/timedtext/en","languageCode":"en","kind":"asr"}]}},"title":"with \"quotes\" and {braces}"}`)

	text, err := f.Fetch(context.Background(), "abc")
	require.NoError(t, err)
	require.NotNil(t, text)
	assert.Equal(t, "Hello & welcome it's great", *text)
}

func TestTranscriptFetchNoCaptions(t *testing.T) {
	f := newTranscriptServer(t, `{"playabilityStatus":{"status":"OK"},"x":"%s"}`)

	text, err := f.Fetch(context.Background(), "abc")
	require.NoError(t, err)
	assert.Nil(t, text)
}

func TestTranscriptFetchMissingPlayerResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>consent page</html>")
	}))
	t.Cleanup(srv.Close)
	f := NewTranscriptFetcher(srv.Client())
	f.watchURL = srv.URL + "/watch?v="

	_, err := f.Fetch(context.Background(), "abc")
	assert.Error(t, err)
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"a":{"b":"}"}}`, string(extractJSONObject([]byte(`{"a":{"b":"}"}};rest`))))
	assert.Equal(t, `{"a":"\"}"}`, string(extractJSONObject([]byte(`{"a":"\"}"} trailing`))))
	assert.Nil(t, extractJSONObject([]byte(`{"open":`)))
	assert.Nil(t, extractJSONObject([]byte(`x{}`)))
}
