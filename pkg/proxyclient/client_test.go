package proxyclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"parkhub-backend/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(cfg *config.Config) *Client {
	if cfg == nil {
		cfg = &config.Config{
			WeatherAPIKey:    "weather-key",
			AirQualityAPIKey: "aqi-key",
			OpenRouteAPIKey:  "route-key",
			VoiceRSSAPIKey:   "voice-key",
			PredictHQAPIKey:  "events-key",
		}
	}
	return NewClient(cfg)
}

func TestWeatherBuildsUpstreamRequest(t *testing.T) {
	var captured *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"forecast":{}}`))
	}))
	defer srv.Close()

	c := testClient(nil)
	c.WeatherBaseURL = srv.URL

	up, err := c.Weather(context.Background(), 53.79, -1.54)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, up.StatusCode)
	assert.JSONEq(t, `{"forecast":{}}`, string(up.Body))

	require.NotNil(t, captured)
	q := captured.URL.Query()
	assert.Equal(t, "weather-key", q.Get("key"))
	assert.Equal(t, "53.79,-1.54", q.Get("q"))
	assert.Equal(t, "7", q.Get("days"))
	assert.NotEmpty(t, q.Get("cache-buster"))
}

func TestUpstreamErrorsPassThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer srv.Close()

	c := testClient(nil)
	c.AirQualityBaseURL = srv.URL

	up, err := c.AirQuality(context.Background(), 53.79, -1.54)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, up.StatusCode)
	assert.JSONEq(t, `{"error":"rate limited"}`, string(up.Body))
}

func TestEventsDegradesToEmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(nil)
	c.PredictHQBaseURL = srv.URL

	assert.Equal(t, "[]", c.Events(context.Background()))
}

func TestEventsSendsBearerAuth(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := testClient(nil)
	c.PredictHQBaseURL = srv.URL

	out := c.Events(context.Background())
	assert.Equal(t, "Bearer events-key", auth)
	assert.JSONEq(t, `{"results":[]}`, out)
}

func TestSpeakDegradesToEmptyAudio(t *testing.T) {
	c := testClient(nil)
	c.VoiceRSSBaseURL = "http://127.0.0.1:0" // unreachable

	assert.Empty(t, c.Speak(context.Background(), "turn left"))
}

func TestPointsOfInterestPostsGeometry(t *testing.T) {
	var (
		auth string
		body []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		body, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"features":[]}`))
	}))
	defer srv.Close()

	c := testClient(nil)
	c.OpenRouteBaseURL = srv.URL

	up, err := c.PointsOfInterest(context.Background(), 53.79, -1.54)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, up.StatusCode)
	assert.Equal(t, "route-key", auth)
	assert.Contains(t, string(body), `"request":"pois"`)
	assert.Contains(t, string(body), `"buffer":500`)
}
