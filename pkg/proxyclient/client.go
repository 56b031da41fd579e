package proxyclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"parkhub-backend/pkg/config"
)

// Upstream is a third-party response passed through verbatim.
type Upstream struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

// Client performs the outbound calls behind the proxy endpoints. It holds
// no state beyond configuration; every call is independent.
type Client struct {
	httpClient *http.Client
	cfg        *config.Config

	// Base URLs are fields so tests can point them at a local server.
	WeatherBaseURL    string
	AirQualityBaseURL string
	OpenRouteBaseURL  string
	VoiceRSSBaseURL   string
	PredictHQBaseURL  string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient:        &http.Client{},
		cfg:               cfg,
		WeatherBaseURL:    "https://api.weatherapi.com",
		AirQualityBaseURL: "https://api.waqi.info",
		OpenRouteBaseURL:  "https://api.openrouteservice.org",
		VoiceRSSBaseURL:   "https://api.voicerss.org",
		PredictHQBaseURL:  "https://api.predicthq.com",
	}
}

// Weather fetches a 7-day forecast for the coordinates. The cache-buster
// key changes hourly so intermediaries re-fetch at most once an hour.
func (c *Client) Weather(ctx context.Context, lat, lon float64) (*Upstream, error) {
	q := url.Values{}
	q.Set("key", c.cfg.WeatherAPIKey)
	q.Set("q", fmt.Sprintf("%v,%v", lat, lon))
	q.Set("days", "7")
	q.Set("aqi", "no")
	q.Set("alerts", "no")
	q.Set("cache-buster", time.Now().Format("20060102-15"))

	return c.get(ctx, c.WeatherBaseURL+"/v1/forecast.json?"+q.Encode(), nil, 10*time.Second)
}

// AirQuality fetches the nearest air-quality feed for the coordinates.
func (c *Client) AirQuality(ctx context.Context, lat, lon float64) (*Upstream, error) {
	endpoint := fmt.Sprintf("%s/feed/geo:%v;%v/?token=%s",
		c.AirQualityBaseURL, lat, lon, url.QueryEscape(c.cfg.AirQualityAPIKey))
	return c.get(ctx, endpoint, nil, 10*time.Second)
}

// Directions fetches a route between two points for the given travel profile.
func (c *Client) Directions(ctx context.Context, start, end, profile string) (*Upstream, error) {
	endpoint := fmt.Sprintf("%s/v2/directions/%s?api_key=%s&start=%s&end=%s",
		c.OpenRouteBaseURL, url.PathEscape(profile), url.QueryEscape(c.cfg.OpenRouteAPIKey),
		url.QueryEscape(start), url.QueryEscape(end))
	return c.get(ctx, endpoint, nil, 15*time.Second)
}

// Speak converts an instruction to speech and returns the raw audio.
// Failures degrade to an empty payload rather than an error.
func (c *Client) Speak(ctx context.Context, instruction string) []byte {
	q := url.Values{}
	q.Set("key", c.cfg.VoiceRSSAPIKey)
	q.Set("hl", "en-us")
	q.Set("src", instruction)

	up, err := c.get(ctx, c.VoiceRSSBaseURL+"/?"+q.Encode(), nil, 10*time.Second)
	if err != nil || up.StatusCode != http.StatusOK {
		log.Printf("[ERROR] text-to-speech conversion failed: %v", err)
		return []byte{}
	}
	return up.Body
}

// Events fetches the next 7 days of events within 1.5 miles of Leeds.
// Failures degrade to an empty JSON array.
func (c *Client) Events(ctx context.Context) string {
	now := time.Now()
	q := url.Values{}
	q.Set("category", "expos,concerts,festivals,performing-arts,community,sports,public-holidays,observances,daylight-savings,airport-delays,severe-weather,disasters,terror,health-warnings")
	q.Set("active.gte", now.Format("2006-01-02"))
	q.Set("active.lte", now.AddDate(0, 0, 7).Format("2006-01-02"))
	q.Set("state", "active")
	q.Set("sort", "start")
	q.Set("limit", "5")
	q.Set("within", "1.5mi@53.7995746,-1.5471022")

	headers := map[string]string{
		"Accept":        "application/json",
		"Authorization": "Bearer " + c.cfg.PredictHQAPIKey,
	}
	up, err := c.get(ctx, c.PredictHQBaseURL+"/v1/events/?"+q.Encode(), headers, 10*time.Second)
	if err != nil || up.StatusCode != http.StatusOK {
		log.Printf("[ERROR] fetching events failed: %v", err)
		return "[]"
	}
	return string(up.Body)
}

// PointsOfInterest fetches POIs within a 500 m buffer of the coordinates,
// restricted to the park-relevant category set.
func (c *Client) PointsOfInterest(ctx context.Context, lat, lon float64) (*Upstream, error) {
	body := map[string]any{
		"request": "pois",
		"geometry": map[string]any{
			"geojson": map[string]any{
				"type":        "Point",
				"coordinates": []float64{lon, lat},
			},
			"buffer": 500,
		},
		"filters": map[string]any{
			"category_ids": []int{191, 564, 518, 601, 583},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.OpenRouteBaseURL+"/pois", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.cfg.OpenRouteAPIKey)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) get(ctx context.Context, endpoint string, headers map[string]string, timeout time.Duration) (*Upstream, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*Upstream, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Upstream{
		StatusCode:  resp.StatusCode,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
