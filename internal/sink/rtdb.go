package sink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const (
	// resultsPath is the collection all records append under.
	resultsPath = "results"

	defaultTimeout = 10 * time.Second
)

// RTDBClient appends records to a Firebase-style realtime database
// over its REST surface: POST {base}/{path}.json pushes a new child
// and the response carries the server-generated name.
type RTDBClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRTDBClient builds a client for the database rooted at baseURL.
func NewRTDBClient(baseURL string) *RTDBClient {
	return &RTDBClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

var _ Sink = (*RTDBClient)(nil)

// Submit appends rec under the results path. The write is a plain
// append; nothing is read back beyond the acknowledgment.
func (c *RTDBClient) Submit(ctx context.Context, rec Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := validateRecord(body); err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s.json", c.baseURL, resultsPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("submit result: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("submit result: status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var ack struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return fmt.Errorf("decode ack: %w", err)
	}
	if ack.Name == "" {
		return fmt.Errorf("submit result: server returned no key")
	}
	return nil
}
