package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const expoAPIURL = "https://exp.host/--/api/v2/push/send"

// ExpoClient sends notifications through the Expo Push service.
type ExpoClient struct {
	apiURL     string
	httpClient *http.Client
}

// NewExpo creates a new Expo push client.
func NewExpo() *ExpoClient {
	return &ExpoClient{
		apiURL:     expoAPIURL,
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default Expo API URL for testing purposes.
func (c *ExpoClient) SetAPIURL(url string) {
	c.apiURL = url
}

type expoPushRequest struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

type expoPushTicket struct {
	Status  string `json:"status"` // "ok" or "error"
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

type expoPushResponse struct {
	Data expoPushTicket `json:"data"`
}

// Send delivers one notification to an Expo push token.
func (c *ExpoClient) Send(ctx context.Context, msg Message) error {
	payload := expoPushRequest{
		To:    msg.Token,
		Title: msg.Title,
		Body:  msg.Body,
		Data:  msg.Data,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal push payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create push request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call expo push API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("expo push API error %d", resp.StatusCode)
	}

	var ticket expoPushResponse
	if err := json.NewDecoder(resp.Body).Decode(&ticket); err != nil {
		return fmt.Errorf("failed to decode expo push response: %w", err)
	}
	if ticket.Data.Status != "ok" {
		return fmt.Errorf("expo push rejected: %s", ticket.Data.Message)
	}

	return nil
}
