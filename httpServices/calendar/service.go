package httpServices

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// Client talks to a sibling deployment's /calendar endpoint. It exists for
// split deployments where the calendar rows live behind another instance of
// this service; callers invoke it inside their own transaction so a remote
// failure aborts the local write.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// CreateEventRequest mirrors the POST /calendar wire payload.
type CreateEventRequest struct {
	EventDate   string `json:"event_date"`
	EventStatus string `json:"event_status"`
	EventType   string `json:"event_type"`
	BookingID   uint   `json:"booking_id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type createEventResponse struct {
	EventID uint `json:"event_id"`
}

// CreateEvent posts a new calendar event and returns its generated id.
func (c *Client) CreateEvent(req CreateEventRequest) (uint, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return 0, err
	}

	httpReq, err := http.NewRequest("POST", c.baseURL+"/calendar", bytes.NewBuffer(body))
	if err != nil {
		return 0, err
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return 0, errors.New("calendar API returned non-OK status: " + resp.Status)
	}

	var apiResp createEventResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return 0, err
	}
	if apiResp.EventID == 0 {
		return 0, errors.New("calendar API response missing event_id")
	}

	return apiResp.EventID, nil
}
