// Package apiclient is a typed HTTP client for the SAM-Fleet REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/samkiyya/SAM-Fleet/models"
)

// DefaultBaseURL is used when neither the constructor argument nor the
// SAM_FLEET_API_URL environment variable supplies a base URL.
const DefaultBaseURL = "http://localhost:8080/api"

const defaultTimeout = 10 * time.Second

// ErrInvalidVehicleID is returned for identifiers that do not match the
// store's 24-hex key format. The check runs before any network call.
var ErrInvalidVehicleID = errors.New("invalid vehicle ID")

// APIError carries the HTTP status and server message of a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client is an HTTP client for the fleet REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client targeting baseURL. An empty baseURL falls back
// to SAM_FLEET_API_URL, then to the local default. Requests carry a bounded
// timeout; a timeout surfaces as a transport error like any other.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("SAM_FLEET_API_URL")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.httpClient.Do(req)
}

// apiError decodes the server's {"message": ...} body into an APIError.
func apiError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		body.Message = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: body.Message}
}

// FetchVehicles lists every vehicle in the store.
func (c *Client) FetchVehicles(ctx context.Context) ([]models.Vehicle, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/vehicles", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}
	var out []models.Vehicle
	return out, json.NewDecoder(resp.Body).Decode(&out)
}

// FetchVehicleByID fetches a single vehicle.
func (c *Client) FetchVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	if !models.IsValidRecordID(id) {
		return nil, ErrInvalidVehicleID
	}
	resp, err := c.doRequest(ctx, http.MethodGet, "/vehicles/"+id, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}
	var out models.Vehicle
	return &out, json.NewDecoder(resp.Body).Decode(&out)
}

// AddVehicle POSTs a draft record (no id, no lastUpdated) and returns the
// store-populated vehicle.
func (c *Client) AddVehicle(ctx context.Context, draft models.Vehicle) (*models.Vehicle, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/vehicles", draft)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}
	var out models.Vehicle
	return &out, json.NewDecoder(resp.Body).Decode(&out)
}

// UpdateVehicle PUTs a full edit of the vehicle with v.ID. A malformed id is
// rejected locally, before any network traffic.
func (c *Client) UpdateVehicle(ctx context.Context, v models.Vehicle) (*models.Vehicle, error) {
	if !models.IsValidRecordID(v.ID) {
		return nil, ErrInvalidVehicleID
	}
	resp, err := c.doRequest(ctx, http.MethodPut, "/vehicles/"+v.ID, v)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}
	var out models.Vehicle
	return &out, json.NewDecoder(resp.Body).Decode(&out)
}

// UpdateVehicleStatus PUTs a status-only change.
func (c *Client) UpdateVehicleStatus(ctx context.Context, id string, status models.VehicleStatus) (*models.Vehicle, error) {
	if !models.IsValidRecordID(id) {
		return nil, ErrInvalidVehicleID
	}
	body := map[string]models.VehicleStatus{"status": status}
	resp, err := c.doRequest(ctx, http.MethodPut, "/vehicles/"+id+"/status", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}
	var out models.Vehicle
	return &out, json.NewDecoder(resp.Body).Decode(&out)
}

// DeleteVehicle removes the vehicle with the given id.
func (c *Client) DeleteVehicle(ctx context.Context, id string) error {
	if !models.IsValidRecordID(id) {
		return ErrInvalidVehicleID
	}
	resp, err := c.doRequest(ctx, http.MethodDelete, "/vehicles/"+id, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return nil
}

// ExportVehicles downloads the whole collection as csv or xlsx and returns
// the file bytes.
func (c *Client) ExportVehicles(ctx context.Context, format string) ([]byte, error) {
	if format != "csv" && format != "xlsx" {
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	resp, err := c.doRequest(ctx, http.MethodGet, "/vehicles/export?"+url.Values{"format": {format}}.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}
	return io.ReadAll(resp.Body)
}
