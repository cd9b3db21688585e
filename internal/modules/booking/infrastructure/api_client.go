package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"petStayWs/internal/modules/booking/application/port"
	"petStayWs/internal/modules/booking/domain"
	"petStayWs/internal/shared/normalization"
)

const (
	bookingsPath         = "/api/bookings"
	unavailableDatesPath = "/api/unavailable-dates"
)

// BookingHTTPClient implements port.BookingAPI against the remote booking
// REST service. The service's field naming is inconsistent between snake_case
// and camelCase and between flat and nested shapes; tolerating that variance
// here is required behavior, not something to clean up by assuming one shape.
type BookingHTTPClient struct {
	rest  *RESTClient
	token string
}

func NewBookingHTTPClient(baseURL string, timeout time.Duration, token string, client *http.Client) *BookingHTTPClient {
	return &BookingHTTPClient{rest: NewRESTClient(baseURL, timeout, client), token: strings.TrimSpace(token)}
}

func (c *BookingHTTPClient) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	payload, err := c.getJSON(ctx, bookingsPath)
	if err != nil {
		return nil, err
	}
	list, ok := domain.BuildBookingList(payload)
	if !ok {
		// An empty list is a valid answer, distinct from a decode failure.
		if isEmptyListPayload(payload) {
			return []domain.Booking{}, nil
		}
		return nil, fmt.Errorf("unexpected booking list payload %T", payload)
	}
	return list.Items, nil
}

func (c *BookingHTTPClient) CreateBooking(ctx context.Context, payload domain.CanonicalPayload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode booking payload: %w", err)
	}
	req, err := c.rest.NewRequest(ctx, http.MethodPost, bookingsPath, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	res, err := c.rest.Do(req)
	if err != nil {
		return "", fmt.Errorf("booking request failed: %w", err)
	}
	defer res.Body.Close()
	if err := mapStatus(res); err != nil {
		return "", err
	}

	var decoded any
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode booking response: %w", err)
	}
	reference := extractReference(decoded)
	if reference == "" {
		return "", fmt.Errorf("booking accepted but no reference number in response")
	}
	return reference, nil
}

func (c *BookingHTTPClient) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus, notes, adminID string) error {
	body, err := json.Marshal(map[string]any{
		"status":  string(status),
		"notes":   notes,
		"adminId": adminID,
	})
	if err != nil {
		return fmt.Errorf("encode status payload: %w", err)
	}
	endpoint := bookingsPath + "/" + url.PathEscape(bookingID) + "/status"
	req, err := c.rest.NewRequest(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	res, err := c.rest.Do(req)
	if err != nil {
		return fmt.Errorf("status request failed: %w", err)
	}
	defer res.Body.Close()
	return mapStatus(res)
}

func (c *BookingHTTPClient) ListUnavailableDates(ctx context.Context) ([]time.Time, error) {
	payload, err := c.getJSON(ctx, unavailableDatesPath)
	if err != nil {
		return nil, err
	}
	return decodeUnavailableDates(payload), nil
}

func (c *BookingHTTPClient) AddUnavailableDate(ctx context.Context, day time.Time) error {
	body, err := json.Marshal(map[string]any{
		"date":          domain.FormatAPIDate(day),
		"isUnavailable": true,
	})
	if err != nil {
		return fmt.Errorf("encode date payload: %w", err)
	}
	req, err := c.rest.NewRequest(ctx, http.MethodPost, unavailableDatesPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	res, err := c.rest.Do(req)
	if err != nil {
		return fmt.Errorf("unavailable date request failed: %w", err)
	}
	defer res.Body.Close()
	return mapStatus(res)
}

func (c *BookingHTTPClient) RemoveUnavailableDate(ctx context.Context, day time.Time) error {
	endpoint := unavailableDatesPath + "/" + url.PathEscape(domain.FormatAPIDate(day))
	req, err := c.rest.NewRequest(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	res, err := c.rest.Do(req)
	if err != nil {
		return fmt.Errorf("unavailable date request failed: %w", err)
	}
	defer res.Body.Close()
	return mapStatus(res)
}

func (c *BookingHTTPClient) getJSON(ctx context.Context, endpoint string) (any, error) {
	req, err := c.rest.NewRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	res, err := c.rest.Do(req)
	if err != nil {
		return nil, fmt.Errorf("booking request failed: %w", err)
	}
	defer res.Body.Close()
	if err := mapStatus(res); err != nil {
		return nil, err
	}

	var payload any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload, nil
}

func (c *BookingHTTPClient) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// mapStatus translates HTTP failures into the port's sentinel errors,
// surfacing the server's own message when it sent one.
func mapStatus(res *http.Response) error {
	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return nil
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return port.ErrUnauthorized
	case res.StatusCode == http.StatusNotFound:
		return port.ErrNotConfigured
	default:
		message := serverMessage(res.Body)
		slog.Warn("booking api error", slog.Int("status", res.StatusCode), slog.String("message", message))
		if message != "" {
			return fmt.Errorf("booking api %d: %s", res.StatusCode, message)
		}
		return fmt.Errorf("unexpected booking api response %d", res.StatusCode)
	}
}

func serverMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 2048))
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return ""
	}
	if msg := normalization.AsString(decoded["message"]); msg != "" {
		return msg
	}
	return normalization.AsString(decoded["error"])
}

// extractReference tolerates every response shape the backend is known to
// use for the assigned reference number, deriving a fallback from the booking
// id when only that is present.
func extractReference(payload any) string {
	container := normalization.MapFromPayload(payload)
	if len(container) == 0 {
		return ""
	}
	candidates := []map[string]any{container}
	if nested := normalization.NestedMap(container, "booking", "data"); nested != nil {
		candidates = append(candidates, nested)
	}
	for _, entity := range candidates {
		if ref := normalization.AsString(entity["reference_number"]); ref != "" {
			return ref
		}
		if ref := normalization.AsString(entity["referenceNumber"]); ref != "" {
			return ref
		}
	}
	for _, entity := range candidates {
		if id := normalization.AsString(entity["id"]); id != "" {
			return "BK-" + id
		}
	}
	return ""
}

func decodeUnavailableDates(payload any) []time.Time {
	rawItems := normalization.AsInterfaceSlice(payload)
	if len(rawItems) == 0 {
		container := normalization.MapFromPayload(payload)
		rawItems = normalization.AsInterfaceSlice(container["dates"])
		if len(rawItems) == 0 {
			rawItems = normalization.AsInterfaceSlice(container["unavailableDates"])
		}
		if len(rawItems) == 0 {
			rawItems = normalization.AsInterfaceSlice(container["data"])
		}
	}
	days := make([]time.Time, 0, len(rawItems))
	for _, item := range rawItems {
		value := item
		// Some deployments return objects like {date: "..."} instead of bare strings.
		if mapped, ok := item.(map[string]any); ok {
			value = mapped["date"]
		}
		if day, ok := domain.NormalizeDate(normalization.AsString(value)); ok {
			days = append(days, day)
		}
	}
	return days
}

func isEmptyListPayload(payload any) bool {
	if items, ok := payload.([]any); ok {
		return len(items) == 0
	}
	container := normalization.MapFromPayload(payload)
	if container == nil {
		return false
	}
	for _, key := range []string{"items", "bookings", "data"} {
		if raw, ok := container[key]; ok {
			if items, ok := raw.([]any); ok {
				return len(items) == 0
			}
		}
	}
	return len(container) == 0
}

var _ port.BookingAPI = (*BookingHTTPClient)(nil)
