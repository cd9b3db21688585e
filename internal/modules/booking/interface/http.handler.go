package transport

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"petStayWs/internal/modules/booking/application/port"
	"petStayWs/internal/modules/booking/application/usecase"
	"petStayWs/internal/modules/booking/domain"
	"petStayWs/internal/modules/realtime"
	"petStayWs/internal/shared/auth"
	"petStayWs/internal/shared/httputil"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler wires the booking usecases into echo routes.
type Handler struct {
	availability *usecase.AvailabilityService
	submit       *usecase.SubmitService
	status       *usecase.StatusService
	unavailable  *usecase.UnavailableDateService
	store        *usecase.Store
	validator    auth.TokenValidator
	hub          *realtime.Hub
	sendBuffer   int
	errors       *httputil.ErrorMapper
}

func NewHandler(
	availability *usecase.AvailabilityService,
	submit *usecase.SubmitService,
	status *usecase.StatusService,
	unavailable *usecase.UnavailableDateService,
	store *usecase.Store,
	validator auth.TokenValidator,
	hub *realtime.Hub,
	sendBuffer int,
) *Handler {
	mapper := httputil.NewErrorMapper().
		WithMapping(domain.ErrDraftInvalid, http.StatusUnprocessableEntity, "invalid booking draft").
		WithMapping(domain.ErrInvalidTransition, http.StatusConflict, "invalid status transition").
		WithMapping(domain.ErrNoCapacityRule, http.StatusBadRequest, "unknown service or room selection").
		WithMapping(usecase.ErrDateUnavailable, http.StatusConflict, "date unavailable").
		WithMapping(usecase.ErrBookingNotFound, http.StatusNotFound, "booking not found").
		WithMapping(port.ErrUnauthorized, http.StatusBadGateway, "booking api rejected credentials").
		WithMapping(port.ErrNotConfigured, http.StatusBadGateway, "booking api endpoint missing").
		WithDefault(http.StatusBadGateway, "booking api failure")
	return &Handler{
		availability: availability,
		submit:       submit,
		status:       status,
		unavailable:  unavailable,
		store:        store,
		validator:    validator,
		hub:          hub,
		sendBuffer:   sendBuffer,
		errors:       mapper,
	}
}

// Register attaches all routes.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/api/availability", h.GetAvailability)
	e.GET("/api/bookings", h.ListBookings)
	e.POST("/api/quote", h.Quote)
	e.POST("/api/reservations", h.SubmitReservation)
	e.PATCH("/api/bookings/:id/status", h.UpdateStatus)
	e.GET("/api/unavailable-dates", h.ListUnavailableDates)
	e.POST("/api/unavailable-dates", h.AddUnavailableDate)
	e.DELETE("/api/unavailable-dates/:date", h.RemoveUnavailableDate)
	e.GET("/ws/availability", h.AvailabilityStream)
}

func (h *Handler) fail(c echo.Context, err error) error {
	info := h.errors.Map(err)
	slog.Warn("request failed", slog.String("path", c.Path()), slog.Int("status", info.Status), slog.Any("error", err))
	return c.JSON(info.Status, map[string]string{"message": info.Message})
}

// GetAvailability answers the calendar gate query for one date and selection.
func (h *Handler) GetAvailability(c echo.Context) error {
	day, ok := domain.NormalizeDate(c.QueryParam("date"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "missing or invalid date")
	}
	sel := domain.Selection{
		Service: domain.NormalizeServiceType(c.QueryParam("service")),
		Room:    domain.NormalizeRoomType(c.QueryParam("room")),
		Package: domain.NormalizePackage(c.QueryParam("package")),
	}
	availability, err := h.availability.Check(day, sel)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"date":       domain.FormatAPIDate(day),
		"known":      availability.Known,
		"blocked":    availability.Blocked,
		"atCapacity": availability.AtCapacity,
		"slots":      availability.Slots,
		"bookable":   availability.Bookable,
	})
}

// ListBookings serves the locally-held authoritative list with its freshness flag.
func (h *Handler) ListBookings(c echo.Context) error {
	bookings, known := h.store.Bookings()
	items := make([]map[string]any, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, bookingJSON(b))
	}
	return c.JSON(http.StatusOK, map[string]any{"known": known, "total": len(items), "items": items})
}

type petsRequest struct {
	Pets []map[string]any `json:"pets"`
}

// Quote prices a reservation without submitting it.
func (h *Handler) Quote(c echo.Context) error {
	var req petsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	total, drafts := h.submit.Quote(req.Pets)
	pets := make([]map[string]any, 0, len(drafts))
	for _, draft := range drafts {
		pets = append(pets, map[string]any{
			"petName": draft.Pet.Name,
			"nights":  draft.Nights(),
			"price":   draft.Price(),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"total": total, "pets": pets})
}

// SubmitReservation validates and submits one booking per pet, sequentially.
// Partial failures report which pets were committed; there is no rollback.
func (h *Handler) SubmitReservation(c echo.Context) error {
	var req petsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	results, err := h.submit.SubmitReservation(c.Request().Context(), req.Pets)
	body := map[string]any{"results": submissionJSON(results)}
	if err != nil {
		info := h.errors.Map(err)
		body["message"] = info.Message
		slog.Warn("reservation submit failed", slog.Int("status", info.Status), slog.Any("error", err))
		return c.JSON(info.Status, body)
	}
	return c.JSON(http.StatusCreated, body)
}

type statusRequest struct {
	Status  string `json:"status"`
	Notes   string `json:"notes"`
	AdminID string `json:"adminId"`
}

// UpdateStatus applies a validated lifecycle transition. Admin only.
func (h *Handler) UpdateStatus(c echo.Context) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	next, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
	}
	if err := h.status.UpdateBookingStatus(c.Request().Context(), c.Param("id"), next, req.Notes, req.AdminID); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": string(next)})
}

// ListUnavailableDates serves the blocked-date set with its freshness flag.
func (h *Handler) ListUnavailableDates(c echo.Context) error {
	days, known := h.store.UnavailableDates()
	dates := make([]string, 0, len(days))
	for _, day := range days {
		dates = append(dates, domain.FormatAPIDate(day))
	}
	return c.JSON(http.StatusOK, map[string]any{"known": known, "dates": dates})
}

type dateRequest struct {
	Date string `json:"date"`
}

// AddUnavailableDate blocks a calendar day. Admin only.
func (h *Handler) AddUnavailableDate(c echo.Context) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}
	var req dateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	day, ok := domain.NormalizeDate(req.Date)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "missing or invalid date")
	}
	if err := h.unavailable.AddUnavailableDate(c.Request().Context(), day); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"date": domain.FormatAPIDate(day)})
}

// RemoveUnavailableDate unblocks a calendar day. Admin only.
func (h *Handler) RemoveUnavailableDate(c echo.Context) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}
	day, ok := domain.NormalizeDate(c.Param("date"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "missing or invalid date")
	}
	if err := h.unavailable.RemoveUnavailableDate(c.Request().Context(), day); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"date": domain.FormatAPIDate(day)})
}

// AvailabilityStream upgrades to a websocket subscribed to availability
// refresh notifications.
func (h *Handler) AvailabilityStream(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	client := realtime.NewClient(h.hub, conn, h.sendBuffer)
	h.hub.AttachClient(client, []string{realtime.TopicAvailabilityChanged})
	go client.WritePump()
	go client.ReadPump()
	return nil
}

func (h *Handler) requireAdmin(c echo.Context) error {
	token := bearerToken(c)
	claims, err := h.validator.Validate(token)
	if err != nil {
		if errors.Is(err, auth.ErrMissingToken) {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
		}
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	if !claims.HasRole("admin") {
		return echo.NewHTTPError(http.StatusForbidden, "admin role required")
	}
	return nil
}

func bearerToken(c echo.Context) string {
	authz := strings.TrimSpace(c.Request().Header.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	return strings.TrimSpace(c.QueryParam("token"))
}

func bookingJSON(b domain.Booking) map[string]any {
	return map[string]any{
		"id":              b.ID,
		"serviceType":     string(b.ServiceType),
		"roomType":        string(b.RoomType),
		"packageName":     b.PackageName,
		"weightCategory":  string(b.WeightCategory),
		"startDate":       domain.FormatAPIDate(b.StartDate),
		"endDate":         domain.FormatAPIDate(b.EndDate),
		"startTime":       b.StartTime,
		"endTime":         b.EndTime,
		"status":          string(b.Status),
		"petName":         b.Pet.Name,
		"petType":         string(b.Pet.Type),
		"ownerName":       b.Owner.Name,
		"referenceNumber": b.ReferenceNumber,
	}
}

func submissionJSON(results []usecase.SubmissionResult) []map[string]any {
	items := make([]map[string]any, 0, len(results))
	for _, result := range results {
		item := map[string]any{
			"petName":   result.PetName,
			"reference": result.Reference,
			"submitted": result.Err == nil,
		}
		if result.Err != nil {
			item["error"] = result.Err.Error()
		}
		items = append(items, item)
	}
	return items
}
