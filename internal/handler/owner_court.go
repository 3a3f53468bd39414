package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/quadraplay/court-booking-api/internal/model"
	"github.com/quadraplay/court-booking-api/internal/storage"
)

type courtReq struct {
	EstablishmentID uint64  `json:"establishment_id"`
	Name            string  `json:"name"`
	Sport           string  `json:"sport"`
	HourlyRate      float64 `json:"hourly_rate"`
	Indoor          bool    `json:"indoor"`
	Address         string  `json:"address"`
}

func (r *courtReq) validate() string {
	r.Name = strings.TrimSpace(r.Name)
	r.Sport = strings.TrimSpace(r.Sport)
	r.Address = strings.TrimSpace(r.Address)
	switch {
	case r.Name == "":
		return "name required"
	case r.Sport == "":
		return "sport required"
	case r.HourlyRate <= 0:
		return "hourly_rate must be positive"
	}
	return ""
}

// CreateCourt adds a court under one of the caller's establishments. The
// sport must exist in the catalogue.
func (h *OwnerHandler) CreateCourt(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req courtReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.EstablishmentID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "establishment_id required"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	ctx := c.Request().Context()
	known, err := h.Sports.Exists(ctx, req.Sport)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "check sport failed"})
	}
	if !known {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown sport"})
	}
	court := model.Court{
		EstablishmentID: req.EstablishmentID,
		Name:            req.Name,
		Sport:           req.Sport,
		HourlyRate:      req.HourlyRate,
		Indoor:          req.Indoor,
		Address:         req.Address,
	}
	id, err := h.Courts.Create(ctx, uid, &court)
	if err != nil {
		return errJSON(c, err, "create court failed")
	}
	court.ID = id
	return c.JSON(http.StatusCreated, court)
}

// ListCourts returns every court across the caller's establishments.
func (h *OwnerHandler) ListCourts(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	list, err := h.Courts.ListByOwner(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list courts failed"})
	}
	return c.JSON(http.StatusOK, list)
}

// UpdateCourt rewrites a court's details.
func (h *OwnerHandler) UpdateCourt(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := paramID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req courtReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	ctx := c.Request().Context()
	known, err := h.Sports.Exists(ctx, req.Sport)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "check sport failed"})
	}
	if !known {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown sport"})
	}
	court := model.Court{
		ID:         id,
		Name:       req.Name,
		Sport:      req.Sport,
		HourlyRate: req.HourlyRate,
		Indoor:     req.Indoor,
		Address:    req.Address,
	}
	if err := h.Courts.Update(ctx, uid, &court); err != nil {
		return errJSON(c, err, "update court failed")
	}
	return c.JSON(http.StatusOK, court)
}

// DeleteCourt removes a court and its bookings.
func (h *OwnerHandler) DeleteCourt(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := paramID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Courts.Delete(c.Request().Context(), uid, id); err != nil {
		return errJSON(c, err, "delete court failed")
	}
	return c.NoContent(http.StatusNoContent)
}

// CourtPhotoHandler uploads court photos to external storage. Kept
// separate from OwnerHandler so deployments without Cloudinary simply do
// not register the route.
type CourtPhotoHandler struct {
	Owner    *OwnerHandler
	Uploader storage.Uploader
}

func NewCourtPhotoHandler(owner *OwnerHandler, up storage.Uploader) *CourtPhotoHandler {
	return &CourtPhotoHandler{Owner: owner, Uploader: up}
}

// Upload accepts a multipart "photo" file, stores it and saves the
// delivery URL on the court.
func (h *CourtPhotoHandler) Upload(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	courtID := paramID(c, "id")
	if courtID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	if err := h.Owner.Courts.CheckOwner(ctx, courtID, uid); err != nil {
		return errJSON(c, err, "load court failed")
	}
	fh, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "photo file required"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "open upload failed"})
	}
	defer src.Close()

	url, err := h.Uploader.Upload(ctx, src, fmt.Sprintf("court-%d", courtID))
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "photo upload failed"})
	}
	if err := h.Owner.Courts.UpdatePhotoURL(ctx, uid, courtID, url); err != nil {
		return errJSON(c, err, "save photo url failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"court_id": courtID, "photo_url": url})
}
