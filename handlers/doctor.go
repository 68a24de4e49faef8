package handlers

import (
	"net/http"
	"time"

	"docbook/config"
	"docbook/models"
	"docbook/services/booking"
	"docbook/services/directory"
	"docbook/utils"

	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	DirectorySvc directory.DirectoryService
	Location     *time.Location
}

func NewDirectoryHandler(svc directory.DirectoryService, loc *time.Location) *DirectoryHandler {
	if loc == nil {
		loc = config.Location()
	}
	return &DirectoryHandler{DirectorySvc: svc, Location: loc}
}

// ListDoctorsHandler serves GET /api/doctors?q=&specialty=.
func (h *DirectoryHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.DirectorySvc.Search(c.Request.Context(), directory.SearchQuery{
		Query:     c.Query("q"),
		Specialty: c.Query("specialty"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(doctors), "doctors": doctors})
}

func (h *DirectoryHandler) GetDoctorHandler(c *gin.Context) {
	doctor, err := h.DirectorySvc.GetDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *DirectoryHandler) SpecialtiesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"specialties": h.DirectorySvc.Specialties()})
}

// TimeSlotsHandler serves the slot grid of a doctor for ?date=YYYY-MM-DD (today by default).
func (h *DirectoryHandler) TimeSlotsHandler(c *gin.Context) {
	if _, err := h.DirectorySvc.GetDoctor(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	date := time.Now().In(h.Location)
	if raw := c.Query("date"); raw != "" {
		parsed, err := booking.ParseDate(raw, h.Location)
		if err != nil {
			utils.JSONFieldError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", []string{booking.FieldDate})
			return
		}
		date = parsed
	}
	c.JSON(http.StatusOK, models.DaySlots{
		Date:  date.Format(booking.DateLayout),
		Slots: h.DirectorySvc.TimeSlots(date),
	})
}
