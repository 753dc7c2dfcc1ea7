package api

import (
	"net/http"

	resdto "washbay/internal/handler/dto/response"
	"washbay/internal/handler/httperr"
	"washbay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	q queries.CandidateQueries
}

func NewBookingHandler(q queries.CandidateQueries) *BookingHandler {
	return &BookingHandler{q: q}
}

// @Summary List no-show fee candidates
// @Description List accepted bookings at least 48 hours past their start with a stored card and no recorded fee
// @Tags bookings
// @Produce json
// @Success 200 {object} map[string][]resdto.NoShowCandidateResponse
// @Failure 500 {object} map[string]string
// @Router /bookings/no-show-candidates [get]
func (h *BookingHandler) ListNoShowCandidates(c *gin.Context) {
	views, err := h.q.ListNoShowCandidates(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": resdto.FromCandidateList(views)})
}
