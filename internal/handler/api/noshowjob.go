package api

import (
	"errors"
	"log/slog"
	"net/http"

	resdto "washbay/internal/handler/dto/response"
	"washbay/internal/handler/httperr"
	"washbay/internal/pkg/config"
	"washbay/internal/pkg/errs"
	"washbay/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type NoShowJobHandler struct {
	cmds commands.NoShowFeeCommands
	cfg  config.NoShowFeeConfig
}

func NewNoShowJobHandler(cmds commands.NoShowFeeCommands, cfg config.Config) *NoShowJobHandler {
	return &NoShowJobHandler{cmds: cmds, cfg: cfg.NoShowFee}
}

// @Summary Run no-show fee assessment
// @Description Scan recent bookings and charge no-show fees where due. Safe to re-trigger; settled bookings are skipped.
// @Tags jobs
// @Produce json
// @Param X-Job-Secret header string false "Job trigger secret"
// @Success 200 {object} resdto.NoShowRunResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /jobs/no-show-fees/run [get]
func (h *NoShowJobHandler) Run(c *gin.Context) {
	if !h.cfg.Enabled {
		httperr.AbortWithError(c, http.StatusServiceUnavailable,
			errs.New("no-show fee assessment disabled"), "Assessment disabled", nil)
		return
	}

	summary, err := h.cmds.Run(c.Request.Context())
	if err != nil {
		if errors.Is(err, errs.ErrScanFailed) {
			slog.Error("no-show fee run aborted: booking scan failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Booking scan failed", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRunSummary(summary))
}
