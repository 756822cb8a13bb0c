package health

import (
	"net/http"
	"todolist/infras/otel"
	"todolist/internal/domains/health/service"
	"todolist/shared/constant"
	"todolist/transport/http/response"
	"todolist/transport/http/state"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Health
	state   *state.Tracker
	otel    otel.Otel
}

func New(service service.Health, tracker *state.Tracker, otel otel.Otel) Handler {
	return Handler{
		service: service,
		state:   tracker,
		otel:    otel,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/healthz", h.Health)
}

// Health reports readiness
// @Summary Health check
// @Description 200 while the server is ready and its stores answer, 503 otherwise.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Message
// @Router /healthz [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	if !h.state.IsReady() {
		scope.SetAttribute("server.state", h.state.Get().String())

		response.WithPreparingShutdown(w)

		return
	}

	if err := h.service.Check(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("health check failed")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
