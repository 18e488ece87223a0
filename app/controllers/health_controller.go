package controllers

import (
	"context"
	"net/http"

	"blogcomments/app/response"

	"github.com/rs/zerolog"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	store Pinger
}

func NewHealthController(store Pinger) *HealthController {
	return &HealthController{store: store}
}

func (hc *HealthController) Show(w http.ResponseWriter, r *http.Request) {
	if err := hc.store.Ping(r.Context()); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("store ping failed")
		_ = response.Send(w, response.Options{Msg: "Store unavailable", Status: http.StatusServiceUnavailable})
		return
	}
	_ = response.Message(w, "ok")
}
