package controllers

import (
	"context"
	"ecommerce-category-scraper/internal/model/response"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

type Runner interface {
	Run(ctx context.Context) (*response.RunResponse, error)
}

type RequestPublisher interface {
	CreateMessageStartScraping(requestedBy string) error
}

// MainController exposes the scraper over HTTP.
type MainController struct {
	Runner Runner
	// Producer is nil when messaging is disabled.
	Producer RequestPublisher
	Log      *slog.Logger
}

func NewMainController(runner Runner, producer RequestPublisher, log *slog.Logger) *MainController {
	return &MainController{
		Runner:   runner,
		Producer: producer,
		Log:      log,
	}
}

// Scrape godoc
// @Summary Run a scrape
// @Description Scrapes every category into CSV files and returns what was written.
// @Tags scrape
// @Produce json
// @Success 200 {object} response.Response[response.RunResponse]
// @Failure 409 {object} response.Response[response.RunResponse]
// @Failure 500 {object} response.Response[response.RunResponse]
// @Router /scrape [post]
func (mainController *MainController) Scrape(w http.ResponseWriter, r *http.Request) {
	result, err := mainController.Runner.Run(r.Context())
	switch {
	case errors.Is(err, ErrRunInProgress):
		writeJSON(w, &response.Response[*response.RunResponse]{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case err != nil:
		writeJSON(w, &response.Response[*response.RunResponse]{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			Data:    result,
		})
	default:
		writeJSON(w, &response.Response[*response.RunResponse]{
			Code:    http.StatusOK,
			Message: "Success",
			Data:    result,
		})
	}
}

// EnqueueScrape godoc
// @Summary Queue a scrape
// @Description Publishes a scrape request to the request queue.
// @Tags scrape
// @Produce json
// @Success 202 {object} response.Response[string]
// @Failure 503 {object} response.Response[string]
// @Router /scrape/queue [post]
func (mainController *MainController) EnqueueScrape(w http.ResponseWriter, r *http.Request) {
	if mainController.Producer == nil {
		writeJSON(w, &response.Response[string]{
			Code:    http.StatusServiceUnavailable,
			Message: "messaging is not configured",
		})
		return
	}
	if err := mainController.Producer.CreateMessageStartScraping(r.RemoteAddr); err != nil {
		mainController.Log.Error("Failed to publish scrape request", "error", err)
		writeJSON(w, &response.Response[string]{
			Code:    http.StatusServiceUnavailable,
			Message: err.Error(),
		})
		return
	}
	writeJSON(w, &response.Response[string]{
		Code:    http.StatusAccepted,
		Message: "Scrape queued",
	})
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (mainController *MainController) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func writeJSON[T any](w http.ResponseWriter, result *response.Response[T]) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(result.Code)
	json.NewEncoder(w).Encode(result)
}
