package routes

import (
	"context"
	"ecommerce-category-scraper/api"
	"ecommerce-category-scraper/internal/controllers"
	"ecommerce-category-scraper/internal/middleware"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type Route struct {
	Router         *mux.Router
	MainController *controllers.MainController
	Log            *slog.Logger
}

func NewRoute(router *mux.Router, mainController *controllers.MainController, log *slog.Logger) *Route {
	route := &Route{
		Router:         router,
		MainController: mainController,
		Log:            log,
	}
	route.Register()
	return route
}

func (route *Route) Register() {
	route.Router.Use(middleware.Logging(route.Log))
	route.Router.HandleFunc("/health", route.MainController.Health).Methods(http.MethodGet)

	route.Router.HandleFunc("/scrape", route.MainController.Scrape).Methods(http.MethodPost)
	route.Router.HandleFunc("/scrape/queue", route.MainController.EnqueueScrape).Methods(http.MethodPost)

	route.Router.PathPrefix("/swagger/").Handler(api.SwaggerHandler()).Methods(http.MethodGet)
}

// RunServer serves until ctx is done, then shuts down gracefully.
func (route *Route) RunServer(ctx context.Context, addr string) error {
	// Scrapes run inside the request, so there is no write timeout.
	server := &http.Server{
		Addr:              addr,
		Handler:           route.Router,
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		route.Log.Info("HTTP server listening", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
