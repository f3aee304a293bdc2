package response

import (
	"ecommerce-category-scraper/internal/entity"
	"time"
)

type Response[T any] struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

type RunResponse struct {
	StartedAt  time.Time                `json:"started_at"`
	FinishedAt time.Time                `json:"finished_at"`
	Exports    []entity.CategoryExport  `json:"exports"`
	Failures   []entity.CategoryFailure `json:"failures,omitempty"`
}
