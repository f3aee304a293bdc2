package api

import (
	"net/http"

	_ "ecommerce-category-scraper/api/docs"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// SwaggerHandler serves the Swagger UI and the generated doc.json.
func SwaggerHandler() http.Handler {
	return httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)
}
