package internal

import (
	"insightd/internal/controllers"
	"insightd/internal/providers"
	"insightd/internal/structures"
	"net/http"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/insights", http.HandlerFunc(apiController.GetInsights))
	routers.Post("/insights", http.HandlerFunc(apiController.CreateInsight))
	routers.Delete("/insights", http.HandlerFunc(apiController.DeleteInsight))
	routers.Get("/dashboard", http.HandlerFunc(apiController.GetDashboard))
	routers.Post("/analysis/image", http.HandlerFunc(apiController.ExtractInsightImage))
	routers.Post("/analysis/video", http.HandlerFunc(apiController.AnalyzeVideo))
	routers.Get("/export/csv", http.HandlerFunc(apiController.ExportCSV))
	routers.Get("/export/pdf", http.HandlerFunc(apiController.ExportPDF))
	return routers
}
