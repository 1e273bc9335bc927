package internal

import (
	"guildpreview/internal/controllers"
	"guildpreview/internal/providers"
	"net/http"
)

func InitRoutes(templateController *controllers.TemplateController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/template", http.HandlerFunc(templateController.GetTemplate))
	routers.Get("/api/template", http.HandlerFunc(templateController.GetTemplateJSON))
	routers.Get("/", http.HandlerFunc(templateController.Index))
	return routers
}
