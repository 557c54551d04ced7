package middleware

import (
	"fmt"
	"strings"

	"go-cartmaster/build"
	"go-cartmaster/config"
	"go-cartmaster/docs"

	"github.com/gofiber/fiber/v3"
	fiberSwagger "github.com/somprasongd/fiber-swagger"
)

func APIDoc(config config.Config) fiber.Handler {
	host := removeProtocol(config.GatewayHost)
	basePath := config.GatewayBasePath

	if len(host) == 0 {
		host = fmt.Sprintf("localhost:%d", config.HTTPPort)
	}
	if len(basePath) == 0 {
		basePath = "/api/v1"
	}

	docs.SwaggerInfo.Title = "Cartmaster API"
	docs.SwaggerInfo.Description = "Customers, login and credit cards."
	docs.SwaggerInfo.Version = build.Version
	docs.SwaggerInfo.Host = host
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	return fiberSwagger.WrapHandler
}

func removeProtocol(url string) string {
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "https://")
	return url
}
