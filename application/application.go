package application

import (
	"context"
	"fmt"

	"go-cartmaster/config"
	"go-cartmaster/shared/common/logger"
	"go-cartmaster/shared/common/module"
	"go-cartmaster/shared/common/registry"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// HealthCheck คืน error เมื่อ dependency (เช่น database) ใช้งานไม่ได้
type HealthCheck func(ctx context.Context) error

type Application struct {
	config          config.Config
	httpServer      HTTPServer
	serviceRegistry registry.ServiceRegistry
}

func New(config config.Config, healthCheck HealthCheck) *Application {
	// ตอบจำนวนเงินเป็น JSON number แทน string
	decimal.MarshalJSONWithoutQuotes = true

	return &Application{
		config:          config,
		httpServer:      newHTTPServer(config, healthCheck),
		serviceRegistry: registry.NewServiceRegistry(),
	}
}

func (app *Application) Run() error {
	app.httpServer.Start()

	return nil
}

func (app *Application) Shutdown() error {
	// Gracefully close fiber server
	logger.Log().Info("Shutting down server")
	if err := app.httpServer.Shutdown(); err != nil {
		logger.Log().Error("Error shutting down server", zap.Error(err))
		return err
	}
	logger.Log().Info("Server stopped")

	return nil
}

// RegisterModules ลงทะเบียน service ของทุกโมดูลก่อน แล้วค่อย Init
// เพราะโมดูลหนึ่งอาจ resolve service ของโมดูลที่ลงทะเบียนทีหลังได้
func (app *Application) RegisterModules(modules ...module.Module) error {
	for _, m := range modules {
		if sp, ok := m.(module.ServiceProvider); ok {
			for _, svc := range sp.Services() {
				app.serviceRegistry.Register(svc.Key, svc.Value)
			}
		}
	}

	for _, m := range modules {
		if err := m.Init(app.serviceRegistry); err != nil {
			return fmt.Errorf("failed to init module %T: %w", m, err)
		}
	}

	for _, m := range modules {
		// base url ตาม version ของโมดูล เช่น /api/v1
		router := app.httpServer.Group("/api/" + m.APIVersion())
		m.RegisterRoutes(router)
	}

	return nil
}
