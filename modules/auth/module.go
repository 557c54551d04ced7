package auth

import (
	"context"

	"go-cartmaster/modules/auth/internal/feature/login"
	"go-cartmaster/modules/auth/internal/model"
	"go-cartmaster/modules/auth/internal/repository"
	"go-cartmaster/shared/common/mediator"
	"go-cartmaster/shared/common/module"
	"go-cartmaster/shared/common/registry"
	"go-cartmaster/shared/common/storage/sqldb/transactor"
	"go-cartmaster/shared/contract/customercontract"

	"github.com/gofiber/fiber/v3"
)

func NewModule(mCtx *module.ModuleContext) module.Module {
	return &moduleImp{mCtx: mCtx}
}

type moduleImp struct {
	mCtx *module.ModuleContext
}

func (m *moduleImp) APIVersion() string {
	return "v1"
}

func (m *moduleImp) Init(reg registry.ServiceRegistry) error {
	custRd, err := registry.ResolveAs[customercontract.CustomerReader](reg, customercontract.CustomerReaderKey)
	if err != nil {
		return err
	}

	repo := repository.NewAdministratorRepository(m.mCtx.DBCtx)

	mediator.Register(login.NewLoginCommandHandler(repo, custRd))

	return nil
}

func (m *moduleImp) RegisterRoutes(router fiber.Router) {
	customers := router.Group("/clientes")
	login.NewEndpoint(customers, "/login")
}

// SeedAdministrator สร้างผู้ดูแลระบบถ้ายังไม่มีอีเมลนี้ คืน false เมื่อมีอยู่แล้ว
func SeedAdministrator(ctx context.Context, dbCtx transactor.DBTXContext, email, password string) (bool, error) {
	repo := repository.NewAdministratorRepository(dbCtx)
	return repo.CreateIfAbsent(ctx, model.NewAdministrator(email, password))
}
