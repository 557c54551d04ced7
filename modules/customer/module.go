package customer

import (
	deletebyid "go-cartmaster/modules/customer/internal/feature/delete-by-id"
	deletewithcards "go-cartmaster/modules/customer/internal/feature/delete-with-cards"
	"go-cartmaster/modules/customer/internal/feature/list"
	"go-cartmaster/modules/customer/internal/feature/register"
	"go-cartmaster/modules/customer/internal/repository"
	"go-cartmaster/modules/customer/internal/service"
	"go-cartmaster/shared/common/mediator"
	"go-cartmaster/shared/common/module"
	"go-cartmaster/shared/common/registry"
	"go-cartmaster/shared/contract/customercontract"

	"github.com/gofiber/fiber/v3"
)

func NewModule(mCtx *module.ModuleContext) module.Module {
	return &moduleImp{mCtx: mCtx}
}

type moduleImp struct {
	mCtx *module.ModuleContext
	repo repository.CustomerRepository
}

func (m *moduleImp) APIVersion() string {
	return "v1"
}

// Services ถูกเรียกก่อน Init ของทุกโมดูล โมดูลอื่นจึง resolve reader ได้ตอน Init
func (m *moduleImp) Services() []registry.ProvidedService {
	return []registry.ProvidedService{
		{Key: customercontract.CustomerReaderKey, Value: service.NewCustomerReader(m.repository())},
	}
}

func (m *moduleImp) Init(reg registry.ServiceRegistry) error {
	repo := m.repository()

	mediator.Register(register.NewRegisterCustomerCommandHandler(m.mCtx.Transactor, repo))
	mediator.Register(list.NewListCustomersQueryHandler(repo))
	mediator.Register(deletebyid.NewDeleteCustomerCommandHandler(repo))
	mediator.Register(deletewithcards.NewDeleteCustomerWithCardsCommandHandler(m.mCtx.Transactor, repo))

	return nil
}

func (m *moduleImp) RegisterRoutes(router fiber.Router) {
	customers := router.Group("/clientes")
	register.NewEndpoint(customers, "/registro")
	list.NewEndpoint(customers, "")
	deletebyid.NewEndpoint(customers, "/:clienteId")
}

func (m *moduleImp) repository() repository.CustomerRepository {
	if m.repo == nil {
		m.repo = repository.NewCustomerRepository(m.mCtx.DBCtx)
	}
	return m.repo
}
