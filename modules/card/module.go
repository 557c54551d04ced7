package card

import (
	"go-cartmaster/modules/card/internal/feature/create"
	"go-cartmaster/modules/card/internal/feature/deactivate"
	deletebyowner "go-cartmaster/modules/card/internal/feature/delete-by-owner"
	getbyid "go-cartmaster/modules/card/internal/feature/get-by-id"
	"go-cartmaster/modules/card/internal/feature/list"
	setavailablelimit "go-cartmaster/modules/card/internal/feature/set-available-limit"
	"go-cartmaster/modules/card/internal/feature/update"
	"go-cartmaster/modules/card/internal/repository"
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
}

func (m *moduleImp) APIVersion() string {
	return "v1"
}

func (m *moduleImp) Init(reg registry.ServiceRegistry) error {
	// ใช้ตรวจว่าเจ้าของบัตรมีอยู่จริงตอนสร้างบัตร
	ownerReader, err := registry.ResolveAs[customercontract.CustomerReader](reg, customercontract.CustomerReaderKey)
	if err != nil {
		return err
	}

	repo := repository.NewCardRepository(m.mCtx.DBCtx)

	mediator.Register(create.NewCreateCardCommandHandler(repo, ownerReader))
	mediator.Register(list.NewListCardsQueryHandler(repo))
	mediator.Register(list.NewListCardsByOwnerQueryHandler(repo))
	mediator.Register(list.NewListCardsWithOwnersQueryHandler(repo))
	mediator.Register(getbyid.NewGetCardByIDQueryHandler(repo))
	mediator.Register(update.NewUpdateCardCommandHandler(m.mCtx.Transactor, repo))
	mediator.Register(deactivate.NewDeactivateCardCommandHandler(repo))
	mediator.Register(setavailablelimit.NewSetAvailableLimitCommandHandler(repo))

	// contract ที่ customer module เรียกใช้
	mediator.Register(list.NewListCardsByOwnersQueryHandler(repo))
	mediator.Register(deletebyowner.NewDeleteCardsByOwnerCommandHandler(repo))

	return nil
}

func (m *moduleImp) RegisterRoutes(router fiber.Router) {
	cards := router.Group("/tarjetas")
	// route แบบ static ต้องมาก่อน /:tarjetaId
	list.NewEndpoint(cards, "")
	list.NewWithOwnersEndpoint(cards, "/con-clientes")
	list.NewByOwnerEndpoint(cards, "/cliente/:clienteId")
	create.NewEndpoint(cards, "/crear/:clienteId")
	update.NewExtendedEndpoint(cards, "/actualizar_con_cupos/:tarjetaId")
	update.NewGeneralDataEndpoint(cards, "/datos-generales/:tarjetaId")
	getbyid.NewEndpoint(cards, "/:tarjetaId")
	update.NewEndpoint(cards, "/:tarjetaId")
	deactivate.NewEndpoint(cards, "/:tarjetaId")
	setavailablelimit.NewEndpoint(cards, "/:tarjetaId/cupo-disponible")

	list.NewByOwnerEndpoint(router, "/clientes/:clienteId/tarjetas")
}
