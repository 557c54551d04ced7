package list

import (
	"go-cartmaster/shared/common/httputil"
	"go-cartmaster/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Get(path, listCardsHTTPHandler)
}

func NewByOwnerEndpoint(router fiber.Router, path string) {
	router.Get(path, listCardsByOwnerHTTPHandler)
}

func NewWithOwnersEndpoint(router fiber.Router, path string) {
	router.Get(path, listCardsWithOwnersHTTPHandler)
}

// ListCards godoc
// @Summary		List Cards
// @Description	List every card with its owner
// @Tags			Card
// @Produce		json
// @Success		200	{array}	dto.CardResponse
// @Router			/tarjetas [get]
func listCardsHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:ListCards")
	defer span.End()

	resp, err := mediator.Send[*ListCardsQuery, *ListCardsQueryResult](ctx, &ListCardsQuery{})
	if err != nil {
		return err
	}
	return c.JSON(resp.Cards)
}

// ListCardsByOwner godoc
// @Summary		List Cards By Owner
// @Description	List the cards of one customer
// @Tags			Card
// @Produce		json
// @Param			clienteId	path	int	true	"Customer ID"
// @Failure		400
// @Success		200	{array}	dto.CardResponse
// @Router			/tarjetas/cliente/{clienteId} [get]
// @Router			/clientes/{clienteId}/tarjetas [get]
func listCardsByOwnerHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:ListCardsByOwner")
	defer span.End()

	ownerID, err := httputil.ParamID(c, "clienteId")
	if err != nil {
		return err
	}

	resp, err := mediator.Send[*ListCardsByOwnerQuery, *ListCardsQueryResult](ctx, &ListCardsByOwnerQuery{OwnerID: ownerID})
	if err != nil {
		return err
	}
	return c.JSON(resp.Cards)
}

// ListCardsWithOwners godoc
// @Summary		List Cards With Owners
// @Description	List every card flattened together with its owner
// @Tags			Card
// @Produce		json
// @Success		200	{array}	dto.CardWithOwnerResponse
// @Router			/tarjetas/con-clientes [get]
func listCardsWithOwnersHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:ListCardsWithOwners")
	defer span.End()

	resp, err := mediator.Send[*ListCardsWithOwnersQuery, *ListCardsWithOwnersQueryResult](ctx, &ListCardsWithOwnersQuery{})
	if err != nil {
		return err
	}
	return c.JSON(resp.Cards)
}
