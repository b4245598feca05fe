package api

import (
	v1 "github.com/Behyna/payments-engine/internal/api/v1"
	"github.com/gofiber/fiber/v2"
)

const prefixV1 = "/v1/"

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get(prefixV1+"accounts", handler.ListAccounts)
	app.Get(prefixV1+"accounts/:id", handler.GetAccount)
}
