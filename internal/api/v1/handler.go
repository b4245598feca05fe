package v1

import (
	"strconv"

	"github.com/Behyna/payments-engine/internal/api/contract"
	"github.com/Behyna/payments-engine/internal/constants"
	"github.com/Behyna/payments-engine/internal/model"
	"github.com/Behyna/payments-engine/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger *zap.Logger
	ledger service.LedgerService
}

func NewHandler(logger *zap.Logger, ledger service.LedgerService) *Handler {
	return &Handler{logger: logger, ledger: ledger}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) ListAccounts(c *fiber.Ctx) error {
	accounts := h.ledger.Accounts()

	summaries := make([]contract.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, toSummary(account))
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Result:     summaries,
	})
}

func (h *Handler) GetAccount(c *fiber.Ctx) error {
	clientID, err := strconv.ParseUint(c.Params("id"), 10, 16)
	if err != nil {
		h.logger.Warn("invalid client id", zap.String("id", c.Params("id")), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRecord,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRecord),
		})
	}

	account, err := h.ledger.Account(uint16(clientID))
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Result:     toSummary(account),
	})
}

func toSummary(account model.Account) contract.AccountSummary {
	return contract.AccountSummary{
		ClientID:  account.ClientID,
		Available: account.Available.String(),
		Held:      account.Held.String(),
		Total:     account.Total().String(),
		Locked:    account.Locked,
	}
}
