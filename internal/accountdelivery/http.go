// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	GetAccount(ctx context.Context, number int64) (domain.AccountSummary, error)
	History(ctx context.Context, number int64) ([]domain.Record, error)
	Deposit(ctx context.Context, customerID uuid.UUID, number int64, amount string) (domain.AccountSummary, error)
	Withdraw(ctx context.Context, customerID uuid.UUID, number int64, amount string) (domain.AccountSummary, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) *Handler {
	return &Handler{service: as}
}

type accountData struct {
	Account domain.AccountSummary `json:"account"`
}

type historyData struct {
	Records []domain.Record `json:"records"`
}

type accountURI struct {
	Number int64 `uri:"number" binding:"required,min=1"`
}

type transactionRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
	Amount     string `json:"amount" binding:"required,amount"`
}

func badRequest(gctx *gin.Context, l *zerolog.Logger, err error) {
	l.Info().Err(err).Send()
	_ = gctx.Error(err)

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})
		return
	}

	gctx.JSON(http.StatusBadRequest, web.Error(err))
}

func serviceError(gctx *gin.Context, l *zerolog.Logger, err error) {
	_ = gctx.Error(err)

	switch {
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrCustomerNotFound):
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case domain.IsRuleViolation(err):
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

// Get handles http request to get account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, l, err)
		return
	}

	account, err := h.service.GetAccount(ctx, uri.Number)
	if err != nil {
		serviceError(gctx, l, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountData{account}})
}

// History handles http request to list the recorded transactions of an account.
func (h *Handler) History(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, l, err)
		return
	}

	records, err := h.service.History(ctx, uri.Number)
	if err != nil {
		serviceError(gctx, l, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: historyData{records}})
}

// Deposit handles http request to deposit money into an account.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.transact(gctx, h.service.Deposit)
}

// Withdraw handles http request to withdraw money from an account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.transact(gctx, h.service.Withdraw)
}

type transactFunc func(ctx context.Context, customerID uuid.UUID, number int64, amount string) (domain.AccountSummary, error)

func (h *Handler) transact(gctx *gin.Context, perform transactFunc) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, l, err)
		return
	}

	var req transactionRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, l, err)
		return
	}

	account, err := perform(ctx, uuid.MustParse(req.CustomerID), uri.Number, req.Amount)
	if err != nil {
		serviceError(gctx, l, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountData{account}})
}
