// Package customerdelivery manages delivery layer of customers.
package customerdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// BirthDateLayout is the accepted format of birth dates.
const BirthDateLayout = "2006-01-02"

// Service provides service layer interface needed by customer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package customerdelivery
type Service interface {
	CreateCustomer(ctx context.Context, arg domain.CreateCustomerParams) (domain.CustomerSummary, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (domain.CustomerSummary, error)
	OpenCheckingAccount(ctx context.Context, customerID uuid.UUID) (domain.AccountSummary, error)
	ListAccounts(ctx context.Context, customerID uuid.UUID) ([]domain.AccountSummary, error)
}

// Handler facilitates customer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns customer handler.
func NewHandler(cs Service) *Handler {
	return &Handler{service: cs}
}

type customerData struct {
	Customer domain.CustomerSummary `json:"customer"`
}

type accountData struct {
	Account domain.AccountSummary `json:"account"`
}

type accountsData struct {
	Accounts []domain.AccountSummary `json:"accounts"`
}

type createRequest struct {
	TaxID     string `json:"tax_id" binding:"required,numeric"`
	Name      string `json:"name" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required,datetime=2006-01-02"`
	Address   string `json:"address" binding:"required"`
}

type customerURI struct {
	ID string `uri:"id" binding:"required,uuid"`
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

	if errors.Is(err, domain.ErrCustomerNotFound) {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusNotFound, web.Error(err))

		return
	}

	l.Error().Err(err).Send()
	gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
}

// Create handles http request to create customer.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		badRequest(gctx, l, err)
		return
	}

	birthDate, err := time.Parse(BirthDateLayout, req.BirthDate)
	if err != nil {
		badRequest(gctx, l, err)
		return
	}

	arg := domain.CreateCustomerParams{
		TaxID:     req.TaxID,
		Name:      req.Name,
		BirthDate: birthDate,
		Address:   req.Address,
	}

	customer, err := h.service.CreateCustomer(ctx, arg)
	if err != nil {
		serviceError(gctx, l, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: customerData{customer}})
}

// Get handles http request to get customer.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri customerURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, l, err)
		return
	}

	customer, err := h.service.GetCustomer(ctx, uuid.MustParse(uri.ID))
	if err != nil {
		serviceError(gctx, l, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: customerData{customer}})
}

// OpenAccount handles http request to open a checking account for customer.
func (h *Handler) OpenAccount(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri customerURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, l, err)
		return
	}

	account, err := h.service.OpenCheckingAccount(ctx, uuid.MustParse(uri.ID))
	if err != nil {
		serviceError(gctx, l, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: accountData{account}})
}

// ListAccounts handles http request to list customer accounts.
func (h *Handler) ListAccounts(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri customerURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		badRequest(gctx, l, err)
		return
	}

	accounts, err := h.service.ListAccounts(ctx, uuid.MustParse(uri.ID))
	if err != nil {
		serviceError(gctx, l, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountsData{accounts}})
}
