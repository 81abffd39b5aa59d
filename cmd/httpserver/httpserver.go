// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/accountdelivery"
	"github.com/go-petr/pet-ledger/internal/customerdelivery"
	"github.com/go-petr/pet-ledger/internal/ledgerservice"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/internal/notifier"
	"github.com/go-petr/pet-ledger/pkg/amountpkg"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/go-petr/pet-ledger/pkg/metricspkg"
)

// Server holds the ledger, handlers router and configuration.
type Server struct {
	Engine   *gin.Engine
	Config   configpkg.Config
	Ledger   *ledgerservice.Service
	Registry *prometheus.Registry
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	registry := prometheus.NewRegistry()

	recorder, err := metricspkg.NewPrometheusRecorder(config.MetricsNamespace, registry)
	if err != nil {
		return nil, errors.New("cannot register metrics")
	}

	ledger, err := ledgerservice.New(config, notifier.New(logger), recorder)
	if err != nil {
		return nil, errors.New("cannot initialize ledger service")
	}

	customerHandler := customerdelivery.NewHandler(ledger)
	accountHandler := accountdelivery.NewHandler(ledger)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/customers", customerHandler.Create)
	engine.GET("/customers/:id", customerHandler.Get)
	engine.POST("/customers/:id/accounts", customerHandler.OpenAccount)
	engine.GET("/customers/:id/accounts", customerHandler.ListAccounts)

	engine.GET("/accounts/:number", accountHandler.Get)
	engine.GET("/accounts/:number/history", accountHandler.History)
	engine.POST("/accounts/:number/deposits", accountHandler.Deposit)
	engine.POST("/accounts/:number/withdrawals", accountHandler.Withdraw)

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("amount", amountpkg.ValidAmount)
		if err != nil {
			return nil, errors.New("cannot register amount validator")
		}
	}

	server := &Server{
		Engine:   engine,
		Config:   config,
		Ledger:   ledger,
		Registry: registry,
	}

	return server, nil
}
