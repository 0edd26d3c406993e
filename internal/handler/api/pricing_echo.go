package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"PricePull/internal/domain/models"
	domrepo "PricePull/internal/domain/repository"
	icache "PricePull/internal/service/cache"
	"PricePull/internal/service/metrics"
	"PricePull/internal/service/ratelimit"
	"PricePull/internal/usecase"
	xhttp "PricePull/pkg/http"
	xlogger "PricePull/pkg/logger"
)

// PricingEchoHandler exposes the pricing pipeline and the fixture snapshot
// over HTTP.
type PricingEchoHandler struct {
	logger    *xlogger.Logger
	estimator *usecase.Estimator
	store     domrepo.FixtureStore
	recorder  domrepo.Metrics

	cache    icache.BytesCache
	cacheTTL time.Duration

	rl           *ratelimit.Limiter
	rlCapacity   float64
	rlRefillRate float64
}

func NewPricingEchoHandler(
	logger *xlogger.Logger,
	estimator *usecase.Estimator,
	store domrepo.FixtureStore,
	recorder domrepo.Metrics,
) *PricingEchoHandler {
	metrics.Register()
	return &PricingEchoHandler{
		logger:       logger,
		estimator:    estimator,
		store:        store,
		recorder:     recorder,
		rl:           ratelimit.New(),
		rlCapacity:   5,
		rlRefillRate: 2,
	}
}

// SetCache enables estimate-response caching.
func (h *PricingEchoHandler) SetCache(c icache.BytesCache, ttl time.Duration) {
	h.cache = c
	h.cacheTTL = ttl
}

// SetRateLimit overrides the default per-client token bucket parameters.
func (h *PricingEchoHandler) SetRateLimit(capacity, refillPerSec float64) {
	h.rlCapacity = capacity
	h.rlRefillRate = refillPerSec
}

func (h *PricingEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/estimate", h.Estimate)
	g.GET("/customers", h.Customers)
	g.GET("/products", h.Products)
	g.GET("/competitors", h.Competitors)
	g.GET("/market", h.Market)
}

func (h *PricingEchoHandler) Estimate(c echo.Context) error {
	start := time.Now()
	endpoint := "estimate"
	defer func() { metrics.EstimateLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.EstimateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		metrics.EstimateErrors.WithLabelValues(endpoint).Inc()
		return xhttp.BadRequestResponse(c, verr)
	}

	if !h.rl.Allow(c.RealIP()+":estimate", h.rlCapacity, h.rlRefillRate) {
		h.logger.Warn("estimate rate_limited", xlogger.String("remote", c.RealIP()))
		return xhttp.TooManyRequestsResponse(c, "rate limited")
	}

	key := estimateCacheKey(req)
	if h.cache != nil {
		if b, ok, err := h.cache.GetBytes(key); err != nil {
			h.logger.Warn("estimate cache_get_error", xlogger.Error(err))
		} else if ok {
			h.logger.Debug("estimate cache_hit", xlogger.String("key", key))
			var cached models.PriceEstimate
			if err := json.Unmarshal(b, &cached); err == nil {
				return xhttp.SuccessResponse(c, &cached)
			}
		}
	}

	res, err := h.estimator.Estimate(usecase.EstimateParams{
		CustomerID:           req.CustomerID,
		ProductID:            req.ProductID,
		Quantity:             req.Quantity,
		DesiredMarginPercent: req.DesiredMarginPercent,
		Options:              req.Options.ToFactorOptions(),
	})
	if err != nil {
		metrics.EstimateErrors.WithLabelValues(endpoint).Inc()
		var nf *models.NotFoundError
		if errors.As(err, &nf) {
			h.recorder.RecordError("not_found")
			return xhttp.NotFoundResponse(c, nf.Error())
		}
		h.recorder.RecordError("estimate")
		h.logger.Error("estimate usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	h.recorder.RecordEstimate(req.ProductID)
	h.recorder.RecordEstimatedPrice(req.ProductID, res.EstimatedPrice)
	h.recorder.RecordLatency("estimate", time.Since(start).Seconds())

	if h.cache != nil {
		if b, err := json.Marshal(res); err == nil {
			if err := h.cache.SetBytes(key, b, h.cacheTTL); err != nil {
				h.logger.Warn("estimate cache_set_error", xlogger.Error(err))
			}
		}
	}

	h.logger.Info("estimate served",
		xlogger.String("customer", req.CustomerID),
		xlogger.String("product", req.ProductID),
		xlogger.Int("quantity", req.Quantity),
		xlogger.Float64("price", res.EstimatedPrice),
	)
	return xhttp.SuccessResponse(c, res)
}

func (h *PricingEchoHandler) Customers(c echo.Context) error {
	rows := h.store.ListCustomers()
	return xhttp.ListResponse(c, rows, int64(len(rows)))
}

func (h *PricingEchoHandler) Products(c echo.Context) error {
	rows := h.store.ListProducts()
	return xhttp.ListResponse(c, rows, int64(len(rows)))
}

func (h *PricingEchoHandler) Competitors(c echo.Context) error {
	rows := h.store.ListCompetitors()
	return xhttp.ListResponse(c, rows, int64(len(rows)))
}

func (h *PricingEchoHandler) Market(c echo.Context) error {
	mc := h.store.CurrentMarketCondition()
	return xhttp.SuccessResponse(c, mc)
}

// estimateCacheKey keys the cache on the full request shape so toggles and
// margins never collide.
func estimateCacheKey(req *models.EstimateRequest) string {
	opts := req.Options.ToFactorOptions()
	margin := "fair"
	if req.DesiredMarginPercent != nil {
		margin = fmt.Sprintf("%.2f", *req.DesiredMarginPercent)
	}
	return fmt.Sprintf("estimate:%s:%s:%d:%s:%t%t%t%t",
		req.CustomerID, req.ProductID, req.Quantity, margin,
		opts.IncludeRelationshipStrength, opts.IncludeMarketConditions,
		opts.IncludeDiscountAgreement, opts.IncludeLiquidityStatus)
}
