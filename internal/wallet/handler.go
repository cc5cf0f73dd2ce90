package wallet

import (
	"errors"
	"net/http"

	"eventpass/internal/auth"
	"eventpass/internal/catalog"
	"eventpass/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetState godoc
// @Summary      Wallet state
// @Description  Returns balance, owned passes and recent ledger entries.
// @Tags         wallet
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  State
// @Failure      401  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /wallet [get]
func (h *Handler) GetState(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	state, err := h.service.State(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load wallet"})
		return
	}

	c.JSON(http.StatusOK, state)
}

// TopUp godoc
// @Summary      Top up wallet
// @Description  Adds a positive amount of cents to the wallet balance.
// @Tags         wallet
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      TopUpRequest  true  "Top-up amount"
// @Success      200      {object}  gin.H
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /wallet/topup [post]
func (h *Handler) TopUp(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount_cents must be positive"})
		return
	}

	balance, err := h.service.TopUp(c.Request.Context(), userID, req.AmountCents)
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount_cents must be positive"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to top up wallet"})
		return
	}

	metrics.RecordWalletTopUp()

	c.JSON(http.StatusOK, gin.H{
		"message":       "wallet recharged",
		"balance_cents": balance,
	})
}

// ListPackages godoc
// @Summary      List pass packages
// @Description  Returns the static catalog of purchasable pass bundles.
// @Tags         packages
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  catalog.PassPackage
// @Router       /packages [get]
func (h *Handler) ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Packages())
}

// PurchasePackage godoc
// @Summary      Purchase pass package
// @Description  Debits the wallet and grants a new pass with the package's credits.
// @Tags         packages
// @Security     BearerAuth
// @Produce      json
// @Param        packageID  path      string  true  "Package ID"
// @Success      200        {object}  State
// @Failure      401        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /packages/{packageID}/purchase [post]
func (h *Handler) PurchasePackage(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	packageID := c.Param("packageID")

	state, err := h.service.PurchasePackage(c.Request.Context(), userID, packageID)
	if err != nil {
		switch {
		case errors.Is(err, ErrPackageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
		case errors.Is(err, ErrInsufficientWallet):
			c.JSON(http.StatusConflict, gin.H{"error": "insufficient wallet balance"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to purchase package"})
		}
		return
	}

	metrics.RecordPackagePurchase(packageID)

	c.JSON(http.StatusOK, state)
}
