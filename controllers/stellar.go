package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stellarpay/stellar-payment-service/models"
	"github.com/stellarpay/stellar-payment-service/services"
)

// StellarController handles transaction-building HTTP requests
type StellarController struct {
	Service *services.StellarService
}

// NewStellarController creates a new StellarController instance
func NewStellarController(service *services.StellarService) *StellarController {
	return &StellarController{Service: service}
}

// Root handles GET /
func (ctrl *StellarController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// APIInfo handles GET /api
func (ctrl *StellarController) APIInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Stellar payment service: keypair generation, payment and trustline building, transaction submission",
	})
}

// CreateKeypair handles GET /api/create-keypair
func (ctrl *StellarController) CreateKeypair(c *gin.Context) {
	response, err := ctrl.Service.CreateKeypair()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// CreatePayment handles POST /api/create-payment
func (ctrl *StellarController) CreatePayment(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	if req.SourceSecret == "" || req.DestinationAddress == "" || req.Amount == "" {
		badRequest(c, "sourceSecret, destinationAddress and amount are required")
		return
	}

	signedXDR, err := ctrl.Service.CreatePayment(req)
	if err != nil {
		if errors.Is(err, services.ErrIssuerRequired) {
			badRequest(c, err.Error())
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SignedTransactionResponse{Success: true, SignedXDR: signedXDR})
}

// CreateTrustline handles POST /api/create-trustline
func (ctrl *StellarController) CreateTrustline(c *gin.Context) {
	var req models.TrustlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	if req.SecretKey == "" || req.AssetCode == "" || req.AssetIssuer == "" {
		badRequest(c, "secretKey, assetCode and assetIssuer are required")
		return
	}

	signedXDR, err := ctrl.Service.CreateTrustline(req)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SignedTransactionResponse{Success: true, SignedXDR: signedXDR})
}

// SubmitTransaction handles POST /api/submit-transaction
func (ctrl *StellarController) SubmitTransaction(c *gin.Context) {
	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	if req.SignedXDR == "" {
		badRequest(c, "signedXDR is required")
		return
	}

	response, err := ctrl.Service.SubmitTransaction(req.SignedXDR)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// AccountDetails handles GET /api/account/:publicKey
func (ctrl *StellarController) AccountDetails(c *gin.Context) {
	response, err := ctrl.Service.AccountDetails(c.Param("publicKey"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidPublicKey) {
			badRequest(c, err.Error())
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: message})
}

func serverError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Error: err.Error()})
}
