package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stellarpay/stellar-payment-service/middleware"
)

// NewRouter builds the Gin engine with middleware and all API routes.
func NewRouter(ctrl *StellarController, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))

	router.GET("/", ctrl.Root)

	api := router.Group("/api")
	{
		api.GET("", ctrl.APIInfo)
		api.GET("/create-keypair", ctrl.CreateKeypair)
		api.POST("/create-payment", ctrl.CreatePayment)
		api.POST("/create-trustline", ctrl.CreateTrustline)
		api.POST("/submit-transaction", ctrl.SubmitTransaction)
		api.GET("/account/:publicKey", ctrl.AccountDetails)
	}

	return router
}
