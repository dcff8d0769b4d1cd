package main

import (
	"github.com/sirupsen/logrus"

	"github.com/stellarpay/stellar-payment-service/config"
	"github.com/stellarpay/stellar-payment-service/controllers"
	"github.com/stellarpay/stellar-payment-service/services"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	service := services.NewStellarService(cfg)
	controller := controllers.NewStellarController(service)
	router := controllers.NewRouter(controller, log)

	log.WithField("port", cfg.Port).Info("starting stellar payment service")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
