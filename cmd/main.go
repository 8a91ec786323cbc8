package main

import (
	"os"

	"delivery-booking/internal/cli"

	"github.com/gin-gonic/gin"
)

func init() {
	// never expose debug routes because of a missing setting
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           delivery-booking
// @version         1.0
// @description     Delivery method catalog, time slot availability and slot booking.

// @BasePath  /
// @schemes http https
func main() {
	if err := cli.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
