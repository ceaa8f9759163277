package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Ivanvillan/front-820hd-sub000/internal/cli"
)

// @title           Help Desk Orders API
// @version         1.0
// @description     Work orders for field and lab technicians, backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Role
// @in header
// @name X-User-Role

func main() {
	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
