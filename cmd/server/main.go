package main

import (
	"net/http"
	"os"

	"healthsync/internal/app/server/api"
	"healthsync/internal/app/server/config"
	"healthsync/internal/utils/logger"
)

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	mux := api.New(log)

	log.Info("starting server", "address", conf.Server.RunAddress, "env", conf.Env)
	if err := http.ListenAndServe(conf.Server.RunAddress, mux); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
