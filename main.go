package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/medremind/med-reminder-api/api/handlers"

	"go.uber.org/zap"

	"github.com/medremind/med-reminder-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		log.Fatal(err)
	}

	zap.S().Infow("med-reminder-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
