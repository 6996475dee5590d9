package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	gorillahandlers "github.com/gorilla/handlers"
	"go.uber.org/zap"

	"github.com/bigwigdigital/kpd-realty-api/api/handlers"
	"github.com/bigwigdigital/kpd-realty-api/api/scheduler"
	"github.com/bigwigdigital/kpd-realty-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil { //initialize database, mailer, uploader and router
		log.Fatal(err)
	}

	sched := scheduler.NewScheduler(a.Challenges)
	sched.Start()
	defer sched.Stop()

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins([]string{"*"}),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type"}),
	)

	port := os.Getenv("PORT")
	baseURL := os.Getenv("BASE_URL")
	zap.S().Infow("kpd-realty-api is up and running",
		"port", port,
		"url", baseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), cors(a.Router)))
}
