package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/bigwigdigital/kpd-realty-api/api"
	"github.com/bigwigdigital/kpd-realty-api/config"
	"github.com/bigwigdigital/kpd-realty-api/databases"
	"github.com/bigwigdigital/kpd-realty-api/mailer"
	"github.com/bigwigdigital/kpd-realty-api/models"
	"github.com/bigwigdigital/kpd-realty-api/otp"
	"github.com/bigwigdigital/kpd-realty-api/storage"
)

// requestTimeout caps total handling time for any single request, large image
// uploads included
const requestTimeout = 60 * time.Second

// App stores the router and db connection, so it can be reused
type App struct {
	Router     *mux.Router
	Config     config.Config
	Challenges otp.Store
	Mailer     mailer.Mailer
	Uploader   storage.Uploader
	dbHelper   databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()
	r.Use(api.RequestLogger)
	r.Use(api.TimeoutMiddleware(requestTimeout))

	l := Lead{
		DB:         databases.NewLeadDatabase(a.dbHelper),
		Challenges: a.Challenges,
		Mailer:     a.Mailer,
		OpsEmail:   a.Config.OpsEmail,
	}
	p := Property{DB: databases.NewPropertyDatabase(a.dbHelper), Uploader: a.Uploader}
	s := Sell{DB: databases.NewSellDatabase(a.dbHelper), Uploader: a.Uploader}
	approval := AdminApproval{SDB: databases.NewSellDatabase(a.dbHelper), PDB: databases.NewPropertyDatabase(a.dbHelper)}
	sub := Subscriber{DB: databases.NewSubscriberDatabase(a.dbHelper), Mailer: a.Mailer}
	cloudinaryHandler := CloudinaryHandler{}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	// OTP-gated lead capture
	r.HandleFunc("/send-otp", l.SendOTPHandler).Methods("POST")
	r.HandleFunc("/verify-otp", l.VerifyOTPHandler).Methods("POST")
	r.HandleFunc("/all", l.LeadsHandler).Methods("GET")

	// newsletter
	r.HandleFunc("/subscribe", sub.SubscribeHandler).Methods("POST")
	r.HandleFunc("/subscribers", sub.SubscribersHandler).Methods("GET")

	apiCreate := r.PathPrefix("/api").Subrouter()

	apiCreate.HandleFunc("/properties", p.CreatePropertyHandler).Methods("POST")
	apiCreate.HandleFunc("/properties", p.PropertiesHandler).Methods("GET")
	apiCreate.HandleFunc("/properties/{slug}", p.PropertyBySlugHandler).Methods("GET")
	apiCreate.HandleFunc("/properties/{slug}", p.UpdatePropertyHandler).Methods("PATCH")
	apiCreate.HandleFunc("/properties/{slug}", p.DeletePropertyHandler).Methods("DELETE")

	apiCreate.HandleFunc("/sell/addsell", s.CreateSellHandler).Methods("POST")
	apiCreate.HandleFunc("/sell/viewsell", s.SellsHandler).Methods("GET")
	apiCreate.HandleFunc("/sell/{slug}", s.SellBySlugHandler).Methods("GET")
	apiCreate.HandleFunc("/sell/{slug}", s.UpdateSellHandler).Methods("PATCH")
	apiCreate.HandleFunc("/sell/{slug}", s.DeleteSellHandler).Methods("DELETE")

	apiCreate.HandleFunc("/admin/approve/{id}", approval.ApproveSellHandler).Methods("POST")

	apiCreate.HandleFunc("/generate-signature", cloudinaryHandler.GenerateSignature).Methods("POST")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("kpd-realty-api has connected to the database")

	// the unique leads.email index is the authoritative duplicate guard, so
	// failing to create it is fatal
	ctx, cancel := api.WithQueryTimeout(nil)
	defer cancel()
	if err := databases.NewLeadDatabase(a.dbHelper).EnsureIndexes(ctx); err != nil {
		zap.S().With(err).Error("failed to ensure lead indexes")
		return err
	}

	if a.Challenges == nil {
		a.Challenges = otp.NewMemoryStore(a.Config.OTPTTL)
	}
	if a.Mailer == nil {
		a.Mailer = mailer.New()
	}
	if a.Uploader == nil {
		uploader, err := storage.New()
		if err != nil {
			zap.S().With(err).Error("failed to initialize cloudinary uploader")
			return err
		}
		a.Uploader = uploader
	}

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
