package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/medremind/med-reminder-api/api"
	"github.com/medremind/med-reminder-api/api/scheduler"
	"github.com/medremind/med-reminder-api/config"
	"github.com/medremind/med-reminder-api/databases"
	"github.com/medremind/med-reminder-api/models"
	"github.com/medremind/med-reminder-api/reminders"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Scheduler *scheduler.Scheduler
	dbHelper  databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	m := api.MiddlewareDB{DB: databases.NewAccountDatabase(a.dbHelper), PlaintextPasswords: a.Config.PlaintextPasswords}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	acct := Account{
		DB:                 databases.NewAccountDatabase(a.dbHelper),
		PlaintextPasswords: a.Config.PlaintextPasswords,
	}
	med := Medication{
		DB:  databases.NewMedicationDatabase(a.dbHelper),
		NDB: databases.NewNotificationDatabase(a.dbHelper),
		ADB: databases.NewAccountDatabase(a.dbHelper),
	}
	notif := Notification{DB: databases.NewNotificationDatabase(a.dbHelper)}
	feed := Feed{
		MDB: databases.NewMedicationDatabase(a.dbHelper),
		NDB: databases.NewNotificationDatabase(a.dbHelper),
	}
	rem := Reminder{
		Store:    reminders.NewStore(a.Config.ReminderStorePath),
		Notifier: reminders.NewExpoNotifier(a.Config.ExpoPushTokens),
		Speaker:  reminders.NewHTTPSpeaker(a.Config.SpeechURL),
	}
	uploads := UploadHandler{}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(30 * time.Second))

	apiCreate.Handle("/auth/login", http.HandlerFunc(acct.LoginHandler)).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/accounts/doctor", http.HandlerFunc(acct.RegisterDoctorHandler)).Methods("POST")
	apiCreate.Handle("/accounts/guardian", http.HandlerFunc(acct.RegisterGuardianHandler)).Methods("POST")
	apiCreate.Handle("/accounts/patient", http.HandlerFunc(acct.RegisterPatientHandler)).Methods("POST")
	apiCreate.Handle("/accounts/{account_id}", api.Middleware(http.HandlerFunc(acct.AccountByIDHandler))).Methods("GET")

	apiCreate.Handle("/patients/{patient_id}/dashboard", api.Middleware(http.HandlerFunc(acct.PatientDashboardHandler))).Methods("GET")

	apiCreate.Handle("/medications", api.Middleware(http.HandlerFunc(med.CreateMedicationHandler))).Methods("POST")
	apiCreate.Handle("/medications/patient/{patient_id}", api.Middleware(http.HandlerFunc(med.MedicationsByPatientHandler))).Methods("GET")
	apiCreate.Handle("/medications/{medication_id}", api.Middleware(http.HandlerFunc(med.MedicationByIDHandler))).Methods("GET")
	apiCreate.Handle("/medications/{medication_id}", api.Middleware(http.HandlerFunc(med.UpdateMedicationHandler))).Methods("PUT")
	apiCreate.Handle("/medications/{medication_id}", api.Middleware(http.HandlerFunc(med.DeleteMedicationHandler))).Methods("DELETE")
	apiCreate.Handle("/medications/{medication_id}/schedules/{schedule_id}/taken", api.Middleware(http.HandlerFunc(med.MarkDoseTakenHandler))).Methods("POST")

	apiCreate.Handle("/notifications/patient/{patient_id}/unread", api.Middleware(http.HandlerFunc(notif.UnreadByPatientHandler))).Methods("GET")

	apiCreate.Handle("/reminders", api.Middleware(http.HandlerFunc(rem.CreateReminderHandler))).Methods("POST")
	apiCreate.Handle("/reminders", api.Middleware(http.HandlerFunc(rem.ListRemindersHandler))).Methods("GET")
	apiCreate.Handle("/reminders/{index}/taken", api.Middleware(http.HandlerFunc(rem.MarkReminderTakenHandler))).Methods("PUT")
	apiCreate.Handle("/reminders/{reminder_id}", api.Middleware(http.HandlerFunc(rem.DeleteReminderHandler))).Methods("DELETE")
	apiCreate.Handle("/reminders/speak", api.Middleware(http.HandlerFunc(rem.SpeakHandler))).Methods("POST")

	apiCreate.Handle("/uploads/signature", api.Middleware(http.HandlerFunc(uploads.GenerateSignature))).Methods("POST")

	// live feeds; the socket lifecycle owns the change-stream teardown
	r.HandleFunc("/ws/medications", feed.MedicationsFeedHandler)
	r.HandleFunc("/ws/notifications", feed.NotificationsFeedHandler)

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
	zap.S().Info("med-reminder-api has connected to the database")

	a.Scheduler = scheduler.New(
		databases.NewMedicationDatabase(a.dbHelper),
		databases.NewAccountDatabase(a.dbHelper),
		a.Config.SendgridAPIKey,
		a.Config.AlertFromEmail,
	)
	a.Scheduler.Start()

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
