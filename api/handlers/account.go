package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/medremind/med-reminder-api/api"
	"github.com/medremind/med-reminder-api/config"
	"github.com/medremind/med-reminder-api/databases"
	"github.com/medremind/med-reminder-api/models"
)

// Account exported for testing purposes
type Account struct {
	DB                 databases.AccountDatabase
	PlaintextPasswords bool
}

// registrationRequest is the flat body shared by the three registration
// endpoints; the role decides which fields are required.
type registrationRequest struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	ContactNumber string `json:"contactNumber"`
	ProfilePic    string `json:"profilePic"`
	Sex           string `json:"sex"`
	DateOfBirth   string `json:"dateOfBirth"`

	Specialization string `json:"specialization"`
	LicenseNumber  string `json:"licenseNumber"`
	Hospital       string `json:"hospital"`

	RelationshipToPatient string `json:"relationship_to_patient"`

	MedicalCondition string `json:"medical_condition"`
	AssignedDoctorID string `json:"assignedDoctorId"`
	GuardianID       string `json:"guardianId"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Account *models.Account `json:"account"`
}

// dashboardResponse bundles a patient with their resolved doctor and
// guardian profiles for the one-shot dashboard load.
type dashboardResponse struct {
	Patient        *models.Account `json:"patient"`
	AssignedDoctor *models.Account `json:"assignedDoctor,omitempty"`
	Guardian       *models.Account `json:"guardian,omitempty"`
}

// RegisterDoctorHandler creates a Doctor account
func (a Account) RegisterDoctorHandler(w http.ResponseWriter, r *http.Request) {
	a.register(w, r, models.RoleDoctor)
}

// RegisterGuardianHandler creates a Guardian account
func (a Account) RegisterGuardianHandler(w http.ResponseWriter, r *http.Request) {
	a.register(w, r, models.RoleGuardian)
}

// RegisterPatientHandler creates a Patient account
func (a Account) RegisterPatientHandler(w http.ResponseWriter, r *http.Request) {
	a.register(w, r, models.RolePatient)
}

func (a Account) register(w http.ResponseWriter, r *http.Request, role string) {
	w.Header().Set("Content-Type", "application/json")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req registrationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	if missing := validateRegistration(&req, role); missing != "" {
		http.Error(w, missing+" is required", http.StatusBadRequest)
		return
	}

	hashed, err := models.HashPassword(req.Password, a.PlaintextPasswords)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	account := &models.Account{
		ID:            models.GenerateAccountID(role),
		Role:          role,
		FullName:      req.FullName,
		Email:         req.Email,
		Password:      hashed,
		ContactNumber: req.ContactNumber,
		ProfilePic:    req.ProfilePic,
		Sex:           req.Sex,
		DateOfBirth:   req.DateOfBirth,
	}

	switch role {
	case models.RoleDoctor:
		account.DoctorID = account.ID
		account.Specialization = req.Specialization
		account.LicenseNumber = req.LicenseNumber
		account.Hospital = req.Hospital
	case models.RoleGuardian:
		account.GuardianID = account.ID
		account.RelationshipToPatient = req.RelationshipToPatient
	case models.RolePatient:
		account.PatientID = account.ID
		account.MedicalCondition = req.MedicalCondition
		account.AssignedDoctorID = req.AssignedDoctorID
		account.GuardianRefID = req.GuardianID
	}

	if err := a.DB.Insert(r.Context(), account); err != nil {
		config.ErrorStatus("failed to register account", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(account); err != nil {
		zap.S().With(err).Error("failed to encode created account response")
	}
}

// validateRegistration returns the name of the first missing required field,
// or empty. All roles require the identity fields and a profile picture; sex
// and date of birth were never validated by the original forms.
func validateRegistration(req *registrationRequest, role string) string {
	required := []struct {
		name  string
		value string
	}{
		{"fullName", req.FullName},
		{"email", req.Email},
		{"password", req.Password},
		{"contactNumber", req.ContactNumber},
		{"profilePic", req.ProfilePic},
	}

	switch role {
	case models.RoleDoctor:
		required = append(required,
			struct{ name, value string }{"specialization", req.Specialization},
			struct{ name, value string }{"licenseNumber", req.LicenseNumber},
			struct{ name, value string }{"hospital", req.Hospital},
		)
	case models.RoleGuardian:
		required = append(required,
			struct{ name, value string }{"relationship_to_patient", req.RelationshipToPatient},
		)
	case models.RolePatient:
		required = append(required,
			struct{ name, value string }{"medical_condition", req.MedicalCondition},
		)
	}

	for _, f := range required {
		if f.value == "" {
			return f.name
		}
	}
	return ""
}

// AccountByIDHandler returns an account given its generated role-prefixed ID
func (a Account) AccountByIDHandler(w http.ResponseWriter, r *http.Request) {
	accountID := mux.Vars(r)["account_id"]

	zap.S().Debugf("account_id: %v", accountID)

	account, err := a.DB.FindByID(r.Context(), accountID)
	if err != nil {
		config.ErrorStatus("failed to get account by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(account)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// LoginHandler checks an email/password pair against the users collection
// and returns the account plus a bearer session token. The caller branches
// on the returned role.
func (a Account) LoginHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Email == "" || req.Password == "" {
		http.Error(w, "Please enter both email and password", http.StatusBadRequest)
		return
	}

	account, err := a.DB.FindByEmail(r.Context(), req.Email)
	if errors.Is(err, models.ErrNoMatch) {
		config.ErrorStatus("no user found with this email", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to get account by email", http.StatusInternalServerError, w, err)
		return
	}

	if err := models.VerifyPassword(account.Password, req.Password, a.PlaintextPasswords); err != nil {
		config.ErrorStatus("incorrect password", http.StatusUnauthorized, w, err)
		return
	}

	token := api.IssueToken(r, account.Email, account.ID)

	zap.S().Infow("login",
		"accountId", account.ID,
		"role", account.Role,
	)

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(loginResponse{Token: token, Account: account}); err != nil {
		zap.S().With(err).Error("failed to encode login response")
	}
}

// PatientDashboardHandler loads a patient record and resolves the linked
// doctor and guardian profiles, absent sections staying empty.
func (a Account) PatientDashboardHandler(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patient_id"]

	patient, err := a.DB.FindByRoleID(r.Context(), "patientID", patientID)
	if err != nil {
		config.ErrorStatus("failed to load patient data", http.StatusNotFound, w, err)
		return
	}

	resp := dashboardResponse{Patient: patient}

	if patient.AssignedDoctorID != "" {
		doctor, err := a.DB.FindByRoleID(r.Context(), "doctorID", patient.AssignedDoctorID)
		if err == nil {
			resp.AssignedDoctor = doctor
		} else if !errors.Is(err, models.ErrNoMatch) {
			zap.S().With(err).Warn("failed to resolve assigned doctor")
		}
	}

	if patient.GuardianRefID != "" {
		guardian, err := a.DB.FindByRoleID(r.Context(), "guardianID", patient.GuardianRefID)
		if err == nil {
			resp.Guardian = guardian
		} else if !errors.Is(err, models.ErrNoMatch) {
			zap.S().With(err).Warn("failed to resolve guardian")
		}
	}

	b, err := json.Marshal(resp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
