package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/medremind/med-reminder-api/api"
	"github.com/medremind/med-reminder-api/api/handlers"
	"github.com/medremind/med-reminder-api/databases/mocks"
	"github.com/medremind/med-reminder-api/models"
)

func TestAccount_RegisterPatientHandler(t *testing.T) {
	adb := &mocks.AccountDatabase{}
	adb.On("Insert", mock.Anything, mock.Anything).Return(nil)

	u := handlers.Account{DB: adb, PlaintextPasswords: true}

	body := map[string]string{
		"fullName":          "Jordan Reyes",
		"email":             "jordan@example.com",
		"password":          "hunter2",
		"contactNumber":     "5551234567",
		"profilePic":        "https://cdn.example.com/p.jpg",
		"medical_condition": "Hypertension",
		"guardianId":        "GAR-XYZ789",
	}
	b, _ := json.Marshal(body)

	req, err := http.NewRequest("POST", "/api/v1/accounts/patient", bytes.NewBuffer(b))
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.RegisterPatientHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var created models.Account
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, models.RolePatient, created.Role)
	assert.Regexp(t, `^PAT-[A-Z0-9]{6}$`, created.ID)
	assert.Equal(t, created.ID, created.PatientID)
	assert.Equal(t, "GAR-XYZ789", created.GuardianRefID)
	// the password never leaves the server
	assert.NotContains(t, rr.Body.String(), "hunter2")

	adb.AssertCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAccount_RegisterDoctorHandlerMissingField(t *testing.T) {
	adb := &mocks.AccountDatabase{}
	u := handlers.Account{DB: adb, PlaintextPasswords: true}

	body := map[string]string{
		"fullName":      "Dr. Sam Okafor",
		"email":         "sam@example.com",
		"password":      "hunter2",
		"contactNumber": "5551234567",
		"profilePic":    "https://cdn.example.com/p.jpg",
		"licenseNumber": "L-1001",
		"hospital":      "General",
		// specialization omitted
	}
	b, _ := json.Marshal(body)

	req, err := http.NewRequest("POST", "/api/v1/accounts/doctor", bytes.NewBuffer(b))
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.RegisterDoctorHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "specialization is required")
	adb.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAccount_LoginHandler(t *testing.T) {
	stored, err := models.HashPassword("hunter2", false)
	assert.NoError(t, err)

	adb := &mocks.AccountDatabase{}
	adb.On("FindByEmail", mock.Anything, "jordan@example.com").
		Return(&models.Account{
			ID:       "PAT-ABC123",
			Role:     models.RolePatient,
			Email:    "jordan@example.com",
			Password: stored,
		}, nil)

	api.MiddlewareDB{DB: adb}.SetupGoGuardian()
	u := handlers.Account{DB: adb}

	b, _ := json.Marshal(map[string]string{"email": "jordan@example.com", "password": "hunter2"})
	req, err := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewBuffer(b))
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.LoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Token   string         `json:"token"`
		Account models.Account `json:"account"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "PAT-ABC123", resp.Account.ID)
	assert.Equal(t, models.RolePatient, resp.Account.Role)
}

func TestAccount_LoginHandlerUnknownEmail(t *testing.T) {
	adb := &mocks.AccountDatabase{}
	adb.On("FindByEmail", mock.Anything, "nobody@example.com").
		Return(nil, models.ErrNoMatch)

	u := handlers.Account{DB: adb}

	b, _ := json.Marshal(map[string]string{"email": "nobody@example.com", "password": "hunter2"})
	req, err := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewBuffer(b))
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.LoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "no user found with this email")
}

func TestAccount_LoginHandlerWrongPassword(t *testing.T) {
	adb := &mocks.AccountDatabase{}
	adb.On("FindByEmail", mock.Anything, "jordan@example.com").
		Return(&models.Account{
			ID:       "PAT-ABC123",
			Email:    "jordan@example.com",
			Password: "hunter2",
		}, nil)

	u := handlers.Account{DB: adb, PlaintextPasswords: true}

	b, _ := json.Marshal(map[string]string{"email": "jordan@example.com", "password": "wrong"})
	req, err := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewBuffer(b))
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.LoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "incorrect password")
}

func TestAccount_LoginHandlerMissingFields(t *testing.T) {
	u := handlers.Account{DB: &mocks.AccountDatabase{}}

	b, _ := json.Marshal(map[string]string{"email": "jordan@example.com"})
	req, err := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewBuffer(b))
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.LoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Please enter both email and password")
}

func TestAccount_PatientDashboardHandler(t *testing.T) {
	adb := &mocks.AccountDatabase{}
	adb.On("FindByRoleID", mock.Anything, "patientID", "PAT-ABC123").
		Return(&models.Account{
			ID:               "PAT-ABC123",
			Role:             models.RolePatient,
			FullName:         "Jordan Reyes",
			PatientID:        "PAT-ABC123",
			AssignedDoctorID: "DOC-AAA111",
			GuardianRefID:    "GAR-XYZ789",
		}, nil)
	adb.On("FindByRoleID", mock.Anything, "doctorID", "DOC-AAA111").
		Return(&models.Account{ID: "DOC-AAA111", Role: models.RoleDoctor, FullName: "Dr. Sam Okafor"}, nil)
	adb.On("FindByRoleID", mock.Anything, "guardianID", "GAR-XYZ789").
		Return(nil, models.ErrNoMatch)

	u := handlers.Account{DB: adb}

	req, err := http.NewRequest("GET", "/api/v1/patients/PAT-ABC123/dashboard", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"patient_id": "PAT-ABC123"})

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.PatientDashboardHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Patient        *models.Account `json:"patient"`
		AssignedDoctor *models.Account `json:"assignedDoctor"`
		Guardian       *models.Account `json:"guardian"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Jordan Reyes", resp.Patient.FullName)
	assert.Equal(t, "Dr. Sam Okafor", resp.AssignedDoctor.FullName)
	// a dangling guardian link leaves the section empty
	assert.Nil(t, resp.Guardian)
}
