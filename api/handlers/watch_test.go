package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/medremind/med-reminder-api/api/handlers"
	"github.com/medremind/med-reminder-api/databases/mocks"
	"github.com/medremind/med-reminder-api/models"
)

func TestFeed_MedicationsFeedHandlerMissingPatientID(t *testing.T) {
	u := handlers.Feed{MDB: &mocks.MedicationDatabase{}, NDB: &mocks.NotificationDatabase{}}

	req, err := http.NewRequest("GET", "/ws/medications", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.MedicationsFeedHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFeed_MedicationsFeedHandler(t *testing.T) {
	stream := &mocks.ChangeStreamHelper{}
	stream.On("Next", mock.Anything).Return(true).Once()
	stream.On("Next", mock.Anything).Return(false)
	stream.On("Close", mock.Anything).Return(nil)

	mdb := &mocks.MedicationDatabase{}
	mdb.On("ListByPatient", mock.Anything, "PAT-ABC123").
		Return([]models.Medication{{Name: "Aspirin", PatientID: "PAT-ABC123"}}, nil)
	mdb.On("Watch", mock.Anything).Return(stream, nil)

	u := handlers.Feed{MDB: mdb, NDB: &mocks.NotificationDatabase{}}

	server := httptest.NewServer(http.HandlerFunc(u.MedicationsFeedHandler))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?patientId=PAT-ABC123"
	ws, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ws.Close()

	var snapshot struct {
		Event string              `json:"event"`
		Data  []models.Medication `json:"data"`
	}
	_, msg, err := ws.ReadMessage()
	assert.NoError(t, err)
	assert.NoError(t, json.Unmarshal(msg, &snapshot))
	assert.Equal(t, "snapshot", snapshot.Event)
	assert.Len(t, snapshot.Data, 1)
	assert.Equal(t, "Aspirin", snapshot.Data[0].Name)

	// one change-stream event produces one re-queried update
	var update struct {
		Event string              `json:"event"`
		Data  []models.Medication `json:"data"`
	}
	_, msg, err = ws.ReadMessage()
	assert.NoError(t, err)
	assert.NoError(t, json.Unmarshal(msg, &update))
	assert.Equal(t, "update", update.Event)

	stream.AssertCalled(t, "Next", mock.Anything)
}
