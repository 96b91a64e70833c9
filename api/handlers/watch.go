package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/medremind/med-reminder-api/databases"
	"github.com/medremind/med-reminder-api/models"
)

// Feed pushes live medication and notification updates over websockets.
// Each connection owns one change stream; closing the socket tears the
// stream down.
type Feed struct {
	MDB databases.MedicationDatabase
	NDB databases.NotificationDatabase
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// feedEvent is the envelope written to the socket. The snapshot event
// carries the full current list; update events carry the re-queried list
// after a collection change.
type feedEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// MedicationsFeedHandler streams a patient's medication list. The client
// gets a snapshot on connect and a fresh list after every collection
// change, mirroring a store-side live subscription.
func (f Feed) MedicationsFeedHandler(w http.ResponseWriter, r *http.Request) {
	patientID := r.URL.Query().Get("patientId")
	if patientID == "" {
		http.Error(w, "patientId query parameter is required", http.StatusBadRequest)
		return
	}

	f.serve(w, r, "medications", func(ctx context.Context) (interface{}, error) {
		meds, err := f.MDB.ListByPatient(ctx, patientID)
		if meds == nil {
			meds = []models.Medication{}
		}
		return meds, err
	}, f.MDB.Watch)
}

// NotificationsFeedHandler streams a patient's unread notifications the
// same way.
func (f Feed) NotificationsFeedHandler(w http.ResponseWriter, r *http.Request) {
	patientID := r.URL.Query().Get("patientId")
	if patientID == "" {
		http.Error(w, "patientId query parameter is required", http.StatusBadRequest)
		return
	}

	f.serve(w, r, "notifications", func(ctx context.Context) (interface{}, error) {
		notifications, err := f.NDB.ListUnreadByPatient(ctx, patientID)
		if notifications == nil {
			notifications = []models.Notification{}
		}
		return notifications, err
	}, f.NDB.Watch)
}

func (f Feed) serve(
	w http.ResponseWriter,
	r *http.Request,
	feed string,
	query func(ctx context.Context) (interface{}, error),
	watch func(ctx context.Context) (databases.ChangeStreamHelper, error),
) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().With(err).Error("failed to upgrade websocket connection")
		return
	}
	defer ws.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	data, err := query(ctx)
	if err != nil {
		zap.S().With(err).Errorw("failed to load initial feed data", "feed", feed)
		return
	}
	if err := ws.WriteJSON(feedEvent{Event: "snapshot", Data: data}); err != nil {
		zap.S().With(err).Errorw("failed to write snapshot", "feed", feed)
		return
	}

	stream, err := watch(ctx)
	if err != nil {
		zap.S().With(err).Errorw("failed to open change stream", "feed", feed)
		return
	}
	defer stream.Close(context.Background())

	// reader loop exists only to notice the peer going away
	go func() {
		defer cancel()
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for stream.Next(ctx) {
		data, err := query(ctx)
		if err != nil {
			zap.S().With(err).Errorw("failed to re-query feed data", "feed", feed)
			return
		}
		if err := ws.WriteJSON(feedEvent{Event: "update", Data: data}); err != nil {
			return
		}
	}
}
