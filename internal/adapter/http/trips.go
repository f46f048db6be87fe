package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cloudbread0714/tayo-taxi-user/internal/adapter/device"
	"github.com/cloudbread0714/tayo-taxi-user/internal/adapter/notify"
	"github.com/cloudbread0714/tayo-taxi-user/internal/domain"
	"github.com/cloudbread0714/tayo-taxi-user/internal/pipeline"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/go-playground/validator/v10"
)

const maxTripBody = 64 << 10

// TripHandler runs one screen activation per request: the client reports its
// device state and destination text, and gets back the origin, any notices,
// and the handoff if one happened.
type TripHandler struct {
	flow     *pipeline.Flow
	validate *validator.Validate
	logger   *slog.Logger
}

// NewTripHandler creates a TripHandler.
func NewTripHandler(flow *pipeline.Flow, logger *slog.Logger) *TripHandler {
	return &TripHandler{
		flow:     flow,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

type tripRequest struct {
	Device      deviceReport `json:"device"`
	Destination string       `json:"destination" validate:"max=200"`
}

type deviceReport struct {
	ServiceEnabled bool            `json:"service_enabled"`
	Permission     string          `json:"permission" validate:"omitempty,oneof=not_determined denied denied_forever granted"`
	RequestResult  string          `json:"request_result" validate:"omitempty,oneof=not_determined denied denied_forever granted"`
	Position       *positionReport `json:"position"`
	PositionError  string          `json:"position_error" validate:"max=500"`
}

type positionReport struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

type tripResponse struct {
	Origin  originView             `json:"origin"`
	Notices []string               `json:"notices"`
	Handoff *domain.HandoffPayload `json:"handoff,omitempty"`
}

type originView struct {
	Status      string           `json:"status"`
	Reason      string           `json:"reason,omitempty"`
	DisplayText string           `json:"display_text"`
	Coordinates *domain.GeoPoint `json:"coordinates,omitempty"`
}

func (h *TripHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTripBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		sharedobs.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body: " + err.Error()})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		sharedobs.WriteJSON(w, http.StatusBadRequest, map[string]any{"error": "validation failed", "fields": fieldErrors(err)})
		return
	}

	snap, err := req.Device.snapshot()
	if err != nil {
		sharedobs.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	recorder := &notify.Recorder{}
	session := h.flow.NewSession(device.NewReported(snap), notify.Fanout{recorder, notify.NewLogger(h.logger)})
	defer session.Close()

	origin := session.Activate(r.Context())
	resp := tripResponse{Origin: viewOrigin(origin)}
	if payload, ok := session.Submit(r.Context(), domain.DestinationQuery{RawText: req.Destination}); ok {
		resp.Handoff = &payload
	}
	resp.Notices = recorder.Notices()

	sharedobs.WriteJSON(w, http.StatusOK, resp)
}

func (d deviceReport) snapshot() (device.Snapshot, error) {
	perm, err := domain.ParsePermissionState(d.Permission)
	if err != nil {
		return device.Snapshot{}, err
	}
	result, err := domain.ParsePermissionState(d.RequestResult)
	if err != nil {
		return device.Snapshot{}, err
	}
	snap := device.Snapshot{
		ServiceEnabled: d.ServiceEnabled,
		Permission:     perm,
		RequestResult:  result,
		PositionError:  d.PositionError,
	}
	if d.Position != nil {
		snap.Position = &domain.GeoPoint{Latitude: *d.Position.Latitude, Longitude: *d.Position.Longitude}
	}
	return snap, nil
}

func viewOrigin(s domain.OriginState) originView {
	v := originView{Status: s.Status().String(), DisplayText: s.DisplayText()}
	if s.Status() == domain.OriginFailed {
		v.Reason = s.Reason().String()
	}
	if p, ok := s.Coordinates(); ok {
		v.Coordinates = &p
	}
	return v
}

func fieldErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Namespace()+": "+fe.Tag())
	}
	return fields
}
