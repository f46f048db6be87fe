package domain

// OriginStatus is the tag of an OriginState.
type OriginStatus int

const (
	OriginLoading OriginStatus = iota
	OriginFailed
	OriginResolved
)

func (s OriginStatus) String() string {
	switch s {
	case OriginFailed:
		return "failed"
	case OriginResolved:
		return "resolved"
	default:
		return "loading"
	}
}

// FailureReason says which stage ended an origin resolution.
type FailureReason int

const (
	ReasonNone FailureReason = iota
	ReasonServiceDisabled
	ReasonPermissionDenied
	ReasonPermissionDeniedForever
	ReasonPositionUnavailable
	ReasonReverseGeocodeFailed
	ReasonNoAddressFound
)

func (r FailureReason) String() string {
	switch r {
	case ReasonServiceDisabled:
		return "service_disabled"
	case ReasonPermissionDenied:
		return "permission_denied"
	case ReasonPermissionDeniedForever:
		return "permission_denied_forever"
	case ReasonPositionUnavailable:
		return "position_unavailable"
	case ReasonReverseGeocodeFailed:
		return "reverse_geocode_failed"
	case ReasonNoAddressFound:
		return "no_address_found"
	default:
		return "none"
	}
}

// OriginState is Loading, Failed(reason, err) or Resolved(address, point).
// Build it with LoadingOrigin, FailedOrigin or ResolvedOrigin; the zero value is Loading.
type OriginState struct {
	status  OriginStatus
	reason  FailureReason
	err     error
	address string
	point   GeoPoint
}

// LoadingOrigin is the state of a screen whose origin has not resolved yet.
func LoadingOrigin() OriginState {
	return OriginState{status: OriginLoading}
}

// FailedOrigin records a terminal failure. err is kept for reasons whose
// message embeds the underlying error.
func FailedOrigin(reason FailureReason, err error) OriginState {
	return OriginState{status: OriginFailed, reason: reason, err: err}
}

// ResolvedOrigin records a formatted address and the point it was resolved from.
func ResolvedOrigin(address string, point GeoPoint) OriginState {
	return OriginState{status: OriginResolved, address: address, point: point}
}

func (s OriginState) Status() OriginStatus  { return s.status }
func (s OriginState) Reason() FailureReason { return s.reason }
func (s OriginState) Err() error            { return s.err }

// Coordinates returns the origin point. ok is false unless the state is Resolved.
func (s OriginState) Coordinates() (point GeoPoint, ok bool) {
	if s.status != OriginResolved {
		return GeoPoint{}, false
	}
	return s.point, true
}

// DisplayText is what the origin label shows: the address when resolved,
// otherwise the loading text or the diagnostic for the failure reason.
func (s OriginState) DisplayText() string {
	switch s.status {
	case OriginResolved:
		return s.address
	case OriginFailed:
		return failureMessage(s.reason, s.err)
	default:
		return MsgOriginLoading
	}
}

func failureMessage(reason FailureReason, err error) string {
	switch reason {
	case ReasonServiceDisabled:
		return MsgServiceDisabled
	case ReasonPermissionDenied:
		return MsgPermissionDenied
	case ReasonPermissionDeniedForever:
		return MsgPermissionDeniedForever
	case ReasonNoAddressFound:
		return MsgNoAddressFound
	default:
		return AddressFailedMessage(err)
	}
}
