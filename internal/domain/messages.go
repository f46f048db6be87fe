package domain

// Rider-facing strings. Do not reword: clients and support docs match on them.
const (
	MsgOriginLoading           = "출발지를 불러오는 중..."
	MsgServiceDisabled         = "위치 서비스 비활성화됨"
	MsgPermissionDenied        = "위치 권한이 거부되었습니다"
	MsgPermissionDeniedForever = "위치 권한이 영구적으로 거부되었습니다"
	MsgNoAddressFound          = "주소 정보를 찾을 수 없습니다"

	msgAddressFailedPrefix     = "주소 변환 실패: "
	msgDestinationFailedPrefix = "목적지 좌표를 찾을 수 없습니다: "
	msgHandoffFailedPrefix     = "픽업 단계로 이동하지 못했습니다: "
)

// AddressFailedMessage is the origin diagnostic for position or reverse-geocode errors.
func AddressFailedMessage(err error) string {
	return msgAddressFailedPrefix + errText(err)
}

// DestinationFailedMessage is the transient notice for a destination that could not be resolved.
func DestinationFailedMessage(err error) string {
	return msgDestinationFailedPrefix + errText(err)
}

// HandoffFailedMessage is the transient notice for a handoff the pickup flow did not accept.
func HandoffFailedMessage(err error) string {
	return msgHandoffFailedPrefix + errText(err)
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
