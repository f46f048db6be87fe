// Package domain models the rider's trip-start screen: resolving where the
// rider is, where they want to go, and what gets handed to the pickup flow.
//
// # Origin
//
// The origin is resolved once per screen activation, with no user action:
//
//	permission gate  →  single position fix  →  reverse geocode
//
// Every stage can end the run. The outcome is an [OriginState], which is
// either still loading, failed with a [FailureReason], or resolved to an
// address plus the exact point that was reverse-geocoded. Only a resolved
// origin carries coordinates.
//
// # Destination
//
// The destination is free text typed by the rider. It is forward-geocoded
// only on an explicit submit, and only when the text is non-empty and the
// origin already has coordinates. The provider's first candidate wins; no
// re-ranking is done.
//
// # Messages
//
// The rider-facing strings are Korean and are part of the existing user
// contract, so they are kept byte-for-byte:
//
//	loading                  출발지를 불러오는 중...
//	service disabled         위치 서비스 비활성화됨
//	permission denied        위치 권한이 거부되었습니다
//	permission denied (perm) 위치 권한이 영구적으로 거부되었습니다
//	no address               주소 정보를 찾을 수 없습니다
//	position/geocode error   주소 변환 실패: <error>
//	destination not found    목적지 좌표를 찾을 수 없습니다: <error>
//
// # Coordinates
//
// Points are WGS-84 latitude/longitude in decimal degrees. Mapbox speaks
// [lon, lat]; conversion happens in the adapter, never here.
package domain
