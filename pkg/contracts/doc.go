// Package contracts는 서비스 간 HTTP/Redis로 주고받는 메시지 형식을 정의합니다.
package contracts
