package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// UnavailableMessage 외부 서비스 장애 시 클라이언트에 노출하는 메시지
const UnavailableMessage = "Service temporarily unavailable"

// ToHTTPStatus는 에러 코드를 HTTP 상태 코드로 변환합니다
func ToHTTPStatus(code string) int {
	httpStatus, _ := GetCodeMapping(code)
	return httpStatus
}

// ToHTTPError는 에러를 Echo HTTP 에러로 변환합니다.
// 내부 에러 체인은 응답에 포함하지 않습니다
func ToHTTPError(err error) *echo.HTTPError {
	if err == nil {
		return nil
	}

	// Echo 에러인 경우 그대로 반환
	if echoErr, ok := err.(*echo.HTTPError); ok {
		return echoErr
	}

	if IsUnavailable(err) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, UnavailableMessage)
	}

	var appErr *AppError
	if As(err, &appErr) {
		httpStatus := ToHTTPStatus(appErr.Code())
		return echo.NewHTTPError(httpStatus, appErr.Message())
	}

	if code := CodeOf(err); code != "" {
		httpStatus := ToHTTPStatus(code)
		return echo.NewHTTPError(httpStatus, http.StatusText(httpStatus))
	}

	// 기본 에러는 500으로 처리
	return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
