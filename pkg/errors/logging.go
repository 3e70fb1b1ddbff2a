package errors

import (
	"go.uber.org/zap"
)

// LogError는 에러를 구조화된 로그로 기록합니다
func LogError(logger *zap.Logger, err error, msg string, fields ...zap.Field) {
	if err == nil {
		return
	}

	// 기본 필드
	allFields := make([]zap.Field, 0, len(fields)+3)
	allFields = append(allFields, zap.Error(err))

	// 에러 코드 추출
	if code := CodeOf(err); code != "" {
		allFields = append(allFields, zap.String("error_code", code))
	}

	// 외부 서비스 에러인 경우 서비스 이름 추가
	var remoteErr *RemoteError
	if As(err, &remoteErr) {
		allFields = append(allFields, zap.String("remote_service", remoteErr.Service))
	}

	// 추가 필드 병합
	allFields = append(allFields, fields...)

	// 로깅
	logger.Error(msg, allFields...)
}

// LogWarn는 호출자의 결과에 영향을 주지 않는 에러를 경고 레벨로 기록합니다
func LogWarn(logger *zap.Logger, err error, msg string, fields ...zap.Field) {
	if err == nil {
		return
	}

	allFields := make([]zap.Field, 0, len(fields)+2)
	allFields = append(allFields, zap.Error(err))
	if code := CodeOf(err); code != "" {
		allFields = append(allFields, zap.String("error_code", code))
	}
	allFields = append(allFields, fields...)

	logger.Warn(msg, allFields...)
}
