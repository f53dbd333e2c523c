package errs

var (
	SystemError         = ErrorCode{Code: 502001, Msg: "시스템 오류가 발생했습니다"}
	DeveloperNotFound   = ErrorCode{Code: 502002, Msg: "개발자를 찾을 수 없습니다"}
	InvalidReviewStatus = ErrorCode{Code: 502003, Msg: "허용되지 않은 검토 상태입니다"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
