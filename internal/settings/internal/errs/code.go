package errs

var (
	SystemError   = ErrorCode{Code: 504001, Msg: "시스템 오류가 발생했습니다"}
	InvalidAmount = ErrorCode{Code: 504002, Msg: "충전 금액이 올바르지 않습니다"}
	TestSendFail  = ErrorCode{Code: 504003, Msg: "테스트 발송에 실패했습니다"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
