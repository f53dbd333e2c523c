package errs

var (
	SystemError        = ErrorCode{Code: 501001, Msg: "시스템 오류가 발생했습니다"}
	InvalidCredentials = ErrorCode{Code: 501002, Msg: "이메일 또는 비밀번호가 올바르지 않습니다."}
	UserDuplicate      = ErrorCode{Code: 501003, Msg: "이미 등록된 이메일입니다"}
	InvalidRole        = ErrorCode{Code: 501004, Msg: "허용되지 않은 역할입니다"}
	PermissionDenied   = ErrorCode{Code: 501005, Msg: "권한이 없습니다"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
