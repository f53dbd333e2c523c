package errs

var (
	SystemError      = ErrorCode{Code: 503001, Msg: "시스템 오류가 발생했습니다"}
	ProjectNotFound  = ErrorCode{Code: 503002, Msg: "프로젝트를 찾을 수 없습니다"}
	EmptySelection   = ErrorCode{Code: 503003, Msg: "선택된 개발자가 없습니다"}
	InvalidChannel   = ErrorCode{Code: 503004, Msg: "지원하지 않는 발송 채널입니다"}
	AnnounceSendFail = ErrorCode{Code: 503005, Msg: "공고 발송에 실패했습니다"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
