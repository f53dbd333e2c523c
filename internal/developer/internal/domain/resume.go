package domain

// Resume 简历记录，带一个很平的审阅状态机：
// 审阅人可以把状态改成任意值，没有强制的状态迁移图
type Resume struct {
	Id          int64
	DeveloperId int64
	Title       string
	FilePath    string
	UploadDate  string
	Review      Review
	Ctime       int64
	Utime       int64
}

type Review struct {
	Status ReviewStatus
	// Comments 审阅意见
	Comments string
	// ReviewedBy 审阅人 uid，0 表示还没人看过
	ReviewedBy int64
	ReviewedAt int64
}

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusReviewed ReviewStatus = "reviewed"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusReviewed,
		ReviewStatusApproved, ReviewStatusRejected:
		return true
	default:
		return false
	}
}
