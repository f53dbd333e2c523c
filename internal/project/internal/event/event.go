package event

const (
	// AnnouncementTopic 公告发出去之后的事件，
	// 下游拿去做统计或者审计
	AnnouncementTopic = "announcement_events"
)

type AnnouncementEvent struct {
	ProjectId int64    `json:"projectId"`
	Channel   string   `json:"channel"`
	Content   string   `json:"content"`
	Recipient []string `json:"recipients"`
	SentDate  string   `json:"sentDate"`
}
