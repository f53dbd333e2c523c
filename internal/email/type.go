package email

import "context"

// Service 邮件发送抽象。公告群发和设置页的测试发送共用这一个口。
//
//go:generate mockgen -source=./type.go -destination=./mocks/email.mock.go -package=emailmocks Service
type Service interface {
	SendMail(ctx context.Context, mail Mail) error
}

type Mail struct {
	From        string
	To          string
	Subject     string
	Body        []byte
	Attachments []Attachment
}

type Attachment struct {
	Filename string
	Content  []byte
}
