package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApiSetting_Redacted(t *testing.T) {
	t.Parallel()
	s := ApiSetting{
		SmtpServer:   "smtp.example.com",
		SmtpPassword: "hunter2",
		SmsApiSecret: "secret",
	}
	got := s.Redacted()
	assert.Equal(t, Masked, got.SmtpPassword)
	assert.Equal(t, Masked, got.SmsApiSecret)
	assert.Equal(t, "smtp.example.com", got.SmtpServer)
	// 没设过的密钥不抹，让前端知道是空的
	assert.Empty(t, ApiSetting{}.Redacted().SmtpPassword)
}

func TestBillingInfo_Redacted(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		card string
		want string
	}{
		{
			name: "完整卡号",
			card: "1234-5678-9012-3456",
			want: "****-****-****-3456",
		},
		{
			name: "已经抹过的卡号",
			card: "****-****-****-1234",
			want: "****-****-****-1234",
		},
		{
			name: "太短的留原样",
			card: "12",
			want: "12",
		},
		{
			name: "空卡号",
			card: "",
			want: "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := BillingInfo{CardNumber: tc.card}.Redacted()
			assert.Equal(t, tc.want, got.CardNumber)
		})
	}
}

func TestTransaction_Delta(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(500000), Transaction{Amount: 500000, Type: TransactionCharge}.Delta())
	assert.Equal(t, int64(-100000), Transaction{Amount: 100000, Type: TransactionPayment}.Delta())
}
