package aliyun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"

	"github.com/dpickhq/dpick/internal/email"
)

// DirectMailClient 阿里云邮件推送实现
type DirectMailClient struct {
	client    *dm20151123.Client
	fromEmail string
}

// NewDirectMailClient 创建阿里云邮件推送客户端
// fromEmail 是发信地址，例如 noreply@mail.dpick.io
func NewDirectMailClient(accessKeyID, accessKeySecret, fromEmail string) (*DirectMailClient, error) {
	config := &credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	}

	cred, err := credential.NewCredential(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}

	apiConfig := &openapi.Config{
		Credential: cred,
		Endpoint:   tea.String("dm.aliyuncs.com"),
	}

	client, err := dm20151123.NewClient(apiConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create DirectMail client: %w", err)
	}

	return &DirectMailClient{
		client:    client,
		fromEmail: fromEmail,
	}, nil
}

func (c *DirectMailClient) SendMail(ctx context.Context, mail email.Mail) error {
	request := &dm20151123.SingleSendMailAdvanceRequest{
		AccountName: tea.String(c.fromEmail),
		FromAlias:   tea.String(mail.From),
		// 1 表示随机账号
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	runtime := &util.RuntimeOptions{}
	_, err := c.client.SingleSendMailAdvance(request, runtime)
	if err != nil {
		return c.handleError(err)
	}
	return nil
}

func (c *DirectMailClient) handleError(err error) error {
	if sdkError, ok := err.(*tea.SDKError); ok {
		var errorData interface{}
		if sdkError.Data != nil {
			decoder := json.NewDecoder(strings.NewReader(tea.StringValue(sdkError.Data)))
			_ = decoder.Decode(&errorData)
		}

		errorMsg := fmt.Sprintf("阿里云邮件推送API错误: %s", tea.StringValue(sdkError.Message))
		if dataMap, ok := errorData.(map[string]interface{}); ok {
			if recommend, exists := dataMap["Recommend"]; exists {
				errorMsg += fmt.Sprintf(" | 建议: %v", recommend)
			}
			if requestId, exists := dataMap["RequestId"]; exists {
				errorMsg += fmt.Sprintf(" | RequestId: %v", requestId)
			}
		}
		return errors.New(errorMsg)
	}
	return fmt.Errorf("邮件发送失败: %w", err)
}
