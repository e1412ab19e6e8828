package transport

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/http/httpcli"
	"github.com/txix-open/isp-kit/json"
	"shift-copilot-bot/domain"
)

const (
	ParseModeMarkdown = "Markdown"
)

type apiResponse struct {
	Ok          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

type sendMessageRequest struct {
	ChatId    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type setWebhookRequest struct {
	Url         string   `json:"url"`
	SecretToken string   `json:"secret_token,omitempty"`
	Updates     []string `json:"allowed_updates,omitempty"`
}

// Telegram is a minimal Bot API client. Calls are never retried.
type Telegram struct {
	cli     *httpcli.Client
	baseUrl string
	token   string
}

func NewTelegram(cli *httpcli.Client, baseUrl string, token string) Telegram {
	return Telegram{
		cli:     cli,
		baseUrl: strings.TrimSuffix(baseUrl, "/"),
		token:   token,
	}
}

func (t Telegram) SendMessage(ctx context.Context, chatId int64, text string) error {
	return t.call(ctx, "sendMessage", sendMessageRequest{
		ChatId:    chatId,
		Text:      text,
		ParseMode: ParseModeMarkdown,
	})
}

func (t Telegram) SetWebhook(ctx context.Context, url string, secretToken string) error {
	return t.call(ctx, "setWebhook", setWebhookRequest{
		Url:         url,
		SecretToken: secretToken,
		Updates:     []string{"message"},
	})
}

func (t Telegram) DeleteWebhook(ctx context.Context) error {
	return t.call(ctx, "deleteWebhook", struct{}{})
}

func (t Telegram) call(ctx context.Context, method string, req any) error {
	if t.token == "" {
		return errors.WithMessagef(domain.ErrNotConfigured, "telegram %s: bot token", method)
	}

	resp := apiResponse{}
	_, err := t.cli.Post(t.endpoint(method)).
		JsonRequestBody(req).
		JsonResponseBody(&resp).
		StatusCodeToError().
		Do(ctx)
	errResp := httpcli.ErrorResponse{}
	if errors.As(err, &errResp) {
		_ = json.Unmarshal(errResp.Body, &resp)
		return errors.Errorf("telegram %s: status %d: %s", method, errResp.StatusCode, resp.Description)
	}
	if err != nil {
		return errors.WithMessagef(t.redact(err), "telegram %s", method)
	}
	if !resp.Ok {
		return errors.Errorf("telegram %s: %s", method, resp.Description)
	}
	return nil
}

func (t Telegram) endpoint(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", t.baseUrl, t.token, method)
}

// redact keeps the bot token out of logged errors; transport errors embed the url.
func (t Telegram) redact(err error) error {
	if t.token == "" || !strings.Contains(err.Error(), t.token) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), t.token, "<token>"))
}
