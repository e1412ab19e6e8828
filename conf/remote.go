package conf

import (
	"reflect"
	"time"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
	"github.com/txix-open/isp-kit/rc/schema"
	"github.com/txix-open/jsonschema"
)

const (
	DefaultTelegramApiUrl = "https://api.telegram.org"

	defaultRateLimitWindow      = 60 * time.Second
	defaultRateLimitMaxRequests = 10
	defaultHandlerTimeout       = 30 * time.Second
	defaultSendTimeout          = 10 * time.Second
	defaultMaxRequestBodySize   = 1 << 20
)

func init() {
	schema.CustomGenerators.Register("logLevel", func(field reflect.StructField, t *jsonschema.Schema) {
		t.Type = "string"
		t.Enum = []interface{}{"debug", "info", "warn", "error", "fatal"}
	})
}

type Remote struct {
	Telegram  Telegram  `schema:"Telegram settings"`
	RateLimit RateLimit `schema:"Per-sender rate limit,fixed window"`
	Handler   Handler   `schema:"Command handler settings"`
	Http      Http      `schema:"HTTP settings"`
	Logging   Logging   `schema:"Logging settings"`
	Redis     *Redis    `schema:"Redis settings,if set rate limit counters are kept in redis and shared between instances"`
}

type Telegram struct {
	BotToken         string `valid:"required" schema:"Bot token"`
	WebhookSecret    string `valid:"required" schema:"Webhook secret,must equal X-Telegram-Bot-Api-Secret-Token header"`
	WebhookUrl       string `schema:"Public webhook url,registered in Telegram on config receipt if set"`
	ApiUrl           string `schema:"Bot API url,default https://api.telegram.org"`
	SendTimeoutInSec int    `schema:"Reply send timeout,in seconds, default 10"`
}

type RateLimit struct {
	WindowInMs  int `schema:"Window size,in milliseconds, default 60000"`
	MaxRequests int `schema:"Requests per window per sender,default 10"`
}

type Handler struct {
	TimeoutInSec int `schema:"Handler timeout,in seconds, default 30"`
}

type Http struct {
	MaxRequestBodySizeInBytes int64 `schema:"Max webhook body size,in bytes, default 1 MB"`
}

type Logging struct {
	LogLevel log.Level `schemaGen:"logLevel" schema:"Log level"`
}

type Redis struct {
	Address  string         `schema:"Address,required if sentinel is not set"`
	Username string         `schema:"Username"`
	Password string         `schema:"Password"`
	Sentinel *RedisSentinel `schema:"Sentinel settings,required if address is not set"`
}

type RedisSentinel struct {
	Addresses  []string `valid:"required" schema:"Sentinel node addresses"`
	MasterName string   `valid:"required" schema:"Master name"`
	Username   string   `schema:"Sentinel username"`
	Password   string   `schema:"Sentinel password"`
}

func (r Remote) Validate() error {
	if r.Redis != nil && r.Redis.Sentinel == nil && r.Redis.Address == "" {
		return errors.New("invalid redis config. sentinel or address are required")
	}
	if r.RateLimit.WindowInMs < 0 || r.RateLimit.MaxRequests < 0 {
		return errors.New("invalid rate limit config. window and max requests must not be negative")
	}
	return nil
}

func (c Telegram) GetApiUrl() string {
	if c.ApiUrl == "" {
		return DefaultTelegramApiUrl
	}
	return c.ApiUrl
}

func (c Telegram) GetSendTimeout() time.Duration {
	if c.SendTimeoutInSec <= 0 {
		return defaultSendTimeout
	}
	return time.Duration(c.SendTimeoutInSec) * time.Second
}

func (c RateLimit) GetWindow() time.Duration {
	if c.WindowInMs <= 0 {
		return defaultRateLimitWindow
	}
	return time.Duration(c.WindowInMs) * time.Millisecond
}

func (c RateLimit) GetMaxRequests() int {
	if c.MaxRequests <= 0 {
		return defaultRateLimitMaxRequests
	}
	return c.MaxRequests
}

func (c Handler) GetTimeout() time.Duration {
	if c.TimeoutInSec <= 0 {
		return defaultHandlerTimeout
	}
	return time.Duration(c.TimeoutInSec) * time.Second
}

func (c Http) GetMaxRequestBodySize() int64 {
	if c.MaxRequestBodySizeInBytes <= 0 {
		return defaultMaxRequestBodySize
	}
	return c.MaxRequestBodySizeInBytes
}
