package conf

import (
	"time"
)

const (
	defaultWebhookPath     = "/webhook"
	defaultHealthPath      = "/health"
	defaultReclaimInterval = 60 * time.Second
)

type Local struct {
	WebhookPath          string
	HealthPath           string
	ReclaimIntervalInSec int
}

func (c Local) GetWebhookPath() string {
	if c.WebhookPath == "" {
		return defaultWebhookPath
	}
	return c.WebhookPath
}

func (c Local) GetHealthPath() string {
	if c.HealthPath == "" {
		return defaultHealthPath
	}
	return c.HealthPath
}

func (c Local) GetReclaimInterval() time.Duration {
	if c.ReclaimIntervalInSec <= 0 {
		return defaultReclaimInterval
	}
	return time.Duration(c.ReclaimIntervalInSec) * time.Second
}
