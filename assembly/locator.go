package assembly

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
	"shift-copilot-bot/conf"
	"shift-copilot-bot/controller"
	"shift-copilot-bot/handler"
	"shift-copilot-bot/middleware"
	"shift-copilot-bot/service"
)

type Locator struct {
	logger *log.Adapter
	routes controller.Routes
	now    func() time.Time
}

func NewLocator(logger *log.Adapter, routes controller.Routes, now func() time.Time) Locator {
	return Locator{
		logger: logger,
		routes: routes,
		now:    now,
	}
}

func (l Locator) Handler(
	config conf.Remote,
	store service.RateLimitStore,
	sender middleware.Sender,
) (http.Handler, error) {
	limiter := service.NewRateLimiter(store, config.RateLimit, l.now, l.logger)
	handlers := handler.New(l.logger).Set()

	dispatcher, err := service.NewDispatcher(config, limiter, handlers, sender, l.logger)
	if err != nil {
		return nil, errors.WithMessage(err, "new dispatcher")
	}

	webhook := controller.NewWebhook(dispatcher, config.Http.GetMaxRequestBodySize(), l.logger)
	health := controller.NewHealth(l.now)

	return controller.NewRouter(l.routes, webhook, health), nil
}
