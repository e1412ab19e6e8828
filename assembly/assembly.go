package assembly

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/txix-open/isp-kit/app"
	"github.com/txix-open/isp-kit/bootstrap"
	"github.com/txix-open/isp-kit/cluster"
	"github.com/txix-open/isp-kit/http"
	"github.com/txix-open/isp-kit/http/httpcli"
	"github.com/txix-open/isp-kit/log"
	"shift-copilot-bot/conf"
	"shift-copilot-bot/controller"
	"shift-copilot-bot/repository"
	"shift-copilot-bot/service"
	"shift-copilot-bot/transport"
)

type Assembly struct {
	boot        *bootstrap.Bootstrap
	server      *http.Server
	logger      *log.Adapter
	localConfig conf.Local
	memoryStore *repository.RateLimitMemory
	telegramCli *httpcli.Client
	webhook     *WebhookRegistration

	lock     sync.Mutex
	redisCli redis.UniversalClient
}

func New(boot *bootstrap.Bootstrap) (*Assembly, error) {
	localConfig := conf.Local{}
	err := boot.App.Config().Read(&localConfig)
	if err != nil {
		return nil, errors.WithMessage(err, "read local config")
	}

	return &Assembly{
		boot:        boot,
		server:      http.NewServer(boot.App.Logger()),
		logger:      boot.App.Logger(),
		localConfig: localConfig,
		memoryStore: repository.NewRateLimitMemory(time.Now),
		telegramCli: httpcli.New(),
		webhook:     NewWebhookRegistration(boot.App.Logger()),
	}, nil
}

func (a *Assembly) ReceiveConfig(ctx context.Context, remoteConfig []byte) error {
	var (
		newCfg  conf.Remote
		prevCfg conf.Remote
	)
	err := a.boot.RemoteConfig.Upgrade(remoteConfig, &newCfg, &prevCfg)
	if err != nil {
		a.logger.Fatal(ctx, errors.WithMessage(err, "upgrade remote config"))
	}
	err = newCfg.Validate()
	if err != nil {
		a.logger.Fatal(ctx, errors.WithMessage(err, "invalid remote config"))
	}

	a.logger.SetLevel(newCfg.Logging.LogLevel)

	var (
		newRedisCli redis.UniversalClient
		store       service.RateLimitStore = a.memoryStore
	)
	if newCfg.Redis != nil {
		newRedisCli = a.redisClient(*newCfg.Redis)
		store = repository.NewRateLimitRedis(newRedisCli, time.Now)
	}

	bot := transport.NewTelegram(a.telegramCli, newCfg.Telegram.GetApiUrl(), newCfg.Telegram.BotToken)

	locator := NewLocator(a.logger, controller.Routes{
		WebhookPath: a.localConfig.GetWebhookPath(),
		HealthPath:  a.localConfig.GetHealthPath(),
	}, time.Now)
	handler, err := locator.Handler(newCfg, store, bot)
	if err != nil {
		if newRedisCli != nil {
			_ = newRedisCli.Close()
		}
		return errors.WithMessage(err, "locator handler")
	}

	a.server.Upgrade(handler)

	a.lock.Lock()
	prevRedisCli := a.redisCli
	a.redisCli = newRedisCli
	a.lock.Unlock()
	if prevRedisCli != nil {
		_ = prevRedisCli.Close()
	}

	if webhookChanged(prevCfg.Telegram, newCfg.Telegram) {
		a.webhook.Register(ctx, bot, newCfg.Telegram)
	}

	return nil
}

func (a *Assembly) Runners() []app.Runner {
	eventHandler := cluster.NewEventHandler().
		RemoteConfigReceiver(a)

	reclaimer := service.NewReclaimer(a.memoryStore, a.localConfig.GetReclaimInterval(), a.logger)

	return []app.Runner{
		app.RunnerFunc(func(ctx context.Context) error {
			return a.server.ListenAndServe(a.boot.BindingAddress)
		}),
		app.RunnerFunc(func(ctx context.Context) error {
			return a.boot.ClusterCli.Run(ctx, eventHandler)
		}),
		app.RunnerFunc(func(ctx context.Context) error {
			reclaimer.Run(ctx)
			return nil
		}),
	}
}

func (a *Assembly) Closers() []app.Closer {
	return []app.Closer{
		app.CloserFunc(func() error {
			return a.webhook.Unregister(context.Background())
		}),
		a.boot.ClusterCli,
		app.CloserFunc(func() error {
			return a.server.Shutdown(context.Background())
		}),
		app.CloserFunc(func() error {
			a.lock.Lock()
			defer a.lock.Unlock()
			if a.redisCli != nil {
				return a.redisCli.Close()
			}
			return nil
		}),
	}
}

func webhookChanged(prev conf.Telegram, next conf.Telegram) bool {
	return prev.WebhookUrl != next.WebhookUrl ||
		prev.WebhookSecret != next.WebhookSecret ||
		prev.BotToken != next.BotToken ||
		prev.GetApiUrl() != next.GetApiUrl()
}

func (a *Assembly) redisClient(config conf.Redis) redis.UniversalClient {
	if config.Sentinel != nil {
		return redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:       config.Sentinel.MasterName,
			SentinelAddrs:    config.Sentinel.Addresses,
			SentinelUsername: config.Sentinel.Username,
			SentinelPassword: config.Sentinel.Password,
			Username:         config.Username,
			Password:         config.Password,
		})
	}
	return redis.NewClient(&redis.Options{
		Addr:     config.Address,
		Username: config.Username,
		Password: config.Password,
	})
}
