package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/kartinke/kartinke/internal/application/usecase"
	"github.com/kartinke/kartinke/pkg/safego"
)

// Config holds Telegram adapter settings.
type Config struct {
	BotToken string
	Debug    bool
}

// Adapter connects the bot API to the core: channel posts flow into the
// ingestion use case, inline queries into the search use case. It owns no
// business logic of its own.
type Adapter struct {
	bot           *tgbotapi.BotAPI
	config        *Config
	logger        *zap.Logger
	ingest        *usecase.IngestPhotoUseCase
	inlineHandler *InlineHandler
	cancel        context.CancelFunc
}

// NewAdapter authorizes the bot and wires the handlers.
func NewAdapter(
	config *Config,
	ingest *usecase.IngestPhotoUseCase,
	search *usecase.SearchPhotosUseCase,
	logger *zap.Logger,
) (*Adapter, error) {
	bot, err := tgbotapi.NewBotAPI(config.BotToken)
	if err != nil {
		return nil, err
	}
	bot.Debug = config.Debug

	logger.Info("Telegram bot authorized",
		zap.String("username", bot.Self.UserName),
	)

	return &Adapter{
		bot:           bot,
		config:        config,
		logger:        logger,
		ingest:        ingest,
		inlineHandler: NewInlineHandler(search, logger),
	}, nil
}

// Start begins long polling. It returns immediately; updates are consumed
// on a background goroutine until the context is cancelled or Stop is
// called.
func (a *Adapter) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	innerCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	updates := a.bot.GetUpdatesChan(u)

	a.logger.Info("Starting Telegram polling")

	safego.Go(a.logger, "telegram-poller", func() {
		for {
			select {
			case <-innerCtx.Done():
				a.bot.StopReceivingUpdates()
				a.logger.Info("Telegram adapter stopped")
				return
			case update := <-updates:
				a.handleUpdate(innerCtx, update)
			}
		}
	})

	return nil
}

// Stop terminates polling.
func (a *Adapter) Stop() {
	if a.cancel != nil {
		a.cancel()
	}
}

func (a *Adapter) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.ChannelPost != nil:
		a.handleChannelPost(ctx, update.ChannelPost)
	case update.EditedChannelPost != nil:
		// Editing a post re-ingests it under the same message id, so the
		// upsert replaces the stale caption and tags.
		a.handleChannelPost(ctx, update.EditedChannelPost)
	case update.InlineQuery != nil:
		a.inlineHandler.HandleInlineQuery(ctx, a.bot, update.InlineQuery)
	}
}

func (a *Adapter) handleChannelPost(ctx context.Context, msg *tgbotapi.Message) {
	photo := largestPhoto(msg)
	if photo == nil {
		// Only photo posts are indexed.
		return
	}

	err := a.ingest.Execute(ctx, usecase.IngestPhotoInput{
		MessageID: int64(msg.MessageID),
		FileID:    photo.FileID,
		Caption:   msg.Caption,
		PostedAt:  msg.Time(),
	})
	if err != nil {
		// Not marked as ingested; Telegram may redeliver the update.
		a.logger.Error("Failed to index channel photo",
			zap.Int("message_id", msg.MessageID),
			zap.Error(err),
		)
	}
}
