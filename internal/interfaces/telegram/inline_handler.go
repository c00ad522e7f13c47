package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/kartinke/kartinke/internal/application/usecase"
)

// InlineHandler answers inline queries with cached-photo result cards. All
// query normalization and failure downgrading happens in the use case; this
// handler only maps results to the wire format.
type InlineHandler struct {
	search *usecase.SearchPhotosUseCase
	logger *zap.Logger
}

// NewInlineHandler creates the inline query handler.
func NewInlineHandler(search *usecase.SearchPhotosUseCase, logger *zap.Logger) *InlineHandler {
	return &InlineHandler{
		search: search,
		logger: logger,
	}
}

// HandleInlineQuery runs the search and answers the query. Answer failures
// are logged and dropped; Telegram simply shows the user no results.
func (h *InlineHandler) HandleInlineQuery(ctx context.Context, bot *tgbotapi.BotAPI, query *tgbotapi.InlineQuery) {
	results, cacheSeconds := h.search.Execute(ctx, query.Query)

	answer := tgbotapi.InlineConfig{
		InlineQueryID: query.ID,
		Results:       buildInlineResults(results),
		CacheTime:     cacheSeconds,
	}

	if _, err := bot.Request(answer); err != nil {
		h.logger.Error("Failed to answer inline query",
			zap.String("query", query.Query),
			zap.Error(err),
		)
		return
	}

	h.logger.Debug("Inline query answered",
		zap.String("query", query.Query),
		zap.Int("results", len(results)),
	)
}

// buildInlineResults maps search hits to cached-photo cards. The photos
// already live on Telegram's servers, so the card only references the
// media token.
func buildInlineResults(results []usecase.PhotoResult) []interface{} {
	out := make([]interface{}, 0, len(results))
	for _, r := range results {
		card := tgbotapi.NewInlineQueryResultCachedPhoto(r.ID, r.FileID)
		card.Caption = r.Caption
		out = append(out, card)
	}
	return out
}
