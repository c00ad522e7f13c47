package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kartinke/kartinke/internal/application/usecase"
)

func TestBuildInlineResults(t *testing.T) {
	results := []usecase.PhotoResult{
		{ID: "3", FileID: "file-3", Caption: "third #tag"},
		{ID: "2", FileID: "file-2", Caption: ""},
	}

	cards := buildInlineResults(results)
	if len(cards) != 2 {
		t.Fatalf("Expected 2 cards, got %d", len(cards))
	}

	first, ok := cards[0].(tgbotapi.InlineQueryResultCachedPhoto)
	if !ok {
		t.Fatalf("Expected InlineQueryResultCachedPhoto, got %T", cards[0])
	}
	if first.ID != "3" || first.PhotoID != "file-3" || first.Caption != "third #tag" {
		t.Errorf("Unexpected first card: %+v", first)
	}

	second := cards[1].(tgbotapi.InlineQueryResultCachedPhoto)
	if second.ID != "2" || second.Caption != "" {
		t.Errorf("Unexpected second card: %+v", second)
	}
}

func TestBuildInlineResults_Empty(t *testing.T) {
	cards := buildInlineResults(nil)
	if len(cards) != 0 {
		t.Errorf("Expected no cards, got %d", len(cards))
	}
}

func TestLargestPhoto(t *testing.T) {
	msg := &tgbotapi.Message{
		Photo: []tgbotapi.PhotoSize{
			{FileID: "small", Width: 90, Height: 90},
			{FileID: "medium", Width: 320, Height: 320},
			{FileID: "large", Width: 1280, Height: 1280},
		},
	}
	photo := largestPhoto(msg)
	if photo == nil || photo.FileID != "large" {
		t.Errorf("Expected the largest variant, got %+v", photo)
	}
}

func TestLargestPhoto_NoPhoto(t *testing.T) {
	if got := largestPhoto(&tgbotapi.Message{Caption: "text only"}); got != nil {
		t.Errorf("Expected nil for a photoless message, got %+v", got)
	}
	if got := largestPhoto(nil); got != nil {
		t.Errorf("Expected nil for a nil message, got %+v", got)
	}
}
