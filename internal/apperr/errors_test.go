package apperr_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/news-scraper/internal/apperr"
)

func TestNewTransport(t *testing.T) {
	inner := context.DeadlineExceeded
	err := apperr.NewTransport("https://example.com/rss", inner)

	if err.Error() != "transport error for https://example.com/rss: context deadline exceeded" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("expected Unwrap to expose the deadline error")
	}
}

func TestNewParse(t *testing.T) {
	err := apperr.NewParse("div.page")

	if err.Error() != "parse error: div.page" {
		t.Errorf("expected 'parse error: div.page', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewConfigWrap(t *testing.T) {
	inner := fmt.Errorf("unknown kind")
	err := apperr.NewConfigWrap("source bbc", inner)

	if err.Error() != "source bbc: unknown kind" {
		t.Errorf("expected 'source bbc: unknown kind', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestClassifiers_SurviveFmtWrapping(t *testing.T) {
	transport := fmt.Errorf("feed rt: %w", apperr.NewTransport("u", errors.New("refused")))
	parse := fmt.Errorf("item 3: %w", apperr.NewParse("pubDate"))
	config := fmt.Errorf("startup: %w", apperr.NewConfig("bad kind"))

	if !apperr.IsTransport(transport) || apperr.IsParse(transport) || apperr.IsConfig(transport) {
		t.Error("transport error misclassified")
	}
	if !apperr.IsParse(parse) || apperr.IsTransport(parse) {
		t.Error("parse error misclassified")
	}
	if !apperr.IsConfig(config) || apperr.IsParse(config) {
		t.Error("config error misclassified")
	}
}

func TestClassifiers_NotFoundForPlainErrors(t *testing.T) {
	wrapped := fmt.Errorf("storage error: %w", fmt.Errorf("database connection failed"))

	if apperr.IsTransport(wrapped) || apperr.IsParse(wrapped) || apperr.IsConfig(wrapped) {
		t.Fatal("plain error chain should not match any typed error")
	}
}
