package service

import (
	"context"

	"xoi-ngoc-web/internal/domain"
)

type MenuServiceInterface interface {
	Load(ctx context.Context) *domain.MenuData
	View(ctx context.Context, category, query string) domain.MenuView
	SiteQR(ctx context.Context) ([]byte, error)
	RecordView(ctx context.Context, path string)
	RecordSearch(ctx context.Context, query string)
}

// MenuSource fetches a fresh menu document from the upstream API.
type MenuSource interface {
	Fetch(ctx context.Context) (*domain.MenuData, error)
}

// PageCache is the optional redis-backed cache for QR bytes and daily
// page-view counters.
type PageCache interface {
	GetQR(ctx context.Context) ([]byte, error)
	StoreQR(ctx context.Context, png []byte) error
	CountView(ctx context.Context, day string) (int64, error)
}

// EventPublisher emits page analytics events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event domain.PageEvent) error
}

// QRGenerator encodes a link as a PNG QR code.
type QRGenerator interface {
	Generate(link string) ([]byte, error)
}

var _ MenuServiceInterface = (*MenuService)(nil)
