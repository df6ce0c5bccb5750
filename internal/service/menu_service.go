package service

import (
	"context"
	"errors"
	"log"
	"time"

	"xoi-ngoc-web/internal/domain"
)

var ErrNoQRGenerator = errors.New("no qr generator configured")

// MenuService ties the menu source, the filter engine and the optional
// cache and publisher together. Cache, publisher and QR generator may all
// be nil; the site degrades instead of failing.
type MenuService struct {
	source    MenuSource
	cache     PageCache
	publisher EventPublisher
	qr        QRGenerator
	siteURL   string
}

func NewMenuService(source MenuSource, cache PageCache, publisher EventPublisher, qr QRGenerator, siteURL string) *MenuService {
	return &MenuService{
		source:    source,
		cache:     cache,
		publisher: publisher,
		qr:        qr,
		siteURL:   siteURL,
	}
}

// Load fetches a fresh menu document. Any failure is logged and reported
// as absence, never surfaced as a fault to the visitor.
func (s *MenuService) Load(ctx context.Context) *domain.MenuData {
	data, err := s.source.Fetch(ctx)
	if err != nil {
		log.Printf("[menu-web] menu fetch failed: %v", err)
		return nil
	}
	return data
}

// View derives the page state for one request. When the menu is
// unavailable the view still carries the fallback meta so contact
// shortcuts render.
func (s *MenuService) View(ctx context.Context, category, query string) domain.MenuView {
	data := s.Load(ctx)
	if data == nil {
		return domain.MenuView{Meta: domain.FallbackMeta()}
	}

	filter := NewFilter()
	filter.SelectCategory(category)
	filter.SetSearch(query)
	return filter.Apply(data)
}

// SiteQR returns the PNG QR code that links back to the site, served from
// the cache when possible.
func (s *MenuService) SiteQR(ctx context.Context) ([]byte, error) {
	if s.cache != nil {
		if png, err := s.cache.GetQR(ctx); err == nil && len(png) > 0 {
			return png, nil
		}
	}

	if s.qr == nil {
		return nil, ErrNoQRGenerator
	}

	png, err := s.qr.Generate(s.siteURL)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.StoreQR(ctx, png); err != nil {
			log.Printf("[menu-web] failed to cache qr png: %v", err)
		}
	}

	return png, nil
}

// RecordView bumps the daily view counter and emits a page_view event.
func (s *MenuService) RecordView(ctx context.Context, path string) {
	if s.cache != nil {
		day := time.Now().Format("2006-01-02")
		if _, err := s.cache.CountView(ctx, day); err != nil {
			log.Printf("[menu-web] failed to count page view: %v", err)
		}
	}

	s.publish(ctx, domain.PageEvent{Type: "page_view", Path: path})
}

// RecordSearch emits a search event with the typed query.
func (s *MenuService) RecordSearch(ctx context.Context, query string) {
	s.publish(ctx, domain.PageEvent{Type: "search", Path: "/", Query: query})
}

func (s *MenuService) publish(ctx context.Context, event domain.PageEvent) {
	if s.publisher == nil {
		return
	}
	event.Timestamp = time.Now()
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		log.Printf("[menu-web] failed to publish %s event: %v", event.Type, err)
	}
}
