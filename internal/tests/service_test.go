package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"xoi-ngoc-web/internal/domain"
	"xoi-ngoc-web/internal/mocks"
	"xoi-ngoc-web/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func menuFixture() *domain.MenuData {
	return &domain.MenuData{
		UpdatedAt: "2025-12-06T08:00:00Z",
		Meta: domain.MenuMeta{
			Hotline:        "0386983357",
			NoteXoiDefault: "Xôi mặc định kèm hành phi",
		},
		Items: []domain.MenuItem{
			{ID: "m1", Category: "XÔI", Name: "Xôi xéo", Price: 15000, Available: true, Sort: 1},
			{ID: "m2", Category: "BÁNH MÌ", Name: "Bánh mì trứng", Price: 20000, Available: true, Sort: 2},
		},
		Toppings: []domain.Topping{
			{ID: "t1", Name: "Trứng", Price: 5000, Available: true, Sort: 1},
		},
	}
}

func TestMenuService_View(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		category     string
		query        string
		prepareMocks func(source *mocks.MenuSource)
		check        func(t *testing.T, view domain.MenuView)
	}{
		{
			name: "default_category_on_fresh_visit",
			prepareMocks: func(source *mocks.MenuSource) {
				source.On("Fetch", ctx).Return(menuFixture(), nil).Once()
			},
			check: func(t *testing.T, view domain.MenuView) {
				assert.True(t, view.Available)
				assert.Equal(t, "XÔI", view.ActiveCategory)
				assert.Equal(t, []string{"XÔI", "BÁNH MÌ"}, view.Categories)
				assert.Len(t, view.Items, 1)
				assert.Equal(t, "Xôi xéo", view.Items[0].Name)
				assert.Equal(t, "Xôi mặc định kèm hành phi", view.Note)
			},
		},
		{
			name:     "explicit_category",
			category: "BÁNH MÌ",
			prepareMocks: func(source *mocks.MenuSource) {
				source.On("Fetch", ctx).Return(menuFixture(), nil).Once()
			},
			check: func(t *testing.T, view domain.MenuView) {
				assert.Equal(t, "BÁNH MÌ", view.ActiveCategory)
				assert.Len(t, view.Items, 1)
				assert.Equal(t, "Bánh mì trứng", view.Items[0].Name)
				assert.Empty(t, view.Note)
			},
		},
		{
			name:     "search_overrides_category",
			category: "XÔI",
			query:    "bánh",
			prepareMocks: func(source *mocks.MenuSource) {
				source.On("Fetch", ctx).Return(menuFixture(), nil).Once()
			},
			check: func(t *testing.T, view domain.MenuView) {
				assert.Equal(t, "XÔI", view.ActiveCategory)
				assert.Len(t, view.Items, 1)
				assert.Equal(t, "Bánh mì trứng", view.Items[0].Name)
			},
		},
		{
			name: "fetch_failure_falls_back",
			prepareMocks: func(source *mocks.MenuSource) {
				source.On("Fetch", ctx).Return(nil, errors.New("upstream down")).Once()
			},
			check: func(t *testing.T, view domain.MenuView) {
				assert.False(t, view.Available)
				assert.Equal(t, domain.FallbackMeta(), view.Meta)
				assert.Empty(t, view.Items)
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			source := mocks.NewMenuSource(t)
			testCase.prepareMocks(source)

			svc := service.NewMenuService(source, nil, nil, nil, "https://example.test")
			view := svc.View(ctx, testCase.category, testCase.query)
			testCase.check(t, view)
		})
	}
}

func TestMenuService_SiteQR(t *testing.T) {
	ctx := context.Background()
	source := mocks.NewMenuSource(t)
	png := []byte{0x89, 'P', 'N', 'G'}

	t.Run("cache_hit", func(t *testing.T) {
		cache := mocks.NewPageCache(t)
		cache.On("GetQR", ctx).Return(png, nil).Once()

		svc := service.NewMenuService(source, cache, nil, mocks.NewQRGenerator(t), "https://example.test")
		got, err := svc.SiteQR(ctx)
		assert.NoError(t, err)
		assert.Equal(t, png, got)
	})

	t.Run("cache_miss_generates_and_stores", func(t *testing.T) {
		cache := mocks.NewPageCache(t)
		cache.On("GetQR", ctx).Return(nil, nil).Once()
		cache.On("StoreQR", ctx, png).Return(nil).Once()

		qr := mocks.NewQRGenerator(t)
		qr.On("Generate", "https://example.test").Return(png, nil).Once()

		svc := service.NewMenuService(source, cache, nil, qr, "https://example.test")
		got, err := svc.SiteQR(ctx)
		assert.NoError(t, err)
		assert.Equal(t, png, got)
	})

	t.Run("no_generator", func(t *testing.T) {
		svc := service.NewMenuService(source, nil, nil, nil, "https://example.test")
		_, err := svc.SiteQR(ctx)
		assert.ErrorIs(t, err, service.ErrNoQRGenerator)
	})

	t.Run("generator_error", func(t *testing.T) {
		qr := mocks.NewQRGenerator(t)
		qr.On("Generate", "https://example.test").Return(nil, errors.New("encode failed")).Once()

		svc := service.NewMenuService(source, nil, nil, qr, "https://example.test")
		_, err := svc.SiteQR(ctx)
		assert.Error(t, err)
	})
}

func TestMenuService_RecordView(t *testing.T) {
	ctx := context.Background()
	source := mocks.NewMenuSource(t)

	cache := mocks.NewPageCache(t)
	today := time.Now().Format("2006-01-02")
	cache.On("CountView", ctx, today).Return(int64(1), nil).Once()

	publisher := mocks.NewEventPublisher(t)
	publisher.On("PublishEvent", ctx, mock.MatchedBy(func(event domain.PageEvent) bool {
		return event.Type == "page_view" && event.Path == "/" && !event.Timestamp.IsZero()
	})).Return(nil).Once()

	svc := service.NewMenuService(source, cache, publisher, nil, "https://example.test")
	svc.RecordView(ctx, "/")
}

func TestMenuService_RecordSearch(t *testing.T) {
	ctx := context.Background()
	source := mocks.NewMenuSource(t)

	publisher := mocks.NewEventPublisher(t)
	publisher.On("PublishEvent", ctx, mock.MatchedBy(func(event domain.PageEvent) bool {
		return event.Type == "search" && event.Query == "xôi"
	})).Return(nil).Once()

	svc := service.NewMenuService(source, nil, publisher, nil, "https://example.test")
	svc.RecordSearch(ctx, "xôi")
}

func TestMenuService_RecordView_NoCollaborators(t *testing.T) {
	source := mocks.NewMenuSource(t)
	svc := service.NewMenuService(source, nil, nil, nil, "https://example.test")

	// Must be a no-op, not a panic.
	svc.RecordView(context.Background(), "/")
	svc.RecordSearch(context.Background(), "xôi")
}
