package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mmcdole/fontpeek/internal/domain"
	"github.com/mmcdole/fontpeek/internal/log"
	"github.com/mmcdole/fontpeek/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) FetchCatalog(ctx context.Context) ([]domain.FontDescriptor, error) {
	args := m.Called(ctx)
	fonts, _ := args.Get(0).([]domain.FontDescriptor)
	return fonts, args.Error(1)
}

var remoteFonts = []domain.FontDescriptor{
	{Family: "Roboto", Category: domain.CategorySansSerif},
	{Family: "Lora", Category: domain.CategorySerif},
}

func TestSource_RemoteSuccessIsCached(t *testing.T) {
	provider := &mockProvider{}
	provider.On("FetchCatalog", mock.Anything).Return(remoteFonts, nil).Once()

	cache, err := store.NewCatalogStore("")
	require.NoError(t, err)

	src := NewSource(provider, cache, time.Hour, log.NullLogger())

	first := src.Fetch(context.Background())
	assert.False(t, first.Fallback)
	assert.Equal(t, remoteFonts, first.Fonts)

	// Second fetch is served from cache; provider expects exactly one call
	second := src.Fetch(context.Background())
	assert.Equal(t, remoteFonts, second.Fonts)

	provider.AssertExpectations(t)
}

func TestSource_FailureFallsBack(t *testing.T) {
	provider := &mockProvider{}
	provider.On("FetchCatalog", mock.Anything).Return(nil, errors.New("boom"))

	src := NewSource(provider, nil, time.Hour, log.NullLogger())
	result := src.Fetch(context.Background())

	assert.True(t, result.Fallback)
	assert.Equal(t, Fallback(), result.Fonts)
}

func TestSource_NoProvider(t *testing.T) {
	src := NewSource(nil, nil, 0, log.NullLogger())
	result := src.Fetch(context.Background())

	assert.True(t, result.Fallback)
	assert.Len(t, result.Fonts, len(fallbackFonts))
}

func TestSource_ZeroTTLSkipsCache(t *testing.T) {
	provider := &mockProvider{}
	provider.On("FetchCatalog", mock.Anything).Return(remoteFonts, nil).Twice()

	cache, err := store.NewCatalogStore("")
	require.NoError(t, err)

	src := NewSource(provider, cache, 0, log.NullLogger())
	src.Fetch(context.Background())
	src.Fetch(context.Background())

	provider.AssertExpectations(t)
}
