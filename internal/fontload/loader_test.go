package fontload

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mmcdole/fontpeek/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockMaterializer struct {
	mock.Mock
}

func (m *mockMaterializer) Materialize(ctx context.Context, family string) error {
	return m.Called(family).Error(0)
}

type recordingObserver struct {
	mu     sync.Mutex
	loaded []string
	failed []string
}

func (o *recordingObserver) OnFontLoaded(family string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.loaded = append(o.loaded, family)
}

func (o *recordingObserver) OnFontFailed(family string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failed = append(o.failed, family)
}

func TestLoader_DeduplicatesRequests(t *testing.T) {
	m := &mockMaterializer{}
	m.On("Materialize", "Roboto").Return(nil).Once()

	obs := &recordingObserver{}
	l := NewLoader(m, 2, time.Second, log.NullLogger())
	l.SetObserver(obs)

	for i := 0; i < 5; i++ {
		l.Load("Roboto")
	}
	l.Wait()
	l.Load("Roboto")
	l.Wait()

	m.AssertExpectations(t)
	assert.True(t, l.Has("Roboto"))
	assert.Equal(t, []string{"Roboto"}, obs.loaded)
}

func TestLoader_FailureAllowsRetry(t *testing.T) {
	m := &mockMaterializer{}
	m.On("Materialize", "Blocked").Return(errors.New("network down")).Once()
	m.On("Materialize", "Blocked").Return(nil).Once()

	obs := &recordingObserver{}
	l := NewLoader(m, 1, time.Second, log.NullLogger())
	l.SetObserver(obs)

	l.Load("Blocked")
	l.Wait()
	assert.False(t, l.Has("Blocked"), "failed family leaves the loaded set")
	assert.Equal(t, []string{"Blocked"}, obs.failed)

	l.Load("Blocked")
	l.Wait()
	assert.True(t, l.Has("Blocked"))
	m.AssertExpectations(t)
}

func TestLoader_LoadDoesNotBlock(t *testing.T) {
	release := make(chan struct{})
	blocking := &blockingMaterializer{release: release}

	l := NewLoader(blocking, 1, 0, log.NullLogger())

	done := make(chan struct{})
	go func() {
		l.Load("A")
		l.Load("B")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Load blocked on an in-flight request")
	}

	// Requested families are in the set before their requests complete
	assert.Equal(t, []string{"A", "B"}, l.Families())

	close(release)
	l.Wait()
}

func TestLoader_IgnoresEmptyFamily(t *testing.T) {
	m := &mockMaterializer{}
	l := NewLoader(m, 1, 0, log.NullLogger())

	l.Load("")
	l.Wait()

	assert.Empty(t, l.Families())
	m.AssertNotCalled(t, "Materialize", mock.Anything)
}

type blockingMaterializer struct {
	release chan struct{}
}

func (b *blockingMaterializer) Materialize(ctx context.Context, family string) error {
	<-b.release
	return nil
}
