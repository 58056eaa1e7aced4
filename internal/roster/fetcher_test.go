package roster

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAll_PreservesOrderRegardlessOfCompletion(t *testing.T) {
	svc := newFakeService()
	svc.add(0, mon(1, "a"), mon(2, "b"), mon(3, "c"))
	summaries := svc.pages[0]

	gateA := make(chan struct{})
	gateB := make(chan struct{})
	svc.gates[summaries[0].URL] = gateA
	svc.gates[summaries[1].URL] = gateB

	done := make(chan struct{})
	var got []Entity
	var err error
	go func() {
		got, err = NewFetcher(svc, 0).FetchAll(context.Background(), summaries)
		close(done)
	}()

	// Let C resolve first, then B, then A.
	require.Eventually(t, func() bool {
		svc.mu.Lock()
		defer svc.mu.Unlock()
		return len(svc.resolved) == 1
	}, time.Second, 5*time.Millisecond)
	close(gateB)
	require.Eventually(t, func() bool {
		svc.mu.Lock()
		defer svc.mu.Unlock()
		return len(svc.resolved) == 2
	}, time.Second, 5*time.Millisecond)
	close(gateA)
	<-done

	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, svc.resolved)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "b", got[1].Name)
	assert.Equal(t, "c", got[2].Name)
}

func TestFetchAll_OneFailureFailsAll(t *testing.T) {
	svc := newFakeService()
	svc.add(0, mon(1, "a"), mon(2, "b"), mon(3, "c"))
	svc.failURL = svc.pages[0][1].URL

	got, err := NewFetcher(svc, 2).FetchAll(context.Background(), svc.pages[0])
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), svc.failURL)
}

func TestFetchAll_RejectsIncompleteEntity(t *testing.T) {
	svc := newFakeService()
	svc.add(0, mon(1, "a"), Entity{ID: 2, Name: "nocat"})

	_, err := NewFetcher(svc, 0).FetchAll(context.Background(), svc.pages[0])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no categories")
}

func TestFetchAll_Empty(t *testing.T) {
	got, err := NewFetcher(newFakeService(), 0).FetchAll(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
