package roster

import (
	"context"
	"errors"
	"sync"
)

// fakeService serves canned pages and details. A detail gate, when set,
// blocks that URL until the channel is closed.
type fakeService struct {
	mu       sync.Mutex
	pages    map[int][]Summary
	details  map[string]Entity
	listErr  error
	failURL  string
	gates    map[string]chan struct{}
	resolved []string
}

func newFakeService() *fakeService {
	return &fakeService{
		pages:   map[int][]Summary{},
		details: map[string]Entity{},
		gates:   map[string]chan struct{}{},
	}
}

func (f *fakeService) add(offset int, entities ...Entity) {
	for _, e := range entities {
		url := "https://example.test/pokemon/" + e.Name
		f.pages[offset] = append(f.pages[offset], Summary{Name: e.Name, URL: url})
		f.details[url] = e
	}
}

func (f *fakeService) ListPage(_ context.Context, page Page) ([]Summary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]Summary(nil), f.pages[page.Offset]...), nil
}

func (f *fakeService) FetchDetail(ctx context.Context, s Summary) (Entity, error) {
	f.mu.Lock()
	gate := f.gates[s.URL]
	f.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return Entity{}, ctx.Err()
		}
	}
	if s.URL == f.failURL {
		return Entity{}, errors.New("boom")
	}
	e, ok := f.details[s.URL]
	if !ok {
		return Entity{}, errors.New("not found")
	}
	f.mu.Lock()
	f.resolved = append(f.resolved, e.Name)
	f.mu.Unlock()
	return e, nil
}

func mon(id int, name string, categories ...string) Entity {
	if len(categories) == 0 {
		categories = []string{"normal"}
	}
	return Entity{ID: id, Name: name, Categories: categories}
}
