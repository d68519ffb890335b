package sass

import (
	"sync"

	"github.com/bep/godartsass/v2"
)

// mockTranspiler returns a canned error and records its inputs.
type mockTranspiler struct {
	mu      sync.Mutex
	err     error
	block   chan struct{}
	sources []string
	closed  bool
}

func (m *mockTranspiler) Execute(args godartsass.Args) (godartsass.Result, error) {
	if m.block != nil {
		<-m.block
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = append(m.sources, args.Source)
	return godartsass.Result{}, m.err
}

func (m *mockTranspiler) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
