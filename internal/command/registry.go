package command

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/relyk/tomatobot/internal/interaction"
	"github.com/relyk/tomatobot/internal/util"
)

// ErrUnknownCommand is returned for names no handler claims.
var ErrUnknownCommand = errors.New("unknown command")

// Registry holds the command handlers and dispatches by normalized name.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Command
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Command)}
}

// Register adds a handler under its normalized name.
func (r *Registry) Register(handler Command) {
	if handler == nil {
		return
	}

	name := util.Normalize(handler.Name())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = handler
}

// Execute dispatches one invocation to the handler registered under key.
func (r *Registry) Execute(ctx context.Context, reply interaction.Replier, key string, params map[string]any) error {
	if r == nil {
		return fmt.Errorf("command registry is nil")
	}

	handler := r.getHandler(key)
	if handler == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, key)
	}

	if err := handler.Execute(ctx, reply, params); err != nil {
		return fmt.Errorf("failed to execute command %s: %w", key, err)
	}
	return nil
}

// All returns the registered handlers, for slash-command registration.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handlers := make([]Command, 0, len(r.handlers))
	for _, handler := range r.handlers {
		handlers = append(handlers, handler)
	}
	return handlers
}

// Count returns the number of registered handlers.
func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

func (r *Registry) getHandler(key string) Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if key == "" {
		return nil
	}
	if handler, ok := r.handlers[util.Normalize(key)]; ok {
		return handler
	}
	return nil
}
