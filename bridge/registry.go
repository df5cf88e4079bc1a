// Package bridge exposes launcher queries to the UI layer.
//
// Commands are registered once while the application is constructed and
// are read-only afterwards, so Invoke needs no locking. The same table is
// served in-process and over the session bus.
package bridge

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/thinkube/installer-shell/common"
	"github.com/thinkube/installer-shell/config"
)

// Handler answers one command synchronously.
type Handler func() (any, error)

// Registry is the command table.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry returns an empty command table.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// NewDefaultRegistry returns the table with every launcher command.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(common.CommandGetConfigFlags, func() (any, error) {
		return config.Flags(), nil
	})
	return r
}

// Register adds a command. It panics on a duplicate name, which can only
// be a programming error.
func (r *Registry) Register(name string, h Handler) {
	if _, exists := r.handlers[name]; exists {
		panic(fmt.Sprintf("bridge: command %q registered twice", name))
	}
	r.handlers[name] = h
}

// Invoke runs the named command.
func (r *Registry) Invoke(name string) (any, error) {
	h, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownCommand, name)
	}
	return h()
}

// InvokeJSON runs the named command and encodes its result.
func (r *Registry) InvokeJSON(name string) ([]byte, error) {
	result, err := r.Invoke(name)
	if err != nil {
		return nil, err
	}
	return json.Marshal(result)
}

// Names lists the registered commands in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ConfigFlags queries get_config_flags through the table.
func (r *Registry) ConfigFlags() (config.ConfigFlags, error) {
	result, err := r.Invoke(common.CommandGetConfigFlags)
	if err != nil {
		return config.ConfigFlags{}, err
	}
	flags, ok := result.(config.ConfigFlags)
	if !ok {
		return config.ConfigFlags{}, fmt.Errorf("%s returned %T", common.CommandGetConfigFlags, result)
	}
	return flags, nil
}
