package gateways

import (
	"fmt"
	"sort"
	"strings"

	"payflow/internal/usecase"
	"payflow/internal/usecase/interfaces"
)

// Registry is the explicit gatewayName -> driver mapping, built once at
// startup and handed to the orchestrator.

type Registry struct {
	drivers map[string]interfaces.IGateway
}

var _ interfaces.IGatewayRegistry = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{drivers: map[string]interfaces.IGateway{}}
}

func (r *Registry) Register(name string, driver interfaces.IGateway) {
	name = strings.TrimSpace(name)
	if name == "" || driver == nil {
		return
	}
	r.drivers[name] = driver
}

func (r *Registry) Get(name string) (interfaces.IGateway, error) {
	driver, ok := r.drivers[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", usecase.ErrGatewayNotFound, name)
	}
	return driver, nil
}

// Names lists the registered gateways, sorted for stable logs.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.drivers))
	for name := range r.drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
