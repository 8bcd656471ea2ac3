// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

// Package experiments contains the built-in experiment definitions and the registry handing them to
// the experiment runner
package experiments

import (
	"sync"

	"github.com/onosproject/enso-sim/pkg/experiment"
	"github.com/onosproject/onos-lib-go/pkg/errors"
	"github.com/onosproject/onos-lib-go/pkg/logging"
	"golang.org/x/exp/slices"
)

var log = logging.GetLogger("experiments")

// Registry is an append-only list of experiments consumed by the experiment runner
type Registry struct {
	lock        sync.RWMutex
	experiments []*experiment.Experiment
}

// NewRegistry creates a new empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Default returns a registry holding all built-in experiments
func Default() (*Registry, error) {
	r := NewRegistry()
	e, err := EnsoPCIeSwitchEcho()
	if err != nil {
		return nil, err
	}
	if err = r.Add(e); err != nil {
		return nil, err
	}
	return r, nil
}

// Add appends the experiment; experiment names must be unique
func (r *Registry) Add(e *experiment.Experiment) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, x := range r.experiments {
		if x.Name == e.Name {
			return errors.NewAlreadyExists("Experiment %s already registered", e.Name)
		}
	}
	r.experiments = append(r.experiments, e)
	log.Debugf("Registered experiment %s (%s)", e.Name, e.ID)
	return nil
}

// List returns all experiments in registration order
func (r *Registry) List() []*experiment.Experiment {
	r.lock.RLock()
	defer r.lock.RUnlock()
	experiments := make([]*experiment.Experiment, len(r.experiments))
	copy(experiments, r.experiments)
	return experiments
}

// Get returns the experiment with the specified name
func (r *Registry) Get(name string) (*experiment.Experiment, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	for _, e := range r.experiments {
		if e.Name == name {
			return e, nil
		}
	}
	return nil, errors.NewNotFound("Experiment %s not found", name)
}

// Names returns the sorted names of all registered experiments
func (r *Registry) Names() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()
	names := make([]string, 0, len(r.experiments))
	for _, e := range r.experiments {
		names = append(names, e.Name)
	}
	slices.Sort(names)
	return names
}
