package view

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/babylon-detective/island-crisis/common"
)

// Offset is the configuration for one named over-the-shoulder/tactical view:
// where the camera sits relative to the subject, where it looks, how quickly
// the offset settles, and the field of view the camera snaps to.
// Vectors are in subject-local space and rotate with the subject's facing.
type Offset struct {
	// Base is the camera offset from the subject, in subject-local space.
	Base [3]float32 `yaml:"base"`

	// LookAt is the look-at point offset from the subject, in subject-local space.
	LookAt [3]float32 `yaml:"look_at"`

	// Smoothing is the first-order filter coefficient in (0, 1].
	// 1 snaps to the target offset in one update; values near 0 lag heavily.
	Smoothing float32 `yaml:"smoothing"`

	// Fov is the vertical field of view in radians for this view.
	Fov float32 `yaml:"fov"`
}

// Patch is a partial update to an Offset. Nil fields are left unchanged.
type Patch struct {
	Base      *[3]float32
	LookAt    *[3]float32
	Smoothing *float32
	Fov       *float32
}

// Validate checks an Offset for caller contract violations: non-finite
// components, smoothing outside (0, 1], or a field of view outside (0, π).
//
// Returns:
//   - error: nil if the offset is usable
func (o Offset) Validate() error {
	for i, v := range o.Base {
		if !common.Finite(v) {
			return fmt.Errorf("base offset component %d is not finite", i)
		}
	}
	for i, v := range o.LookAt {
		if !common.Finite(v) {
			return fmt.Errorf("look-at offset component %d is not finite", i)
		}
	}
	if !common.Finite(o.Smoothing) || o.Smoothing <= 0 || o.Smoothing > 1 {
		return fmt.Errorf("smoothing %v outside (0, 1]", o.Smoothing)
	}
	if !common.Finite(o.Fov) || o.Fov <= 0 || float64(o.Fov) >= math.Pi {
		return fmt.Errorf("fov %v outside (0, π)", o.Fov)
	}
	return nil
}

// Registry holds the named view offsets. Base data is validated at
// construction; individual entries can be tuned at runtime via Update.
type Registry interface {
	// Get returns the offset configured for the given view id.
	//
	// Parameters:
	//   - id: the view identifier
	//
	// Returns:
	//   - Offset: the configured offset (zero value if absent)
	//   - bool: true if the id is configured
	Get(id string) (Offset, bool)

	// Update applies a partial patch to the named view. Unknown ids and
	// patches that would produce an invalid offset are rejected.
	//
	// Parameters:
	//   - id: the view identifier
	//   - patch: fields to overwrite (nil fields unchanged)
	//
	// Returns:
	//   - bool: true if the patch was applied
	Update(id string, patch Patch) bool

	// Replace swaps in a whole new validated set of entries, keeping ids not
	// present in the new set. Used by the config hot-reload watcher.
	//
	// Parameters:
	//   - entries: new entries keyed by view id
	//
	// Returns:
	//   - error: non-nil if any entry fails validation (nothing is applied)
	Replace(entries map[string]Offset) error

	// IDs returns the configured view ids in sorted order.
	//
	// Returns:
	//   - []string: sorted view ids
	IDs() []string
}

type registryImpl struct {
	mu      *sync.Mutex
	entries map[string]Offset
}

var _ Registry = &registryImpl{}

// NewRegistry creates a Registry from the given entries, validating each.
//
// Parameters:
//   - entries: view offsets keyed by view id
//
// Returns:
//   - Registry: the new registry
//   - error: non-nil if any entry fails validation
func NewRegistry(entries map[string]Offset) (Registry, error) {
	r := &registryImpl{
		mu:      &sync.Mutex{},
		entries: make(map[string]Offset, len(entries)),
	}
	for id, o := range entries {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("view %q: %w", id, err)
		}
		r.entries[id] = o
	}
	return r, nil
}

func (r *registryImpl) Get(id string) (Offset, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.entries[id]
	return o, ok
}

func (r *registryImpl) Update(id string, patch Patch) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.entries[id]
	if !ok {
		return false
	}
	if patch.Base != nil {
		o.Base = *patch.Base
	}
	if patch.LookAt != nil {
		o.LookAt = *patch.LookAt
	}
	if patch.Smoothing != nil {
		o.Smoothing = *patch.Smoothing
	}
	if patch.Fov != nil {
		o.Fov = *patch.Fov
	}
	if err := o.Validate(); err != nil {
		return false
	}
	r.entries[id] = o
	return true
}

func (r *registryImpl) Replace(entries map[string]Offset) error {
	for id, o := range entries {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("view %q: %w", id, err)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, o := range entries {
		r.entries[id] = o
	}
	return nil
}

func (r *registryImpl) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
