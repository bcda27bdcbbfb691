// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"context"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/environment"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/notifications"
	"github.com/jetsetilly/gopherboy/records"
	"github.com/jetsetilly/gopherboy/recovery"
	"github.com/jetsetilly/gopherboy/savestate"
)

// Sentinel error patterns.
const (
	NoCartridge = "memory: no cartridge loaded"
)

// Memory is the memory and persistence service for a single emulation.
type Memory struct {
	env *environment.Environment
	cpu CPU

	store    *records.Store
	recovery *recovery.Recovery

	// view over the linear memory. unbound until Initialize()
	mem *memorymap.Linear
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The store and recovery instances should not be shared with another Memory
// instance that is running concurrently.
func NewMemory(env *environment.Environment, cpu CPU, store *records.Store, rc *recovery.Recovery) (*Memory, error) {
	if env == nil {
		return nil, curated.Errorf("memory: no environment")
	}
	if cpu == nil {
		return nil, curated.Errorf("memory: no CPU")
	}
	if store == nil {
		return nil, curated.Errorf("memory: no record store")
	}
	if rc == nil {
		return nil, curated.Errorf("memory: no recovery")
	}

	return &Memory{
		env:      env,
		cpu:      cpu,
		store:    store,
		recovery: rc,
		mem:      memorymap.NewLinear(nil),
	}, nil
}

// Linear returns the view over the linear memory. Intended for use by
// debugging collaborators.
func (m *Memory) Linear() *memorymap.Linear {
	return m.mem
}

// Initialize binds the linear memory and replays any recovery snapshot left
// by a previous session. A failure to replay the snapshot is not an error.
// The snapshot will be retried on the next call to Initialize() and the
// failure is logged.
func (m *Memory) Initialize(ctx context.Context, linear []byte) error {
	if len(linear) == 0 {
		return curated.Errorf("memory: %v", curated.Errorf(memorymap.MemoryUnavailable))
	}

	m.mem.Bind(linear)
	logger.Logf(m.env, "memory", "bound %d bytes of linear memory", len(linear))

	if !m.env.Prefs.RecoveryEnabled.Get().(bool) {
		return nil
	}

	snap, err := m.recovery.Replay(ctx, m.store)
	if err != nil {
		logger.Logf(m.env, "memory", "recovery: %v", err)
		if m.recovery.State() == recovery.PendingRecovery {
			m.notify(notifications.NotifyRecoveryPending)
		}
		return nil
	}

	if snap != nil {
		logger.Logf(m.env, "memory", "recovered %s", snap.Header.Title())
		m.notify(notifications.NotifyRecoveryReplayed)
	}

	return nil
}

// LoadCartridgeROM writes the ROM data into the CartridgeROM region and then
// resets the CPU.
func (m *Memory) LoadCartridgeROM(data []byte) error {
	if err := m.mem.WriteRegion(memorymap.CartridgeROM, data); err != nil {
		return curated.Errorf("memory: %v", err)
	}

	m.cpu.Reset()

	h, err := cartridge.ExtractHeader(m.mem)
	if err != nil {
		// ROM is too small to contain a header. the ROM is still loaded but
		// none of the persistence functions will work
		logger.Logf(m.env, "memory", "loaded %d bytes of ROM with no header", len(data))
	} else {
		logger.Logf(m.env, "memory", "loaded %s (%s)", h.Title(), h.Type())
		if !h.ChecksumValid() {
			logger.Logf(m.env, "memory", "%s: header checksum is invalid", h.Title())
		}
	}

	m.notify(notifications.NotifyCartridgeLoaded)

	return nil
}

// Header returns the header of the loaded cartridge. A header of all zero
// bytes means that no cartridge has been loaded, which is an error.
func (m *Memory) Header() (cartridge.Header, error) {
	h, err := cartridge.ExtractHeader(m.mem)
	if err != nil {
		return h, curated.Errorf("memory: %v", err)
	}
	if h.IsZero() {
		return h, curated.Errorf(NoCartridge)
	}
	return h, nil
}

// SaveState appends a new save state to the record for the loaded cartridge.
// An empty label means the state has no label.
func (m *Memory) SaveState(ctx context.Context, label string) error {
	h, err := m.Header()
	if err != nil {
		return err
	}

	st, err := m.encode(label, false)
	if err != nil {
		return err
	}

	if err := m.store.SaveState(ctx, h, st); err != nil {
		return curated.Errorf("memory: %v", err)
	}

	logger.Logf(m.env, "memory", "saved state for %s: %s", h.Title(), st)
	m.notify(notifications.NotifyStateSaved)

	return nil
}

// LoadState restores the save state at the index in the record for the
// loaded cartridge. The records.Latest index selects the default state.
func (m *Memory) LoadState(ctx context.Context, index int) error {
	h, err := m.Header()
	if err != nil {
		return err
	}

	st, err := m.store.LoadState(ctx, h, index)
	if err != nil {
		return curated.Errorf("memory: %v", err)
	}

	if err := savestate.Decode(m.mem, st); err != nil {
		return curated.Errorf("memory: %v", err)
	}

	if err := m.cpu.DeserialiseState(); err != nil {
		return curated.Errorf("memory: cpu: %v", err)
	}

	logger.Logf(m.env, "memory", "loaded state for %s: %s", h.Title(), st)
	m.notify(notifications.NotifyStateLoaded)

	return nil
}

// SaveCartridgeRAM writes the cartridge RAM to the record for the loaded
// cartridge. Returns false, and no error, if the cartridge has no RAM.
func (m *Memory) SaveCartridgeRAM(ctx context.Context) (bool, error) {
	h, err := m.Header()
	if err != nil {
		return false, err
	}

	ram, ok, err := cartridge.ReadCartridgeRAM(m.mem)
	if err != nil {
		return false, curated.Errorf("memory: %v", err)
	}
	if !ok {
		return false, nil
	}

	if err := m.store.SaveCartridgeRAM(ctx, h, ram); err != nil {
		return false, curated.Errorf("memory: %v", err)
	}

	logger.Logf(m.env, "memory", "saved %d bytes of cartridge RAM for %s", len(ram), h.Title())
	m.notify(notifications.NotifyRAMSaved)

	return true, nil
}

// LoadCartridgeRAM restores the cartridge RAM from the record for the loaded
// cartridge. Returns false, and no error, if there is no cartridge RAM in the
// record.
func (m *Memory) LoadCartridgeRAM(ctx context.Context) (bool, error) {
	h, err := m.Header()
	if err != nil {
		return false, err
	}

	ram, ok, err := m.store.LoadCartridgeRAM(ctx, h)
	if err != nil {
		return false, curated.Errorf("memory: %v", err)
	}
	if !ok {
		return false, nil
	}

	if err := cartridge.WriteCartridgeRAM(m.mem, ram); err != nil {
		return false, curated.Errorf("memory: %v", err)
	}

	logger.Logf(m.env, "memory", "loaded %d bytes of cartridge RAM for %s", len(ram), h.Title())
	m.notify(notifications.NotifyRAMLoaded)

	return true, nil
}

// Record returns a copy of the record for the loaded cartridge. Returns
// false if no record exists.
func (m *Memory) Record(ctx context.Context) (*records.Record, bool, error) {
	h, err := m.Header()
	if err != nil {
		return nil, false, err
	}

	rec, ok, err := m.store.GetRecord(ctx, h)
	if err != nil {
		return nil, false, curated.Errorf("memory: %v", err)
	}

	return rec, ok, nil
}

// RecoveryState returns the state of the recovery process.
func (m *Memory) RecoveryState() recovery.State {
	return m.recovery.State()
}

// Teardown captures a recovery snapshot of the loaded cartridge. It does not
// write to the record store and it does not block on anything other than a
// write to the recovery package's volatile store.
//
// The linear memory is unbound once Teardown() has completed. Teardown() does
// nothing if no cartridge is loaded.
func (m *Memory) Teardown() error {
	defer m.mem.Bind(nil)

	if !m.env.Prefs.RecoveryEnabled.Get().(bool) {
		return nil
	}

	h, err := cartridge.ExtractHeader(m.mem)
	if err != nil || h.IsZero() {
		return nil
	}

	st, err := m.encode("", true)
	if err != nil {
		return err
	}

	// cartridge RAM is included in the snapshot separately from the save state
	// so that it is replayed as the RAM for the record
	var ram []byte
	if m.env.Prefs.SaveRAMOnShutdown.Get().(bool) {
		r, ok, err := cartridge.ReadCartridgeRAM(m.mem)
		if err != nil {
			return curated.Errorf("memory: %v", err)
		}
		if ok {
			ram = r
		}
	}

	if err := m.recovery.Capture(h, ram, st); err != nil {
		return curated.Errorf("memory: %v", err)
	}

	return nil
}

// encode the linear memory as a new save state
func (m *Memory) encode(label string, automatic bool) (*savestate.State, error) {
	if err := m.cpu.SerialiseState(); err != nil {
		return nil, curated.Errorf("memory: cpu: %v", err)
	}

	st, err := savestate.Encode(m.mem, savestate.Meta{
		CreatedAt: m.env.Now(),
		Label:     label,
		Automatic: automatic,
	})
	if err != nil {
		return nil, curated.Errorf("memory: %v", err)
	}

	return st, nil
}

func (m *Memory) notify(notice notifications.Notice) {
	if err := m.env.Notify.Notify(notice); err != nil {
		logger.Logf(m.env, "memory", "notify %s: %v", notice, err)
	}
}
