package fakeslot

import (
	"sync"

	"github.com/supuni9622/crm-application/session"
)

var _ session.Storage = (*FakeSlot)(nil)

// FakeSlot is an in-memory credential slot.
type FakeSlot struct {
	value   string
	present bool
	lock    sync.RWMutex
}

func NewFakeSlot() *FakeSlot {
	return &FakeSlot{}
}

// NewFakeSlotWith returns a slot already holding token.
func NewFakeSlotWith(token string) *FakeSlot {
	return &FakeSlot{value: token, present: true}
}

func (fs *FakeSlot) Load() (string, bool, error) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	return fs.value, fs.present, nil
}

func (fs *FakeSlot) Save(token string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.value = token
	fs.present = true
	return nil
}

func (fs *FakeSlot) Remove() error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.value = ""
	fs.present = false
	return nil
}
