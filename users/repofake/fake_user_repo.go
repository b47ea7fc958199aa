package fakeuserrepo

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	crmerrors "github.com/supuni9622/crm-application/internal/errors"
	"github.com/supuni9622/crm-application/users"
)

var _ users.UserRepo = (*FakeUserRepo)(nil)

type FakeUserRepo struct {
	users    map[string]*users.Account
	emailIds map[string]string // lower-cased email to user id
	lock     sync.RWMutex
}

func NewFakeUserRepo(accounts ...*users.Account) *FakeUserRepo {
	ur := &FakeUserRepo{
		users:    make(map[string]*users.Account),
		emailIds: make(map[string]string),
	}
	for _, a := range accounts {
		_ = ur.Upsert(a)
	}
	return ur
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (ur *FakeUserRepo) Upsert(account *users.Account) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	ur.users[account.ID] = account
	ur.emailIds[emailKey(account.Email)] = account.ID
	return nil
}

func (ur *FakeUserRepo) Delete(email string) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	userID, ok := ur.emailIds[emailKey(email)]
	if !ok {
		return crmerrors.ErrRecordNotFound
	}
	delete(ur.emailIds, emailKey(email))
	delete(ur.users, userID)
	return nil
}

func (ur *FakeUserRepo) GetByEmail(email string) (*users.Account, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	id, ok := ur.emailIds[emailKey(email)]
	if !ok {
		return nil, crmerrors.ErrRecordNotFound
	}
	return ur.users[id], nil
}

func (ur *FakeUserRepo) GetByID(id string) (*users.Account, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	account, ok := ur.users[id]
	if !ok {
		return nil, crmerrors.ErrRecordNotFound
	}
	return account, nil
}

func (ur *FakeUserRepo) List(offset, limit int) ([]*users.Account, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	list := make([]*users.Account, 0, len(ur.users))
	for _, v := range ur.users {
		list = append(list, v)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})

	if offset < 0 || offset >= len(list) {
		return []*users.Account{}, nil
	}
	end := len(list)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return list[offset:end], nil
}
