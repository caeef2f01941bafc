package member

import (
	"testing"

	"MemberHub/model"
	"MemberHub/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory MemberRepository enforcing the same uniqueness
// rules as the MySQL implementation.
type fakeRepo struct {
	nextID  int64
	members map[int64]*model.Member
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, members: make(map[int64]*model.Member)}
}

func (r *fakeRepo) CreateMember(m *model.Member) (int64, error) {
	for _, existing := range r.members {
		if existing.Username == m.Username {
			return 0, repository.ErrDuplicateUsername
		}
	}
	for _, existing := range r.members {
		if existing.Email == m.Email {
			return 0, repository.ErrDuplicateEmail
		}
	}
	stored := *m
	stored.ID = r.nextID
	r.members[stored.ID] = &stored
	r.nextID++
	return stored.ID, nil
}

func (r *fakeRepo) GetMemberByID(id int64) (*model.Member, error) {
	if m, ok := r.members[id]; ok {
		copied := *m
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeRepo) GetMemberByUsername(username string) (*model.Member, error) {
	for _, m := range r.members {
		if m.Username == username {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) GetMemberByEmailAndPassword(email, password string) (*model.Member, error) {
	for _, m := range r.members {
		if m.Email == email && m.Password == password {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) UpdateMember(id int64, email, password, phone, birthdate string) error {
	for otherID, m := range r.members {
		if otherID != id && m.Email == email {
			return repository.ErrDuplicateEmail
		}
	}
	if m, ok := r.members[id]; ok {
		m.Email = email
		m.Password = password
		m.Phone = phone
		m.Birthdate = birthdate
	}
	// 不存在的id是零行更新，不报错
	return nil
}

func (r *fakeRepo) DeleteMember(id int64) error {
	delete(r.members, id)
	return nil
}

func newTestStore() (*Store, *fakeRepo) {
	repo := newFakeRepo()
	return NewStore(repo, nil), repo
}

func TestRegisterValidation(t *testing.T) {
	store, _ := newTestStore()

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"empty username", "", "a@x.com", "pw"},
		{"empty email", "bob", "", "pw"},
		{"empty password", "bob", "a@x.com", ""},
		{"whitespace only username", "   ", "a@x.com", "pw"},
		{"whitespace only password", "bob", "a@x.com", "  \t "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Register(tt.username, tt.email, tt.password, "", "")
			assert.ErrorIs(t, err, ErrFieldsRequired)
		})
	}
}

func TestRegisterTrimsFields(t *testing.T) {
	store, _ := newTestStore()

	m, err := store.Register("  bob  ", " bob@x.com ", " secret ", " 0900000000 ", " 2000-05-01 ")
	require.NoError(t, err)
	assert.Equal(t, "bob", m.Username)
	assert.Equal(t, "bob@x.com", m.Email)
	assert.Equal(t, "secret", m.Password)
	assert.Equal(t, "0900000000", m.Phone)
	assert.Equal(t, "2000-05-01", m.Birthdate)
}

func TestRegisterDistinctMembersRetrievable(t *testing.T) {
	store, _ := newTestStore()

	first, err := store.Register("alice", "alice@x.com", "pw1", "", "")
	require.NoError(t, err)
	second, err := store.Register("bob", "bob@x.com", "pw2", "0900", "1999-12-31")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	got, err := store.GetByID(second.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
	assert.Equal(t, "0900", got.Phone)

	got, err = store.GetByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store, _ := newTestStore()

	_, err := store.Register("admin2", "a2@x.com", "pw1", "", "")
	require.NoError(t, err)

	// 同名不同邮箱仍然冲突
	_, err = store.Register("admin2", "a3@x.com", "pw2", "", "")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterUsernameCaseSensitive(t *testing.T) {
	store, _ := newTestStore()

	_, err := store.Register("admin", "a1@x.com", "pw1", "", "")
	require.NoError(t, err)

	// 用户名按存储值精确比较，大小写不同视为不同用户名
	m, err := store.Register("Admin", "a2@x.com", "pw2", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Admin", m.Username)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store, _ := newTestStore()

	_, err := store.Register("alice", "same@x.com", "pw1", "", "")
	require.NoError(t, err)

	_, err = store.Register("bob", "same@x.com", "pw2", "", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	store, _ := newTestStore()

	_, err := store.Register("bob", "bob@x.com", "secret", "0900000000", "2000-05-01")
	require.NoError(t, err)

	m, err := store.Authenticate("bob@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "bob", m.Username)

	_, err = store.Authenticate("bob@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// 密码与邮箱都按存储值精确比较，大小写不同即不匹配
	_, err = store.Authenticate("bob@x.com", "SECRET")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = store.Authenticate("BOB@X.COM", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = store.Authenticate("nobody@x.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = store.Authenticate("", "secret")
	assert.ErrorIs(t, err, ErrFieldsRequired)

	_, err = store.Authenticate("bob@x.com", "")
	assert.ErrorIs(t, err, ErrFieldsRequired)
}

func TestLookup(t *testing.T) {
	store, _ := newTestStore()

	created, err := store.Register("carol", "carol@x.com", "pw", "", "")
	require.NoError(t, err)

	m, err := store.Lookup("carol")
	require.NoError(t, err)
	assert.Equal(t, created.ID, m.ID)

	_, err = store.Lookup("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateEmailConflict(t *testing.T) {
	store, _ := newTestStore()

	_, err := store.Register("alice", "alice@x.com", "pw", "", "")
	require.NoError(t, err)
	bob, err := store.Register("bob", "bob@x.com", "pw", "", "")
	require.NoError(t, err)

	// 改成别人的邮箱必须冲突
	_, err = store.Update(bob.ID, "alice@x.com", "pw", "", "")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// 保持自己的邮箱永远允许
	updated, err := store.Update(bob.ID, "bob@x.com", "newpw", "0911", "1990-01-01")
	require.NoError(t, err)
	assert.Equal(t, "bob", updated.Username)
	assert.Equal(t, "0911", updated.Phone)
}

func TestUpdateValidation(t *testing.T) {
	store, _ := newTestStore()

	m, err := store.Register("alice", "alice@x.com", "pw", "", "")
	require.NoError(t, err)

	_, err = store.Update(m.ID, "", "pw", "", "")
	assert.ErrorIs(t, err, ErrFieldsRequired)

	_, err = store.Update(m.ID, "alice@x.com", "   ", "", "")
	assert.ErrorIs(t, err, ErrFieldsRequired)
}

func TestUpdateThenAuthenticate(t *testing.T) {
	store, _ := newTestStore()

	carol, err := store.Register("carol", "carol@x.com", "pw", "", "")
	require.NoError(t, err)

	updated, err := store.Update(carol.ID, "dave@x.com", "pw2", "", "")
	require.NoError(t, err)
	assert.Equal(t, "carol", updated.Username)

	m, err := store.Authenticate("dave@x.com", "pw2")
	require.NoError(t, err)
	assert.Equal(t, carol.ID, m.ID)

	_, err = store.Authenticate("carol@x.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateMissingMember(t *testing.T) {
	store, _ := newTestStore()

	_, err := store.Update(9999, "ghost@x.com", "pw", "", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIdempotent(t *testing.T) {
	store, repo := newTestStore()

	m, err := store.Register("alice", "alice@x.com", "pw", "", "")
	require.NoError(t, err)

	require.NoError(t, store.Delete(m.ID))
	_, err = store.GetByID(m.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// 第二次删除同样成功，状态不变
	require.NoError(t, store.Delete(m.ID))
	assert.Empty(t, repo.members)

	// 删除不存在的id也不报错
	require.NoError(t, store.Delete(12345))
}
