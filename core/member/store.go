package member

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"MemberHub/cache"
	"MemberHub/logger"
	"MemberHub/model"
	"MemberHub/repository"
)

// Store is the membership store: it owns input trimming, required-field
// validation and the uniqueness guarantees over the members table.
type Store struct {
	repo  repository.MemberRepository
	cache *cache.MemberCache // nil disables profile caching
}

// NewStore creates a membership store.
func NewStore(repo repository.MemberRepository, memberCache *cache.MemberCache) *Store {
	return &Store{repo: repo, cache: memberCache}
}

// Register creates a new member. Username, email and password are required
// after trimming; phone and birthdate are stored as given, empty included.
func (s *Store) Register(username, email, password, phone, birthdate string) (*model.Member, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	phone = strings.TrimSpace(phone)
	birthdate = strings.TrimSpace(birthdate)

	if username == "" || email == "" || password == "" {
		return nil, ErrFieldsRequired
	}

	m := &model.Member{
		Username:  username,
		Email:     email,
		Password:  password,
		Phone:     phone,
		Birthdate: birthdate,
	}

	id, err := s.repo.CreateMember(m)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrUsernameTaken
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("register member %s: %w", username, err)
	}

	m.ID = id
	logger.Info("member registered", logger.Int64("id", id), logger.String("username", username))
	return m, nil
}

// Authenticate verifies email/password against the stored values. Both are
// compared exactly as stored.
func (s *Store) Authenticate(email, password string) (*model.Member, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		return nil, ErrFieldsRequired
	}

	m, err := s.repo.GetMemberByEmailAndPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("authenticate %s: %w", email, err)
	}
	if m == nil {
		return nil, ErrInvalidCredentials
	}
	return m, nil
}

// Lookup resolves a username to its member record.
func (s *Store) Lookup(username string) (*model.Member, error) {
	m, err := s.repo.GetMemberByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("lookup member %s: %w", username, err)
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

// GetByID returns the member with the given id, served from the profile
// cache when warm. Cached entries never carry the password.
func (s *Store) GetByID(id int64) (*model.Member, error) {
	ctx := context.Background()

	if m, err := s.cache.Get(ctx, id); err == nil && m != nil {
		return m, nil
	} else if err != nil {
		logger.Warn("member cache read failed", logger.Int64("id", id), logger.ErrorField(err))
	}

	m, err := s.repo.GetMemberByID(id)
	if err != nil {
		return nil, fmt.Errorf("get member %d: %w", id, err)
	}
	if m == nil {
		return nil, ErrNotFound
	}

	if err := s.cache.Set(ctx, m); err != nil {
		logger.Warn("member cache write failed", logger.Int64("id", id), logger.ErrorField(err))
	}
	return m, nil
}

// Update overwrites email, password, phone and birthdate of the member with
// the given id. Username is never changed. The updated record is returned;
// an id with no row behind it yields ErrNotFound from the resolve step.
func (s *Store) Update(id int64, email, password, phone, birthdate string) (*model.Member, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	phone = strings.TrimSpace(phone)
	birthdate = strings.TrimSpace(birthdate)

	if email == "" || password == "" {
		return nil, ErrFieldsRequired
	}

	if err := s.repo.UpdateMember(id, email, password, phone, birthdate); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("update member %d: %w", id, err)
	}

	if err := s.cache.Invalidate(context.Background(), id); err != nil {
		logger.Warn("member cache invalidation failed", logger.Int64("id", id), logger.ErrorField(err))
	}

	m, err := s.repo.GetMemberByID(id)
	if err != nil {
		return nil, fmt.Errorf("reload member %d after update: %w", id, err)
	}
	if m == nil {
		return nil, ErrNotFound
	}

	logger.Info("member updated", logger.Int64("id", id), logger.String("username", m.Username))
	return m, nil
}

// Delete removes the member with the given id. Deleting an absent id is a
// successful no-op.
func (s *Store) Delete(id int64) error {
	if err := s.repo.DeleteMember(id); err != nil {
		return fmt.Errorf("delete member %d: %w", id, err)
	}

	if err := s.cache.Invalidate(context.Background(), id); err != nil {
		logger.Warn("member cache invalidation failed", logger.Int64("id", id), logger.ErrorField(err))
	}

	logger.Info("member deleted", logger.Int64("id", id))
	return nil
}
