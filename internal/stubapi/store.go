// Package stubapi is an in-memory implementation of the backend REST
// contract the storefront client consumes. It exists so the client can be
// developed and end-to-end tested without the real backend: same envelope,
// same bearer-token auth, same role gates. Pricing and stock business rules
// beyond what the contract requires are deliberately absent.
package stubapi

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

var (
	errInvalidCredentials = errors.New("Invalid credentials")
	errUserExists         = errors.New("Email already registered")
	errNotFound           = errors.New("not found")
)

type userRecord struct {
	domain.User
	passwordHash string
}

// Store holds all stub state behind one mutex. Good enough for a dev
// fixture; contention is not a concern here.
type Store struct {
	mu           sync.Mutex
	users        map[string]*userRecord
	products     map[string]*domain.Product
	quotations   map[string]*domain.Quotation
	reservations map[string]*domain.Reservation
	suppliers    map[string]*domain.Supplier

	jwtSecret string
	tokenTTL  time.Duration
}

// NewStore builds an empty store that mints HS256 tokens with jwtSecret.
func NewStore(jwtSecret string, tokenTTL time.Duration) *Store {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Store{
		users:        make(map[string]*userRecord),
		products:     make(map[string]*domain.Product),
		quotations:   make(map[string]*domain.Quotation),
		reservations: make(map[string]*domain.Reservation),
		suppliers:    make(map[string]*domain.Supplier),
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
	}
}

// SeedAdmin creates the initial back-office account if the email is free.
func (s *Store) SeedAdmin(email, password string) error {
	_, _, err := s.createUser("Administrator", email, password, "", domain.RoleAdmin)
	if errors.Is(err, errUserExists) {
		return nil
	}
	return err
}

// Register creates a customer account and logs it in.
func (s *Store) Register(in domain.RegisterInput) (*domain.User, string, error) {
	return s.createUser(in.Name, in.Email, in.Password, in.Phone, domain.RoleCustomer)
}

func (s *Store) createUser(name, email, password, phone, role string) (*domain.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return nil, "", errUserExists
		}
	}

	now := time.Now().UTC()
	rec := &userRecord{
		User: domain.User{
			ID:        uuid.NewString(),
			Name:      name,
			Email:     email,
			Role:      role,
			Phone:     phone,
			CreatedAt: now,
			UpdatedAt: now,
		},
		passwordHash: string(hash),
	}
	s.users[rec.ID] = rec

	token, err := s.mintToken(&rec.User)
	if err != nil {
		return nil, "", err
	}
	u := rec.User
	return &u, token, nil
}

// Login checks credentials and returns the user plus a fresh token.
func (s *Store) Login(email, password string) (*domain.User, string, error) {
	s.mu.Lock()
	var rec *userRecord
	for _, u := range s.users {
		if u.Email == email {
			rec = u
			break
		}
	}
	s.mu.Unlock()

	if rec == nil {
		return nil, "", errInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.passwordHash), []byte(password)) != nil {
		return nil, "", errInvalidCredentials
	}

	token, err := s.mintToken(&rec.User)
	if err != nil {
		return nil, "", err
	}
	u := rec.User
	return &u, token, nil
}

func (s *Store) mintToken(u *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"role": u.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// UserByID returns a copy of the user record.
func (s *Store) UserByID(id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[id]
	if !ok {
		return nil, errNotFound
	}
	u := rec.User
	return &u, nil
}

// ListUsers returns all accounts sorted by creation time.
func (s *Store) ListUsers() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, 0, len(s.users))
	for _, rec := range s.users {
		out = append(out, rec.User)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// UpdateUser applies non-empty fields of in to the account.
func (s *Store) UpdateUser(id string, in domain.ProfileUpdate) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[id]
	if !ok {
		return nil, errNotFound
	}
	if in.Name != "" {
		rec.Name = in.Name
	}
	if in.Email != "" {
		for _, other := range s.users {
			if other.ID != id && other.Email == in.Email {
				return nil, errUserExists
			}
		}
		rec.Email = in.Email
	}
	if in.Phone != "" {
		rec.Phone = in.Phone
	}
	rec.UpdatedAt = time.Now().UTC()
	u := rec.User
	return &u, nil
}

// DeleteUser removes an account.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return errNotFound
	}
	delete(s.users, id)
	return nil
}
