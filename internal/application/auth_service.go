package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/catwiki/catwiki-api/internal/domain/entity"
	repo "github.com/catwiki/catwiki-api/internal/domain/repository"
	"github.com/catwiki/catwiki-api/pkg/mailer"
	mailtpl "github.com/catwiki/catwiki-api/pkg/mailer/templates"
)

// ErrInvalidCredentials is the single login failure. An unknown email,
// a wrong password and a deactivated account all map to it so callers
// cannot probe which factor failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService orchestrates the auth use cases over the persistence,
// hashing and token ports. Mail and ES are optional collaborators;
// nil disables them.
type AuthService struct {
	Repo         repo.UserRepository
	Hasher       PasswordHasher
	Tokens       TokenService
	Mail         EmailEnqueuer
	ES           *elasticsearch.Client
	ESUsersIndex string
	Logger       *logrus.Logger
}

func NewAuthService(r repo.UserRepository, hasher PasswordHasher, tokens TokenService, mail EmailEnqueuer, es *elasticsearch.Client, esUsersIndex string, logger *logrus.Logger) *AuthService {
	return &AuthService{
		Repo:         r,
		Hasher:       hasher,
		Tokens:       tokens,
		Mail:         mail,
		ES:           es,
		ESUsersIndex: esUsersIndex,
		Logger:       logger,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// Register creates a new active user. Port failures propagate
// unchanged; no retries.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	email, err := entity.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}

	exists, err := s.Repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &entity.UserAlreadyExistsError{Email: in.Email}
	}

	// Complexity is checked on the plaintext; the stored Password wraps
	// the bcrypt digest and must not be re-validated.
	if err := entity.ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	digest, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := entity.NewUser(email, entity.PasswordFromHash(digest), in.Name)
	saved, err := s.Repo.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	s.enqueueWelcomeEmail(ctx, saved)
	s.indexUser(ctx, saved)
	return saved, nil
}

type AuthenticatedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginResult struct {
	Token string            `json:"token"`
	User  AuthenticatedUser `json:"user"`
}

// Login verifies credentials and issues a bearer token. The not-found,
// bad-password and inactive branches are deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, rawEmail, password string) (*LoginResult, error) {
	email, err := entity.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}

	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.Hasher.Compare(password, u.Password().Value()) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive() {
		return nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(u.ID().Value(), u.Email().Value())
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token: token,
		User: AuthenticatedUser{
			ID:    u.ID().Value(),
			Email: u.Email().Value(),
			Name:  u.Name(),
		},
	}, nil
}

// UserProfile is the projected user view; the password digest is never
// part of any output.
type UserProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetUserByID is the strict fetch: an unknown id is a UserNotFoundError.
func (s *AuthService) GetUserByID(ctx context.Context, rawID string) (*UserProfile, error) {
	id, err := entity.NewUserID(rawID)
	if err != nil {
		return nil, err
	}
	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, &entity.UserNotFoundError{ID: rawID}
		}
		return nil, err
	}
	return profileOf(u), nil
}

// CheckAuthentication is the post-authentication liveness check: an
// absent user is a nil result, not an error.
func (s *AuthService) CheckAuthentication(ctx context.Context, id entity.UserID) (*entity.User, error) {
	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func profileOf(u *entity.User) *UserProfile {
	return &UserProfile{
		ID:        u.ID().Value(),
		Email:     u.Email().Value(),
		Name:      u.Name(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

// enqueueWelcomeEmail is best-effort; a broker outage must not fail
// registration.
func (s *AuthService) enqueueWelcomeEmail(ctx context.Context, u *entity.User) {
	if s.Mail == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email().Value(),
		Template: mailtpl.Welcome,
		Data: map[string]any{
			"Name":  u.Name(),
			"Email": u.Email().Value(),
		},
	}
	if err := s.Mail.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID().Value()).Warn("enqueue welcome email failed")
	}
}

func (s *AuthService) indexUser(ctx context.Context, u *entity.User) {
	if s.ES == nil || s.ESUsersIndex == "" {
		return
	}
	doc := map[string]any{
		"id":         u.ID().Value(),
		"email":      u.Email().Value(),
		"name":       u.Name(),
		"is_active":  u.IsActive(),
		"created_at": u.CreatedAt().Format(time.RFC3339Nano),
		"updated_at": u.UpdatedAt().Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESUsersIndex, DocumentID: u.ID().Value(), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID().Value()).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("user_id", u.ID().Value()).Warn("es index response error")
	}
}

// SearchUsers performs a simple multi_match search on email and name.
func (s *AuthService) SearchUsers(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESUsersIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "name"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESUsersIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
