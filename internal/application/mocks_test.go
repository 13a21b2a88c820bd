package application

import (
	"context"
	"errors"

	"github.com/catwiki/catwiki-api/internal/domain/entity"
	repo "github.com/catwiki/catwiki-api/internal/domain/repository"
)

// fakeUserRepo is an in-memory UserRepository keyed by lowercase email.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User

	saveErr   error
	existsErr error
	findErr   error
	saved     []*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*entity.User{},
		byID:    map[string]*entity.User{},
	}
}

func (f *fakeUserRepo) add(u *entity.User) {
	f.byEmail[u.Email().Value()] = u
	if u.ID() != nil {
		f.byID[u.ID().Value()] = u
	}
}

func (f *fakeUserRepo) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	p := u.ToPrimitives()
	p.ID = entity.GenerateUserID().Value()
	saved, err := entity.UserFromPrimitives(p)
	if err != nil {
		return nil, err
	}
	f.add(saved)
	f.saved = append(f.saved, saved)
	return saved, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id entity.UserID) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.byID[id.Value()]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.byEmail[email.Value()]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email entity.Email) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.byEmail[email.Value()]
	return ok, nil
}

// fakeHasher marks digests with a prefix so Compare needs no bcrypt.
type fakeHasher struct {
	hashErr error
}

func (f *fakeHasher) Hash(plain string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + plain, nil
}

func (f *fakeHasher) Compare(plain, digest string) bool {
	return digest == "hashed:"+plain
}

type fakeTokens struct {
	issueErr  error
	verifyErr error

	issuedFor string
	verified  int
}

func (f *fakeTokens) Issue(userID, email string) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	f.issuedFor = userID
	return "token-for-" + userID, nil
}

func (f *fakeTokens) Verify(token string) (string, string, error) {
	f.verified++
	if f.verifyErr != nil {
		return "", "", f.verifyErr
	}
	return "507f1f77bcf86cd799439011", "user@example.com", nil
}

type spyEnqueuer struct {
	published []any
	err       error
}

func (s *spyEnqueuer) PublishJSON(ctx context.Context, body any) error {
	if s.err != nil {
		return s.err
	}
	s.published = append(s.published, body)
	return nil
}

type fakeCatRepo struct {
	breeds    []entity.Breed
	byID      map[string]entity.Breed
	listCalls int
	err       error
}

func (f *fakeCatRepo) List(ctx context.Context, page, limit int) ([]entity.Breed, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.breeds, nil
}

func (f *fakeCatRepo) Search(ctx context.Context, query string) ([]entity.Breed, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Breed
	for _, b := range f.breeds {
		if b.Name == query {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeCatRepo) GetByID(ctx context.Context, breedID string) (*entity.Breed, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.byID[breedID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &b, nil
}

type fakeImageRepo struct {
	images     []entity.CatImage
	byRef      map[string]entity.CatImage
	lastBreed  string
	lastLimit  int
	lookupsErr error
}

func (f *fakeImageRepo) ByBreedID(ctx context.Context, breedID string, limit int) ([]entity.CatImage, error) {
	if f.lookupsErr != nil {
		return nil, f.lookupsErr
	}
	f.lastBreed = breedID
	f.lastLimit = limit
	return f.images, nil
}

func (f *fakeImageRepo) ByReferenceID(ctx context.Context, refID string) (*entity.CatImage, error) {
	if f.lookupsErr != nil {
		return nil, f.lookupsErr
	}
	img, ok := f.byRef[refID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &img, nil
}

var errBoom = errors.New("boom")
