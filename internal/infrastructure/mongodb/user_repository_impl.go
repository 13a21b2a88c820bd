package mongodb

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/catwiki/catwiki-api/internal/domain/entity"
	"github.com/catwiki/catwiki-api/internal/domain/repository"
)

const usersCollection = "users"

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Name      string             `bson:"name"`
	IsActive  bool               `bson:"isActive"`
	CreatedAt primitive.DateTime `bson:"createdAt"`
	UpdatedAt primitive.DateTime `bson:"updatedAt"`
}

// UserRepository persists users in MongoDB. Emails are stored lowercase
// and trimmed, with a unique index as the real uniqueness guarantee
// behind the exists-then-save registration flow.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique email index. Called once at startup.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	p := u.ToPrimitives()
	doc := userDocument{
		Email:     normalizeEmail(p.Email),
		Password:  p.Password,
		Name:      strings.TrimSpace(p.Name),
		IsActive:  p.IsActive,
		CreatedAt: primitive.NewDateTimeFromTime(p.CreatedAt),
		UpdatedAt: primitive.NewDateTimeFromTime(p.UpdatedAt),
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		// A concurrent registration can slip past ExistsByEmail; the
		// unique index turns that race into a duplicate-key error here.
		if mongo.IsDuplicateKeyError(err) {
			return nil, &entity.UserAlreadyExistsError{Email: doc.Email}
		}
		return nil, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, errors.New("unexpected inserted id type")
	}
	doc.ID = oid
	return toEntity(&doc)
}

func (r *UserRepository) FindByID(ctx context.Context, id entity.UserID) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id.ObjectID()})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": normalizeEmail(email.Value())})
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email entity.Email) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"email": normalizeEmail(email.Value())})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc userDocument
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return toEntity(&doc)
}

func toEntity(doc *userDocument) (*entity.User, error) {
	return entity.UserFromPrimitives(entity.UserPrimitives{
		ID:        doc.ID.Hex(),
		Email:     doc.Email,
		Password:  doc.Password,
		Name:      doc.Name,
		IsActive:  doc.IsActive,
		CreatedAt: doc.CreatedAt.Time(),
		UpdatedAt: doc.UpdatedAt.Time(),
	})
}

var _ repository.UserRepository = (*UserRepository)(nil)
