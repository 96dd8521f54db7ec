package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/claimcheck/claimcheck-api/internal/core/domain"
)

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type mongoPartner struct {
	Name  string `bson:"name"`
	Phone string `bson:"phone"`
	Email string `bson:"email"`
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Phone        string             `bson:"phone"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	SessionToken string             `bson:"sessionToken,omitempty"`
	Partner      *mongoPartner      `bson:"partner,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := mongoUser{
		Name:         user.Name,
		Phone:        user.Phone,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		SessionToken: user.SessionToken,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateKeyToConflict(err)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *UserRepository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"phone": phone})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) UpdateSessionToken(ctx context.Context, id, token string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$set":         bson.M{"sessionToken": token},
		"$currentDate": bson.M{"updatedAt": true},
	})
	if err != nil {
		return fmt.Errorf("update session token: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) ReplacePartner(ctx context.Context, id string, partner domain.Partner) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var mu mongoUser
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$set": bson.M{"partner": mongoPartner{
				Name:  partner.Name,
				Phone: partner.Phone,
				Email: partner.Email,
			}},
			"$currentDate": bson.M{"updatedAt": true},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mu)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("replace partner: %w", err)
	}

	return mu.toDomain(), nil
}

// SearchPartners matches pattern case-insensitively against the partner
// sub-record of users that have one. The projection keeps the result down to
// submitter name and creation date before it ever leaves the store.
func (r *UserRepository) SearchPartners(ctx context.Context, pattern string) ([]domain.PartnerMatch, error) {
	regex := primitive.Regex{Pattern: pattern, Options: "i"}

	filter := bson.M{
		"partner": bson.M{"$exists": true, "$ne": nil},
		"$or": bson.A{
			bson.M{"partner.name": regex},
			bson.M{"partner.phone": regex},
			bson.M{"partner.email": regex},
		},
	}

	cur, err := r.coll.Find(ctx, filter,
		options.Find().SetProjection(bson.M{"name": 1, "createdAt": 1, "_id": 0}))
	if err != nil {
		return nil, fmt.Errorf("search partners: %w", err)
	}
	defer cur.Close(ctx)

	var matches []domain.PartnerMatch
	for cur.Next(ctx) {
		var row struct {
			Name      string    `bson:"name"`
			CreatedAt time.Time `bson:"createdAt"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode match: %w", err)
		}
		matches = append(matches, domain.PartnerMatch{Name: row.Name, CreatedAt: row.CreatedAt})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("search partners cursor: %w", err)
	}
	return matches, nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (mu *mongoUser) toDomain() *domain.User {
	u := &domain.User{
		ID:           mu.ID.Hex(),
		Name:         mu.Name,
		Phone:        mu.Phone,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		SessionToken: mu.SessionToken,
		CreatedAt:    mu.CreatedAt,
		UpdatedAt:    mu.UpdatedAt,
	}
	if mu.Partner != nil {
		u.Partner = &domain.Partner{
			Name:  mu.Partner.Name,
			Phone: mu.Partner.Phone,
			Email: mu.Partner.Email,
		}
	}
	return u
}

// duplicateKeyToConflict maps a unique-index violation to the same
// field-specific conflict message the pre-insert checks produce. This is the
// fallback for the narrow race between those checks and the insert.
func duplicateKeyToConflict(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "phone"):
		return domain.ErrPhoneTaken
	case strings.Contains(msg, "email"):
		return domain.ErrEmailTaken
	default:
		return domain.ErrAccountExists
	}
}
