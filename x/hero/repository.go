//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package hero

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/totegamma/herodex/x/core"
)

const (
	collectionName = "heroes"
	countCacheKey  = "hero_count"
)

// Repository is the interface for hero repository
type Repository interface {
	Create(ctx context.Context, hero Hero) (Hero, error)
	List(ctx context.Context, skip int64, limit int64) ([]Hero, error)
	Get(ctx context.Context, id string) (Hero, error)
	Update(ctx context.Context, id string, update Update) (Hero, error)
	Delete(ctx context.Context, id string) (Hero, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *mongo.Database
	mc *memcache.Client
}

// NewRepository creates a new hero repository
func NewRepository(db *mongo.Database, mc *memcache.Client) Repository {

	count, err := db.Collection(collectionName).CountDocuments(context.Background(), bson.M{})
	if err != nil {
		slog.Error(
			"failed to count heroes",
			slog.String("error", err.Error()),
		)
	}

	mc.Set(&memcache.Item{Key: countCacheKey, Value: []byte(strconv.FormatInt(count, 10))})

	return &repository{db, mc}
}

func (r *repository) collection() *mongo.Collection {
	return r.db.Collection(collectionName)
}

// parseID converts a hex string to an object id
func parseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, core.ErrInvalidID
	}
	return objectID, nil
}

// Count returns the total number of heroes
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Hero.Repository.Count")
	defer span.End()

	item, err := r.mc.Get(countCacheKey)
	if err == nil {
		count, err := strconv.ParseInt(string(item.Value), 10, 64)
		if err == nil {
			return count, nil
		}
	}

	count, err := r.collection().CountDocuments(ctx, bson.M{})
	if err != nil {
		span.RecordError(err)
		return 0, errors.Wrap(err, "failed to count heroes")
	}

	r.mc.Set(&memcache.Item{Key: countCacheKey, Value: []byte(strconv.FormatInt(count, 10))})

	return count, nil
}

func (r *repository) refreshCount(ctx context.Context) {
	count, err := r.collection().CountDocuments(ctx, bson.M{})
	if err != nil {
		slog.Error(
			"failed to count heroes",
			slog.String("error", err.Error()),
		)
		return
	}
	r.mc.Set(&memcache.Item{Key: countCacheKey, Value: []byte(strconv.FormatInt(count, 10))})
}

// Create inserts a hero and returns it with its generated id
func (r *repository) Create(ctx context.Context, hero Hero) (Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Repository.Create")
	defer span.End()

	hero.ID = primitive.NilObjectID
	result, err := r.collection().InsertOne(ctx, hero)
	if err != nil {
		span.RecordError(err)
		return Hero{}, errors.Wrap(err, "failed to insert hero")
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return Hero{}, errors.New("unexpected inserted id type")
	}
	hero.ID = insertedID

	r.refreshCount(ctx)

	return hero, nil
}

// List returns heroes with the given skip and limit
func (r *repository) List(ctx context.Context, skip int64, limit int64) ([]Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Repository.List")
	defer span.End()

	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		span.RecordError(err)
		return []Hero{}, errors.Wrap(err, "failed to list heroes")
	}
	defer cursor.Close(ctx)

	heroes := []Hero{}
	if err := cursor.All(ctx, &heroes); err != nil {
		span.RecordError(err)
		return []Hero{}, errors.Wrap(err, "failed to decode heroes")
	}

	return heroes, nil
}

// Get returns a hero by id
func (r *repository) Get(ctx context.Context, id string) (Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Repository.Get")
	defer span.End()

	objectID, err := parseID(id)
	if err != nil {
		return Hero{}, err
	}

	var hero Hero
	err = r.collection().FindOne(ctx, bson.M{"_id": objectID}).Decode(&hero)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Hero{}, core.ErrHeroNotFound
		}
		span.RecordError(err)
		return Hero{}, errors.Wrap(err, "failed to get hero")
	}

	return hero, nil
}

// Update applies a partial update and returns the updated hero
func (r *repository) Update(ctx context.Context, id string, update Update) (Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Repository.Update")
	defer span.End()

	objectID, err := parseID(id)
	if err != nil {
		return Hero{}, err
	}

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.SecretName != nil {
		set["secret_name"] = *update.SecretName
	}
	if update.Age != nil {
		set["age"] = *update.Age
	}

	if len(set) > 0 {
		result, err := r.collection().UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
		if err != nil {
			span.RecordError(err)
			return Hero{}, errors.Wrap(err, "failed to update hero")
		}
		if result.MatchedCount == 0 {
			return Hero{}, core.ErrHeroNotFound
		}
	}

	var hero Hero
	err = r.collection().FindOne(ctx, bson.M{"_id": objectID}).Decode(&hero)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Hero{}, core.ErrHeroNotFound
		}
		span.RecordError(err)
		return Hero{}, errors.Wrap(err, "failed to get hero")
	}

	return hero, nil
}

// Delete removes a hero by id and returns the removed hero
func (r *repository) Delete(ctx context.Context, id string) (Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Repository.Delete")
	defer span.End()

	objectID, err := parseID(id)
	if err != nil {
		return Hero{}, err
	}

	var hero Hero
	err = r.collection().FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&hero)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Hero{}, core.ErrHeroNotFound
		}
		span.RecordError(err)
		return Hero{}, errors.Wrap(err, "failed to delete hero")
	}

	r.refreshCount(ctx)

	return hero, nil
}
