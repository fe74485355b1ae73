package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clubcaddy/backend/models"
)

type FavouriteRepository struct {
	collection *mongo.Collection
}

func NewFavouriteRepository(db *mongo.Database) *FavouriteRepository {
	return &FavouriteRepository{collection: db.Collection("favourites")}
}

func (r *FavouriteRepository) Create(ctx context.Context, fav *models.Favourite) error {
	now := time.Now().UTC()
	fav.ID = primitive.NewObjectID()
	fav.CreatedAt = now
	fav.UpdatedAt = now
	if fav.ClubIDs == nil {
		fav.ClubIDs = []string{}
	}
	_, err := r.collection.InsertOne(ctx, fav)
	return err
}

func (r *FavouriteRepository) FindByUser(ctx context.Context, userID string) ([]models.Favourite, error) {
	filter := bson.M{"user_id": userID, "deleted": false}
	findOptions := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	favourites := []models.Favourite{}
	if err := cursor.All(ctx, &favourites); err != nil {
		return nil, err
	}
	return favourites, nil
}

func (r *FavouriteRepository) FindByID(ctx context.Context, userID string, id primitive.ObjectID) (*models.Favourite, error) {
	filter := bson.M{"_id": id, "user_id": userID, "deleted": false}

	var fav models.Favourite
	err := r.collection.FindOne(ctx, filter).Decode(&fav)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

func (r *FavouriteRepository) Update(ctx context.Context, userID string, id primitive.ObjectID, update FavouriteUpdate) (*models.Favourite, error) {
	existing, err := r.FindByID(ctx, userID, id)
	if err != nil || existing == nil {
		return existing, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.SetName != nil {
		set["set_name"] = *update.SetName
	}

	clubs := existing.ClubIDs
	if update.Clubs != nil {
		clubs = *update.Clubs
	}
	clubs = append(append([]string{}, clubs...), update.AddClubs...)
	if len(update.RemoveClubs) > 0 {
		remove := make(map[string]bool, len(update.RemoveClubs))
		for _, id := range update.RemoveClubs {
			remove[id] = true
		}
		kept := clubs[:0]
		for _, id := range clubs {
			if !remove[id] {
				kept = append(kept, id)
			}
		}
		clubs = kept
	}
	set["clubs"] = clubs

	filter := bson.M{"_id": id, "user_id": userID, "deleted": false}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Favourite
	err = r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SoftDelete marks the set deleted and returns the pre-deletion document so
// the caller can snapshot it. A miss returns (nil, nil).
func (r *FavouriteRepository) SoftDelete(ctx context.Context, userID string, id primitive.ObjectID) (*models.Favourite, error) {
	filter := bson.M{"_id": id, "user_id": userID, "deleted": false}
	update := bson.M{"$set": bson.M{"deleted": true, "deleted_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var fav models.Favourite
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&fav)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fav, nil
}
