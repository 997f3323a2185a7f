// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING WITHOUT LIMITATION THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package store

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TFMV/ReviewLens/internal/sentiment"
)

// Review is a stored product review. Sentiment is derived from the
// rating on the way out and never persisted.
type Review struct {
	ProductName string  `bson:"product_name" json:"product_name"`
	Category    string  `bson:"category" json:"category"`
	ReviewText  string  `bson:"review_text" json:"review_text"`
	Rating      float64 `bson:"rating" json:"rating"`
	Sentiment   string  `bson:"-" json:"sentiment"`
	Timestamp   string  `bson:"timestamp" json:"timestamp"`
}

// ListFilter narrows a review listing. A zero value lists everything.
type ListFilter struct {
	Search    string
	Sentiment string
	Rating    float64
	Skip      int64
	Limit     int64
}

// StatsResult aggregates the collection by the rating partition.
type StatsResult struct {
	Total       int64    `json:"total"`
	Positive    int64    `json:"positive"`
	Neutral     int64    `json:"neutral"`
	Negative    int64    `json:"negative"`
	RatingsDist [5]int64 `json:"ratings_dist"`
}

// ReviewStore is the MongoDB-backed review collection the sentiment
// core trains from and the API reads and writes.
type ReviewStore struct {
	coll *mongo.Collection
}

func NewReviewStore(database *mongo.Database, collection string) *ReviewStore {
	return &ReviewStore{coll: database.Collection(collection)}
}

// FetchTraining materializes the {review_text, rating} projection of
// the whole collection for the trainer.
func (s *ReviewStore) FetchTraining(ctx context.Context) ([]sentiment.Review, error) {
	opts := options.Find().SetProjection(bson.M{"review_text": 1, "rating": 1, "_id": 0})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch training data: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []sentiment.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode training data: %w", err)
	}
	return reviews, nil
}

// sentimentQuery spells sentiment.LabelFromRating's partition as a
// rating predicate. The two must describe the same boundaries or
// rating-derived counts drift from model training labels.
func sentimentQuery(label string) (bson.M, bool) {
	switch strings.ToLower(label) {
	case "positive":
		return bson.M{"$gt": 3}, true
	case "neutral":
		return bson.M{"$eq": 3}, true
	case "negative":
		return bson.M{"$lt": 3}, true
	}
	return nil, false
}

// List returns a page of reviews matching the filter plus the total
// match count. Each review is annotated with its rating-derived label.
func (s *ReviewStore) List(ctx context.Context, filter ListFilter) ([]Review, int64, error) {
	query := bson.M{}
	if filter.Search != "" {
		query["review_text"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}
	if cond, ok := sentimentQuery(filter.Sentiment); ok {
		query["rating"] = cond
	}
	if filter.Rating != 0 {
		query["rating"] = filter.Rating
	}

	total, err := s.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	opts := options.Find().SetSkip(filter.Skip).SetLimit(limit)
	cursor, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, 0, fmt.Errorf("decode reviews: %w", err)
	}
	for i := range reviews {
		reviews[i].Sentiment = sentiment.LabelFromRating(reviews[i].Rating).String()
	}
	return reviews, total, nil
}

// Insert stores a new review and returns its object id.
func (s *ReviewStore) Insert(ctx context.Context, review Review) (string, error) {
	result, err := s.coll.InsertOne(ctx, review)
	if err != nil {
		return "", fmt.Errorf("insert review: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", result.InsertedID), nil
}

// Stats computes sentiment counts from the rating partition and a 1-5
// star histogram over the whole collection.
func (s *ReviewStore) Stats(ctx context.Context) (*StatsResult, error) {
	var stats StatsResult
	var err error

	if stats.Total, err = s.coll.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}
	if stats.Positive, err = s.coll.CountDocuments(ctx, bson.M{"rating": bson.M{"$gt": 3}}); err != nil {
		return nil, fmt.Errorf("count positive reviews: %w", err)
	}
	if stats.Neutral, err = s.coll.CountDocuments(ctx, bson.M{"rating": bson.M{"$eq": 3}}); err != nil {
		return nil, fmt.Errorf("count neutral reviews: %w", err)
	}
	if stats.Negative, err = s.coll.CountDocuments(ctx, bson.M{"rating": bson.M{"$lt": 3}}); err != nil {
		return nil, fmt.Errorf("count negative reviews: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$rating", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var buckets []struct {
		Rating float64 `bson:"_id"`
		Count  int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("decode rating buckets: %w", err)
	}
	for _, b := range buckets {
		star := int(b.Rating)
		if star >= 1 && star <= 5 {
			stats.RatingsDist[star-1] += b.Count
		}
	}
	return &stats, nil
}
