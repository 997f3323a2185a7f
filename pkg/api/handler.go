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

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TFMV/ReviewLens/internal/sentiment"
	"github.com/TFMV/ReviewLens/internal/store"
)

const topWordCount = 25

// SetupRoutes wires the API onto the router.
func SetupRoutes(router *gin.Engine, reviews *store.ReviewStore, predictor *sentiment.Predictor) {
	router.Use(RequestLogger(), ErrorHandler())

	router.POST("/predict", PredictHandler(predictor))
	router.GET("/stats", StatsHandler(reviews, predictor))
	router.GET("/reviews", ListReviewsHandler(reviews))
	router.POST("/reviews", AddReviewHandler(reviews))
	router.GET("/health", HealthCheckHandler(predictor))
}

type predictRequest struct {
	ReviewText string `json:"review_text"`
}

// PredictHandler classifies a single piece of review text. It answers
// 503 while no model artifact is loaded; any text, including empty, is
// otherwise accepted.
func PredictHandler(predictor *sentiment.Predictor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req predictRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		prediction, err := predictor.Predict(req.ReviewText)
		if err != nil {
			if errors.Is(err, sentiment.ErrModelUnavailable) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model not loaded"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, prediction)
	}
}

// StatsHandler reports sentiment and rating aggregates over the review
// collection. Top words come from the loaded model's vocabulary and are
// empty while no model is available.
func StatsHandler(reviews *store.ReviewStore, predictor *sentiment.Predictor) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := reviews.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		topWords := []sentiment.TermCount{}
		if artifact := predictor.Artifact(); artifact != nil {
			topWords = artifact.Vectorizer.TopTerms(topWordCount)
		}

		c.JSON(http.StatusOK, gin.H{
			"total":        stats.Total,
			"positive":     stats.Positive,
			"neutral":      stats.Neutral,
			"negative":     stats.Negative,
			"ratings_dist": stats.RatingsDist,
			"top_words":    topWords,
		})
	}
}

// ListReviewsHandler pages through stored reviews with optional search,
// sentiment, and rating filters.
func ListReviewsHandler(reviews *store.ReviewStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		rating, _ := strconv.ParseFloat(c.Query("rating"), 64)
		skip, _ := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)
		limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

		filter := store.ListFilter{
			Search:    c.Query("search"),
			Sentiment: c.Query("sentiment"),
			Rating:    rating,
			Skip:      skip,
			Limit:     limit,
		}

		page, total, err := reviews.List(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if page == nil {
			page = []store.Review{}
		}

		c.JSON(http.StatusOK, gin.H{"reviews": page, "total": total})
	}
}

// AddReviewHandler stores a new review.
func AddReviewHandler(reviews *store.ReviewStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var review store.Review
		if err := c.ShouldBindJSON(&review); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if review.Timestamp == "" {
			review.Timestamp = time.Now().UTC().Format(time.RFC3339)
		}

		id, err := reviews.Insert(c.Request.Context(), review)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id, "message": "Review added successfully"})
	}
}

// HealthCheckHandler handles health check requests
func HealthCheckHandler(predictor *sentiment.Predictor) gin.HandlerFunc {
	return func(c *gin.Context) {
		zuluTime := time.Now().UTC().Format(time.RFC3339)
		c.JSON(http.StatusOK, gin.H{
			"status":       "OK",
			"zuluTime":     zuluTime,
			"model_loaded": predictor.Ready(),
		})
	}
}
