package stores

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"pocketshop/internal/domain"
	"pocketshop/internal/errs"
	"pocketshop/internal/kv"
	applog "pocketshop/internal/log"
	"pocketshop/internal/validate"
)

// reviewsKey partitions stored reviews by product.
func reviewsKey(productID int64) string { return "reviews_" + strconv.FormatInt(productID, 10) }

// ReviewStore keeps per-product review sequences. Reviews are append-only.
// Mutations are serialized by a mutex because each add rewrites the whole
// per-product sequence.
type ReviewStore struct {
	mu sync.Mutex
	kv *kv.Store
}

func NewReviewStore(store *kv.Store) *ReviewStore { return &ReviewStore{kv: store} }

// List returns a product's reviews in creation order. A missing or
// undecodable partition degrades to an empty sequence.
func (s *ReviewStore) List(productID int64) []domain.Review {
	var out []domain.Review
	if _, err := s.kv.Get(reviewsKey(productID), &out); err != nil {
		applog.Warn(nil, "reviews.load.corrupt", map[string]any{"product": productID, "err": err.Error()})
		return nil
	}
	return out
}

// Add validates, stamps, appends and persists a review. On a validation or
// persistence failure the stored sequence is unchanged.
func (s *ReviewStore) Add(productID int64, rating int, comment, author string) (domain.Review, error) {
	if !validate.Rating(rating) {
		return domain.Review{}, &errs.ValidationError{Field: "rating", Reason: "must be an integer from 1 to 5"}
	}
	comment, ok := validate.Comment(comment)
	if !ok {
		return domain.Review{}, &errs.ValidationError{Field: "comment", Reason: "must not be empty"}
	}
	author, ok = validate.Author(author)
	if !ok {
		return domain.Review{}, &errs.ValidationError{Field: "author", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r := domain.Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
		Author:    author,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	next := append(s.List(productID), r)
	if err := s.kv.Set(reviewsKey(productID), next); err != nil {
		return domain.Review{}, err
	}
	return r, nil
}

// AverageRating is the mean of the product's local review ratings, or the
// catalog-supplied fallback when there are none.
func (s *ReviewStore) AverageRating(productID int64, fallback float64) float64 {
	reviews := s.List(productID)
	if len(reviews) == 0 {
		return fallback
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
