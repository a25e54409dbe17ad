package cron

import (
	"log"

	"grindsphere/services/review"

	"github.com/robfig/cron/v3"
)

// InitRatingReconciler periodically recomputes denormalized service ratings
// from stored reviews.
func InitRatingReconciler(reviewSvc review.ReviewService) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("@every 10m", func() {
		if err := reviewSvc.ReconcileRatings(); err != nil {
			log.Printf("[RatingReconciler] reconciliation failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("[RatingReconciler] failed to schedule job: %v", err)
	}
	c.Start()
	return c
}
