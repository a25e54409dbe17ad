package review

import (
	"testing"

	"grindsphere/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateReviewInput(t *testing.T) {
	assert.NoError(t, ValidateReviewInput(models.ReviewInput{Rating: 1, Comment: "ok"}))
	assert.NoError(t, ValidateReviewInput(models.ReviewInput{Rating: 5, Comment: "great"}))

	assert.Error(t, ValidateReviewInput(models.ReviewInput{Rating: 0, Comment: "ok"}))
	assert.Error(t, ValidateReviewInput(models.ReviewInput{Rating: 6, Comment: "ok"}))
	assert.Error(t, ValidateReviewInput(models.ReviewInput{Rating: 3, Comment: ""}))
}
