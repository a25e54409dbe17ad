package catalog

import (
	"testing"

	"grindsphere/models"

	"github.com/stretchr/testify/assert"
)

func sampleServices() []models.Service {
	return []models.Service{
		{
			ID:          "1",
			Name:        "Tutoring A",
			Description: "Math lessons for high schoolers",
			Location:    "Soweto",
			Categories:  []string{"Tutoring"},
			Views:       50,
			Bookings:    5,
		},
		{
			ID:          "2",
			Name:        "Tutoring B",
			Description: "Physics and chemistry help",
			Location:    "Pretoria",
			Categories:  []string{"Tutoring"},
			Views:       80,
			Bookings:    12,
		},
		{
			ID:          "3",
			Name:        "Hair by Zanele",
			Description: "Braids and cuts at your home",
			Location:    "Johannesburg",
			Categories:  []string{"Beauty"},
			Views:       200,
			Bookings:    30,
		},
		{
			ID:          "4",
			Name:        "Garden Care",
			Description: "Lawn mowing and tree trimming",
			Location:    "Sandton",
			Categories:  []string{"Gardening", "Cleaning"},
			Views:       80,
			Bookings:    12,
		},
	}
}

func idsOf(services []models.Service) []string {
	out := make([]string, 0, len(services))
	for _, s := range services {
		out = append(out, s.ID)
	}
	return out
}

func TestFilterServicesEmptyFiltersReturnAll(t *testing.T) {
	all := sampleServices()
	assert.Equal(t, all, FilterServices(all, "", ""))
}

func TestFilterServicesQueryIsCaseInsensitive(t *testing.T) {
	got := FilterServices(sampleServices(), "TUTOR", "")
	assert.Equal(t, []string{"1", "2"}, idsOf(got))

	got = FilterServices(sampleServices(), "tutor", "")
	assert.Equal(t, []string{"1", "2"}, idsOf(got))
}

func TestFilterServicesQueryMatchesAllFields(t *testing.T) {
	// Description.
	got := FilterServices(sampleServices(), "braids", "")
	assert.Equal(t, []string{"3"}, idsOf(got))

	// Location.
	got = FilterServices(sampleServices(), "sandton", "")
	assert.Equal(t, []string{"4"}, idsOf(got))

	// Category.
	got = FilterServices(sampleServices(), "cleaning", "")
	assert.Equal(t, []string{"4"}, idsOf(got))
}

func TestFilterServicesCategoryIsExactMembership(t *testing.T) {
	got := FilterServices(sampleServices(), "", "tutoring")
	assert.Equal(t, []string{"1", "2"}, idsOf(got))

	// A substring of a category must not match the category filter.
	got = FilterServices(sampleServices(), "", "tutor")
	assert.Empty(t, got)
}

func TestFilterServicesComposeConjunctively(t *testing.T) {
	got := FilterServices(sampleServices(), "physics", "Tutoring")
	assert.Equal(t, []string{"2"}, idsOf(got))

	// Query matches but category does not.
	got = FilterServices(sampleServices(), "physics", "Beauty")
	assert.Empty(t, got)
}

func TestFilterServicesNoMatchReturnsEmptySlice(t *testing.T) {
	got := FilterServices(sampleServices(), "plumbing", "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTopByBookingsOrdersDescending(t *testing.T) {
	got := TopByBookings(sampleServices(), 2)
	assert.Equal(t, []string{"3", "2"}, idsOf(got))
}

func TestTopByBookingsStableOnTies(t *testing.T) {
	// Services 2 and 4 tie on bookings; input order must hold.
	got := TopByBookings(sampleServices(), 4)
	assert.Equal(t, []string{"3", "2", "4", "1"}, idsOf(got))
}

func TestTopByViewsRespectsLimit(t *testing.T) {
	got := TopByViews(sampleServices(), 1)
	assert.Equal(t, []string{"3"}, idsOf(got))
}

func TestTopNLargerThanInput(t *testing.T) {
	got := TopByViews(sampleServices(), 100)
	assert.Len(t, got, 4)
}

func TestTopDoesNotMutateInput(t *testing.T) {
	all := sampleServices()
	TopByViews(all, 2)
	assert.Equal(t, sampleServices(), all)
}

func TestValidateServiceInput(t *testing.T) {
	ok := models.ServiceInput{Name: "n", Description: "d", Location: "l", Price: 10}
	assert.NoError(t, ValidateServiceInput(ok))

	missing := ok
	missing.Location = ""
	assert.Error(t, ValidateServiceInput(missing))

	negative := ok
	negative.Price = -1
	assert.Error(t, ValidateServiceInput(negative))
}
