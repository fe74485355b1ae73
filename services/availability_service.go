package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/clubcaddy/backend/apperrors"
	"github.com/clubcaddy/backend/models"
)

const unavailableOnDate = "on-this-date"

// AvailabilityService resolves which catalogue products a customer can rent
// at a course, optionally on a specific date.
type AvailabilityService struct {
	api     BooqableAPI
	clubs   ClubSource
	timeNow func() time.Time
}

func NewAvailabilityService(api BooqableAPI, clubs ClubSource) *AvailabilityService {
	return &AvailabilityService{api: api, clubs: clubs, timeNow: time.Now}
}

// GetAvailableClubs returns every non-archived club annotated with
// availability at the named course.
//
// Without a date the stock is bulk and non-trackable, so everything is
// available. With a date each club is checked upstream concurrently and any
// per-club failure counts as available: a transient upstream error must never
// hide rentable inventory from the customer.
func (s *AvailabilityService) GetAvailableClubs(ctx context.Context, course, date string) ([]models.AvailableClub, error) {
	all, err := s.clubs.FetchAllClubs(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]models.Club, 0, len(all))
	for _, club := range all {
		if !club.Archived {
			active = append(active, club)
		}
	}
	sortNewestFirst(active)

	if date == "" {
		result := make([]models.AvailableClub, 0, len(active))
		for _, club := range active {
			result = append(result, models.AvailableClub{Club: club, Available: true})
		}
		return result, nil
	}

	// The date only has to be three dash-separated parts; calendar validity
	// is Booqable's call, so "2025-13-40" passes through untouched.
	year, month, day, appErr := splitDate(date)
	if appErr != nil {
		return nil, appErr
	}

	locationID, err := s.resolveLocation(ctx, course)
	if err != nil {
		return nil, err
	}

	result := make([]models.AvailableClub, len(active))
	var wg sync.WaitGroup
	for i, club := range active {
		wg.Add(1)
		go func(i int, club models.Club) {
			defer wg.Done()
			available, err := s.api.CheckAvailability(ctx, club.ID, locationID, year, month, day)
			if err != nil {
				// Fail open per club.
				zap.L().Warn("availability check failed, treating club as available",
					zap.String("club_id", club.ID),
					zap.Error(err),
				)
				available = true
			}
			entry := models.AvailableClub{Club: club, Available: available}
			if !available {
				reason := unavailableOnDate
				entry.UnavailabilityReason = &reason
			}
			result[i] = entry
		}(i, club)
	}
	wg.Wait()

	return result, nil
}

// AvailableDates lists the rentable dates of a month for a location. Stock is
// bulk, so every day of the month that is not already past qualifies.
func (s *AvailabilityService) AvailableDates(locationID string, year, month int) ([]string, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, apperrors.BadRequest("year and month are required")
	}

	today := s.timeNow().Truncate(24 * time.Hour)
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	dates := make([]string, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if d.Before(today) {
			continue
		}
		dates = append(dates, d.Format("2006-01-02"))
	}
	return dates, nil
}

// resolveLocation maps a course name to a Booqable location id by
// case-insensitive exact match. An unknown name skips location scoping
// rather than failing the request.
func (s *AvailabilityService) resolveLocation(ctx context.Context, course string) (string, error) {
	if course == "" {
		return "", nil
	}
	locations, err := s.api.GetLocations(ctx)
	if err != nil {
		return "", apperrors.Upstream("Failed to fetch courses from Booqable", err)
	}
	for _, loc := range locations {
		if strings.EqualFold(loc.Name, course) {
			return loc.ID, nil
		}
	}
	return "", nil
}

func splitDate(date string) (year, month, day string, err *apperrors.Error) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", apperrors.BadRequest(fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", date))
	}
	return parts[0], parts[1], parts[2], nil
}
