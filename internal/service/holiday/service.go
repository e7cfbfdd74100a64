package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrcore/leave-backend-go/internal/domain/holiday"
	"github.com/hrcore/leave-backend-go/internal/pkg/validator"
)

type HolidayService struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) *HolidayService {
	return &HolidayService{holidayRepo: holidayRepo}
}

// utcDay truncates to the UTC calendar day; holiday uniqueness is per day.
func utcDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *HolidayService) Create(ctx context.Context, req holiday.CreateHolidayRequest, createdBy string) (holiday.Holiday, error) {
	date, _ := validator.IsValidDate(req.Date)
	date = utcDay(date)

	exists, err := s.holidayRepo.ExistsOnDate(ctx, date, nil)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to check existing holiday: %w", err)
	}
	if exists {
		return holiday.Holiday{}, holiday.ErrHolidayExists
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Name:        req.Name,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	slog.Info("Holiday created", "holiday_id", created.ID, "date", req.Date, "created_by", createdBy)
	return created, nil
}

func (s *HolidayService) Update(ctx context.Context, id string, req holiday.UpdateHolidayRequest, updatedBy string) (holiday.Holiday, error) {
	h, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday by ID: %w", err)
	}

	if req.Date != nil {
		date, _ := validator.IsValidDate(*req.Date)
		date = utcDay(date)

		conflict, err := s.holidayRepo.ExistsOnDate(ctx, date, &id)
		if err != nil {
			return holiday.Holiday{}, fmt.Errorf("failed to check conflicting holiday: %w", err)
		}
		if conflict {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		h.Date = date
	}
	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Description != nil {
		h.Description = *req.Description
	}

	if err := s.holidayRepo.Update(ctx, h); err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to update holiday: %w", err)
	}

	slog.Info("Holiday updated", "holiday_id", h.ID, "updated_by", updatedBy)
	return h, nil
}

func (s *HolidayService) Delete(ctx context.Context, id string, deletedBy string) error {
	if _, err := s.holidayRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("failed to get holiday by ID: %w", err)
	}
	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	slog.Info("Holiday deleted", "holiday_id", id, "deleted_by", deletedBy)
	return nil
}

func (s *HolidayService) List(ctx context.Context, filter holiday.ListFilter) ([]holiday.Holiday, error) {
	if filter.Limit <= 0 || filter.Limit > 1000 {
		filter.Limit = 200
	}
	holidays, err := s.holidayRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return holidays, nil
}
