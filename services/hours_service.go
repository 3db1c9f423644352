package services

import (
	"fmt"

	"github.com/SerfiMolotov/MissDelice/entity"
	"github.com/SerfiMolotov/MissDelice/repository"
)

type HoursService struct {
	Repo *repository.HoursRepository
}

func NewHoursService(repo *repository.HoursRepository) *HoursService {
	return &HoursService{Repo: repo}
}

func (s *HoursService) List() ([]entity.OpeningHour, error) {
	return s.Repo.List()
}

type HoursUpdateIn struct {
	ID        uint   `json:"id" binding:"required"`
	IsClosed  bool   `json:"is_closed"`
	HoursText string `json:"hours_text"`
}

// Update rewrites the weekly schedule. Each open day's text must parse into
// valid windows, and it is stored normalized so that what the availability
// engine reads back is exactly what a round-trip produces.
func (s *HoursService) Update(in []HoursUpdateIn) ([]entity.OpeningHour, error) {
	rows := make([]entity.OpeningHour, 0, len(in))
	for _, u := range in {
		text := u.HoursText
		if !u.IsClosed && text != "" {
			probe := entity.OpeningHour{HoursText: text}
			if _, err := windowsFor(probe); err != nil {
				return nil, fmt.Errorf("%w: day %d: %v", ErrInvalidConfiguration, u.ID, err)
			}
			text = BuildHoursText(ParseHoursText(text))
		}
		rows = append(rows, entity.OpeningHour{
			ID:        u.ID,
			IsClosed:  u.IsClosed,
			HoursText: text,
		})
	}
	if err := s.Repo.UpdateRows(rows); err != nil {
		return nil, err
	}
	return s.Repo.List()
}
