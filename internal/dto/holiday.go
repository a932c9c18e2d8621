package dto

import "github.com/tooff-app/tooff-backend/internal/core/domain"

// CreateHolidayRequest defines the payload for seeding a holiday row.
// Region is required for regional holidays and ignored for national ones.
type CreateHolidayRequest struct {
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Region      string `json:"region" binding:"omitempty,len=2"`
	Description string `json:"description" binding:"required,max=100"`
}

// HolidayResponse is the wire representation of a holiday.
type HolidayResponse struct {
	Date        string `json:"date"`
	Region      string `json:"region,omitempty"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
}

// ToHolidayResponse converts a domain.Holiday to its wire form.
func ToHolidayResponse(h *domain.Holiday) HolidayResponse {
	return HolidayResponse{
		Date:        h.Date.Format(DateLayout),
		Region:      h.Region,
		Description: h.Description,
		Kind:        string(h.Kind),
	}
}

// ToListHolidayResponse converts a slice of holidays.
func ToListHolidayResponse(holidays []domain.Holiday) []HolidayResponse {
	out := make([]HolidayResponse, len(holidays))
	for i := range holidays {
		out[i] = ToHolidayResponse(&holidays[i])
	}
	return out
}

// RegionResponse is the wire representation of a UF row.
type RegionResponse struct {
	Code    string `json:"code"`
	Numeric int    `json:"numeric"`
}

// ToListRegionResponse converts a slice of regions.
func ToListRegionResponse(regions []domain.Region) []RegionResponse {
	out := make([]RegionResponse, len(regions))
	for i, r := range regions {
		out[i] = RegionResponse{Code: r.Code, Numeric: r.Numeric}
	}
	return out
}
