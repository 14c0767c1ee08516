package api

import (
	"fmt"
	"time"

	"github.com/dpereira/travel-assistant/internal/domain/trip"
)

const isoDate = "2006-01-02"

// TravelerUpdate carries a partial traveler edit; nil fields are left
// untouched.
type TravelerUpdate struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	EmployeeID *string `json:"employee_id"`
	Department *string `json:"department"`
	CostCenter *string `json:"cost_center"`
	IDDocument *string `json:"id_document"`
	TaxID      *string `json:"tax_id"`
	Phone      *string `json:"phone"`
}

// LodgingUpdate carries a partial lodging edit. Dates are ISO calendar
// dates; an explicit empty string clears a date.
type LodgingUpdate struct {
	City     *string `json:"city"`
	Hotel    *string `json:"hotel"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	RoomType *string `json:"room_type"`
	Notes    *string `json:"notes"`
}

// TrainLegUpdate carries a partial train leg edit.
type TrainLegUpdate struct {
	Date  *string `json:"date"`
	Time  *string `json:"time"`
	Class *string `json:"class"`
	Notes *string `json:"notes"`
}

// TripUpdate is the PATCH payload for a session's trip request.
type TripUpdate struct {
	Traveler   *TravelerUpdate `json:"traveler"`
	Motive     *string         `json:"motive"`
	HasLodging *bool           `json:"has_lodging"`
	Lodging    *LodgingUpdate  `json:"lodging"`
	Transport  *string         `json:"transport"`
	HasReturn  *bool           `json:"has_return"`
	// Route updates both train legs at once, mirrored.
	RouteFrom *string         `json:"route_from"`
	RouteTo   *string         `json:"route_to"`
	Outbound  *TrainLegUpdate `json:"outbound"`
	Return    *TrainLegUpdate `json:"return"`
}

// apply mutates the request with the non-nil fields of the update.
func (u *TripUpdate) apply(req *trip.Request) error {
	if u.Traveler != nil {
		applyTraveler(&req.Traveler, u.Traveler)
	}
	if u.Motive != nil {
		req.Motive = *u.Motive
	}
	if u.HasLodging != nil {
		req.HasLodging = *u.HasLodging
	}
	if u.Lodging != nil {
		if err := applyLodging(&req.Lodging, u.Lodging); err != nil {
			return err
		}
	}
	if u.Transport != nil {
		t := trip.TransportType(*u.Transport)
		if !t.IsValid() {
			return fmt.Errorf("unknown transport type %q", *u.Transport)
		}
		req.Transport = t
	}
	if u.HasReturn != nil {
		req.HasReturn = *u.HasReturn
	}
	if u.RouteFrom != nil || u.RouteTo != nil {
		from, to := req.Outbound.From, req.Outbound.To
		if u.RouteFrom != nil {
			from = *u.RouteFrom
		}
		if u.RouteTo != nil {
			to = *u.RouteTo
		}
		req.SetRoute(from, to)
	}
	if u.Outbound != nil {
		if err := applyLeg(&req.Outbound, u.Outbound); err != nil {
			return err
		}
	}
	if u.Return != nil {
		if err := applyLeg(&req.Return, u.Return); err != nil {
			return err
		}
	}
	return nil
}

func applyTraveler(t *trip.Traveler, u *TravelerUpdate) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&t.FirstName, u.FirstName)
	set(&t.LastName, u.LastName)
	set(&t.EmployeeID, u.EmployeeID)
	set(&t.Department, u.Department)
	set(&t.CostCenter, u.CostCenter)
	set(&t.IDDocument, u.IDDocument)
	set(&t.TaxID, u.TaxID)
	set(&t.Phone, u.Phone)
}

func applyLodging(l *trip.Lodging, u *LodgingUpdate) error {
	if u.City != nil {
		l.City = *u.City
	}
	if u.Hotel != nil {
		l.Hotel = *u.Hotel
	}
	if u.CheckIn != nil {
		d, err := parseDate(*u.CheckIn)
		if err != nil {
			return fmt.Errorf("check_in: %w", err)
		}
		l.CheckIn = d
	}
	if u.CheckOut != nil {
		d, err := parseDate(*u.CheckOut)
		if err != nil {
			return fmt.Errorf("check_out: %w", err)
		}
		l.CheckOut = d
	}
	if u.RoomType != nil {
		l.RoomType = *u.RoomType
	}
	if u.Notes != nil {
		l.Notes = *u.Notes
	}
	return nil
}

func applyLeg(leg *trip.TrainLeg, u *TrainLegUpdate) error {
	if u.Date != nil {
		d, err := parseDate(*u.Date)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
		leg.Date = d
	}
	if u.Time != nil {
		leg.Time = *u.Time
	}
	if u.Class != nil {
		leg.Class = *u.Class
	}
	if u.Notes != nil {
		leg.Notes = *u.Notes
	}
	return nil
}

// parseDate parses an ISO calendar date; empty clears the value.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(isoDate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return d, nil
}
