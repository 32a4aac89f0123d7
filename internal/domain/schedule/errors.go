package schedule

import "github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"

var (
	ErrInvalidRange   = httperr.ErrBusiness("invalid_range")
	ErrUnknownClient  = httperr.ErrBusiness("unknown_client")
	ErrUnknownVisit   = httperr.ErrBusiness("unknown_visit")
	ErrUnknownProject = httperr.ErrBusiness("unknown_project")
)
