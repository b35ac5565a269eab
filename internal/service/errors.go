package service

import "errors"

var (
	// ErrMissingCredentials is returned when gateway credentials are not configured.
	ErrMissingCredentials = errors.New("payment gateway credentials not configured")

	// ErrInvalidTeam is returned when a team or its event cannot be found.
	ErrInvalidTeam = errors.New("invalid team")

	// ErrInvalidPricing is returned when pricing data resolves to a non-positive amount.
	ErrInvalidPricing = errors.New("invalid pricing data")

	// ErrGateway is returned when the payment gateway is unreachable or returns
	// an error. Safe for the client to retry the same action.
	ErrGateway = errors.New("payment gateway request failed")

	// ErrInvalidSignature is returned when a payment callback signature does not verify.
	ErrInvalidSignature = errors.New("invalid payment signature")

	// ErrPaymentNotCaptured is returned when the gateway reports any status
	// other than captured.
	ErrPaymentNotCaptured = errors.New("payment not captured")

	// ErrPaymentRecordNotFound is returned when no local payment row matches a
	// verified order.
	ErrPaymentRecordNotFound = errors.New("payment record not found")

	// ErrPersistence is returned when a database write fails after an external
	// side effect already happened. Full detail is logged server-side only.
	ErrPersistence = errors.New("persistence failure")

	// ErrInvalidTeamID is returned when team ID is empty.
	ErrInvalidTeamID = errors.New("invalid team id")

	// ErrInvalidEventID is returned when event ID is empty.
	ErrInvalidEventID = errors.New("invalid event id")

	// ErrInvalidTeamName is returned when team name is empty.
	ErrInvalidTeamName = errors.New("invalid team name")

	// ErrInvalidTeamSize is returned when team size is not a positive integer.
	ErrInvalidTeamSize = errors.New("invalid team size")

	// ErrTeamSizeExceedsLimit is returned when team size exceeds the event's maximum.
	ErrTeamSizeExceedsLimit = errors.New("team size exceeds event limit")

	// ErrInvalidScore is returned when a leaderboard score is negative.
	ErrInvalidScore = errors.New("invalid score")
)
