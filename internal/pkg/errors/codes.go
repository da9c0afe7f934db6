package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidBody = New(
		"INVALID_BODY",
		"Invalid request body",
		http.StatusBadRequest,
	)

	ErrMissingSearchParams = New(
		"MISSING_SEARCH_PARAMS",
		"Both key and value are required.",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates",
		http.StatusBadRequest,
	)

	ErrMissingTruckFields = New(
		"MISSING_FIELDS",
		"All fields are required.",
		http.StatusBadRequest,
	)

	ErrNoApprovedTrucks = New(
		"NO_APPROVED_TRUCKS",
		"No approved food trucks found.",
		http.StatusNotFound,
	)

	ErrTruckNotFound = New(
		"TRUCK_NOT_FOUND",
		"Food truck not found",
		http.StatusNotFound,
	)

	ErrSnapshotUnavailable = New(
		"SNAPSHOT_UNAVAILABLE",
		"Error reading data from JSON file.",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
