package domain

import (
	"context"
	"errors"
)

// NeoObject holds the catalog attributes this service consumes.
type NeoObject struct {
	ID           string
	Name         string
	MaxDiameterM float64 // maximum estimated diameter in meters
}

// NeoCatalog resolves a near-Earth-object identifier to its catalog record.
type NeoCatalog interface {
	Lookup(ctx context.Context, id string) (NeoObject, error)
}

// Lookup failure variants. The resolver treats them all as "no enrichment";
// they are distinguished only for logs and metrics.
var (
	ErrNeoNotFound  = errors.New("neo object not found")
	ErrNeoTransport = errors.New("neo catalog unreachable")
	ErrNeoDecode    = errors.New("neo catalog response malformed")
)

// NeoLookupOutcome classifies a Lookup result for metric labels.
func NeoLookupOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNeoNotFound):
		return "not_found"
	case errors.Is(err, ErrNeoDecode):
		return "decode_error"
	default:
		return "transport_error"
	}
}
