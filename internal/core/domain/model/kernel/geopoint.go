package kernel

import (
	"fmt"

	"gasline/internal/pkg/errs"
)

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed indicates a zero-value GeoPoint that bypassed
// the NewGeoPoint constructor.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"GeoPoint must be created via NewGeoPoint")

// GeoPoint is an immutable value object holding the geographic destination of
// an order together with its human-readable address. The coordinates are set
// at order creation from the checkout collaborator and are read-only for all
// downstream consumers; the engine never derives routing decisions from them.
type GeoPoint struct {
	latitude  float64
	longitude float64
	address   string

	isConstructed bool
}

// NewGeoPoint creates a validated GeoPoint.
// Latitude must be within [-90, 90], longitude within [-180, 180], and the
// address must be non-empty.
func NewGeoPoint(latitude, longitude float64, address string) (GeoPoint, error) {
	if latitude < minLatitude || latitude > maxLatitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", latitude, minLatitude, maxLatitude)
	}
	if longitude < minLongitude || longitude > maxLongitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", longitude, minLongitude, maxLongitude)
	}
	if address == "" {
		return GeoPoint{}, errs.NewValueIsRequiredError("address")
	}

	return GeoPoint{
		latitude:      latitude,
		longitude:     longitude,
		address:       address,
		isConstructed: true,
	}, nil
}

// Latitude returns the destination latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the destination longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// Address returns the human-readable destination address.
func (p GeoPoint) Address() string {
	return p.address
}

// String renders the point for logs and error messages.
func (p GeoPoint) String() string {
	return fmt.Sprintf("(%f, %f) %s", p.latitude, p.longitude, p.address)
}

// IsEqual reports whether two points share coordinates and address.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude &&
		p.longitude == other.longitude &&
		p.address == other.address
}

// Validate returns ErrGeoPointIsNotConstructed for the zero value.
func (p GeoPoint) Validate() error {
	if !p.isConstructed {
		return ErrGeoPointIsNotConstructed
	}
	return nil
}
