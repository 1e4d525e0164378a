// Package polyline implements Google's encoded polyline algorithm format:
// https://developers.google.com/maps/documentation/utilities/polylinealgorithm
package polyline

import (
	"fmt"
	"math"

	"github.com/routemark/directions/pkg/geo"
)

// DecodeError reports a malformed encoded polyline.
type DecodeError struct {
	Offset int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("polyline: invalid encoding at byte %d: %s", e.Offset, e.Reason)
}

// Decode converts an encoded polyline into the coordinate path it
// represents. Deltas are accumulated against the previous point, so the
// output is in encounter order. Empty input yields an empty path. Input
// that ends in the middle of a multi-byte group returns a *DecodeError
// and no coordinates.
func Decode(encoded string) ([]geo.Coordinate, error) {
	if encoded == "" {
		return nil, nil
	}

	var path []geo.Coordinate
	index, lat, lng := 0, 0, 0

	for index < len(encoded) {
		latDelta, next, err := decodeValue(encoded, index)
		if err != nil {
			return nil, err
		}
		index = next
		lat += latDelta

		lngDelta, next, err := decodeValue(encoded, index)
		if err != nil {
			return nil, err
		}
		index = next
		lng += lngDelta

		path = append(path, geo.NewCoordinate(float64(lat)/1e5, float64(lng)/1e5))
	}

	return path, nil
}

// decodeValue reads one zig-zag varint delta: each byte carries five
// payload bits offset by 63, with 0x20 as the continuation bit.
func decodeValue(encoded string, index int) (int, int, error) {
	shift, result := 0, 0
	for {
		if index >= len(encoded) {
			return 0, 0, &DecodeError{Offset: index, Reason: "truncated group"}
		}
		b := int(encoded[index]) - 63
		if b < 0 {
			return 0, 0, &DecodeError{Offset: index, Reason: fmt.Sprintf("byte %q outside encoding range", encoded[index])}
		}
		index++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}

	if result&1 != 0 {
		return ^(result >> 1), index, nil
	}
	return result >> 1, index, nil
}

// Encode converts a coordinate path into its encoded polyline form.
// Coordinates are rounded to five decimal places, so Decode(Encode(path))
// matches path within 1e-5 per component.
func Encode(path []geo.Coordinate) string {
	if len(path) == 0 {
		return ""
	}

	buf := make([]byte, 0, len(path)*4)
	prevLat, prevLng := 0, 0

	for _, c := range path {
		lat := int(math.Round(c.Latitude * 1e5))
		lng := int(math.Round(c.Longitude * 1e5))

		buf = encodeValue(buf, lat-prevLat)
		buf = encodeValue(buf, lng-prevLng)

		prevLat, prevLng = lat, lng
	}

	return string(buf)
}

func encodeValue(buf []byte, value int) []byte {
	if value < 0 {
		value = ^(value << 1)
	} else {
		value <<= 1
	}

	for value >= 0x20 {
		buf = append(buf, byte((value&0x1f)|0x20)+63)
		value >>= 5
	}
	return append(buf, byte(value)+63)
}
