// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codec converts between the raw string form of a command-line
// value and its typed Go form. Parameter declarations carry a Type tag;
// the parsing core stores raw strings only and delegates conversion here
// at access time.
package codec

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// Type identifies the semantic type bound to a parameter declaration.
type Type string

const (
	String   Type = "string"
	Bool     Type = "bool"
	Int      Type = "int"
	Uint     Type = "uint"
	Float    Type = "float"
	Duration Type = "duration"
	URL      Type = "url"
	Version  Type = "version"
	JSON     Type = "json"
)

// Known reports whether t is a type tag this codec can decode.
func Known(t Type) bool {
	switch t {
	case String, Bool, Int, Uint, Float, Duration, URL, Version, JSON:
		return true
	}
	return false
}

// InvalidFormatError is returned when a raw value cannot be converted to
// its declared type.
type InvalidFormatError struct {
	Type  Type
	Value string
	Err   error
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Type, e.Value)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// UnknownTypeError is returned for a type tag the codec does not know.
type UnknownTypeError struct {
	Type Type
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown value type %q", e.Type)
}

// Decode converts raw into the Go value for t.
//
// The concrete result types are: string, bool, int64, uint64, float64,
// time.Duration, *url.URL, *semver.Version, and any (for JSON).
func Decode(t Type, raw string) (any, error) {
	switch t {
	case String:
		return raw, nil
	case Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &InvalidFormatError{Type: t, Value: raw, Err: err}
		}
		return b, nil
	case Int:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, &InvalidFormatError{Type: t, Value: raw, Err: err}
		}
		return i, nil
	case Uint:
		u, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, &InvalidFormatError{Type: t, Value: raw, Err: err}
		}
		return u, nil
	case Float:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &InvalidFormatError{Type: t, Value: raw, Err: err}
		}
		return f, nil
	case Duration:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, &InvalidFormatError{Type: t, Value: raw, Err: err}
		}
		return d, nil
	case URL:
		u, err := url.Parse(raw)
		if err != nil {
			return nil, &InvalidFormatError{Type: t, Value: raw, Err: err}
		}
		return u, nil
	case Version:
		v, err := semver.NewVersion(raw)
		if err != nil {
			return nil, &InvalidFormatError{Type: t, Value: raw, Err: err}
		}
		return v, nil
	case JSON:
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, &InvalidFormatError{Type: t, Value: raw, Err: err}
		}
		return v, nil
	default:
		return nil, &UnknownTypeError{Type: t}
	}
}

// DecodeJSON decodes a raw JSON object into dst, which must be a pointer.
// Unknown fields in the input are tolerated and ignored.
func DecodeJSON(raw string, dst any) error {
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return &InvalidFormatError{Type: JSON, Value: raw, Err: err}
	}
	return nil
}

// Encode renders v into the raw string form for t.
func Encode(t Type, v any) (string, error) {
	switch t {
	case String:
		s, ok := v.(string)
		if !ok {
			return "", encodeTypeError(t, v)
		}
		return s, nil
	case Bool:
		b, ok := v.(bool)
		if !ok {
			return "", encodeTypeError(t, v)
		}
		return strconv.FormatBool(b), nil
	case Int:
		switch n := v.(type) {
		case int:
			return strconv.FormatInt(int64(n), 10), nil
		case int64:
			return strconv.FormatInt(n, 10), nil
		}
		return "", encodeTypeError(t, v)
	case Uint:
		switch n := v.(type) {
		case uint:
			return strconv.FormatUint(uint64(n), 10), nil
		case uint64:
			return strconv.FormatUint(n, 10), nil
		}
		return "", encodeTypeError(t, v)
	case Float:
		f, ok := v.(float64)
		if !ok {
			return "", encodeTypeError(t, v)
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case Duration:
		d, ok := v.(time.Duration)
		if !ok {
			return "", encodeTypeError(t, v)
		}
		return d.String(), nil
	case URL:
		u, ok := v.(*url.URL)
		if !ok {
			return "", encodeTypeError(t, v)
		}
		return u.String(), nil
	case Version:
		sv, ok := v.(*semver.Version)
		if !ok {
			return "", encodeTypeError(t, v)
		}
		return sv.String(), nil
	case JSON:
		b, err := json.Marshal(v)
		if err != nil {
			return "", &InvalidFormatError{Type: t, Value: fmt.Sprint(v), Err: err}
		}
		return string(b), nil
	default:
		return "", &UnknownTypeError{Type: t}
	}
}

func encodeTypeError(t Type, v any) error {
	return &InvalidFormatError{Type: t, Value: fmt.Sprint(v), Err: fmt.Errorf("cannot encode %T as %s", v, t)}
}

// ParseType normalizes a textual type tag, defaulting empty to string.
func ParseType(s string) (Type, error) {
	if s == "" {
		return String, nil
	}
	t := Type(strings.ToLower(s))
	if !Known(t) {
		return "", &UnknownTypeError{Type: t}
	}
	return t, nil
}
