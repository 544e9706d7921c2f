// Package mocks provides hand-written test doubles for the interfaces that
// cross package boundaries.
//
// Each mock exposes a function field per method; when the field is nil the
// mock falls back to its plain default values:
//
//	tokens := &mocks.MockTokenService{
//	    ValidateErr: auth.ErrExpiredToken,
//	}
package mocks
