// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account exposes the identity of the authenticated caller.

Staff tooling uses it to confirm which token it is holding. Identities are
issued elsewhere, so there is no user table here: the profile is read from
the verified token claims.
*/
package account

import (
	"time"

	"github.com/taibuivan/feedback/internal/platform/sec"
)

// Profile is the public view of the authenticated caller.
type Profile struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Role      string     `json:"role,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// ProfileFromClaims maps verified token claims to a [Profile].
func ProfileFromClaims(claims *sec.AuthClaims) Profile {
	profile := Profile{
		ID:       claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}
	if claims.ExpiresAt != nil {
		expiresAt := claims.ExpiresAt.UTC()
		profile.ExpiresAt = &expiresAt
	}
	return profile
}
