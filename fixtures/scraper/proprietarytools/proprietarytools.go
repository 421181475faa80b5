// Package proprietarytools carries simulated proprietary license notices for
// scanner testing.
//
// WARNING: This code contains simulated proprietary license terms for TESTING
// ONLY. These are not real proprietary licenses and must not ship in products.
//
// COMMERCIAL SOFTWARE LICENSE AGREEMENT
// Copyright (c) 2023 FictionalCorp Inc. All rights reserved.
//
// This software is proprietary and confidential. Unauthorized copying,
// distribution, or modification is strictly prohibited. This software is
// licensed, not sold.
//
// ORACLE-STYLE LICENSE NOTICE:
// Portions of this code are derived from proprietary Oracle-style database
// technologies. Copyright (c) 2023 DatabaseCorp. All rights reserved.
// Commercial license required for production use.
//
// MICROSOFT-STYLE LICENSE:
// This software contains technology similar to Microsoft proprietary solutions.
// Copyright (c) 2023 SoftwareCorp. All rights reserved.
// Licensed under Commercial Software License Agreement.
//
// IBM-STYLE LICENSE:
// Enterprise software components with proprietary IBM-style licensing.
// Copyright (c) 2023 EnterpriseCorp. All rights reserved.
// Redistribution prohibited without commercial license.
package proprietarytools

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// LicenseKey is a fake commercial activation key.
type LicenseKey struct {
	Product string
	Seats   int
	Expires time.Time
}

// Fingerprint derives the activation fingerprint for a key, in the style of
// enterprise license servers.
func (k LicenseKey) Fingerprint() string {
	payload := fmt.Sprintf("%s|%d|%d", k.Product, k.Seats, k.Expires.Unix())
	sum := sha256.Sum256([]byte(payload))
	return strings.ToUpper(hex.EncodeToString(sum[:10]))
}

// Valid reports whether the key covers the given time.
func (k LicenseKey) Valid(at time.Time) bool {
	return k.Seats > 0 && at.Before(k.Expires)
}

// FormatKey renders a fingerprint as dash-separated groups of five.
func FormatKey(fingerprint string) string {
	var groups []string
	for len(fingerprint) > 5 {
		groups = append(groups, fingerprint[:5])
		fingerprint = fingerprint[5:]
	}
	if fingerprint != "" {
		groups = append(groups, fingerprint)
	}
	return strings.Join(groups, "-")
}
