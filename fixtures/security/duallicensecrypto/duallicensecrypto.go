// Package duallicensecrypto carries a dual license (GPL-3.0 OR Commercial)
// for scanner testing. Dual licensing is common for crypto libraries, which
// is the scenario this fixture imitates.
//
// Dual License Option 1: GPL-3.0
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
//
// ----
//
// Dual License Option 2: Commercial License
//
// Copyright (c) 2023 CryptoCorp KK. All rights reserved.
// A commercial license is available for organizations that cannot comply
// with the GPL. Contact sales@example.co.jp for terms.
//
// SPDX-License-Identifier: GPL-3.0 OR LicenseRef-Commercial
package duallicensecrypto

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/ProtonMail/go-crypto/openpgp/armor"
)

// XORCipher applies a repeating-key XOR to data. Toy cipher only; it exists
// to host the license header, not to protect anything.
func XORCipher(data, key []byte) []byte {
	if len(key) == 0 {
		return append([]byte(nil), data...)
	}
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out
}

// Digest returns the hex SHA-256 of data.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ArmorMessage wraps data in an OpenPGP-style ASCII armor block.
func ArmorMessage(data []byte) (string, error) {
	var buf bytes.Buffer
	w, err := armor.Encode(&buf, "PGP MESSAGE", map[string]string{
		"Comment": "duallicensecrypto fixture",
	})
	if err != nil {
		return "", fmt.Errorf("failed to create armor encoder: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// UnarmorMessage decodes an ASCII armor block produced by ArmorMessage.
func UnarmorMessage(armored string) ([]byte, error) {
	block, err := armor.Decode(bytes.NewReader([]byte(armored)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode armor: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(block.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
