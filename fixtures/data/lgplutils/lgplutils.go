// Package lgplutils carries an LGPL-2.1 license header for scanner testing.
//
// This library is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 2.1 of the License, or (at your option) any later version.
//
// This library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// SPDX-License-Identifier: LGPL-2.1
package lgplutils

import (
	"bytes"
	"compress/zlib"
	"crypto/md5" // #nosec G501 -- fixture code, not used for security
	"crypto/sha1" // #nosec G505 -- fixture code, not used for security
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
)

// StringHash hashes text with the named algorithm (md5, sha1, sha256),
// defaulting to sha256 for unknown names.
func StringHash(text, algorithm string) string {
	data := []byte(text)
	switch algorithm {
	case "md5":
		sum := md5.Sum(data) // #nosec G401
		return hex.EncodeToString(sum[:])
	case "sha1":
		sum := sha1.Sum(data) // #nosec G401
		return hex.EncodeToString(sum[:])
	default:
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:])
	}
}

// CompressData zlib-compresses data and returns it base64-encoded.
func CompressData(data []byte) (string, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecompressData reverses CompressData.
func DecompressData(encoded string) ([]byte, error) {
	compressed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return io.ReadAll(r)
}
