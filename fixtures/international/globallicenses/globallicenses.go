// Package globallicenses carries international and novelty license notices
// for scanner testing, including non-ASCII license text.
//
// 日本独自ライセンス (Japanese Software License, fictional):
// このソフトウェアは日本国著作権法に基づいて保護されています。
// 個人利用および研究目的での使用を許可します。
// 商用利用には事前の書面による許可が必要です。
// Commercial use requires prior written permission. All rights reserved.
//
// ----
//
// Licensed under the EUPL, Version 1.2 or – as soon they will be approved by
// the European Commission - subsequent versions of the EUPL (the "Licence");
// You may not use this work except in compliance with the Licence.
// You may obtain a copy of the Licence at:
// https://joinup.ec.europa.eu/software/page/eupl
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the Licence is distributed on an "AS IS" basis,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//
// SPDX-License-Identifier: EUPL-1.2
package globallicenses

import (
	"unicode"

	"golang.org/x/text/width"
)

// TextStats summarizes the script composition of Japanese text.
type TextStats struct {
	Hiragana  int
	Katakana  int
	Kanji     int
	FullWidth int
	Total     int
}

// AnalyzeJapaneseText counts hiragana, katakana, and kanji runes, plus
// full-width forms, in text.
func AnalyzeJapaneseText(text string) TextStats {
	var stats TextStats
	for _, r := range text {
		stats.Total++
		switch {
		case unicode.In(r, unicode.Hiragana):
			stats.Hiragana++
		case unicode.In(r, unicode.Katakana):
			stats.Katakana++
		case unicode.In(r, unicode.Han):
			stats.Kanji++
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			stats.FullWidth++
		}
	}
	return stats
}

// NormalizeWidth folds full-width ASCII variants to their narrow forms, the
// usual first step before scanning Japanese license text for keywords.
func NormalizeWidth(text string) string {
	return width.Narrow.String(text)
}
