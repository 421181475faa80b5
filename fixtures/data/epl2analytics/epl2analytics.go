// Package epl2analytics carries an EPL-2.0 license header for scanner testing.
//
// Copyright (c) 2023 Eclipse Foundation and others.
//
// This program and the accompanying materials are made available under the
// terms of the Eclipse Public License 2.0 which is available at
// http://www.eclipse.org/legal/epl-2.0.
//
// This Source Code may also be made available under the following Secondary
// Licenses when the conditions for such availability set forth in the Eclipse
// Public License, v. 2.0 are satisfied: GNU General Public License, version 2
// with the GNU Classpath Exception which is available at
// https://www.gnu.org/software/classpath/license.html.
//
// SPDX-License-Identifier: EPL-2.0 OR GPL-2.0 WITH Classpath-exception-2.0
package epl2analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/beevik/etree"
)

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation of values.
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return math.Sqrt(variance / float64(len(values)))
}

// Median returns the median of values, or 0 for an empty slice.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// ReportXML renders a trivial XML summary of a data series, in the style of
// Eclipse BIRT report fragments.
func ReportXML(name string, values []float64) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	report := doc.CreateElement("report")
	report.CreateAttr("name", name)
	report.CreateElement("count").SetText(fmt.Sprintf("%d", len(values)))
	report.CreateElement("mean").SetText(fmt.Sprintf("%.4f", Mean(values)))
	report.CreateElement("median").SetText(fmt.Sprintf("%.4f", Median(values)))
	report.CreateElement("stddev").SetText(fmt.Sprintf("%.4f", StdDev(values)))

	doc.Indent(2)
	return doc.WriteToString()
}

// ParseReportXML reads back the mean value from a ReportXML document.
func ParseReportXML(data string) (float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(data); err != nil {
		return 0, err
	}
	el := doc.FindElement("//report/mean")
	if el == nil {
		return 0, fmt.Errorf("no mean element in report")
	}
	var mean float64
	if _, err := fmt.Sscanf(el.Text(), "%f", &mean); err != nil {
		return 0, err
	}
	return mean, nil
}
