package epl2analytics

import (
	"math"
	"strings"
	"testing"
)

func TestStatistics(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	if got := Mean(values); got != 5 {
		t.Errorf("Mean = %v, want 5", got)
	}
	if got := StdDev(values); got != 2 {
		t.Errorf("StdDev = %v, want 2", got)
	}
	if got := Median(values); got != 4.5 {
		t.Errorf("Median = %v, want 4.5", got)
	}
}

func TestStatisticsEmptyInput(t *testing.T) {
	if Mean(nil) != 0 || StdDev(nil) != 0 || Median(nil) != 0 {
		t.Error("empty input should yield zeros")
	}
}

func TestMedianOddLength(t *testing.T) {
	if got := Median([]float64{9, 1, 5}); got != 5 {
		t.Errorf("Median = %v, want 5", got)
	}
}

func TestReportXMLRoundTrip(t *testing.T) {
	values := []float64{1, 2, 3, 4}

	xml, err := ReportXML("series-a", values)
	if err != nil {
		t.Fatalf("ReportXML: %v", err)
	}
	if !strings.Contains(xml, `<report name="series-a">`) {
		t.Errorf("missing report element:\n%s", xml)
	}
	if !strings.Contains(xml, "<count>4</count>") {
		t.Errorf("missing count element:\n%s", xml)
	}

	mean, err := ParseReportXML(xml)
	if err != nil {
		t.Fatalf("ParseReportXML: %v", err)
	}
	if math.Abs(mean-2.5) > 1e-9 {
		t.Errorf("mean = %v, want 2.5", mean)
	}
}

func TestParseReportXMLErrors(t *testing.T) {
	if _, err := ParseReportXML("<unclosed"); err == nil {
		t.Error("expected error for malformed XML")
	}
	if _, err := ParseReportXML("<report></report>"); err == nil {
		t.Error("expected error when mean element is absent")
	}
}
