package parser

import "testing"

const sampleDoc = `<html><head><style>body{}</style></head><body>
<p>Catalog</p>
<a href="/one">First</a>
<a name="anchor-only">Skipped</a>
<a href="/two"><span>Second</span></a>
<script>var x = 1;</script>
</body></html>`

func TestExtractLinks(t *testing.T) {
	links, err := ExtractLinks(sampleDoc)
	if err != nil {
		t.Fatalf("ExtractLinks: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].URL != "/one" || links[0].Text != "First" {
		t.Errorf("first link = %+v", links[0])
	}
	if links[1].URL != "/two" || links[1].Text != "Second" {
		t.Errorf("nested anchor text should be collected, got %+v", links[1])
	}
}

func TestExtractTextSkipsScriptAndStyle(t *testing.T) {
	text, err := ExtractText(sampleDoc)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if text != "Catalog First Skipped Second" {
		t.Errorf("ExtractText = %q", text)
	}
}
