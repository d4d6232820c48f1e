package promptform_test

import (
	"context"
	"strings"
	"testing"

	promptform "github.com/goliatone/go-promptform"
	"github.com/goliatone/go-promptform/pkg/testsupport"
)

func TestGenerateHTMLFromLayout(t *testing.T) {
	out, err := promptform.GenerateHTMLFromLayout(context.Background(), testsupport.SampleLayout(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	html := string(out)
	for _, fragment := range []string{
		`class="promptform"`,
		`name="customer-name"`,
		`name="region"`,
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("output missing %q", fragment)
		}
	}
}

func TestGenerateHTMLRequiresSource(t *testing.T) {
	if _, err := promptform.GenerateHTML(context.Background(), "", ""); err == nil {
		t.Fatal("expected error for empty source")
	}
}
