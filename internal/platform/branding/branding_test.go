package branding

import "testing"

func TestAppName(t *testing.T) {
	if AppName != "Storefront" {
		t.Fatalf("AppName = %q, want %q", AppName, "Storefront")
	}
}
