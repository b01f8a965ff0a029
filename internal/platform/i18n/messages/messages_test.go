package messages

import (
	"context"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/louisbranch/toolbox/internal/platform/i18n"
)

func TestEmbeddedBundlesShareKeys(t *testing.T) {
	t.Parallel()

	loader := NewLoader(Embedded(), i18n.DefaultLocale, nil)
	zh, err := loader.Bundle(context.Background(), i18n.Chinese)
	if err != nil {
		t.Fatalf("Bundle(zh) error = %v", err)
	}
	en, err := loader.Bundle(context.Background(), i18n.English)
	if err != nil {
		t.Fatalf("Bundle(en) error = %v", err)
	}
	if diff := cmp.Diff(zh.Keys(), en.Keys()); diff != "" {
		t.Fatalf("bundle keys differ (-zh +en):\n%s", diff)
	}
}

func TestBundlePrinterResolvesKeys(t *testing.T) {
	t.Parallel()

	loader := NewLoader(Embedded(), i18n.DefaultLocale, nil)
	zh, err := loader.Bundle(context.Background(), i18n.Chinese)
	if err != nil {
		t.Fatalf("Bundle(zh) error = %v", err)
	}
	if got := zh.Printer().Sprintf("site.name"); got != "站长工具箱" {
		t.Fatalf("site.name = %q, want %q", got, "站长工具箱")
	}
	en, err := loader.Bundle(context.Background(), i18n.English)
	if err != nil {
		t.Fatalf("Bundle(en) error = %v", err)
	}
	if got := en.Printer().Sprintf("site.name"); got != "Webmaster Toolbox" {
		t.Fatalf("site.name = %q, want %q", got, "Webmaster Toolbox")
	}
}

func TestBundleFallsBackToDefaultLocale(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/zh.yaml": {Data: []byte("locale: zh\nmessages:\n  site.name: 站长工具箱\n")},
		"locales/en.yaml": {Data: []byte("locale: en\nmessages: [broken\n")},
	}
	loader := NewLoader(fsys, i18n.Chinese, nil)
	bundle, err := loader.Bundle(context.Background(), i18n.English)
	if err != nil {
		t.Fatalf("Bundle(en) error = %v", err)
	}
	if bundle.Locale() != i18n.Chinese {
		t.Fatalf("Locale = %q, want %q", bundle.Locale(), i18n.Chinese)
	}
}

func TestBundleFailsWhenDefaultMissing(t *testing.T) {
	t.Parallel()

	loader := NewLoader(fstest.MapFS{}, i18n.Chinese, nil)
	if _, err := loader.Bundle(context.Background(), i18n.English); err == nil {
		t.Fatal("expected error when no bundle can load")
	}
}

func TestParseBundleRejectsLocaleMismatch(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("locale: zh\nmessages:\n  a: b\n")},
	}
	if _, err := parseBundle(fsys, i18n.English); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestBundleLoadsOncePerLocale(t *testing.T) {
	defer goleak.VerifyNone(t)

	loader := NewLoader(Embedded(), i18n.DefaultLocale, nil)
	var wg sync.WaitGroup
	results := make([]*Bundle, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bundle, err := loader.Bundle(context.Background(), i18n.English)
			if err != nil {
				t.Errorf("Bundle(en) error = %v", err)
				return
			}
			results[i] = bundle
		}(i)
	}
	wg.Wait()
	for i, bundle := range results {
		if bundle != results[0] {
			t.Fatalf("results[%d] is a different bundle instance", i)
		}
	}
}

func TestBundleHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	loader := NewLoader(fstest.MapFS{}, i18n.Chinese, nil)
	if _, err := loader.load(ctx, i18n.Chinese); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
