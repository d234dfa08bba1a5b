package memory

import (
	"context"
	"strings"
	"testing"

	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
)

func TestStore_UploadAndDelete(t *testing.T) {
	t.Parallel()

	store := NewStore("http://localhost:8080/images/")
	ctx := context.Background()

	url, err := store.Upload(ctx, &studygroup.ImageFile{
		Filename:    "test.png",
		ContentType: "image/png",
		Content:     strings.NewReader("png-bytes"),
	})
	if err != nil {
		t.Fatalf("Upload() = %v", err)
	}
	if !strings.HasPrefix(url, "http://localhost:8080/images/study-groups/") || !strings.HasSuffix(url, ".png") {
		t.Errorf("url = %q", url)
	}
	if !store.Has(url) || store.Len() != 1 {
		t.Fatal("uploaded object not stored")
	}

	other, _ := store.Upload(ctx, &studygroup.ImageFile{Filename: "test.png", Content: strings.NewReader("x")})
	if other == url {
		t.Error("two uploads of the same filename produced the same url")
	}

	if err := store.Delete(ctx, url); err != nil {
		t.Fatalf("Delete() = %v", err)
	}
	if store.Has(url) {
		t.Error("object still present after Delete")
	}
	if err := store.Delete(ctx, "http://unknown"); err != nil {
		t.Errorf("Delete(unknown) = %v, want nil", err)
	}
}
