package gallery

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fhuszti/medias-catalog-go/internal/catalog"
	"github.com/fhuszti/medias-catalog-go/internal/model"
	"github.com/fhuszti/medias-catalog-go/internal/port"
)

func TestDelete_NotConfirmed(t *testing.T) {
	f, items := listedFixture(t, 1)
	f.conf.Answer = false

	if err := f.ctrl.Delete(context.Background(), items[0].ID); !errors.Is(err, ErrDeleteCancelled) {
		t.Fatalf("expected ErrDeleteCancelled, got %v", err)
	}
	if !f.conf.Called || f.conf.GotPrompt != "Are you sure you want to delete this media?" {
		t.Errorf("confirmer called = %v with %q", f.conf.Called, f.conf.GotPrompt)
	}
	if f.cat.DeleteCalled {
		t.Error("catalog.Delete must not be called without confirmation")
	}
}

func TestDelete_Success(t *testing.T) {
	f, items := listedFixture(t, 2)
	ctx := context.Background()
	if err := f.ctrl.OpenEdit(ctx, items[0].ID); err != nil {
		t.Fatalf("OpenEdit: %v", err)
	}
	f.cat.Items = []model.Media{items[1]}

	if err := f.ctrl.Delete(context.Background(), items[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if f.cat.GotDeleteID != items[0].ID {
		t.Errorf("Delete id = %s; want %s", f.cat.GotDeleteID, items[0].ID)
	}
	if len(f.rend.Rendered) != 1 || f.rend.Rendered[0].ID != items[1].ID {
		t.Errorf("rendered = %+v", f.rend.Rendered)
	}
	if msg := f.ntf.Last(); msg.Kind != port.MessageSuccess || msg.Text != "Media deleted successfully!" {
		t.Errorf("message = %+v", msg)
	}
	// deleting does not touch the edit slot
	if id, ok := f.ctrl.EditingID(); !ok || id != items[0].ID {
		t.Errorf("EditingID = %s, %v; want %s", id, ok, items[0].ID)
	}
}

func TestDelete_CatalogFailure(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantResync bool
	}{
		{"not found resyncs", fmt.Errorf("%w: #x", catalog.ErrNotFound), true},
		{"other error", errors.New("boom"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, items := listedFixture(t, 1)
			f.cat.DeleteErr = tc.err
			listsBefore := f.cat.ListCalls

			if err := f.ctrl.Delete(context.Background(), items[0].ID); !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			if msg := f.ntf.Last(); msg.Kind != port.MessageError || msg.Text != "Failed to delete media. Please try again." {
				t.Errorf("message = %+v", msg)
			}
			if resynced := f.cat.ListCalls > listsBefore; resynced != tc.wantResync {
				t.Errorf("resynced = %v; want %v", resynced, tc.wantResync)
			}
		})
	}
}
