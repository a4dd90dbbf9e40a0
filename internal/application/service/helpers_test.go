package service

import (
	"errors"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/shreya-jain12/JainTriad/internal/domain/entity"
	domainRepo "github.com/shreya-jain12/JainTriad/internal/domain/repository"
	"github.com/shreya-jain12/JainTriad/internal/infrastructure/repository"
	"github.com/shreya-jain12/JainTriad/internal/infrastructure/store"
	"github.com/shreya-jain12/JainTriad/pkg/apperror"
)

// testRepos wires the three repositories over a file store in a temp dir.
type testRepos struct {
	customers domainRepo.CustomerRepository
	items     domainRepo.ItemRepository
	bills     domainRepo.BillRepository
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()
	dir := t.TempDir()
	st := store.New(store.Options{
		DataPath:          filepath.Join(dir, "khataa_data.txt"),
		ItemPath:          filepath.Join(dir, "items_data.txt"),
		ResetOnCorruption: true,
	})
	if err := st.Load(); err != nil {
		t.Fatalf("load store: %v", err)
	}
	return testRepos{
		customers: repository.NewCustomerRepository(st),
		items:     repository.NewItemRepository(st),
		bills:     repository.NewBillRepository(st),
	}
}

// fixedClock returns a clock pinned to the given timestamp so bill dates
// are deterministic across a test.
func fixedClock(t *testing.T, stamp string) func() time.Time {
	t.Helper()
	ts, err := time.Parse(entity.DateLayout, stamp)
	if err != nil {
		t.Fatalf("parse %q: %v", stamp, err)
	}
	return func() time.Time { return ts }
}

func assertStatusCode(t *testing.T, err error, want int) {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	if appErr.Code != want {
		t.Fatalf("error code = %d, want %d (%v)", appErr.Code, want, err)
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertStatusCode(t, err, http.StatusUnprocessableEntity)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertStatusCode(t, err, http.StatusNotFound)
}
