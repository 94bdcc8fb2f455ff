package remediation_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/therapist-admin/pkg/swissfield"
	"github.com/dmitrymomot/therapist-admin/pkg/validator"
	"github.com/dmitrymomot/therapist-admin/svc/directory"
	"github.com/dmitrymomot/therapist-admin/svc/remediation"
)

type mockStore struct {
	directory.Store
	mock.Mock
}

func (m *mockStore) UpdateField(ctx context.Context, id string, field directory.Field, value string) error {
	return m.Called(ctx, id, field, value).Error(0)
}

func newStore() *directory.MemoryStore {
	return directory.NewMemoryStore(
		directory.Therapist{ID: "t1", FirstName: "Anna", Zip: directory.Ptr("80")},
	)
}

func TestApply_WritesVerbatim(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newStore()
	svc := remediation.NewService(store)

	require.NoError(t, svc.Apply(ctx, remediation.Edit{ID: "t1", Field: "zip", Value: " 8000 "}))

	rec, err := store.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, " 8000 ", directory.Str(rec.Zip))

	// Unchecked by default: invalid values are accepted too.
	require.NoError(t, svc.Apply(ctx, remediation.Edit{ID: "t1", Field: "canton", Value: "XX"}))
	rec, _ = store.Get(ctx, "t1")
	assert.Equal(t, "XX", directory.Str(rec.Canton))
}

func TestApply_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name string
		edit remediation.Edit
		want error
	}{
		{"unknown field", remediation.Edit{ID: "t1", Field: "firstName", Value: "x"}, remediation.ErrFieldNotEditable},
		{"missing record", remediation.Edit{ID: "nope", Field: "zip", Value: "8000"}, remediation.ErrRecordNotFound},
		{"empty id", remediation.Edit{ID: "", Field: "zip", Value: "8000"}, remediation.ErrInvalidEdit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := remediation.NewService(newStore())
			err := svc.Apply(ctx, tt.edit)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestApply_StoreFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("connection refused")

	store := &mockStore{}
	store.On("UpdateField", mock.Anything, "t1", directory.FieldPhone, "044").Return(boom).Once()

	reg := prometheus.NewRegistry()
	metrics := remediation.NewMetrics(reg)
	applied := false
	svc := remediation.NewService(store,
		remediation.WithMetrics(metrics),
		remediation.WithOnApplied(func(context.Context, remediation.Edit) { applied = true }),
	)

	err := svc.Apply(ctx, remediation.Edit{ID: "t1", Field: "phone", Value: "044"})
	require.ErrorIs(t, err, remediation.ErrUpdateFailed)
	assert.ErrorIs(t, err, boom)
	assert.False(t, applied)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Edits.WithLabelValues("phone", remediation.OutcomeFailed)))
	store.AssertExpectations(t)
}

func TestApply_OnApplied(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var got []remediation.Edit
	reg := prometheus.NewRegistry()
	metrics := remediation.NewMetrics(reg)
	svc := remediation.NewService(newStore(),
		remediation.WithMetrics(metrics),
		remediation.WithOnApplied(func(_ context.Context, e remediation.Edit) { got = append(got, e) }),
	)

	edit := remediation.Edit{ID: "t1", Field: "email", Value: "anna@example.ch"}
	require.NoError(t, svc.Apply(ctx, edit))
	assert.Equal(t, []remediation.Edit{edit}, got)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Edits.WithLabelValues("email", remediation.OutcomeApplied)))
}

func TestApply_WithValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		field  string
		value  string
		reason string
	}{
		{"zip", "80", swissfield.ReasonInvalidZipFormat},
		{"zip", "", swissfield.ReasonEmptyZip},
		{"canton", "XX", swissfield.ReasonInvalidCanton},
		{"email", "anna@", swissfield.ReasonInvalidEmailFormat},
		{"phone", "123", swissfield.ReasonPhoneTooShort},
		{"zip", "8000", ""},
		{"canton", "zh", ""},
		{"email", "", ""},
		{"street", "", ""},
		{"city", strings.Repeat("a", remediation.MaxFreeTextLen+1), "must be at most 255 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.field+"="+truncate(tt.value), func(t *testing.T) {
			store := newStore()
			svc := remediation.NewService(store, remediation.WithValidation(remediation.FieldValidation()))

			err := svc.Apply(ctx, remediation.Edit{ID: "t1", Field: tt.field, Value: tt.value})
			if tt.reason == "" {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, remediation.ErrRejected)
			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field)
			assert.Equal(t, tt.reason, verrs[0].Message)

			rec, _ := store.Get(ctx, "t1")
			assert.Equal(t, "80", directory.Str(rec.Zip), "rejected edit must not be written")
		})
	}
}

func truncate(s string) string {
	if len(s) > 12 {
		return s[:12] + "..."
	}
	return s
}
