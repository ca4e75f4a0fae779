package scheduling

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lavexpress/booking-service/internal/domain"
)

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{name: "hours and minutes", input: "1h30", want: 90, wantOK: true},
		{name: "hours only", input: "2h", want: 120, wantOK: true},
		{name: "minutes only", input: "45", want: 45, wantOK: true},
		{name: "zero padded minutes", input: "1h05", want: 65, wantOK: true},
		{name: "three hours", input: "3h", want: 180, wantOK: true},
		{name: "empty string", input: "", wantOK: false},
		{name: "free text", input: "abc", wantOK: false},
		{name: "minutes before h", input: "30h1", wantOK: false},
		{name: "negative", input: "-45", wantOK: false},
		{name: "spaces", input: "1h 30", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDurationMinutes(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolver_ResolveDuration(t *testing.T) {
	ctx := context.Background()

	repo := newFakeFormulaRepo(
		&domain.Formula{Category: domain.CategoryCitadine, Name: "Intégral", Duration: "1h30"},
		&domain.Formula{Category: domain.CategoryCitadine, Name: "Express", Duration: "45"},
		&domain.Formula{Category: domain.CategoryCitadine, Name: "Cassée", Duration: "environ 2h"},
	)
	resolver := NewResolver(repo, noopLogger{})

	t.Run("parses stored duration", func(t *testing.T) {
		assert.Equal(t, 90, resolver.ResolveDuration(ctx, domain.CategoryCitadine, "Intégral"))
		assert.Equal(t, 45, resolver.ResolveDuration(ctx, domain.CategoryCitadine, "Express"))
	})

	t.Run("unknown formula falls back to default", func(t *testing.T) {
		got := resolver.ResolveDuration(ctx, domain.CategoryCitadine, "Inconnue")
		assert.Equal(t, domain.DefaultDurationMinutes, got)
	})

	t.Run("unparseable duration falls back to default", func(t *testing.T) {
		got := resolver.ResolveDuration(ctx, domain.CategoryCitadine, "Cassée")
		assert.Equal(t, domain.DefaultDurationMinutes, got)
	})

	t.Run("unknown category falls back to citadine", func(t *testing.T) {
		got := resolver.ResolveDuration(ctx, domain.VehicleCategory("camion"), "Intégral")
		assert.Equal(t, 90, got)
	})

	t.Run("repository failure falls back to default", func(t *testing.T) {
		broken := newFakeFormulaRepo()
		broken.err = errors.New("connection refused")
		r := NewResolver(broken, noopLogger{})

		got := r.ResolveDuration(ctx, domain.CategoryCitadine, "Intégral")
		assert.Equal(t, domain.DefaultDurationMinutes, got)
	})
}
