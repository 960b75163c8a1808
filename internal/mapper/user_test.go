package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"userservice/internal/handler/dto"
	"userservice/internal/model"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestToWireToStored_RoundTrip(t *testing.T) {
	inputs := []dto.UserInput{
		{Name: strPtr("Ivan Sidorov"), Email: strPtr("ivan@mail.com"), Age: intPtr(25)},
		{Name: strPtr("Jo"), Email: strPtr("jo@example.org"), Age: intPtr(1)},
		{Name: strPtr("Мария Петрова"), Email: strPtr("maria@mail.ru"), Age: intPtr(150)},
	}

	for _, in := range inputs {
		out := ToWire(ToStored(in))
		assert.Equal(t, *in.Name, out.Name)
		assert.Equal(t, *in.Email, out.Email)
		assert.Equal(t, *in.Age, out.Age)
		assert.Zero(t, out.ID)
		assert.True(t, out.CreatedAt.IsZero())
	}
}

func TestToWire_CopiesAllFields(t *testing.T) {
	created := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	u := model.User{ID: 9, Name: "Ivan Sidorov", Email: "ivan@mail.com", Age: 25, CreatedAt: created}

	assert.Equal(t, dto.User{ID: 9, Name: "Ivan Sidorov", Email: "ivan@mail.com", Age: 25, CreatedAt: created}, ToWire(u))
}

func TestToWireList_Empty(t *testing.T) {
	out := ToWireList(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestMergeUpdate(t *testing.T) {
	created := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	base := model.User{ID: 1, Name: "Ivan Sidorov", Email: "ivan@mail.com", Age: 25, CreatedAt: created}

	tests := []struct {
		name string
		in   dto.UserInput
		want model.User
	}{
		{
			name: "age only",
			in:   dto.UserInput{Age: intPtr(26)},
			want: model.User{ID: 1, Name: "Ivan Sidorov", Email: "ivan@mail.com", Age: 26, CreatedAt: created},
		},
		{
			name: "name and email",
			in:   dto.UserInput{Name: strPtr("Ivan Petrov"), Email: strPtr("petrov@mail.com")},
			want: model.User{ID: 1, Name: "Ivan Petrov", Email: "petrov@mail.com", Age: 25, CreatedAt: created},
		},
		{
			name: "nothing present",
			in:   dto.UserInput{},
			want: base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := base
			MergeUpdate(&existing, tt.in)
			assert.Equal(t, tt.want, existing)
		})
	}
}
