package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"studioe_backend/internals/constants"
)

func f(v float64) *float64 { return &v }

func TestDerivePay(t *testing.T) {
	tests := []struct {
		name        string
		storedRate  float64
		storedHours float64
		newRate     *float64
		newHours    *float64
		explicitPay *float64
		wantPay     float64
		wantDerived bool
	}{
		{
			name:       "rate change recomputes with stored hours",
			storedRate: 50, storedHours: 2,
			newRate: f(60),
			wantPay: 120, wantDerived: true,
		},
		{
			name:       "hours change recomputes with stored rate",
			storedRate: 50, storedHours: 2,
			newHours: f(3),
			wantPay:  150, wantDerived: true,
		},
		{
			name:       "both change recomputes from payload",
			storedRate: 50, storedHours: 2,
			newRate: f(80), newHours: f(1.5),
			wantPay: 120, wantDerived: true,
		},
		{
			name:       "explicit pay wins over derivation",
			storedRate: 50, storedHours: 2,
			newRate: f(60), explicitPay: f(99),
			wantPay: 99, wantDerived: false,
		},
		{
			name:       "no rate or hours in payload derives nothing",
			storedRate: 50, storedHours: 2,
			wantPay: 0, wantDerived: false,
		},
		{
			name:       "fractional result rounds to cents",
			storedRate: 0, storedHours: 0,
			newRate: f(33.33), newHours: f(1.5),
			wantPay: 50, wantDerived: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pay, derived := DerivePay(tt.storedRate, tt.storedHours, tt.newRate, tt.newHours, tt.explicitPay)
			assert.Equal(t, tt.wantDerived, derived)
			if tt.wantDerived || tt.explicitPay != nil {
				assert.InDelta(t, tt.wantPay, pay, 0.001)
			}
		})
	}
}

func TestLessonScopeFilter(t *testing.T) {
	caller := uuid.New()

	scope, ok := LessonScopeFilter(constants.RoleInstructor, caller)
	assert.True(t, ok)
	assert.False(t, scope.All)
	assert.Equal(t, "lesson_instructor_id", scope.Column)
	assert.Equal(t, caller, scope.Value)

	scope, ok = LessonScopeFilter(constants.RoleStudent, caller)
	assert.True(t, ok)
	assert.Equal(t, "lesson_student_id", scope.Column)

	scope, ok = LessonScopeFilter(constants.RoleAdmin, caller)
	assert.True(t, ok)
	assert.True(t, scope.All)

	_, ok = LessonScopeFilter("marketing", caller)
	assert.False(t, ok)

	_, ok = LessonScopeFilter("", caller)
	assert.False(t, ok)
}

func TestCanModify(t *testing.T) {
	caller := uuid.New()
	other := uuid.New()

	assert.True(t, CanModify(constants.RoleAdmin, caller, nil))
	assert.True(t, CanModify(constants.RoleInstructor, caller, &caller))
	assert.False(t, CanModify(constants.RoleInstructor, caller, &other))
	assert.False(t, CanModify(constants.RoleInstructor, caller, nil))
	assert.False(t, CanModify(constants.RoleStudent, caller, &caller))
}
