package patch

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cardPatch struct {
	Status     Field[string]          `json:"tarjetaEstado"`
	TotalLimit Field[decimal.Decimal] `json:"tarjetaCupoTotal"`
}

func TestFieldUnmarshal(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  Field[string]
		wantLimitOK bool
		wantLimit   string
	}{
		{
			name:       "omitted fields stay unset",
			body:       `{}`,
			wantStatus: Field[string]{},
		},
		{
			name:       "explicit null is set and null",
			body:       `{"tarjetaEstado": null}`,
			wantStatus: Field[string]{Set: true, Null: true},
		},
		{
			name:        "values are set",
			body:        `{"tarjetaEstado": "INACTIVO", "tarjetaCupoTotal": 2500.50}`,
			wantStatus:  Of("INACTIVO"),
			wantLimitOK: true,
			wantLimit:   "2500.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p cardPatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))

			assert.Equal(t, tt.wantStatus, p.Status)
			assert.Equal(t, tt.wantLimitOK, p.TotalLimit.Present())
			if tt.wantLimitOK {
				assert.Equal(t, tt.wantLimit, p.TotalLimit.Value.String())
			}
		})
	}
}

func TestFieldApply(t *testing.T) {
	status := "ACTIVO"

	Field[string]{}.Apply(&status)
	assert.Equal(t, "ACTIVO", status)

	Field[string]{Set: true, Null: true}.Apply(&status)
	assert.Equal(t, "ACTIVO", status)

	Of("INACTIVO").Apply(&status)
	assert.Equal(t, "INACTIVO", status)
}

func TestFieldUnmarshalTypeMismatch(t *testing.T) {
	var p cardPatch
	err := json.Unmarshal([]byte(`{"tarjetaEstado": 12}`), &p)
	assert.Error(t, err)
}
