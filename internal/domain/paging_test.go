package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperror "mottufind/internal/errors"
)

func TestNewPageRequest_RejectsValuesBelowOne(t *testing.T) {
	_, err := NewPageRequest(0, 0)

	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
}

func TestNewPageRequest_Limits(t *testing.T) {
	_, err := NewPageRequest(1, MaxTamanhoPag+1)
	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "tamanhoPag", verr.Fields[0].Campo)

	_, err = NewPageRequest(math.MaxInt64/5, 10)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "numeroPag", verr.Fields[0].Campo)

	page, err := NewPageRequest(maxNumeroPag, MaxTamanhoPag)
	require.NoError(t, err)
	assert.Positive(t, page.Offset())
}

func TestPagedResult_NextPrev(t *testing.T) {
	cases := []struct {
		name               string
		numero, tamanho    int
		total              int
		wantNext, wantPrev bool
	}{
		{"primeira de várias", 1, 10, 25, true, false},
		{"meio", 2, 10, 25, true, true},
		{"última parcial", 3, 10, 25, false, true},
		{"última exata", 2, 10, 20, false, true},
		{"coleção vazia", 1, 10, 0, false, false},
		{"página enorme", math.MaxInt64 / 5, 10, 3, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page := PagedResult[int]{NumeroPag: tc.numero, TamanhoPag: tc.tamanho, Total: tc.total}
			assert.Equal(t, tc.wantNext, page.HasNext())
			assert.Equal(t, tc.wantPrev, page.HasPrev())
		})
	}
}

func TestPageRequest_OffsetCoversEveryItemOnce(t *testing.T) {
	const total, tamanho = 23, 5
	seen := make(map[int]int)

	for numero := 1; ; numero++ {
		page, err := NewPageRequest(numero, tamanho)
		require.NoError(t, err)
		if page.Offset() >= total {
			break
		}
		end := page.Offset() + page.TamanhoPag
		if end > total {
			end = total
		}
		assert.LessOrEqual(t, end-page.Offset(), tamanho)
		for i := page.Offset(); i < end; i++ {
			seen[i]++
		}
	}

	require.Len(t, seen, total)
	for i, n := range seen {
		assert.Equal(t, 1, n, "item %d", i)
	}
}

func TestNormalizePlaca(t *testing.T) {
	assert.Equal(t, "ABC1234", NormalizePlaca(" abc-1234 "))
	assert.Equal(t, "BRA2E19", NormalizePlaca("bra2e19"))
}
