package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safetyworks/depot-report/pkg/services/render"
)

func TestEncoder_EncodeBytes(t *testing.T) {
	pages := []render.Page{
		{
			Number: 1,
			Ops: []render.TextOp{
				{X: 40, Y: 50, Style: render.StyleBold, Size: 16, Text: "ANNUAL DEPOT SAFETY COMPLIANCE REPORT"},
				{X: 40, Y: 78, Style: render.StyleRegular, Size: 10, Text: "Depot Location: Pinetown"},
			},
		},
		{
			Number: 2,
			Ops: []render.TextOp{
				{X: 40, Y: 50, Style: render.StyleRegular, Size: 10, Text: "continued on a second page"},
			},
		},
	}

	data, err := NewEncoder().EncodeBytes(pages)
	require.NoError(t, err)

	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestEncoder_EmptyDocument(t *testing.T) {
	data, err := NewEncoder().EncodeBytes(nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
