package booking

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexID_Unmarshal(t *testing.T) {
	var in CreateRequestInput
	require.NoError(t, json.Unmarshal([]byte(`{"studioId":"1","roomId":42}`), &in))
	assert.Equal(t, FlexID("1"), in.StudioID)
	assert.Equal(t, FlexID("42"), in.RoomID, "numeric ids coerce to their string form")

	require.NoError(t, json.Unmarshal([]byte(`{"studioId":1.5}`), &in))
	assert.Equal(t, FlexID("1.5"), in.StudioID)

	assert.Error(t, json.Unmarshal([]byte(`{"studioId":true}`), &in))
}
