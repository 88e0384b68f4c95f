package api_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/simplebooks/test/api"
)

func TestBookRefUnmarshal(t *testing.T) {
	t.Parallel()

	var order api.Order

	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","bookId":"3","customerName":"x"}`), &order))
	require.Equal(t, api.BookRef("3"), order.BookID)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","bookId": 4,"customerName":"x"}`), &order))
	require.Equal(t, api.BookRef("4"), order.BookID)

	for _, invalid := range []string{`true`, `1.5`, `{}`} {
		var ref api.BookRef

		err := json.Unmarshal([]byte(invalid), &ref)
		require.ErrorIs(t, err, api.ErrInvalidBookRef, invalid)
	}
}

func TestOrderPayloadBuilder(t *testing.T) {
	t.Parallel()

	first := api.NewOrderPayload().Build()
	second := api.NewOrderPayload().Build()

	require.Equal(t, api.BookRef(api.DefaultBookID), first.BookID)
	require.NotEqual(t, first.CustomerName, second.CustomerName)

	payload := api.NewOrderPayload().
		WithBookID("3").
		WithCustomerName("Testcho Testov").
		Build()

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.JSONEq(t, `{"bookId":"3","customerName":"Testcho Testov"}`, string(data))
}
