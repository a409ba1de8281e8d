package queries_test

import (
	"testing"

	"fuelsettlement/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderEventsQuery_Success(t *testing.T) {
	query, err := queries.NewGetOrderEventsQuery(42, 7)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.EqualValues(t, 42, query.OrderID())
	assert.EqualValues(t, 7, query.AfterSeq())
}

func TestNewGetOrderEventsQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderEventsQuery(0, 0)
	require.Error(t, err)
}

func TestNewGetOrderEventsQuery_NegativeCursor(t *testing.T) {
	_, err := queries.NewGetOrderEventsQuery(42, -1)
	require.Error(t, err)
}

func TestGetOrderEventsQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetOrderEventsQuery

	err := query.Validate()
	require.ErrorIs(t, err, queries.ErrGetOrderEventsQueryIsNotConstructed)
}

func TestGetAllOrdersQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetAllOrdersQuery

	err := query.Validate()
	require.ErrorIs(t, err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}
