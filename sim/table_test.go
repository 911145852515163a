package sim

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *EventTable {
	return &EventTable{
		Names: []string{"a", "b"},
		Records: []IntervalRecord{
			{Borrower: 0, Start: 0, Stop: 1, Event: 0, StateFrom: StateCurrent, StateTo: StateCurrent, Covariates: []float64{1.5, -2}},
			{Borrower: 0, Start: 1, Stop: 2, Event: 1, StateFrom: StateCurrent, StateTo: StateMild, Covariates: []float64{1.25, -2}},
			{Borrower: 1, Start: 0, Stop: 1, Event: 0, StateFrom: StateCurrent, StateTo: StateCurrent, Covariates: []float64{3, 0.5}},
		},
	}
}

func TestEventTable_WriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleTable().WriteCSV(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"id", "start", "stop", "event", "state_from", "state_to", "a", "b"}, rows[0])
	assert.Equal(t, []string{"0", "1", "2", "1", "0", "1", "1.25", "-2"}, rows[2])
	assert.Equal(t, []string{"1", "0", "1", "0", "0", "0", "3", "0.5"}, rows[3])
}

func TestEventTable_BorrowerRecords(t *testing.T) {
	table := sampleTable()

	recs := table.BorrowerRecords(0)
	require.Len(t, recs, 2)
	assert.Equal(t, 1, recs[1].Event)

	recs = table.BorrowerRecords(1)
	require.Len(t, recs, 1)

	assert.Nil(t, table.BorrowerRecords(99))
}
