package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByAge_OrdersGroupsAndEvents(t *testing.T) {
	// Arrange: ages arrive shuffled, dates within an age out of order.
	events := []Event{
		{ID: "a", Age: 30, Date: "2022-06-01", Title: "Second at 30", Type: TypeOther},
		{ID: "b", Age: 25, Date: "2017-01-01", Title: "At 25", Type: TypeOther},
		{ID: "c", Age: 30, Date: "2022-01-01", Title: "First at 30", Type: TypeOther},
		{ID: "d", Age: 40, Date: "2032-01-01", Title: "At 40", Type: TypeOther},
	}

	// Act
	groups := GroupByAge(events)

	// Assert: groups by descending age, events inside by ascending date.
	require.Len(t, groups, 3)
	assert.Equal(t, 40, groups[0].Age)
	assert.Equal(t, 30, groups[1].Age)
	assert.Equal(t, 25, groups[2].Age)

	require.Len(t, groups[1].Events, 2)
	assert.Equal(t, "First at 30", groups[1].Events[0].Title)
	assert.Equal(t, "Second at 30", groups[1].Events[1].Title)
}

func TestGroupByAge_SameDateKeepsEntryOrder(t *testing.T) {
	// Arrange: a cascade writes its events with one shared date.
	events := []Event{
		{ID: "visit", Age: 30, Date: "2024-11-02", Type: TypeDoctorVisit},
		{ID: "disease", Age: 30, Date: "2024-11-02", Type: TypeDisease},
		{ID: "medication", Age: 30, Date: "2024-11-02", Type: TypeMedication},
	}

	// Act
	groups := GroupByAge(events)

	// Assert
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Events, 3)
	assert.Equal(t, "visit", groups[0].Events[0].ID)
	assert.Equal(t, "disease", groups[0].Events[1].ID)
	assert.Equal(t, "medication", groups[0].Events[2].ID)
}

func TestGroupByAge_Empty(t *testing.T) {
	assert.Empty(t, GroupByAge(nil))
}

func TestGroupByAge_UnparseableDatesSortFirst(t *testing.T) {
	// Arrange
	events := []Event{
		{ID: "dated", Age: 20, Date: "2015-05-05", Type: TypeOther},
		{ID: "freeform", Age: 20, Date: "sometime in spring", Type: TypeOther},
	}

	// Act
	groups := GroupByAge(events)

	// Assert: the unparseable date sorts as the zero time, ahead of real dates.
	require.Len(t, groups, 1)
	assert.Equal(t, "freeform", groups[0].Events[0].ID)
	assert.Equal(t, "dated", groups[0].Events[1].ID)
}

func TestFilterByType(t *testing.T) {
	events := []Event{
		{ID: "1", Type: TypeDoctorVisit},
		{ID: "2", Type: TypeMedication},
		{ID: "3", Type: TypeDoctorVisit},
		{ID: "4", Type: TypeDisease},
	}

	tests := []struct {
		name    string
		filter  Type
		wantIDs []string
	}{
		{name: "doctor visits", filter: TypeDoctorVisit, wantIDs: []string{"1", "3"}},
		{name: "medications", filter: TypeMedication, wantIDs: []string{"2"}},
		{name: "no matches", filter: TypeVaccination, wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByType(events, tt.filter)

			ids := make([]string, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.wantIDs, ids)
			}
		})
	}
}
