package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"librify/internal/models"
)

func TestOutstandingLoansSkipsBrokenRecords(t *testing.T) {
	due := time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC)
	catalog := &fakeCatalog{books: map[string]models.Book{
		"b1": {BookID: "b1", Title: "Atomic Habits"},
	}}
	loans := &fakeLoans{loans: []models.Loan{
		{LoanID: "l1", BookID: "b1", UserID: "u1", DueDate: due},
		{LoanID: "l2", BookID: "", UserID: "u1", DueDate: due},   // missing reference
		{LoanID: "l3", BookID: "b9", UserID: "u1", DueDate: due}, // unresolvable book
		{LoanID: "l4", BookID: "b1", UserID: "u1"},               // no due date
	}}

	got, err := OutstandingLoans(context.Background(), catalog, loans, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Atomic Habits", got[0].Title)
	require.Equal(t, due, got[0].DueDate)
}

func TestOutstandingLoansLengthBoundedByLoanCount(t *testing.T) {
	catalog := &fakeCatalog{books: map[string]models.Book{
		"b1": {BookID: "b1", Title: "Atomic Habits"},
		"b2": {BookID: "b2", Title: "Sapiens"},
	}}
	loans := &fakeLoans{loans: []models.Loan{
		{LoanID: "l1", BookID: "b1", UserID: "u1", DueDate: time.Now()},
		{LoanID: "l2", BookID: "b2", UserID: "u1", DueDate: time.Now()},
	}}

	got, err := OutstandingLoans(context.Background(), catalog, loans, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Store-iteration order is preserved.
	require.Equal(t, "Atomic Habits", got[0].Title)
	require.Equal(t, "Sapiens", got[1].Title)
}

func TestOutstandingLoansPropagatesQueryError(t *testing.T) {
	loans := &fakeLoans{err: errors.New("connection refused")}

	_, err := OutstandingLoans(context.Background(), &fakeCatalog{}, loans, "u1")
	require.Error(t, err)
}
