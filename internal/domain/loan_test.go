package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyInstallment(t *testing.T) {
	tests := []struct {
		name         string
		amount       float64
		interestRate float64
		duration     int
		expected     float64
	}{
		{name: "Even split", amount: 1200, interestRate: 10, duration: 12, expected: 110},
		{name: "Rounded to cents", amount: 1000, interestRate: 5, duration: 3, expected: 350},
		{name: "Repeating decimal", amount: 100, interestRate: 0, duration: 3, expected: 33.33},
		{name: "Half rounds up", amount: 100.05, interestRate: 0, duration: 10, expected: 10.01},
		{name: "Zero duration", amount: 1000, interestRate: 10, duration: 0, expected: 0},
		{name: "Negative duration", amount: 1000, interestRate: 10, duration: -2, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthlyInstallment(tt.amount, tt.interestRate, tt.duration))
		})
	}
}

func TestSchedule(t *testing.T) {
	payments := Schedule(1200, 10, 12)

	require.Len(t, payments, 12)
	for i, p := range payments {
		assert.Equal(t, i+1, p.Month)
		assert.Equal(t, 110.0, p.Amount)
		assert.False(t, p.Paid)
	}

	assert.Empty(t, Schedule(1200, 10, 0))
	assert.NotNil(t, Schedule(1200, 10, 0))
}

func TestNewLoan(t *testing.T) {
	loan := NewLoan("id-1", 500, 7, 5, "bank")

	assert.Equal(t, "id-1", loan.ID)
	assert.Equal(t, LoanStatusAvailable, loan.Status)
	assert.NotNil(t, loan.Requests)
	assert.Empty(t, loan.Requests)
}

func TestLoan_Normalize(t *testing.T) {
	loan := &Loan{ID: "id-1"}
	loan.Normalize()

	assert.Equal(t, LoanStatusAvailable, loan.Status)
	assert.NotNil(t, loan.Requests)

	approved := &Loan{ID: "id-2", Status: LoanStatusApproved}
	approved.Normalize()
	assert.Equal(t, LoanStatusApproved, approved.Status)
}

func TestLoan_AddRequest(t *testing.T) {
	loan := NewLoan("id-1", 1200, 10, 12, "bank")

	require.NoError(t, loan.AddRequest("alice"))
	require.NoError(t, loan.AddRequest("bob"))

	require.Len(t, loan.Requests, 2)
	assert.Equal(t, "alice", loan.Requests[0].BorrowerName)
	assert.Equal(t, "bob", loan.Requests[1].BorrowerName)
	assert.Equal(t, RequestStatusRequested, loan.Requests[0].Status)
	assert.Len(t, loan.Requests[0].Payments, 12)
	assert.Equal(t, 110.0, loan.Requests[0].Payments[0].Amount)

	err := loan.AddRequest("alice")
	assert.ErrorIs(t, err, ErrDuplicateRequest)
	assert.Len(t, loan.Requests, 2)

	assert.NoError(t, loan.AddRequest("Alice"), "borrower names are case-sensitive")
}

func TestLoan_Approve(t *testing.T) {
	loan := NewLoan("id-1", 1200, 10, 12, "bank")
	require.NoError(t, loan.AddRequest("alice"))
	require.NoError(t, loan.AddRequest("bob"))
	loan.Requests[0].Payments[0].Paid = true
	loan.Requests[0].Payments[1].Paid = true

	require.NoError(t, loan.Approve("alice"))

	assert.Equal(t, LoanStatusApproved, loan.Status)
	req, ok := loan.Request("alice")
	require.True(t, ok)
	assert.Equal(t, RequestStatusApproved, req.Status)
	require.Len(t, req.Payments, 12)
	for _, p := range req.Payments {
		assert.False(t, p.Paid, "approval always regenerates the schedule")
	}

	other, _ := loan.Request("bob")
	assert.Equal(t, RequestStatusRequested, other.Status)

	assert.ErrorIs(t, loan.Approve("carol"), ErrRequestNotFound)
}

func TestLoan_TerminalRequests(t *testing.T) {
	tests := []struct {
		name        string
		status      string
		action      func(l *Loan) error
		expectedErr error
	}{
		{name: "Approve rejected", status: RequestStatusRejected, action: func(l *Loan) error { return l.Approve("alice") }, expectedErr: ErrRequestClosed},
		{name: "Approve completed", status: RequestStatusCompleted, action: func(l *Loan) error { return l.Approve("alice") }, expectedErr: ErrRequestClosed},
		{name: "Reject rejected", status: RequestStatusRejected, action: func(l *Loan) error { return l.Reject("alice") }, expectedErr: ErrRequestClosed},
		{name: "Reject completed", status: RequestStatusCompleted, action: func(l *Loan) error { return l.Reject("alice") }, expectedErr: ErrRequestClosed},
		{name: "Pay rejected", status: RequestStatusRejected, action: func(l *Loan) error { return l.Pay("alice", 0) }, expectedErr: ErrRequestNotApproved},
		{name: "Pay requested", status: RequestStatusRequested, action: func(l *Loan) error { return l.Pay("alice", 0) }, expectedErr: ErrRequestNotApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan := NewLoan("id-1", 300, 0, 3, "bank")
			require.NoError(t, loan.AddRequest("alice"))
			loan.Requests[0].Status = tt.status
			before := append([]Payment(nil), loan.Requests[0].Payments...)

			assert.ErrorIs(t, tt.action(loan), tt.expectedErr)
			assert.Equal(t, tt.status, loan.Requests[0].Status)
			assert.Equal(t, before, loan.Requests[0].Payments)
			assert.Equal(t, LoanStatusAvailable, loan.Status)
		})
	}
}

func TestLoan_RejectedCannotBePaidOff(t *testing.T) {
	loan := NewLoan("id-1", 300, 0, 3, "bank")
	require.NoError(t, loan.AddRequest("alice"))
	require.NoError(t, loan.Reject("alice"))

	assert.ErrorIs(t, loan.Approve("alice"), ErrRequestClosed)
	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, loan.Pay("alice", i), ErrRequestNotApproved)
	}
	assert.Equal(t, RequestStatusRejected, loan.Requests[0].Status)
}

func TestLoan_Reject(t *testing.T) {
	loan := NewLoan("id-1", 1200, 10, 12, "bank")
	require.NoError(t, loan.AddRequest("alice"))
	loan.Requests[0].Payments[3].Paid = true
	before := append([]Payment(nil), loan.Requests[0].Payments...)

	require.NoError(t, loan.Reject("alice"))

	assert.Equal(t, RequestStatusRejected, loan.Requests[0].Status)
	assert.Equal(t, before, loan.Requests[0].Payments)
	assert.Equal(t, LoanStatusAvailable, loan.Status)

	assert.ErrorIs(t, loan.Reject("carol"), ErrRequestNotFound)
}

func TestLoan_Pay(t *testing.T) {
	loan := NewLoan("id-1", 300, 0, 3, "bank")
	require.NoError(t, loan.AddRequest("alice"))
	require.NoError(t, loan.Approve("alice"))

	tests := []struct {
		name           string
		borrower       string
		monthIndex     int
		expectedErr    error
		expectedStatus string
	}{
		{name: "First installment", borrower: "alice", monthIndex: 0, expectedStatus: RequestStatusApproved},
		{name: "Same installment twice", borrower: "alice", monthIndex: 0, expectedStatus: RequestStatusApproved},
		{name: "Index out of range", borrower: "alice", monthIndex: 3, expectedErr: ErrPaymentNotFound, expectedStatus: RequestStatusApproved},
		{name: "Negative index", borrower: "alice", monthIndex: -1, expectedErr: ErrPaymentNotFound, expectedStatus: RequestStatusApproved},
		{name: "Unknown borrower", borrower: "carol", monthIndex: 0, expectedErr: ErrRequestNotFound, expectedStatus: RequestStatusApproved},
		{name: "Second installment", borrower: "alice", monthIndex: 1, expectedStatus: RequestStatusApproved},
		{name: "Last installment completes", borrower: "alice", monthIndex: 2, expectedStatus: RequestStatusCompleted},
		{name: "Paying completed request again", borrower: "alice", monthIndex: 1, expectedStatus: RequestStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loan.Pay(tt.borrower, tt.monthIndex)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.True(t, loan.Requests[0].Payments[tt.monthIndex].Paid)
			}
			assert.Equal(t, tt.expectedStatus, loan.Requests[0].Status)
		})
	}
}

func TestLoan_Lifecycle(t *testing.T) {
	loan := NewLoan("id-1", 1200, 10, 12, "bank")

	require.NoError(t, loan.AddRequest("alice"))
	assert.Equal(t, 110.0, loan.Requests[0].Payments[0].Amount)

	require.NoError(t, loan.Approve("alice"))
	assert.Equal(t, LoanStatusApproved, loan.Status)
	assert.Equal(t, RequestStatusApproved, loan.Requests[0].Status)
	assert.Len(t, loan.Requests[0].Payments, 12)

	for i := 0; i < 11; i++ {
		require.NoError(t, loan.Pay("alice", i))
		assert.Equal(t, RequestStatusApproved, loan.Requests[0].Status)
	}
	require.NoError(t, loan.Pay("alice", 11))
	assert.Equal(t, RequestStatusCompleted, loan.Requests[0].Status)
}
