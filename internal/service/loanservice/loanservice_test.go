package loanservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/lendhub/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func newLoan(requests ...domain.Request) *domain.Loan {
	loan := domain.NewLoan("8d6f1a52-53a3-4a7c-9d4c-0a6f2b1f1e11", 1200, 10, 12, "bank")
	loan.Requests = append(loan.Requests, requests...)
	loan.Version = 1
	return loan
}

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expectedErr bool
	}{
		{
			name: "Successful creation",
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, loan *domain.Loan) (*domain.Loan, error) {
					loan.Version = 1
					return loan, nil
				})
			},
		},
		{
			name: "Store failure",
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			loan, err := service.Create(context.Background(), 1200, 10, 12, "bank")
			if tt.expectedErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "db error")
				assert.Nil(t, loan)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, loan.ID)
			assert.Equal(t, 1200.0, loan.Amount)
			assert.Equal(t, 10.0, loan.InterestRate)
			assert.Equal(t, 12, loan.Duration)
			assert.Equal(t, "bank", loan.Lender)
			assert.Equal(t, domain.LoanStatusAvailable, loan.Status)
			assert.Empty(t, loan.Requests)
		})
	}
}

func TestCreate_NoValidation(t *testing.T) {
	service, repo := NewMock(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, loan *domain.Loan) (*domain.Loan, error) {
		return loan, nil
	})

	loan, err := service.Create(context.Background(), -5, 0, 0, "")

	require.NoError(t, err)
	assert.Equal(t, -5.0, loan.Amount)
	assert.Equal(t, 0, loan.Duration)
}

func TestList(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().FindAll(gomock.Any()).Return([]domain.Loan{
		{ID: "1", Amount: 100},
		{ID: "2", Amount: 200, Status: domain.LoanStatusApproved, Requests: []domain.Request{{BorrowerName: "alice"}}},
	}, nil)

	loans, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, loans, 2)
	assert.Equal(t, domain.LoanStatusAvailable, loans[0].Status)
	assert.NotNil(t, loans[0].Requests)
	assert.Equal(t, domain.LoanStatusApproved, loans[1].Status)

	repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db error"))
	_, err = service.List(context.Background())
	assert.Error(t, err)
}

func TestRequest(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name        string
		borrower    string
		prepareMock func()
		expectedErr error
		check       func(t *testing.T, loan *domain.Loan)
	}{
		{
			name:     "New request builds schedule",
			borrower: "alice",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "loan-1").Return(newLoan(), nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, loan *domain.Loan) {
				require.Len(t, loan.Requests, 1)
				req := loan.Requests[0]
				assert.Equal(t, "alice", req.BorrowerName)
				assert.Equal(t, domain.RequestStatusRequested, req.Status)
				require.Len(t, req.Payments, 12)
				assert.Equal(t, 110.0, req.Payments[0].Amount)
				assert.Equal(t, 12, req.Payments[11].Month)
			},
		},
		{
			name:     "Existing requests are preserved",
			borrower: "bob",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "loan-1").Return(newLoan(domain.Request{BorrowerName: "alice", Status: domain.RequestStatusApproved}), nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, loan *domain.Loan) {
				require.Len(t, loan.Requests, 2)
				assert.Equal(t, "alice", loan.Requests[0].BorrowerName)
				assert.Equal(t, "bob", loan.Requests[1].BorrowerName)
			},
		},
		{
			name:     "Duplicate borrower",
			borrower: "alice",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "loan-1").Return(newLoan(domain.Request{BorrowerName: "alice"}), nil)
			},
			expectedErr: domain.ErrDuplicateRequest,
		},
		{
			name:     "Loan not found",
			borrower: "alice",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "loan-1").Return(nil, nil)
			},
			expectedErr: ErrLoanNotFound,
		},
		{
			name:     "Concurrent update",
			borrower: "alice",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "loan-1").Return(newLoan(), nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(domain.ErrConcurrentUpdate)
			},
			expectedErr: domain.ErrConcurrentUpdate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			loan, err := service.Request(context.Background(), "loan-1", tt.borrower)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, loan)
				return
			}
			require.NoError(t, err)
			tt.check(t, loan)
		})
	}
}

func TestRequest_LoadError(t *testing.T) {
	service, repo := NewMock(t)
	repo.EXPECT().FindByID(gomock.Any(), "loan-1").Return(nil, errors.New("db error"))

	loan, err := service.Request(context.Background(), "loan-1", "alice")
	assert.EqualError(t, err, "db error")
	assert.Nil(t, loan)
}

func TestApprove(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Approval regenerates schedule and flips loan status", func(t *testing.T) {
		stored := newLoan(domain.Request{
			BorrowerName: "alice",
			Status:       domain.RequestStatusRequested,
			Payments:     []domain.Payment{{Month: 1, Amount: 1, Paid: true}},
		})
		repo.EXPECT().FindByID(gomock.Any(), "loan-1").Return(stored, nil)
		repo.EXPECT().Save(gomock.Any(), stored).Return(nil)

		loan, err := service.Approve(context.Background(), "loan-1", "alice")
		require.NoError(t, err)
		assert.Equal(t, domain.LoanStatusApproved, loan.Status)
		assert.Equal(t, domain.RequestStatusApproved, loan.Requests[0].Status)
		require.Len(t, loan.Requests[0].Payments, 12)
		for _, p := range loan.Requests[0].Payments {
			assert.False(t, p.Paid)
			assert.Equal(t, 110.0, p.Amount)
		}
	})

	t.Run("Request not found", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "loan-1").Return(newLoan(), nil)

		_, err := service.Approve(context.Background(), "loan-1", "alice")
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})

	t.Run("Rejected request stays rejected", func(t *testing.T) {
		stored := newLoan(domain.Request{BorrowerName: "alice", Status: domain.RequestStatusRejected})
		repo.EXPECT().FindByID(gomock.Any(), "loan-1").Return(stored, nil)

		_, err := service.Approve(context.Background(), "loan-1", "alice")
		assert.ErrorIs(t, err, domain.ErrRequestClosed)
		assert.Equal(t, domain.RequestStatusRejected, stored.Requests[0].Status)
	})

	t.Run("Loan not found", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "loan-1").Return(nil, nil)

		_, err := service.Approve(context.Background(), "loan-1", "alice")
		assert.ErrorIs(t, err, ErrLoanNotFound)
	})

	t.Run("Save failure", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "loan-1").Return(newLoan(domain.Request{BorrowerName: "alice"}), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		_, err := service.Approve(context.Background(), "loan-1", "alice")
		assert.EqualError(t, err, "db error")
	})
}

func TestReject(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Rejection leaves payments and loan status", func(t *testing.T) {
		payments := domain.Schedule(1200, 10, 12)
		payments[2].Paid = true
		stored := newLoan(domain.Request{BorrowerName: "alice", Status: domain.RequestStatusRequested, Payments: payments})
		repo.EXPECT().FindByID(gomock.Any(), "loan-1").Return(stored, nil)
		repo.EXPECT().Save(gomock.Any(), stored).Return(nil)

		loan, err := service.Reject(context.Background(), "loan-1", "alice")
		require.NoError(t, err)
		assert.Equal(t, domain.RequestStatusRejected, loan.Requests[0].Status)
		assert.Equal(t, domain.LoanStatusAvailable, loan.Status)
		assert.True(t, loan.Requests[0].Payments[2].Paid)
		assert.Len(t, loan.Requests[0].Payments, 12)
	})

	t.Run("Request not found", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), "loan-1").Return(newLoan(), nil)

		_, err := service.Reject(context.Background(), "loan-1", "bob")
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})

	t.Run("Completed request cannot be rejected", func(t *testing.T) {
		stored := newLoan(domain.Request{BorrowerName: "alice", Status: domain.RequestStatusCompleted})
		repo.EXPECT().FindByID(gomock.Any(), "loan-1").Return(stored, nil)

		_, err := service.Reject(context.Background(), "loan-1", "alice")
		assert.ErrorIs(t, err, domain.ErrRequestClosed)
	})
}

func TestPay(t *testing.T) {
	service, repo := NewMock(t)

	approved := func(paid ...int) *domain.Loan {
		payments := domain.Schedule(300, 0, 3)
		for _, i := range paid {
			payments[i].Paid = true
		}
		loan := newLoan(domain.Request{BorrowerName: "alice", Status: domain.RequestStatusApproved, Payments: payments})
		loan.Status = domain.LoanStatusApproved
		return loan
	}
	withStatus := func(status string) *domain.Loan {
		return newLoan(domain.Request{BorrowerName: "alice", Status: status, Payments: domain.Schedule(300, 0, 3)})
	}

	tests := []struct {
		name           string
		monthIndex     int
		stored         *domain.Loan
		expectSave     bool
		expectedErr    error
		expectedStatus string
	}{
		{name: "First installment", monthIndex: 0, stored: approved(), expectSave: true, expectedStatus: domain.RequestStatusApproved},
		{name: "Already paid is idempotent", monthIndex: 0, stored: approved(0), expectSave: true, expectedStatus: domain.RequestStatusApproved},
		{name: "Final installment completes request", monthIndex: 2, stored: approved(0, 1), expectSave: true, expectedStatus: domain.RequestStatusCompleted},
		{name: "Payment index out of range", monthIndex: 3, stored: approved(), expectedErr: domain.ErrPaymentNotFound},
		{name: "Negative payment index", monthIndex: -1, stored: approved(), expectedErr: domain.ErrPaymentNotFound},
		{name: "Request not yet approved", monthIndex: 0, stored: withStatus(domain.RequestStatusRequested), expectedErr: domain.ErrRequestNotApproved},
		{name: "Rejected request", monthIndex: 0, stored: withStatus(domain.RequestStatusRejected), expectedErr: domain.ErrRequestNotApproved},
		{name: "Completed request stays completed", monthIndex: 1, stored: approved(0, 1, 2), expectSave: true, expectedStatus: domain.RequestStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.EXPECT().FindByID(gomock.Any(), "loan-1").Return(tt.stored, nil)
			if tt.expectSave {
				repo.EXPECT().Save(gomock.Any(), tt.stored).Return(nil)
			}

			loan, err := service.Pay(context.Background(), "loan-1", "alice", tt.monthIndex)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, loan.Requests[0].Payments[tt.monthIndex].Paid)
			assert.Equal(t, tt.expectedStatus, loan.Requests[0].Status)
		})
	}
}
