package company_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/maxjeon97/biztime/internal/company"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params company.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *company.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: company.CreateParams{
					Code:        "tsl",
					Name:        "Tesla",
					Description: "Electric cars",
				},
			},
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().
					CreateCompany(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "RepoError",
			args: args{
				params: company.CreateParams{Code: "dup"},
			},
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().
					CreateCompany(gomock.Any(), gomock.Any()).
					Return(errors.New("duplicate key"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := company.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := company.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.args.params.Code, got.Code)
			assert.Equal(t, tt.args.params.Name, got.Name)
		})
	}
}

func TestService_Get(t *testing.T) {
	type testCase struct {
		name      string
		code      string
		setupMock func(m *company.MockRepository)
		wantErr   error
		wantIDs   []int64
	}

	tests := []testCase{
		{
			name: "SuccessWithInvoices",
			code: "tst",
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().
					GetCompany(gomock.Any(), "tst").
					Return(&company.Company{
						Code:       "tst",
						Name:       "Test Co",
						InvoiceIDs: []int64{1, 2},
					}, nil)
			},
			wantIDs: []int64{1, 2},
		},
		{
			name: "NotFound",
			code: "missing",
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().
					GetCompany(gomock.Any(), "missing").
					Return(nil, company.ErrNotFound)
			},
			wantErr: company.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := company.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := company.NewService(repo)
			got, err := svc.Get(context.Background(), tt.code)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.wantIDs, got.InvoiceIDs)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := company.NewMockRepository(ctrl)
	repo.EXPECT().
		ListCompanies(gomock.Any()).
		Return([]*company.Company{
			{Code: "tst", Name: "Test Co"},
			{Code: "tsl", Name: "Tesla"},
		}, nil)

	svc := company.NewService(repo)
	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_Update(t *testing.T) {
	type testCase struct {
		name      string
		code      string
		params    company.UpdateParams
		setupMock func(m *company.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			code:   "tst",
			params: company.UpdateParams{Name: "Test Co2", Description: "Updated"},
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().
					UpdateCompany(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *company.Company) error {
						assert.Equal(t, "tst", c.Code)
						return nil
					})
			},
		},
		{
			name:   "NotFound",
			code:   "missing",
			params: company.UpdateParams{Name: "x", Description: "y"},
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().
					UpdateCompany(gomock.Any(), gomock.Any()).
					Return(company.ErrNotFound)
			},
			wantErr: company.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := company.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := company.NewService(repo)
			got, err := svc.Update(context.Background(), tt.code, tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.params.Name, got.Name)
			assert.Equal(t, tt.params.Description, got.Description)
		})
	}
}

func TestService_Delete(t *testing.T) {
	type testCase struct {
		name      string
		code      string
		setupMock func(m *company.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			code: "tst",
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().DeleteCompany(gomock.Any(), "tst").Return(nil)
			},
		},
		{
			name: "NotFound",
			code: "missing",
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().DeleteCompany(gomock.Any(), "missing").Return(company.ErrNotFound)
			},
			wantErr: company.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := company.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := company.NewService(repo)
			err := svc.Delete(context.Background(), tt.code)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}
