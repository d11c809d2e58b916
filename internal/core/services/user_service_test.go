package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/XpenseXpress/xpense_backend/internal/apperrors"
	"github.com/XpenseXpress/xpense_backend/internal/core/domain"
	"github.com/XpenseXpress/xpense_backend/internal/dto"
)

// MockUserRepository is a testify mock of the user repository port.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  *UserService
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockUserRepository)
	s.service = NewUserService(s.mockRepo)
}

func (s *UserServiceTestSuite) TestCreateUserReturnsGeneratedIdentity() {
	age := 30
	req := dto.CreateUserRequest{Name: "Nadia Rahman", Email: "nadia@example.com", Age: &age}

	s.mockRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Name == req.Name && u.Email == req.Email
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 7
	}).Return(nil).Once()

	user, err := s.service.CreateUser(context.Background(), req)

	s.Require().NoError(err)
	s.Equal(int64(7), user.ID)
	s.Equal("nadia@example.com", user.Email)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestCreateUserDuplicateEmail() {
	req := dto.CreateUserRequest{Name: "Nadia Rahman", Email: "nadia@example.com"}

	s.mockRepo.On("SaveUser", mock.Anything, mock.Anything).
		Return(apperrors.ErrDuplicate).Once()

	user, err := s.service.CreateUser(context.Background(), req)

	s.Require().ErrorIs(err, apperrors.ErrDuplicate)
	s.Nil(user)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestUpdateUserReturnsFreshRow() {
	req := dto.UpdateUserRequest{Name: "Nadia R.", Email: "nadia@example.com"}
	updated := &domain.User{ID: 7, Name: "Nadia R.", Email: "nadia@example.com"}

	s.mockRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.ID == 7 && u.Name == "Nadia R."
	})).Return(nil).Once()
	s.mockRepo.On("FindUserByID", mock.Anything, int64(7)).Return(updated, nil).Once()

	user, err := s.service.UpdateUser(context.Background(), 7, req)

	s.Require().NoError(err)
	s.Equal("Nadia R.", user.Name)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestUpdateUserNotFound() {
	s.mockRepo.On("UpdateUser", mock.Anything, mock.Anything).
		Return(apperrors.ErrNotFound).Once()

	user, err := s.service.UpdateUser(context.Background(), 404, dto.UpdateUserRequest{Name: "x", Email: "x@y.z"})

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(user)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestListUsers() {
	users := []domain.User{{ID: 1}, {ID: 2}}

	s.mockRepo.On("FindUsers", mock.Anything).Return(users, nil).Once()

	got, err := s.service.ListUsers(context.Background())

	s.Require().NoError(err)
	s.Len(got, 2)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestDeleteUserNotFound() {
	s.mockRepo.On("DeleteUser", mock.Anything, int64(404)).
		Return(apperrors.ErrNotFound).Once()

	err := s.service.DeleteUser(context.Background(), 404)

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.mockRepo.AssertExpectations(s.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
