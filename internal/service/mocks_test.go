package service

import (
	"context"

	"film_api/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if len(args) > 1 {
		user.ID = args.Get(1).(int64)
	}
	return args.Error(0)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) HasAdmin(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

type mockMovieRepo struct {
	mock.Mock
}

func (m *mockMovieRepo) FindAll(ctx context.Context) ([]model.Movie, error) {
	args := m.Called(ctx)
	movies, _ := args.Get(0).([]model.Movie)
	return movies, args.Error(1)
}

func (m *mockMovieRepo) FindByID(ctx context.Context, id int64) (*model.Movie, error) {
	args := m.Called(ctx, id)
	movie, _ := args.Get(0).(*model.Movie)
	return movie, args.Error(1)
}

func (m *mockMovieRepo) Create(ctx context.Context, req model.MovieRequest) (*model.Movie, error) {
	args := m.Called(ctx, req)
	movie, _ := args.Get(0).(*model.Movie)
	return movie, args.Error(1)
}

func (m *mockMovieRepo) Update(ctx context.Context, id int64, req model.MovieRequest) (*model.Movie, error) {
	args := m.Called(ctx, id, req)
	movie, _ := args.Get(0).(*model.Movie)
	return movie, args.Error(1)
}

func (m *mockMovieRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockDirectorRepo struct {
	mock.Mock
}

func (m *mockDirectorRepo) FindAll(ctx context.Context) ([]model.Director, error) {
	args := m.Called(ctx)
	directors, _ := args.Get(0).([]model.Director)
	return directors, args.Error(1)
}

func (m *mockDirectorRepo) FindByID(ctx context.Context, id int64) (*model.Director, error) {
	args := m.Called(ctx, id)
	director, _ := args.Get(0).(*model.Director)
	return director, args.Error(1)
}
