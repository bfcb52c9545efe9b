package httpapi

import (
	"context"

	"github.com/mkravets/bookshelf/internal/logging"
	"github.com/mkravets/bookshelf/internal/server/models"
)

// ---- test logger ----

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeUsers struct {
	regResp *models.User
	regErr  error

	loginToken string
	loginUser  *models.User
	loginErr   error

	authResp *models.User
	authErr  error

	gotToken string
}

func (f *fakeUsers) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	return f.regResp, f.regErr
}

func (f *fakeUsers) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	return f.loginToken, f.loginUser, f.loginErr
}

func (f *fakeUsers) Authorize(ctx context.Context, token string) (*models.User, error) {
	f.gotToken = token
	return f.authResp, f.authErr
}

type fakeBooks struct {
	listResp []*models.Book
	listErr  error

	getResp *models.Book
	getErr  error

	createResp *models.Book
	createErr  error

	updateResp *models.Book
	updateErr  error

	deleteErr error

	gotID    int64
	gotTitle string
}

func (f *fakeBooks) List(ctx context.Context) ([]*models.Book, error) {
	return f.listResp, f.listErr
}

func (f *fakeBooks) Get(ctx context.Context, id int64) (*models.Book, error) {
	f.gotID = id
	return f.getResp, f.getErr
}

func (f *fakeBooks) Create(ctx context.Context, title string) (*models.Book, error) {
	f.gotTitle = title
	return f.createResp, f.createErr
}

func (f *fakeBooks) Update(ctx context.Context, id int64, title string) (*models.Book, error) {
	f.gotID = id
	f.gotTitle = title
	return f.updateResp, f.updateErr
}

func (f *fakeBooks) Delete(ctx context.Context, id int64) error {
	f.gotID = id
	return f.deleteErr
}

type fakeCategories struct {
	listResp []*models.Category
	listErr  error

	getResp *models.Category
	getErr  error

	createResp *models.Category
	createErr  error

	deleteErr error
}

func (f *fakeCategories) List(ctx context.Context) ([]*models.Category, error) {
	return f.listResp, f.listErr
}

func (f *fakeCategories) Get(ctx context.Context, id int64) (*models.Category, error) {
	return f.getResp, f.getErr
}

func (f *fakeCategories) Create(ctx context.Context, name, description string) (*models.Category, error) {
	return f.createResp, f.createErr
}

func (f *fakeCategories) Delete(ctx context.Context, id int64) error {
	return f.deleteErr
}

func newTestServer(us *fakeUsers, bs *fakeBooks, cs *fakeCategories) *Server {
	if us == nil {
		us = &fakeUsers{}
	}
	if bs == nil {
		bs = &fakeBooks{}
	}
	if cs == nil {
		cs = &fakeCategories{}
	}
	s, _ := NewServer("127.0.0.1:0", nopLogger{}, us, bs, cs, "http://localhost:3000")
	return s
}
