package api

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"github.com/victorivanov/famhub/internal/models"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func newTestContext(method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

func setAuthUser(c echo.Context, userID int64) {
	c.Set("user_id", userID)
}

func strptr(s string) *string { return &s }

// envelope mirrors the response shape for decoding in tests.
type testEnvelope struct {
	Success bool         `json:"success"`
	Error   *ErrorDetail `json:"error"`
}

// ---------------------------------------------------------------------------
// Mock repositories
// ---------------------------------------------------------------------------

// mockUserRepo implements database.UserRepository.
type mockUserRepo struct {
	CreateFn        func(ctx context.Context, user *models.User) error
	GetByIDFn       func(ctx context.Context, id int64) (*models.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	GetByIDsFn      func(ctx context.Context, ids []int64) ([]models.User, error)
	UpdateFn        func(ctx context.Context, user *models.User) error
	DeleteFn        func(ctx context.Context, id int64) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByIDs(ctx context.Context, ids []int64) ([]models.User, error) {
	if m.GetByIDsFn != nil {
		return m.GetByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// mockChannelRepo implements database.ChannelRepository.
type mockChannelRepo struct {
	CreateFn    func(ctx context.Context, channel *models.Channel) error
	GetByIDFn   func(ctx context.Context, id int64) (*models.Channel, error)
	ListFn      func(ctx context.Context) ([]models.Channel, error)
	IsMemberFn  func(ctx context.Context, channelID, userID int64) (bool, error)
	AddMemberFn func(ctx context.Context, channelID, userID int64) error
	DeleteFn    func(ctx context.Context, id int64) error
}

func (m *mockChannelRepo) Create(ctx context.Context, channel *models.Channel) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, channel)
	}
	return nil
}

func (m *mockChannelRepo) GetByID(ctx context.Context, id int64) (*models.Channel, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockChannelRepo) List(ctx context.Context) ([]models.Channel, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *mockChannelRepo) IsMember(ctx context.Context, channelID, userID int64) (bool, error) {
	if m.IsMemberFn != nil {
		return m.IsMemberFn(ctx, channelID, userID)
	}
	return false, nil
}

func (m *mockChannelRepo) AddMember(ctx context.Context, channelID, userID int64) error {
	if m.AddMemberFn != nil {
		return m.AddMemberFn(ctx, channelID, userID)
	}
	return nil
}

func (m *mockChannelRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// mockMessageRepo implements database.MessageRepository.
type mockMessageRepo struct {
	CreateFn        func(ctx context.Context, msg *models.Message) error
	ListByChannelFn func(ctx context.Context, channelID int64, limit int) ([]models.Message, error)
}

func (m *mockMessageRepo) Create(ctx context.Context, msg *models.Message) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepo) ListByChannel(ctx context.Context, channelID int64, limit int) ([]models.Message, error) {
	if m.ListByChannelFn != nil {
		return m.ListByChannelFn(ctx, channelID, limit)
	}
	return nil, nil
}
