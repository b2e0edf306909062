package hero_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/herodex/internal/testutil"
	"github.com/totegamma/herodex/x/core"
	"github.com/totegamma/herodex/x/hero"
	mock_hero "github.com/totegamma/herodex/x/hero/mock"
)

func createContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandlerCreate(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_hero.NewMockService(ctrl)
	handler := hero.NewHandler(mockService)

	id := primitive.NewObjectID()
	stored := hero.Hero{ID: id, Name: "Deadpond", SecretName: "Dive Wilson"}

	mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(stored, nil)

	c, rec := createContext(http.MethodPost, "/heroes", `{"name":"Deadpond","secret_name":"Dive Wilson"}`)
	err := handler.Create(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), id.Hex())
	}

	// name欠落は400
	c, rec = createContext(http.MethodPost, "/heroes", `{"secret_name":"Dive Wilson"}`)
	err = handler.Create(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestHandlerGet(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_hero.NewMockService(ctrl)
	handler := hero.NewHandler(mockService)

	id := primitive.NewObjectID()
	stored := hero.Hero{ID: id, Name: "Deadpond", SecretName: "Dive Wilson"}

	mockService.EXPECT().Get(gomock.Any(), id.Hex()).Return(stored, nil)

	c, rec := createContext(http.MethodGet, "/heroes/"+id.Hex(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())
	err := handler.Get(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Deadpond")
	}

	// 存在しないIDは404
	missing := primitive.NewObjectID().Hex()
	mockService.EXPECT().Get(gomock.Any(), missing).Return(hero.Hero{}, core.ErrHeroNotFound)

	c, rec = createContext(http.MethodGet, "/heroes/"+missing, "")
	c.SetParamNames("id")
	c.SetParamValues(missing)
	err = handler.Get(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	// 不正なIDは400
	mockService.EXPECT().Get(gomock.Any(), "bogus").Return(hero.Hero{}, core.ErrInvalidID)

	c, rec = createContext(http.MethodGet, "/heroes/bogus", "")
	c.SetParamNames("id")
	c.SetParamValues("bogus")
	err = handler.Get(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestHandlerList(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_hero.NewMockService(ctrl)
	handler := hero.NewHandler(mockService)

	mockService.EXPECT().List(gomock.Any(), int64(0), int64(100)).Return([]hero.Hero{}, nil)

	c, rec := createContext(http.MethodGet, "/heroes", "")
	err := handler.List(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	// limitは100を超えない
	mockService.EXPECT().List(gomock.Any(), int64(10), int64(100)).Return([]hero.Hero{}, nil)

	c, rec = createContext(http.MethodGet, "/heroes?skip=10&limit=500", "")
	err = handler.List(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	// 負のskipは400
	c, rec = createContext(http.MethodGet, "/heroes?skip=-1", "")
	err = handler.List(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}

	// 数値でないlimitは400
	c, rec = createContext(http.MethodGet, "/heroes?limit=abc", "")
	err = handler.List(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestHandlerUpdate(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_hero.NewMockService(ctrl)
	handler := hero.NewHandler(mockService)

	id := primitive.NewObjectID()
	name := "Spider-Boy"
	updated := hero.Hero{ID: id, Name: name, SecretName: "Pedro Parqueador"}

	mockService.EXPECT().Update(gomock.Any(), id.Hex(), hero.Update{Name: &name}).Return(updated, nil)

	c, rec := createContext(http.MethodPatch, "/heroes/"+id.Hex(), `{"name":"Spider-Boy"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())
	err := handler.Update(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Spider-Boy")
	}

	// 存在しないIDは404
	missing := primitive.NewObjectID().Hex()
	mockService.EXPECT().Update(gomock.Any(), missing, gomock.Any()).Return(hero.Hero{}, core.ErrHeroNotFound)

	c, rec = createContext(http.MethodPatch, "/heroes/"+missing, `{"name":"nobody"}`)
	c.SetParamNames("id")
	c.SetParamValues(missing)
	err = handler.Update(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}

func TestHandlerDelete(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_hero.NewMockService(ctrl)
	handler := hero.NewHandler(mockService)

	id := primitive.NewObjectID()

	mockService.EXPECT().Delete(gomock.Any(), id.Hex()).Return(hero.Hero{ID: id}, nil)

	c, rec := createContext(http.MethodDelete, "/heroes/"+id.Hex(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())
	err := handler.Delete(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ok")
	}

	// 存在しないIDは404
	missing := primitive.NewObjectID().Hex()
	mockService.EXPECT().Delete(gomock.Any(), missing).Return(hero.Hero{}, core.ErrHeroNotFound)

	c, rec = createContext(http.MethodDelete, "/heroes/"+missing, "")
	c.SetParamNames("id")
	c.SetParamValues(missing)
	err = handler.Delete(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}

func TestHandlerCount(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_hero.NewMockService(ctrl)
	handler := hero.NewHandler(mockService)

	mockService.EXPECT().Count(gomock.Any()).Return(int64(42), nil)

	c, _, rec, _ := testutil.CreateHttpRequest()
	err := handler.Count(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "42")
	}
}
