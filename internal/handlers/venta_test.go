// internal/handlers/venta_test.go
package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/tienda/dispositivos-backend/internal/dto"
)

type VentaHandlerTestSuite struct {
	suite.Suite
	env *apiTestEnv
}

func (suite *VentaHandlerTestSuite) SetupTest() {
	suite.env = newTestEnv(suite.T())
}

func (suite *VentaHandlerTestSuite) createVenta(body map[string]interface{}, token string) dto.VentaDTO {
	w := suite.env.request("POST", "/api/ventas", body, token)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created dto.VentaDTO
	decodeBody(suite.T(), w, &created)
	suite.Require().NotNil(created.ID)
	return created
}

func (suite *VentaHandlerTestSuite) TestCreateAttachesCaller() {
	created := suite.createVenta(map[string]interface{}{
		"fechaVenta": "2026-08-24T10:00:00Z",
		"ganancia":   50.5,
	}, suite.env.adminToken)

	suite.Require().NotNil(created.User)
	suite.Equal(int64(1), *created.User.ID)
	suite.Equal("admin", *created.User.Login)
	suite.Require().NotNil(created.Ganancia)
	suite.True(decimal.NewFromFloat(50.5).Equal(*created.Ganancia))
}

func (suite *VentaHandlerTestSuite) TestCreateWithExplicitUser() {
	created := suite.createVenta(map[string]interface{}{
		"fechaVenta": "2026-08-24T10:00:00Z",
		"user":       map[string]interface{}{"id": int64(2)},
	}, suite.env.adminToken)

	suite.Require().NotNil(created.User)
	suite.Equal(int64(2), *created.User.ID)
	suite.Equal("user", *created.User.Login)
}

func (suite *VentaHandlerTestSuite) TestUserProjectionOmitsAccountDetails() {
	created := suite.createVenta(map[string]interface{}{
		"fechaVenta": "2026-08-24T10:00:00Z",
	}, suite.env.userToken)

	w := suite.env.request("GET", fmt.Sprintf("/api/ventas/%d", *created.ID), nil, suite.env.userToken)
	suite.Require().Equal(http.StatusOK, w.Code)

	var body map[string]interface{}
	decodeBody(suite.T(), w, &body)
	user, ok := body["user"].(map[string]interface{})
	suite.Require().True(ok)
	suite.NotContains(user, "email")
	suite.NotContains(user, "authorities")
}

func (suite *VentaHandlerTestSuite) TestAllRoutesRequireAuth() {
	w := suite.env.request("GET", "/api/ventas", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.env.request("POST", "/api/ventas", map[string]interface{}{
		"fechaVenta": "2026-08-24T10:00:00Z",
	}, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *VentaHandlerTestSuite) TestListIsPaginated() {
	suite.createVenta(map[string]interface{}{"fechaVenta": "2026-08-24T10:00:00Z"}, suite.env.adminToken)
	suite.createVenta(map[string]interface{}{"fechaVenta": "2026-08-25T10:00:00Z"}, suite.env.adminToken)

	w := suite.env.request("GET", "/api/ventas?limit=1", nil, suite.env.adminToken)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("2", w.Header().Get("X-Total-Count"))

	var list []dto.VentaDTO
	decodeBody(suite.T(), w, &list)
	suite.Len(list, 1)
}

func (suite *VentaHandlerTestSuite) TestPartialUpdateGanancia() {
	created := suite.createVenta(map[string]interface{}{
		"fechaVenta": "2026-08-24T10:00:00Z",
		"ganancia":   10.0,
	}, suite.env.adminToken)

	body := map[string]interface{}{
		"id":       *created.ID,
		"ganancia": 99.9,
	}

	w := suite.env.request("PATCH", fmt.Sprintf("/api/ventas/%d", *created.ID), body, suite.env.adminToken)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var patched dto.VentaDTO
	decodeBody(suite.T(), w, &patched)
	suite.True(decimal.NewFromFloat(99.9).Equal(*patched.Ganancia))
	suite.Require().NotNil(patched.User)
	suite.Equal(int64(1), *patched.User.ID)
	suite.Equal(created.FechaVenta.UTC(), patched.FechaVenta.UTC())
}

func (suite *VentaHandlerTestSuite) TestPartialUpdateReassignsUser() {
	created := suite.createVenta(map[string]interface{}{
		"fechaVenta": "2026-08-24T10:00:00Z",
	}, suite.env.adminToken)
	suite.Require().NotNil(created.User)
	suite.Require().Equal(int64(1), *created.User.ID)

	body := map[string]interface{}{
		"id":   *created.ID,
		"user": map[string]interface{}{"id": int64(2)},
	}

	w := suite.env.request("PATCH", fmt.Sprintf("/api/ventas/%d", *created.ID), body, suite.env.adminToken)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	// The response must reflect the reassigned user, not the one loaded
	// before the patch.
	var patched dto.VentaDTO
	decodeBody(suite.T(), w, &patched)
	suite.Require().NotNil(patched.User)
	suite.Equal(int64(2), *patched.User.ID)
	suite.Equal("user", *patched.User.Login)

	w = suite.env.request("GET", fmt.Sprintf("/api/ventas/%d", *created.ID), nil, suite.env.adminToken)
	suite.Require().Equal(http.StatusOK, w.Code)

	var fetched dto.VentaDTO
	decodeBody(suite.T(), w, &fetched)
	suite.Require().NotNil(fetched.User)
	suite.Equal(int64(2), *fetched.User.ID)
}

func (suite *VentaHandlerTestSuite) TestDelete() {
	created := suite.createVenta(map[string]interface{}{
		"fechaVenta": "2026-08-24T10:00:00Z",
	}, suite.env.adminToken)
	path := fmt.Sprintf("/api/ventas/%d", *created.ID)

	w := suite.env.request("DELETE", path, nil, suite.env.adminToken)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.env.request("GET", path, nil, suite.env.adminToken)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestVentaHandlerSuite(t *testing.T) {
	suite.Run(t, new(VentaHandlerTestSuite))
}
